package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/proficiency"
	"github.com/praxislearn/praxis/internal/questiongen"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Manage the concepts you are learning",
}

var conceptsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a concept and generate its question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		terms, _ := cmd.Flags().GetStringSlice("terms")
		tier, _ := cmd.Flags().GetInt("tier")
		know, _ := cmd.Flags().GetString("know")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		c, reused, err := a.Deduper.FindOrCreate(ctx, userID(cmd), concepts.Seed{
			Name:        args[0],
			Description: description,
			KeyTerms:    terms,
			Source:      concepts.SourceUser,
		})
		if err != nil {
			return err
		}
		if reused {
			fmt.Printf("Merged into existing concept %q.\n", c.Name)
		} else {
			fmt.Printf("Added concept %q.\n", c.Name)
			if know != "" && !c.ManuallyAdjusted {
				c.Proficiency, c.Confidence = proficiency.SeedPrior(know, tier)
				if err := a.Repos.Concepts.Update(ctx, c); err != nil {
					return err
				}
			}
		}

		if a.Banks == nil {
			fmt.Println("No LLM provider configured; skipping question generation.")
			return nil
		}
		go func() {
			err := a.Banks.EnsureBank(ctx, c.ID, questiongen.Input{
				ConceptName:    c.Name,
				Description:    c.Description,
				KeyTerms:       c.KeyTerms,
				DifficultyTier: tier,
			})
			if err != nil {
				a.Log.Warn("question bank generation failed", zap.Error(err))
			}
		}()

		fmt.Println("Generating question bank...")
		qs, err := a.Banks.AwaitBank(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("question bank not ready: %w", err)
		}
		fmt.Printf("Question bank ready (%d questions).\n", len(qs))
		return nil
	},
}

var conceptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your concepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.Repos.Concepts.ListByUser(cmd.Context(), userID(cmd))
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No concepts yet. Add one with: praxis concepts add <name>")
			return nil
		}

		now := time.Now().UTC()
		fmt.Printf("%-30s  %-11s  %-10s  %s\n", "Name", "Proficiency", "Attempts", "Due")
		fmt.Println(strings.Repeat("-", 70))
		for _, c := range list {
			if c.Deprecated {
				continue
			}
			due := "now"
			if c.NextDue != nil && c.NextDue.After(now) {
				due = c.NextDue.Local().Format("2006-01-02")
			}
			name := c.Name
			if len(name) > 30 {
				name = name[:30]
			}
			fmt.Printf("%-30s  %-11.2f  %-10d  %s\n", name, c.Proficiency, c.AttemptCount, due)
		}
		return nil
	},
}

func init() {
	conceptsAddCmd.Flags().String("description", "", "Short description of the concept")
	conceptsAddCmd.Flags().StringSlice("terms", nil, "Key terms, comma separated")
	conceptsAddCmd.Flags().Int("tier", 1, "Difficulty tier 1-3 for generated questions")
	conceptsAddCmd.Flags().String("know", "", "Describe what you already know to seed a starting estimate")

	conceptsCmd.AddCommand(conceptsAddCmd)
	conceptsCmd.AddCommand(conceptsListCmd)
}
