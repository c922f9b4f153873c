package cmd

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/praxislearn/praxis/internal/app"
	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/gaps"
	"github.com/praxislearn/praxis/internal/graph"
	"github.com/praxislearn/praxis/internal/practice"
	"github.com/praxislearn/praxis/internal/session"
	"github.com/praxislearn/praxis/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		dueOnly, _ := cmd.Flags().GetBool("due-only")
		focusName, _ := cmd.Flags().GetString("concept")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		user := userID(cmd)

		opts := session.Options{Limit: limit, DueOnly: dueOnly}
		if focusName != "" {
			c, err := a.Repos.Concepts.FindByNormalizedName(ctx, user, concepts.NormalizeName(focusName))
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("no concept named %q", focusName)
			}
			opts.Focus = &c.ID
		}

		questions, err := a.Composer.Compose(ctx, user, opts)
		if err != nil {
			return fmt.Errorf("compose session: %w", err)
		}
		if len(questions) == 0 {
			fmt.Println("Nothing to practice right now.")
			return nil
		}

		rec, err := a.Repos.Sessions.Create(ctx, &store.SessionRecord{UserID: user})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		reader := bufio.NewReader(os.Stdin)
		correct := 0
		for i, q := range questions {
			fmt.Printf("\n[%d/%d] %s\n", i+1, len(questions), q.Text)
			printOptions(&q)
			fmt.Print("> ")

			start := time.Now()
			answer, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			answer = strings.TrimSpace(answer)

			res, err := a.Practice.SubmitAttempt(ctx, practice.SubmitRequest{
				AttemptID:   uuid.New(),
				UserID:      user,
				SessionID:   rec.ID,
				QuestionID:  q.ID,
				Answer:      answer,
				TimeTakenMs: time.Since(start).Milliseconds(),
			})
			if err != nil {
				return fmt.Errorf("submit attempt: %w", err)
			}

			if res.Correct {
				correct++
				fmt.Println("Correct.")
			} else {
				fmt.Println("Not quite.")
			}
			if res.Feedback != "" {
				fmt.Println(res.Feedback)
			}
			if res.Explanation != "" {
				fmt.Println(res.Explanation)
			}
			for _, p := range res.GapPatterns {
				fmt.Printf("\nYou may be missing a prerequisite: %s (%s)\n  %s\n",
					p.MissingConceptName, p.Severity, p.Explanation)
				if err := a.Gaps.MarkProposed(ctx, p); err != nil {
					return err
				}
				fmt.Print("Add it to your map as a prerequisite? [y/N] ")
				line, err := reader.ReadString('\n')
				if err != nil {
					break
				}
				accepted := strings.EqualFold(strings.TrimSpace(line), "y")
				if accepted {
					if err := addGapPrerequisite(ctx, a, user, res.Concept, p); err != nil {
						fmt.Printf("Could not add %q: %v\n", p.MissingConceptName, err)
						accepted = false
					}
				}
				if err := a.Gaps.Resolve(ctx, p, accepted); err != nil {
					return err
				}
			}
		}

		if err := a.Repos.Sessions.Complete(ctx, rec.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}
		fmt.Printf("\nSession done: %d/%d correct.\n", correct, len(questions))
		return nil
	},
}

// addGapPrerequisite attaches the missing concept below the struggling one in
// the first graph that contains it. With no graph to attach to, the concept is
// still created so it can be practiced.
func addGapPrerequisite(ctx context.Context, a *app.App, user string, anchor *concepts.Concept, p gaps.Pattern) error {
	seed := concepts.Seed{
		Name:        p.MissingConceptName,
		Description: p.Explanation,
		Source:      concepts.SourceSuggestion,
	}

	graphsList, err := a.Repos.Graphs.ListGraphs(ctx, user)
	if err != nil {
		return err
	}
	for i := range graphsList {
		m, err := a.Repos.Graphs.FindMembership(ctx, graphsList[i].ID, anchor.ID)
		if err != nil {
			return err
		}
		if m == nil {
			continue
		}
		res, err := a.Inserter.Insert(ctx, graph.InsertRequest{
			UserID:   user,
			GraphID:  graphsList[i].ID,
			AnchorID: anchor.ID,
			Relation: graph.RelationPrerequisite,
			Seed:     seed,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %q as a prerequisite of %q.\n", res.Concept.Name, anchor.Name)
		return nil
	}

	c, _, err := a.Deduper.FindOrCreate(ctx, user, seed)
	if err != nil {
		return err
	}
	fmt.Printf("Added concept %q (not in any graph yet).\n", c.Name)
	return nil
}

// printOptions renders mcq choices in a shuffled order.
func printOptions(q *concepts.Question) {
	if q.Type != concepts.TypeMCQ {
		return
	}
	options := append([]string{q.Answer}, q.Distractors...)
	rand.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	for _, o := range options {
		fmt.Printf("  - %s\n", o)
	}
}

func init() {
	practiceCmd.Flags().Int("limit", 10, "Maximum questions in the session")
	practiceCmd.Flags().Bool("due-only", true, "Only practice concepts that are due for review")
	practiceCmd.Flags().String("concept", "", "Focus the session on a single concept")
}
