package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/praxislearn/praxis/internal/llm"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		user := userID(cmd)

		list, err := a.Repos.Concepts.ListByUser(ctx, user)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		active, due, profSum := 0, 0, 0.0
		for _, c := range list {
			if c.Deprecated {
				continue
			}
			active++
			profSum += c.Proficiency
			if c.NextDue == nil || !c.NextDue.After(now) {
				due++
			}
		}

		attempts, err := a.Repos.Attempts.CountByUser(ctx, user)
		if err != nil {
			return err
		}

		fmt.Printf("Concepts:        %d (%d due)\n", active, due)
		if active > 0 {
			fmt.Printf("Avg proficiency: %.2f\n", profSum/float64(active))
		}
		fmt.Printf("Attempts:        %d\n", attempts)

		usage, err := a.Events.LLMUsage(ctx, "")
		if err != nil {
			return err
		}
		if usage.Requests > 0 {
			fmt.Printf("LLM requests:    %d (%d failed, %d in / %d out tokens)\n",
				usage.Requests, usage.Failures, usage.InputTokens, usage.OutputTokens)

			cost := 0.0
			priced := true
			for _, m := range usage.ByModel {
				c := llm.LookupCost(m.Model)
				if c == nil {
					priced = false
					continue
				}
				cost += c.Cost(m.InputTokens, m.OutputTokens)
			}
			if priced {
				fmt.Printf("Estimated cost:  $%.4f\n", cost)
			} else if cost > 0 {
				fmt.Printf("Estimated cost:  $%.4f (some models unpriced)\n", cost)
			}
		}
		return nil
	},
}
