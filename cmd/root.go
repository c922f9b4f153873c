package cmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislearn/praxis/internal/app"
	"github.com/praxislearn/praxis/internal/logging"
	"github.com/praxislearn/praxis/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Adaptive practice for anything you want to learn",
	Long: "Praxis tracks what you know as a graph of concepts, schedules reviews\n" +
		"with spaced repetition, and generates practice questions on demand.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRAXIS_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner profile to operate on")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PRAXIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp builds the wired application for a command invocation. The caller
// must Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logging.New(verbose)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), dbPath, log)
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}
