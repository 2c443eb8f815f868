package cmd

import (
	"time"

	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathwars",
	Short: "Terminal math battle game",
	Long:  "Math Wars — an arcade quiz game where you battle through levels of procedurally generated math questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHWARS_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHWARS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openManager opens the store and loads the profile manager for CLI
// subcommands. The caller must Close the returned store.
func openManager(cmd *cobra.Command) (*store.Store, *profile.Manager, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	mgr, err := profile.NewManager(cmd.Context(), st, time.Now)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, mgr, nil
}
