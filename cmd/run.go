package cmd

import (
	"fmt"

	"github.com/akshat/mathwars/internal/app"
	"github.com/spf13/cobra"
)

// runApp resolves the database path and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	return app.Run(app.Options{DBPath: dbPath})
}
