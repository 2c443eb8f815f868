package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a player from an exported save file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read save file: %w", err)
		}

		st, mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := mgr.Import(cmd.Context(), raw); err != nil {
			return err
		}
		fmt.Printf("Imported %q (level %d)\n", mgr.Current().Username, mgr.Current().Level)
		return nil
	},
}
