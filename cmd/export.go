package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a player's save file as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
		}

		st, mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		raw, err := mgr.ExportUser(cmd.Context(), username)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write save file: %w", err)
		}
		fmt.Printf("Exported %q to %s\n", username, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("user", "", "Player to export")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}
