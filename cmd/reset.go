package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete one account or wipe all data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		st, mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		username, _ := cmd.Flags().GetString("user")
		if username != "" {
			if err := mgr.DeleteAccount(cmd.Context(), username); err != nil {
				return err
			}
			fmt.Printf("Deleted account %q\n", username)
			return nil
		}

		if err := mgr.ResetAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All profiles, stats, and saved games wiped")
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "", "Delete a single account instead of everything")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
