package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the top warriors",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := mgr.Leaderboard(cmd.Context())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No warriors yet.")
			return nil
		}

		fmt.Printf("%-4s %-20s %7s %10s %8s %5s\n", "#", "WARRIOR", "LEVEL", "SCORE", "STREAK", "ACC")
		for i, r := range rows {
			fmt.Printf("%-4d %-20s %7d %10d %8d %4d%%\n",
				i+1, r.Username, r.Level, r.TotalScore, r.BestStreak, r.Accuracy)
		}
		return nil
	},
}
