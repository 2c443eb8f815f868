package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player or global statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			s := mgr.Stats()
			fmt.Println("Global stats")
			fmt.Printf("  Games played:    %d\n", s.TotalGames)
			fmt.Printf("  Questions asked: %d\n", s.TotalQuestions)
			fmt.Printf("  Correct answers: %d\n", s.TotalCorrect)
			fmt.Printf("  Coins earned:    %d\n", s.TotalCoins)
			fmt.Printf("  Highest level:   %d\n", s.HighestLevel)
			fmt.Printf("  Longest streak:  %d\n", s.LongestStreak)
			return nil
		}

		p, err := mgr.Lookup(cmd.Context(), username)
		if err != nil {
			return err
		}
		sum := p.Summary()
		fmt.Printf("%s (level %d)\n", p.Username, p.Level)
		fmt.Printf("  Total score:   %d\n", p.TotalScore)
		fmt.Printf("  Coins:         %d\n", p.Coins)
		fmt.Printf("  Best streak:   %d\n", p.BestStreak)
		fmt.Printf("  Games played:  %d\n", p.GamesPlayed)
		fmt.Printf("  Accuracy:      %d%%\n", sum.Accuracy)
		fmt.Printf("  Average score: %d\n", sum.AverageScore)
		fmt.Printf("  Play time:     %s\n", sum.PlayTime)
		fmt.Printf("  Badges:        %d\n", sum.BadgeCount)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Show stats for a specific player")
}
