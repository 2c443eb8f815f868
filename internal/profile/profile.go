package profile

import (
	"fmt"
	"math"
	"time"

	"github.com/akshat/mathwars/internal/badges"
)

// Profile is the durable per-account record. Guest profiles carry
// IsGuest=true and are never written to the store.
type Profile struct {
	ID             string    `json:"id,omitempty"`
	Username       string    `json:"username"`
	Password       string    `json:"password,omitempty"`
	Level          int       `json:"level"`
	Coins          int       `json:"coins"`
	Streak         int       `json:"streak"`
	BestStreak     int       `json:"bestStreak"`
	Badges         []string  `json:"badges"`
	TotalScore     int       `json:"totalScore"`
	GamesPlayed    int       `json:"gamesPlayed"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalAnswers   int       `json:"totalAnswers"`
	PlayTime       int       `json:"playTime"` // cumulative seconds
	IsGuest        bool      `json:"isGuest,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	LastPlayed     time.Time `json:"lastPlayed"`
}

// Accuracy returns the lifetime answer accuracy as a rounded percentage.
func (p *Profile) Accuracy() int {
	return p.badgeStats().Accuracy()
}

// HasBadge reports whether the badge id is already recorded.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

func (p *Profile) badgeStats() badges.Stats {
	return badges.Stats{
		Level:          p.Level,
		Coins:          p.Coins,
		BestStreak:     p.BestStreak,
		TotalScore:     p.TotalScore,
		GamesPlayed:    p.GamesPlayed,
		CorrectAnswers: p.CorrectAnswers,
		TotalAnswers:   p.TotalAnswers,
		IsGuest:        p.IsGuest,
	}
}

// GlobalStats aggregates totals across every profile on this store.
// Loaded once at startup and written after each level outcome.
type GlobalStats struct {
	TotalGames     int `json:"totalGames"`
	TotalQuestions int `json:"totalQuestions"`
	TotalCorrect   int `json:"totalCorrect"`
	TotalCoins     int `json:"totalCoins"`
	HighestLevel   int `json:"highestLevel"`
	LongestStreak  int `json:"longestStreak"`
}

// Summary is the per-profile stats view shown on the stats screen.
type Summary struct {
	Accuracy     int
	AverageScore int
	PlayTime     string
	BadgeCount   int
}

// Summary derives the display stats for this profile.
func (p *Profile) Summary() Summary {
	avg := 0
	if p.GamesPlayed > 0 {
		avg = int(math.Round(float64(p.TotalScore) / float64(p.GamesPlayed)))
	}
	return Summary{
		Accuracy:     p.Accuracy(),
		AverageScore: avg,
		PlayTime:     FormatPlayTime(p.PlayTime),
		BadgeCount:   len(p.Badges),
	}
}

// FormatPlayTime renders cumulative seconds as "Xh Ym".
func FormatPlayTime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// LeaderboardRow is one entry of the top-10 leaderboard.
type LeaderboardRow struct {
	Username   string
	Level      int
	TotalScore int
	Coins      int
	BestStreak int
	Accuracy   int
}
