// Package summary implements the level-end screen for both victory and
// defeat.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/badges"
	"github.com/akshat/mathwars/internal/game"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/ui/layout"
	"github.com/akshat/mathwars/internal/ui/theme"
)

// Data carries everything the summary displays.
type Data struct {
	Outcome  game.Outcome
	GameOver bool
	Badges   []badges.Badge
}

// SummaryScreen displays the outcome of a finished level attempt.
type SummaryScreen struct {
	data          Data
	battleFactory func(level int) screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. battleFactory starts a fresh battle
// at the given level for next-level and retry.
func New(data Data, battleFactory func(level int) screen.Screen) *SummaryScreen {
	return &SummaryScreen{data: data, battleFactory: battleFactory}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.data.GameOver {
		return "Defeat"
	}
	return "Victory"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	next := "Next level"
	if s.data.GameOver {
		next = "Retry"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: next},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		// Outcome.Level is the next level after a win; the failed level
		// after a loss — either way it is where the next battle starts.
		return s, router.Replace(s.battleFactory(s.data.Outcome.Level))
	case "esc":
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return screen.RefreshMsg{} },
		)
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	d := s.data
	var b strings.Builder

	if d.GameOver {
		b.WriteString(theme.Incorrect.
			Width(width).
			Align(lipgloss.Center).
			Render("☠ GAME OVER"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("★ LEVEL COMPLETE! ★"))
	}
	b.WriteString("\n\n")

	mins := d.Outcome.PlayTime / 60
	secs := d.Outcome.PlayTime % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Battle time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	accuracy := 0
	if d.Outcome.TotalAnswers > 0 {
		accuracy = 100 * d.Outcome.CorrectAnswers / d.Outcome.TotalAnswers
	}
	stats := fmt.Sprintf("Score: %d        Correct: %d/%d        Accuracy: %d%%",
		d.Outcome.Score, d.Outcome.CorrectAnswers, d.Outcome.TotalAnswers, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n")

	rewards := fmt.Sprintf("Coins earned: %+d        Streak: %d",
		d.Outcome.CoinsDelta, d.Outcome.Streak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(rewards))
	b.WriteString("\n\n")

	if len(d.Badges) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("New badges")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, badge := range d.Badges {
			line := fmt.Sprintf("  🏅 %s", badge.Name)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Success).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	next := "Press Enter for the next level"
	if d.GameOver {
		next = "Press Enter to retry the level"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(next + " · Esc for the menu"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
