// Package leaderboard implements the top-players screen.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/ui/layout"
	"github.com/akshat/mathwars/internal/ui/theme"
)

type rowsLoadedMsg struct {
	Rows []profile.LeaderboardRow
	Err  error
}

// LeaderboardScreen displays the top registered players.
type LeaderboardScreen struct {
	mgr    *profile.Manager
	rows   []profile.LeaderboardRow
	loaded bool
	errMsg string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a new LeaderboardScreen.
func New(mgr *profile.Manager) *LeaderboardScreen {
	return &LeaderboardScreen{mgr: mgr}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := s.mgr.Leaderboard(context.Background())
		return rowsLoadedMsg{Rows: rows, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Rows
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading leaderboard...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No warriors yet. Register and claim the top spot!")
	}

	var currentName string
	if cur := s.mgr.Current(); cur != nil {
		currentName = cur.Username
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
		Render("🏆 TOP WARRIORS 🏆"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-4s %-20s %7s %10s %8s", "#", "WARRIOR", "LEVEL", "SCORE", "STREAK")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 56)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for i, row := range s.rows {
		rank := fmt.Sprintf("%d", i+1)
		switch i {
		case 0:
			rank = "🥇"
		case 1:
			rank = "🥈"
		case 2:
			rank = "🥉"
		}

		line := fmt.Sprintf("  %-4s %-20s %7d %10d %8d",
			rank, row.Username, row.Level, row.TotalScore, row.BestStreak)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if row.Username == currentName {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
