// Package badgevault implements the badge collection screen.
package badgevault

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/badges"
	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/ui/layout"
	"github.com/akshat/mathwars/internal/ui/theme"
)

// BadgeVaultScreen displays the badge catalog with the player's earned
// badges highlighted.
type BadgeVaultScreen struct {
	mgr          *profile.Manager
	scrollOffset int
}

var _ screen.Screen = (*BadgeVaultScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeVaultScreen)(nil)

// New creates a new BadgeVaultScreen.
func New(mgr *profile.Manager) *BadgeVaultScreen {
	return &BadgeVaultScreen{mgr: mgr}
}

func (s *BadgeVaultScreen) Init() tea.Cmd {
	return nil
}

func (s *BadgeVaultScreen) Title() string {
	return "Badge Vault"
}

func (s *BadgeVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(badges.Catalog)-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *BadgeVaultScreen) View(width, height int) string {
	cur := s.mgr.Current()
	earned := func(id string) bool {
		return cur != nil && cur.HasBadge(id)
	}

	earnedCount := 0
	for _, b := range badges.Catalog {
		if earned(b.ID) {
			earnedCount++
		}
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned: %d / %d badges\n", earnedCount, len(badges.Catalog))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	maxVisible := height - 8
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(badges.Catalog) {
		end = len(badges.Catalog)
	}

	for i := start; i < end; i++ {
		entry := badges.Catalog[i]
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderBadgeLine(entry, earned(entry.ID))))
		b.WriteString("\n")
	}

	if end < len(badges.Catalog) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(badges.Catalog)-end)))
	}

	return b.String()
}

// renderBadgeLine renders one catalog entry. Unearned hidden badges stay
// masked so the surprise survives browsing the vault.
func renderBadgeLine(entry badges.Badge, earned bool) string {
	const nameWidth = 24

	switch {
	case earned:
		line := fmt.Sprintf("  🏅 %-*s EARNED", nameWidth, entry.Name)
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line)
	case entry.Hidden:
		line := fmt.Sprintf("  🔒 %-*s ???", nameWidth, "???")
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	default:
		line := fmt.Sprintf("  🔒 %-*s locked", nameWidth, entry.Name)
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
