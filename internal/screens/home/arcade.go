package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/ui/components"
	"github.com/akshat/mathwars/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go, single line).
const arcadeTitleFull = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗    ██╗    ██╗ █████╗ ██████╗ ███████╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║    ██║    ██║██╔══██╗██╔══██╗██╔════╝
 ██╔████╔██║███████║   ██║   ███████║    ██║ █╗ ██║███████║██████╔╝███████╗
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║    ██║███╗██║██╔══██║██╔══██╗╚════██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║    ╚███╔███╔╝██║  ██║██║  ██║███████║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝     ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const arcadeTitleCompact = "M · A · T · H   W · A · R · S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the player stats in a bordered box matching content width.
func renderStatsBar(level, coins, streak, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	coinStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("LV%d", level)),
			coinStyle.Render(fmt.Sprintf("●%d", coins)),
			streakText(streak, true, streakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("★ LEVEL %d", level)),
			coinStyle.Render(fmt.Sprintf("● %d COINS", coins)),
			streakText(streak, false, streakStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, active, dim lipgloss.Style) string {
	if streak == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ NO STREAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", streak))
	}
	return active.Render(fmt.Sprintf("⚡ %d STREAK", streak))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderResumeNote renders a dim one-line note about a resumable battle.
func renderResumeNote(level, cw int) string {
	text := fmt.Sprintf("⏸ Battle in progress at level %d", level)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

func joinSections(sections []string) string {
	return strings.Join(sections, "\n\n")
}
