package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	return renderBar(p.Label, p.Percent, p.ShowPercent, p.Width, theme.Secondary)
}

// HealthBar displays remaining health, shifting from green to red as it
// drains.
type HealthBar struct {
	Health int
	Max    int
	Width  int
}

// NewHealthBar creates a health bar for the given health out of max.
func NewHealthBar(health, max, width int) HealthBar {
	return HealthBar{Health: health, Max: max, Width: width}
}

// View renders the health bar.
func (h HealthBar) View() string {
	pct := 0.0
	if h.Max > 0 {
		pct = float64(h.Health) / float64(h.Max)
	}
	fill := theme.Success
	switch {
	case pct <= 0.2:
		fill = theme.Error
	case pct <= 0.5:
		fill = theme.Medium
	}
	label := fmt.Sprintf("HP %d/%d", h.Health, h.Max)
	return renderBar(label, pct, false, h.Width, fill)
}

func renderBar(label string, percent float64, showPercent bool, width int, fill color.Color) string {
	var result string

	if label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if showPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if showPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(percent*100)))
	}

	return result
}
