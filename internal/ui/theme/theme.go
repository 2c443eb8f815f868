package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — neon arcade, dark background
var (
	Primary   = lipgloss.Color("#00D9FF") // Electric Cyan
	Secondary = lipgloss.Color("#CC00FF") // Violet
	Accent    = lipgloss.Color("#FFD700") // Coin Gold
	Success   = lipgloss.Color("#00FF7F") // Spring Green
	Error     = lipgloss.Color("#FF4444") // Red Alert
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0A0E1A") // Near Black
	BgCard    = lipgloss.Color("#161B2E") // Dark Panel
	Border    = lipgloss.Color("#2A3352") // Dim Blue
)

// Difficulty band colors, matching the band table.
var (
	Easy   = lipgloss.Color("#00FF7F")
	Medium = lipgloss.Color("#FFAA00")
	Hard   = lipgloss.Color("#FF4444")
	Expert = lipgloss.Color("#CC00FF")
	Master = lipgloss.Color("#FF0066")
)

// DifficultyColor maps a band name to its color, defaulting to Easy.
func DifficultyColor(band string) color.Color {
	switch band {
	case "Medium":
		return Medium
	case "Hard":
		return Hard
	case "Expert":
		return Expert
	case "Master":
		return Master
	default:
		return Easy
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Combo = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	HealthHigh = lipgloss.NewStyle().
			Background(Success)

	HealthLow = lipgloss.NewStyle().
			Background(Error)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
