package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/game"
	"github.com/akshat/mathwars/internal/ui/components"
	"github.com/akshat/mathwars/internal/ui/theme"
)

func (s *BattleScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	switch s.sess.Phase {
	case game.PhaseFeedback:
		return s.renderFeedback(width)
	case game.PhaseAwaitingAnswer:
		return s.renderQuestion(width)
	}
	return renderLoading(width)
}

// renderQuestion renders the live question with status, options, and
// the powerup bar.
func (s *BattleScreen) renderQuestion(width int) string {
	sess := s.sess
	q := sess.Current
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	// Status line: question ordinal, difficulty, timer.
	timer := fmt.Sprintf("⏱ %ds", sess.TimeRemaining)
	if sess.FreezeRemaining > 0 {
		timer = fmt.Sprintf("❄ %ds", sess.TimeRemaining)
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", sess.QuestionIndex, game.TotalQuestions))

	infoMid := lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(q.Difficulty)).
		Bold(true).
		Render(q.Difficulty)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(timer)

	info := infoLeft + "  " + infoMid
	rightPad := width - lipgloss.Width(info) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		info += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(info)
	b.WriteString("\n")

	// Health bar and level progress.
	hp := components.NewHealthBar(sess.Health, game.MaxHealth, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hp.View()))
	b.WriteString("\n")
	pct := float64(sess.QuestionIndex-1) / float64(game.TotalQuestions)
	progress := components.NewProgressBar("", pct, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Options.
	var opts strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		if i == s.selected {
			opts.WriteString(theme.Selected.Render(line))
		} else {
			opts.WriteString(theme.Unselected.Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))
	b.WriteString("\n")

	// Hint line.
	if s.hint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("💡 " + s.hint))
		b.WriteString("\n")
	}

	// Flash line (combo, powerup effects, rejections).
	if s.flash != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render(s.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderPowerupBar(width))

	return b.String()
}

// renderPowerupBar lists each powerup with its key and cost, dimming
// the ones the session cannot afford.
func (s *BattleScreen) renderPowerupBar(width int) string {
	keys := map[game.Powerup]string{
		game.PowerupHint:    "h",
		game.PowerupSkip:    "s",
		game.PowerupRestore: "r",
		game.PowerupFreeze:  "f",
	}

	var parts []string
	for _, p := range game.AllPowerups() {
		label := fmt.Sprintf("[%s] %s %d", keys[p], p.DisplayName(), p.Cost())
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.sess.Coins < p.Cost() {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		parts = append(parts, style.Render(label))
	}

	coins := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("● %d", s.sess.Coins))

	bar := strings.Join(parts, "   ") + "   " + coins
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// renderFeedback renders the answer feedback overlay.
func (s *BattleScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	res := s.lastResult
	if res != nil && res.Correct {
		b.WriteString(theme.Correct.
			Width(width).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("✓ Correct!  +%d pts  +%d coins", res.Points, res.CoinsEarned)))
	} else {
		b.WriteString(theme.Incorrect.
			Width(width).
			Align(lipgloss.Center).
			Render("✗ Not quite"))
		if res != nil && res.CorrectAnswer != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", res.CorrectAnswer)))
		}
	}
	b.WriteString("\n\n")

	if q := s.sess.Current; q != nil && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if s.flash != "" {
		b.WriteString(theme.Combo.
			Width(width).
			Align(lipgloss.Center).
			Render(s.flash))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the retreat confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Retreat from battle?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your level, coins, and streak will be saved for an hour."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, retreat"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep fighting"))

	return b.String()
}

// renderLoading renders the between-questions state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Entering the arena...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
