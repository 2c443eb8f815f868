// Package session implements the battle screen: one level attempt of
// timed questions, powerups, and health.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akshat/mathwars/internal/game"
	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/questiongen"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/ui/layout"
)

// feedbackDelay is how long the answer feedback stays up before the
// next question loads.
const feedbackDelay = 2 * time.Second

// BattleScreen implements screen.Screen for a running level attempt.
// It owns the game session and implements game.Notifier so combo and
// roast messages land in the flash line.
type BattleScreen struct {
	mgr  *profile.Manager
	sess *game.Session

	selected    int
	flash       string
	hint        string
	lastResult  *game.AnswerResult
	outcome     *game.Outcome
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)
var _ game.Notifier = (*BattleScreen)(nil)

// New starts a battle at the profile's current level, coins, and streak.
func New(mgr *profile.Manager) *BattleScreen {
	level, coins, streak := 1, 0, 0
	if cur := mgr.Current(); cur != nil {
		level, coins, streak = cur.Level, cur.Coins, cur.Streak
	}
	return newBattle(mgr, level, coins, streak)
}

// NewAt starts a battle at a specific level, carrying the profile's
// coins and streak. Used by the summary screen for next-level and retry.
func NewAt(mgr *profile.Manager, level int) *BattleScreen {
	coins, streak := 0, 0
	if cur := mgr.Current(); cur != nil {
		coins, streak = cur.Coins, cur.Streak
	}
	return newBattle(mgr, level, coins, streak)
}

// Resume restarts a battle from a saved game.
func Resume(mgr *profile.Manager, saved *profile.SavedGame) *BattleScreen {
	return newBattle(mgr, saved.Level, saved.Coins, saved.Streak)
}

func newBattle(mgr *profile.Manager, level, coins, streak int) *BattleScreen {
	b := &BattleScreen{mgr: mgr}
	b.sess = game.NewSession(level, coins, streak, questiongen.New(nil), b, time.Now())
	return b
}

// Combo implements game.Notifier.
func (s *BattleScreen) Combo(streak int) {
	s.flash = fmt.Sprintf("🔥 COMBO x%d!", streak)
}

// Roast implements game.Notifier.
func (s *BattleScreen) Roast(message string) {
	s.flash = message
}

// PowerupEffect implements game.Notifier.
func (s *BattleScreen) PowerupEffect(kind game.Powerup) {
	switch kind {
	case game.PowerupFreeze:
		s.flash = "❄ Time frozen!"
	case game.PowerupRestore:
		s.flash = "♥ Health restored!"
	case game.PowerupSkip:
		s.flash = "⏭ Question skipped"
	}
}

func (s *BattleScreen) Init() tea.Cmd {
	return func() tea.Msg { return battleStartMsg{} }
}

func (s *BattleScreen) Title() string {
	return fmt.Sprintf("Level %d", s.sess.Level)
}

func (s *BattleScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Retreat"},
			{Key: "N", Description: "Keep fighting"},
		}
	}
	if s.sess.Phase == game.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "h/s/r/f", Description: "Powerup"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case battleStartMsg:
		return s.advanceQuestion()

	case timerTickMsg:
		return s.handleTick(msg)

	case feedbackDoneMsg:
		if msg.ordinal != s.sess.QuestionIndex {
			return s, nil
		}
		return s.advanceQuestion()

	case progressSavedMsg:
		return s.handleProgressSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *BattleScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.ordinal != s.sess.QuestionIndex {
		return s, nil
	}

	switch s.sess.Tick() {
	case game.TickCountdown, game.TickFrozen:
		return s, tickCmd(s.sess.QuestionIndex)
	case game.TickTimeout:
		s.lastResult = &game.AnswerResult{
			CorrectAnswer: s.currentAnswer(),
			GameOver:      s.sess.Phase == game.PhaseGameOver,
		}
		if s.sess.Phase == game.PhaseGameOver {
			return s.finishLevel(true)
		}
		s.flash = "⏰ Time's up!"
		return s, feedbackCmd(s.sess.QuestionIndex)
	}
	return s, nil
}

func (s *BattleScreen) handleProgressSaved(msg progressSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return s, nil
	}
	gameOver := s.sess.Phase == game.PhaseGameOver
	return s, router.Replace(newSummaryScreen(s.mgr, *s.outcome, msg.earned, gameOver))
}

func (s *BattleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, popAndRefresh()
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s.retreat()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay: any key skips the wait.
	if s.sess.Phase == game.PhaseFeedback {
		return s.advanceQuestion()
	}

	if s.sess.Phase != game.PhaseAwaitingAnswer || s.sess.Current == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "enter":
		return s.submit(s.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.sess.Current.Options) {
			return s.submit(idx)
		}
		return s, nil
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(s.sess.Current.Options)-1 {
			s.selected++
		}
		return s, nil
	case "h":
		return s.usePowerup(game.PowerupHint)
	case "s":
		return s.usePowerup(game.PowerupSkip)
	case "r":
		return s.usePowerup(game.PowerupRestore)
	case "f":
		return s.usePowerup(game.PowerupFreeze)
	}

	return s, nil
}

// advanceQuestion loads the next question or ends the level when the
// session is out of questions.
func (s *BattleScreen) advanceQuestion() (screen.Screen, tea.Cmd) {
	q := s.sess.NextQuestion()
	if q == nil {
		if s.sess.Phase == game.PhaseLevelComplete {
			return s.finishLevel(false)
		}
		return s.finishLevel(true)
	}
	s.selected = 0
	s.flash = ""
	s.hint = ""
	s.lastResult = nil
	return s, tickCmd(s.sess.QuestionIndex)
}

func (s *BattleScreen) submit(idx int) (screen.Screen, tea.Cmd) {
	if s.sess.Current == nil || idx < 0 || idx >= len(s.sess.Current.Options) {
		return s, nil
	}
	s.selected = idx
	s.flash = ""

	res, ok := s.sess.SubmitAnswer(s.sess.Current.Options[idx])
	if !ok {
		return s, nil
	}
	s.lastResult = &res

	if res.Correct && s.flash == "" {
		s.flash = s.sess.Compliment()
	}
	if res.GameOver {
		return s.finishLevel(true)
	}
	return s, feedbackCmd(s.sess.QuestionIndex)
}

func (s *BattleScreen) usePowerup(kind game.Powerup) (screen.Screen, tea.Cmd) {
	res, err := s.sess.ApplyPowerup(kind)
	if err != nil {
		if errors.Is(err, game.ErrInsufficientCoins) {
			s.flash = "Not enough coins!"
		}
		return s, nil
	}
	if !res.Applied {
		return s, nil
	}

	_ = s.mgr.SpendCoins(context.Background(), kind.Cost())

	switch kind {
	case game.PowerupHint:
		s.hint = res.Hint
	case game.PowerupSkip:
		return s.advanceQuestion()
	}
	return s, nil
}

// finishLevel computes the outcome and persists it asynchronously.
func (s *BattleScreen) finishLevel(failed bool) (screen.Screen, tea.Cmd) {
	now := time.Now()
	profileCoins := 0
	if cur := s.mgr.Current(); cur != nil {
		profileCoins = cur.Coins
	}

	var out game.Outcome
	if failed {
		out = s.sess.FailLevel(now)
	} else {
		out = s.sess.CompleteLevel(profileCoins, now)
	}
	s.outcome = &out

	mgr := s.mgr
	return s, func() tea.Msg {
		ctx := context.Background()
		earned, err := mgr.UpdateProgress(ctx, out)
		if failed {
			_ = mgr.ClearGameState(ctx)
		} else {
			coins := 0
			if cur := mgr.Current(); cur != nil {
				coins = cur.Coins
			}
			_ = mgr.SaveGameState(ctx, out.Level, coins, out.Streak)
		}
		return progressSavedMsg{earned: earned, err: err}
	}
}

// retreat saves the in-progress battle and returns to the menu.
func (s *BattleScreen) retreat() (screen.Screen, tea.Cmd) {
	_ = s.mgr.SaveGameState(context.Background(), s.sess.Level, s.sess.Coins, s.sess.Streak)
	return s, popAndRefresh()
}

func (s *BattleScreen) currentAnswer() string {
	if s.sess.Current == nil {
		return ""
	}
	return s.sess.Current.Answer
}

// tickCmd schedules the next countdown tick for the given question.
func tickCmd(ordinal int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{ordinal: ordinal, t: t}
	})
}

// feedbackCmd schedules automatic feedback dismissal.
func feedbackCmd(ordinal int) tea.Cmd {
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{ordinal: ordinal}
	})
}

// popAndRefresh pops this screen and tells the revealed menu to reload.
func popAndRefresh() tea.Cmd {
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return screen.RefreshMsg{} },
	)
}
