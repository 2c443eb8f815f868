package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akshat/mathwars/internal/game"
	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/questiongen"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testBattle(t *testing.T) (*BattleScreen, *profile.Manager) {
	t.Helper()
	mgr, err := profile.NewManager(context.Background(), store.NewMemory(), time.Now)
	if err != nil {
		t.Fatal(err)
	}
	mgr.LoginAsGuest()
	return New(mgr), mgr
}

// setQuestion puts the battle into an answerable state with a fixed
// question, bypassing the generator.
func setQuestion(b *BattleScreen) {
	b.sess.QuestionIndex = 1
	b.sess.Current = &questiongen.Question{
		Text:        "What is 1 + 1?",
		Answer:      "2",
		Options:     []string{"1", "2", "3", "4"},
		Explanation: "Add the numbers.",
		Difficulty:  "Easy",
		TimeLimit:   30,
	}
	b.sess.TimeRemaining = 30
	b.sess.Phase = game.PhaseAwaitingAnswer
}

func TestBattleScreen_Title(t *testing.T) {
	b, _ := testBattle(t)
	if b.Title() != "Level 1" {
		t.Errorf("Title = %q, want %q", b.Title(), "Level 1")
	}
}

func TestBattleScreen_View_Loading(t *testing.T) {
	b, _ := testBattle(t)
	if b.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestBattleScreen_CorrectAnswer(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, cmd := scr.Update(keyPress('2'))
	bb := scr.(*BattleScreen)

	if bb.sess.Phase != game.PhaseFeedback {
		t.Error("expected feedback phase after submit")
	}
	if bb.lastResult == nil || !bb.lastResult.Correct {
		t.Error("expected correct answer result")
	}
	if bb.sess.Score == 0 {
		t.Error("expected score to increase")
	}
	if bb.sess.Health != game.MaxHealth {
		t.Error("correct answer should not cost health")
	}
	if cmd == nil {
		t.Error("expected feedback dismissal command")
	}
}

func TestBattleScreen_WrongAnswer(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(keyPress('1'))
	bb := scr.(*BattleScreen)

	if bb.lastResult == nil || bb.lastResult.Correct {
		t.Error("expected wrong answer result")
	}
	if bb.sess.Health != game.MaxHealth-game.WrongAnswerDamage {
		t.Errorf("health = %d, want %d", bb.sess.Health, game.MaxHealth-game.WrongAnswerDamage)
	}
	if bb.sess.Streak != 0 {
		t.Error("wrong answer should reset streak")
	}
	if bb.flash == "" {
		t.Error("expected a roast after a wrong answer")
	}
}

func TestBattleScreen_ArrowsAndEnter(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	bb := scr.(*BattleScreen)

	if bb.lastResult == nil || !bb.lastResult.Correct {
		t.Error("expected option 2 selected and correct")
	}
}

func TestBattleScreen_FeedbackKeyAdvances(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(keyPress(' '))
	bb := scr.(*BattleScreen)

	if bb.sess.QuestionIndex != 2 {
		t.Errorf("question index = %d, want 2", bb.sess.QuestionIndex)
	}
	if bb.sess.Phase != game.PhaseAwaitingAnswer {
		t.Error("expected next question to be live")
	}
}

func TestBattleScreen_Timeout(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)
	b.sess.TimeRemaining = 1

	var scr screen.Screen = b
	scr, cmd := scr.Update(timerTickMsg{ordinal: 1})
	bb := scr.(*BattleScreen)

	if bb.sess.Phase != game.PhaseFeedback {
		t.Error("expected feedback phase after timeout")
	}
	if bb.sess.Health != game.MaxHealth-game.WrongAnswerDamage {
		t.Error("timeout should cost health")
	}
	if cmd == nil {
		t.Error("expected feedback dismissal command")
	}
}

func TestBattleScreen_StaleTickDropped(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, cmd := scr.Update(timerTickMsg{ordinal: 99})
	bb := scr.(*BattleScreen)

	if bb.sess.TimeRemaining != 30 {
		t.Error("stale tick should not advance the countdown")
	}
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
}

func TestBattleScreen_StaleFeedbackDropped(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(feedbackDoneMsg{ordinal: 99})
	bb := scr.(*BattleScreen)

	if bb.sess.QuestionIndex != 1 {
		t.Error("stale feedback should not advance the question")
	}
}

func TestBattleScreen_HintPowerup(t *testing.T) {
	b, mgr := testBattle(t)
	setQuestion(b)

	coinsBefore := b.sess.Coins

	var scr screen.Screen = b
	scr, _ = scr.Update(keyPress('h'))
	bb := scr.(*BattleScreen)

	if bb.hint == "" {
		t.Error("expected a hint")
	}
	if bb.sess.Coins != coinsBefore-game.PowerupHint.Cost() {
		t.Error("hint should cost coins")
	}
	if mgr.Current().Coins != coinsBefore-game.PowerupHint.Cost() {
		t.Error("spend should mirror to the profile")
	}
}

func TestBattleScreen_PowerupInsufficientCoins(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)
	b.sess.Coins = 5

	var scr screen.Screen = b
	scr, _ = scr.Update(keyPress('r'))
	bb := scr.(*BattleScreen)

	if bb.sess.Coins != 5 {
		t.Error("rejected powerup should not spend coins")
	}
	if bb.flash == "" {
		t.Error("expected a rejection message")
	}
}

func TestBattleScreen_SkipPowerup(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(keyPress('s'))
	bb := scr.(*BattleScreen)

	if bb.sess.QuestionIndex != 2 {
		t.Errorf("question index = %d, want 2 after skip", bb.sess.QuestionIndex)
	}
	if bb.sess.Health != game.MaxHealth {
		t.Error("skip should not cost health")
	}
}

func TestBattleScreen_QuitConfirm(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	bb := scr.(*BattleScreen)
	if !bb.quitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = bb.Update(keyPress('n'))
	bb = scr.(*BattleScreen)
	if bb.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestBattleScreen_RetreatSavesGame(t *testing.T) {
	b, mgr := testBattle(t)
	setQuestion(b)

	var scr screen.Screen = b
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after retreat")
	}

	saved, err := mgr.LoadGameState(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if saved == nil {
		t.Fatal("expected a saved game after retreat")
	}
	if saved.Level != 1 {
		t.Errorf("saved level = %d, want 1", saved.Level)
	}
}

func TestBattleScreen_GameOver(t *testing.T) {
	b, mgr := testBattle(t)
	setQuestion(b)
	b.sess.Health = game.WrongAnswerDamage

	var scr screen.Screen = b
	scr, cmd := scr.Update(keyPress('1'))
	bb := scr.(*BattleScreen)

	if bb.sess.Phase != game.PhaseGameOver {
		t.Fatal("expected game over")
	}
	if cmd == nil {
		t.Fatal("expected persistence command")
	}

	msg := cmd()
	saved, ok := msg.(progressSavedMsg)
	if !ok {
		t.Fatalf("expected progressSavedMsg, got %T", msg)
	}
	if saved.err != nil {
		t.Fatal(saved.err)
	}

	_, cmd = bb.Update(saved)
	if cmd == nil {
		t.Fatal("expected summary replacement")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg to summary")
	}

	if mgr.Current().GamesPlayed != 1 {
		t.Error("expected games played to be recorded")
	}
}

func TestBattleScreen_LevelComplete(t *testing.T) {
	b, mgr := testBattle(t)
	setQuestion(b)
	b.sess.QuestionIndex = game.TotalQuestions

	// Answer the last question, then dismiss feedback.
	var scr screen.Screen = b
	scr, _ = scr.Update(keyPress('2'))
	scr, cmd := scr.Update(keyPress(' '))
	bb := scr.(*BattleScreen)

	if bb.sess.Phase != game.PhaseLevelComplete {
		t.Fatal("expected level complete")
	}
	if cmd == nil {
		t.Fatal("expected persistence command")
	}

	msg := cmd()
	saved, ok := msg.(progressSavedMsg)
	if !ok {
		t.Fatalf("expected progressSavedMsg, got %T", msg)
	}
	if saved.err != nil {
		t.Fatal(saved.err)
	}

	if mgr.Current().Level != 2 {
		t.Errorf("profile level = %d, want 2", mgr.Current().Level)
	}

	restored, err := mgr.LoadGameState(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if restored == nil || restored.Level != 2 {
		t.Error("expected a saved game at the next level")
	}
}

func TestBattleScreen_KeyHints(t *testing.T) {
	b, _ := testBattle(t)
	setQuestion(b)
	if len(b.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestBattleScreen_Resume(t *testing.T) {
	_, mgr := testBattle(t)
	saved := &profile.SavedGame{Level: 7, Coins: 120, Streak: 4}
	b := Resume(mgr, saved)

	if b.sess.Level != 7 {
		t.Errorf("level = %d, want 7", b.sess.Level)
	}
	if b.sess.Coins != 120 {
		t.Errorf("coins = %d, want 120", b.sess.Coins)
	}
	if b.sess.Streak != 4 {
		t.Errorf("streak = %d, want 4", b.sess.Streak)
	}
}
