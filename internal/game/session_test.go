package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/akshat/mathwars/internal/questiongen"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	combos   []int
	roasts   []string
	powerups []Powerup
}

func (n *recordingNotifier) Combo(streak int)        { n.combos = append(n.combos, streak) }
func (n *recordingNotifier) Roast(msg string)        { n.roasts = append(n.roasts, msg) }
func (n *recordingNotifier) PowerupEffect(p Powerup) { n.powerups = append(n.powerups, p) }

func testSession(t *testing.T, level, coins, streak int) (*Session, *recordingNotifier) {
	t.Helper()
	gen := questiongen.New(rand.New(rand.NewPCG(7, 7)))
	n := &recordingNotifier{}
	return NewSession(level, coins, streak, gen, n, time.Unix(0, 0)), n
}

func TestCorrectAnswerScoring(t *testing.T) {
	s, _ := testSession(t, 1, 0, 0)

	q := s.NextQuestion()
	if q == nil {
		t.Fatal("no question loaded")
	}
	if s.TimeRemaining != 30 {
		t.Fatalf("TimeRemaining = %d, want 30 at Easy band", s.TimeRemaining)
	}

	res, ok := s.SubmitAnswer(q.Answer)
	if !ok || !res.Correct {
		t.Fatal("correct answer not accepted")
	}

	// streak=1, timeRemaining=30, Easy: floor((100+20+90)*1) = 210.
	if res.Points != 210 {
		t.Errorf("points = %d, want 210", res.Points)
	}
	if s.Score != 210 {
		t.Errorf("score = %d, want 210", s.Score)
	}
	// coins: 10 + floor(1/2) = 10.
	if res.CoinsEarned != 10 || s.Coins != 10 {
		t.Errorf("coins = %d (earned %d), want 10", s.Coins, res.CoinsEarned)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1", s.Streak)
	}
}

func TestScoringDeterministicAcrossBands(t *testing.T) {
	tests := []struct {
		band      string
		streak    int
		remaining int
		want      int
	}{
		{"Easy", 1, 30, 210},
		{"Medium", 1, 30, 252},  // floor(210*1.2)
		{"Hard", 1, 30, 315},    // floor(210*1.5)
		{"Expert", 1, 30, 420},  // 210*2
		{"Master", 1, 30, 630},  // 210*3
		{"Easy", 4, 10, 210},    // 100+80+30
		{"Medium", 3, 0, 192},   // floor(160*1.2)
	}

	for _, tt := range tests {
		s, _ := testSession(t, 1, 0, tt.streak-1)
		s.Phase = PhaseAwaitingAnswer
		s.Current = &questiongen.Question{
			Answer:     "x",
			Difficulty: tt.band,
		}
		s.TimeRemaining = tt.remaining

		res, ok := s.SubmitAnswer("x")
		if !ok {
			t.Fatalf("%s: answer rejected", tt.band)
		}
		if res.Points != tt.want {
			t.Errorf("band %s streak %d time %d: points = %d, want %d",
				tt.band, tt.streak, tt.remaining, res.Points, tt.want)
		}
	}
}

func TestWrongAnswerDamageAndStreakReset(t *testing.T) {
	s, n := testSession(t, 1, 0, 7)

	q := s.NextQuestion()
	res, ok := s.SubmitAnswer("definitely wrong " + q.Answer)
	if !ok || res.Correct {
		t.Fatal("wrong answer not processed")
	}

	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Streak)
	}
	if s.Health != 80 {
		t.Errorf("health = %d, want 80", s.Health)
	}
	if res.GameOver {
		t.Error("unexpected game over at health 80")
	}
	if len(n.roasts) != 1 {
		t.Errorf("got %d roasts, want 1", len(n.roasts))
	}
}

func TestWrongAnswerGameOverBoundary(t *testing.T) {
	// health=40 → wrong → 20, continues. health=20 → wrong → GameOver.
	s, _ := testSession(t, 1, 0, 0)
	s.Health = 40
	q := s.NextQuestion()
	res, _ := s.SubmitAnswer("wrong " + q.Answer)
	if res.GameOver || s.Health != 20 {
		t.Fatalf("health 40 → wrong: health=%d gameOver=%v, want 20/false", s.Health, res.GameOver)
	}

	q = s.NextQuestion()
	res, _ = s.SubmitAnswer("wrong " + q.Answer)
	if !res.GameOver || s.Phase != PhaseGameOver {
		t.Fatalf("health 20 → wrong: gameOver=%v phase=%v, want true/PhaseGameOver", res.GameOver, s.Phase)
	}
	if s.Health != 0 {
		t.Errorf("health = %d, want 0", s.Health)
	}
}

func TestSubmitAnswerIdempotentPerQuestion(t *testing.T) {
	s, _ := testSession(t, 1, 0, 0)

	q := s.NextQuestion()
	if _, ok := s.SubmitAnswer(q.Answer); !ok {
		t.Fatal("first submission rejected")
	}
	score := s.Score

	if _, ok := s.SubmitAnswer(q.Answer); ok {
		t.Error("second submission on the same question was accepted")
	}
	if s.Score != score {
		t.Errorf("score changed on duplicate submission: %d → %d", score, s.Score)
	}
}

func TestSubmitAnswerNoLiveQuestion(t *testing.T) {
	s, _ := testSession(t, 1, 0, 0)

	if _, ok := s.SubmitAnswer("42"); ok {
		t.Error("submission accepted before any question loaded")
	}
	if s.TotalAnswers != 0 {
		t.Errorf("TotalAnswers = %d, want 0", s.TotalAnswers)
	}
}

func TestComboNotificationEveryFifthStreak(t *testing.T) {
	s, n := testSession(t, 1, 0, 0)

	for i := 0; i < TotalQuestions; i++ {
		q := s.NextQuestion()
		if q == nil {
			t.Fatal("ran out of questions early")
		}
		s.SubmitAnswer(q.Answer)
	}

	if len(n.combos) != 2 || n.combos[0] != 5 || n.combos[1] != 10 {
		t.Errorf("combos = %v, want [5 10]", n.combos)
	}
}

func TestTickCountdownAndTimeout(t *testing.T) {
	s, _ := testSession(t, 1, 0, 0)
	s.NextQuestion()
	s.Health = 20

	for i := 0; i < 29; i++ {
		if ev := s.Tick(); ev != TickCountdown {
			t.Fatalf("tick %d = %v, want TickCountdown", i, ev)
		}
	}
	if ev := s.Tick(); ev != TickTimeout {
		t.Fatalf("final tick = %v, want TickTimeout", ev)
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("phase = %v, want PhaseGameOver at 0 health", s.Phase)
	}
	// Timeouts do not count as answered questions.
	if s.TotalAnswers != 0 {
		t.Errorf("TotalAnswers = %d, want 0 after timeout", s.TotalAnswers)
	}
}

func TestTickAfterAnswerIsIdle(t *testing.T) {
	s, _ := testSession(t, 1, 0, 0)
	q := s.NextQuestion()
	s.SubmitAnswer(q.Answer)

	if ev := s.Tick(); ev != TickIdle {
		t.Errorf("tick after answer = %v, want TickIdle", ev)
	}
}

func TestFreezeGatesCountdown(t *testing.T) {
	s, _ := testSession(t, 1, 100, 0)
	s.NextQuestion()
	before := s.TimeRemaining

	if _, err := s.ApplyPowerup(PowerupFreeze); err != nil {
		t.Fatalf("freeze: %v", err)
	}

	for i := 0; i < FreezeTicks; i++ {
		if ev := s.Tick(); ev != TickFrozen {
			t.Fatalf("tick %d = %v, want TickFrozen", i, ev)
		}
	}
	if s.TimeRemaining != before {
		t.Errorf("timer moved during freeze: %d → %d", before, s.TimeRemaining)
	}
	if ev := s.Tick(); ev != TickCountdown {
		t.Errorf("tick after freeze = %v, want TickCountdown", ev)
	}
}

func TestPowerupInsufficientCoins(t *testing.T) {
	s, n := testSession(t, 1, 5, 0)
	s.NextQuestion()

	_, err := s.ApplyPowerup(PowerupHint)
	if err != ErrInsufficientCoins {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}
	if s.Coins != 5 {
		t.Errorf("coins changed on rejected purchase: %d", s.Coins)
	}
	if len(n.powerups) != 0 {
		t.Error("powerup effect fired on rejected purchase")
	}
}

func TestPowerupHintNumericRange(t *testing.T) {
	s, _ := testSession(t, 1, 100, 0)
	s.Phase = PhaseAwaitingAnswer
	s.Current = &questiongen.Question{Answer: "50", Difficulty: "Easy"}
	s.TimeRemaining = 30

	res, err := s.ApplyPowerup(PowerupHint)
	if err != nil || !res.Applied {
		t.Fatalf("hint not applied: %v", err)
	}
	if res.Hint != "The answer is between 40 and 60" {
		t.Errorf("hint = %q", res.Hint)
	}
	if s.Coins != 90 {
		t.Errorf("coins = %d, want 90", s.Coins)
	}
}

func TestPowerupRestoreCapsAtMax(t *testing.T) {
	s, _ := testSession(t, 1, 100, 0)
	s.Health = 80

	if _, err := s.ApplyPowerup(PowerupRestore); err != nil {
		t.Fatal(err)
	}
	if s.Health != MaxHealth {
		t.Errorf("health = %d, want %d", s.Health, MaxHealth)
	}
	if s.Coins != 50 {
		t.Errorf("coins = %d, want 50", s.Coins)
	}
}

func TestPowerupSkipAbandonsQuestion(t *testing.T) {
	s, _ := testSession(t, 1, 100, 0)
	q := s.NextQuestion()

	res, err := s.ApplyPowerup(PowerupSkip)
	if err != nil || !res.Applied {
		t.Fatalf("skip not applied: %v", err)
	}
	if s.Health != MaxHealth || s.Streak != 0 {
		t.Error("skip applied a penalty")
	}
	if _, ok := s.SubmitAnswer(q.Answer); ok {
		t.Error("skipped question still accepts answers")
	}
}

func TestCompleteLevelBonusesAndDelta(t *testing.T) {
	s, _ := testSession(t, 3, 0, 0)
	s.Score = 1000
	s.Streak = 4
	s.Coins = 150 // profile had 100 at level start, spends/earnings net +50
	s.CorrectAnswers = 8
	s.TotalAnswers = 10

	out := s.CompleteLevel(100, time.Unix(120, 0))

	// 1000 + 3*50 + 4*15 + floor(100*8/10) = 1000+150+60+80.
	if out.Score != 1290 {
		t.Errorf("score = %d, want 1290", out.Score)
	}
	if out.CoinsDelta != 50 {
		t.Errorf("coins delta = %d, want 50", out.CoinsDelta)
	}
	if out.Level != 4 {
		t.Errorf("outcome level = %d, want 4", out.Level)
	}
	if out.PlayTime != 120 {
		t.Errorf("play time = %d, want 120", out.PlayTime)
	}
}

func TestFailLevelNoCoins(t *testing.T) {
	s, _ := testSession(t, 3, 0, 0)
	s.Coins = 400
	s.Score = 500
	s.CorrectAnswers = 2
	s.TotalAnswers = 4

	out := s.FailLevel(time.Unix(60, 0))
	if out.CoinsDelta != 0 {
		t.Errorf("coins delta = %d, want 0 on game over", out.CoinsDelta)
	}
	if out.Level != 3 {
		t.Errorf("outcome level = %d, want 3 (no advancement)", out.Level)
	}
	if out.Score != 500 {
		t.Errorf("score = %d, want 500 (no completion bonuses)", out.Score)
	}
}

func TestFullPerfectLevelClosedForm(t *testing.T) {
	// End-to-end check of the §closed-form sums: 10 correct answers at
	// Easy with full time remaining, streak growing 1..10.
	s, _ := testSession(t, 1, 100, 0)

	wantScore := 0
	wantCoins := 100
	for i := 1; i <= TotalQuestions; i++ {
		q := s.NextQuestion()
		if q == nil {
			t.Fatal("questions exhausted early")
		}
		res, ok := s.SubmitAnswer(q.Answer)
		if !ok || !res.Correct {
			t.Fatalf("question %d rejected", i)
		}
		wantScore += 100 + i*20 + q.TimeLimit*3
		wantCoins += 10 + i/2
	}

	if s.Score != wantScore {
		t.Errorf("score = %d, want %d", s.Score, wantScore)
	}
	if s.Coins != wantCoins {
		t.Errorf("coins = %d, want %d", s.Coins, wantCoins)
	}

	if q := s.NextQuestion(); q != nil || s.Phase != PhaseLevelComplete {
		t.Fatal("11th question served instead of level completion")
	}

	out := s.CompleteLevel(100, time.Unix(300, 0))
	wantFinal := wantScore + 1*50 + 10*15 + 100
	if out.Score != wantFinal {
		t.Errorf("final score = %d, want %d", out.Score, wantFinal)
	}
	if out.CoinsDelta != wantCoins-100 {
		t.Errorf("coins delta = %d, want %d", out.CoinsDelta, wantCoins-100)
	}
}
