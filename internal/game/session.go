package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/akshat/mathwars/internal/questiongen"
)

// ErrInsufficientCoins is returned when a powerup costs more than the
// session holds. The session state is unchanged.
var ErrInsufficientCoins = errors.New("not enough coins")

const (
	// TotalQuestions is the number of questions per level attempt.
	TotalQuestions = 10

	// MaxHealth is the health a level attempt starts with.
	MaxHealth = 100

	// WrongAnswerDamage is the health lost per wrong answer or timeout.
	WrongAnswerDamage = 20

	// RestoreAmount is the health returned by the restore powerup.
	RestoreAmount = 40

	// FreezeTicks is how many countdown ticks the freeze powerup absorbs.
	FreezeTicks = 10
)

// Phase is the coarse state of a level attempt.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAwaitingAnswer
	PhaseFeedback
	PhaseLevelComplete
	PhaseGameOver
)

// Session is the mutable state of one level attempt. It is created at
// level start and discarded at level end; summary values flow into the
// profile through an Outcome.
type Session struct {
	Level           int
	QuestionIndex   int // 1-based ordinal of the live question
	Health          int
	Score           int
	Streak          int
	Coins           int
	CorrectAnswers  int
	TotalAnswers    int
	TimeRemaining   int
	FreezeRemaining int

	// Current is the live question, replaced (never mutated) on each load.
	Current *questiongen.Question

	Phase Phase

	answered  bool
	startedAt time.Time
	gen       *questiongen.Generator
	notifier  Notifier
}

// AnswerResult reports what a submitted answer did.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Points        int
	CoinsEarned   int
	GameOver      bool
}

// TickEvent is the outcome of one countdown tick.
type TickEvent int

const (
	TickIdle TickEvent = iota // no live question, nothing to count down
	TickFrozen
	TickCountdown
	TickTimeout
)

// Outcome carries the summary of a finished level attempt into the profile.
type Outcome struct {
	Level          int // level to record (next level on completion)
	Score          int
	CoinsDelta     int
	Streak         int
	CorrectAnswers int
	TotalAnswers   int
	PlayTime       int // seconds
}

// NewSession starts a level attempt. Coins and streak carry over from the
// profile; health and score reset.
func NewSession(level, coins, streak int, gen *questiongen.Generator, n Notifier, now time.Time) *Session {
	if n == nil {
		n = NopNotifier{}
	}
	return &Session{
		Level:     level,
		Health:    MaxHealth,
		Coins:     coins,
		Streak:    streak,
		Phase:     PhaseLoading,
		startedAt: now,
		gen:       gen,
		notifier:  n,
	}
}

// NextQuestion loads the next question, cancelling any pending countdown
// for the previous one. Returns nil when all questions are exhausted, in
// which case the phase moves to PhaseLevelComplete.
func (s *Session) NextQuestion() *questiongen.Question {
	if s.Phase == PhaseGameOver {
		return nil
	}
	s.QuestionIndex++
	if s.QuestionIndex > TotalQuestions {
		s.Phase = PhaseLevelComplete
		s.Current = nil
		return nil
	}

	q := s.gen.Generate(s.Level)
	s.Current = &q
	s.answered = false
	s.TimeRemaining = q.TimeLimit
	s.Phase = PhaseAwaitingAnswer
	return s.Current
}

// SubmitAnswer processes a selected option. At most one submission is
// accepted per live question; later calls are silent no-ops (ok=false).
// Options are compared as literal strings.
func (s *Session) SubmitAnswer(selected string) (AnswerResult, bool) {
	if s.Phase != PhaseAwaitingAnswer || s.Current == nil || s.answered {
		return AnswerResult{}, false
	}
	s.answered = true
	s.TotalAnswers++

	res := AnswerResult{CorrectAnswer: s.Current.Answer}
	if selected == s.Current.Answer {
		res.Correct = true
		res.Points, res.CoinsEarned = s.applyCorrect()
	} else {
		s.applyWrong()
	}
	res.GameOver = s.Phase == PhaseGameOver
	if !res.GameOver {
		s.Phase = PhaseFeedback
	}
	return res, true
}

// Tick advances the countdown by one second. Freeze ticks are consumed
// before the timer moves. A timeout counts as a wrong answer but, like
// the original, does not count toward TotalAnswers.
func (s *Session) Tick() TickEvent {
	if s.Phase != PhaseAwaitingAnswer || s.answered {
		return TickIdle
	}
	if s.FreezeRemaining > 0 {
		s.FreezeRemaining--
		return TickFrozen
	}

	s.TimeRemaining--
	if s.TimeRemaining > 0 {
		return TickCountdown
	}

	s.TimeRemaining = 0
	s.answered = true
	s.applyWrong()
	if s.Phase != PhaseGameOver {
		s.Phase = PhaseFeedback
	}
	return TickTimeout
}

// applyCorrect scores a correct answer: base 100, streak bonus, time
// bonus, then the band multiplier, floored.
func (s *Session) applyCorrect() (points, coins int) {
	s.CorrectAnswers++
	s.Streak++

	points = 100 + s.Streak*20 + s.TimeRemaining*3
	points = int(math.Floor(float64(points) * questiongen.Multiplier(s.Current.Difficulty)))
	s.Score += points

	coins = 10 + s.Streak/2
	s.Coins += coins

	if s.Streak%5 == 0 {
		s.notifier.Combo(s.Streak)
	}
	return points, coins
}

func (s *Session) applyWrong() {
	s.Streak = 0
	s.Health -= WrongAnswerDamage
	if s.Health <= 0 {
		s.Health = 0
		s.Phase = PhaseGameOver
		return
	}
	s.notifier.Roast(s.gen.RandomRoast())
}

// PowerupResult reports the effect of a powerup purchase.
type PowerupResult struct {
	Applied bool
	Hint    string // populated for PowerupHint
}

// ApplyPowerup buys and applies a powerup. Insufficient coins is a
// recoverable rejection with no state change. Hint and skip require a
// live question and are silent no-ops otherwise.
func (s *Session) ApplyPowerup(kind Powerup) (PowerupResult, error) {
	live := s.Phase == PhaseAwaitingAnswer && s.Current != nil && !s.answered
	if (kind == PowerupHint || kind == PowerupSkip) && !live {
		return PowerupResult{}, nil
	}

	cost := kind.Cost()
	if s.Coins < cost {
		return PowerupResult{}, ErrInsufficientCoins
	}
	s.Coins -= cost

	res := PowerupResult{Applied: true}
	switch kind {
	case PowerupHint:
		res.Hint = s.hint()
	case PowerupSkip:
		// Abandon the live question without penalty; the caller loads
		// the next one.
		s.answered = true
		s.Phase = PhaseFeedback
	case PowerupRestore:
		s.Health += RestoreAmount
		if s.Health > MaxHealth {
			s.Health = MaxHealth
		}
	case PowerupFreeze:
		s.FreezeRemaining = FreezeTicks
	}

	s.notifier.PowerupEffect(kind)
	return res, nil
}

// hint reveals a ±20% range for numeric answers, the stored explanation
// otherwise.
func (s *Session) hint() string {
	if s.Current == nil {
		return "Look carefully at the question!"
	}
	if n, err := strconv.Atoi(s.Current.Answer); err == nil {
		span := n * 20 / 100
		if span < 1 {
			span = 1
		}
		return fmt.Sprintf("The answer is between %d and %d", n-span, n+span)
	}
	if s.Current.Explanation != "" {
		return s.Current.Explanation
	}
	return "Look carefully at the question!"
}

// CompleteLevel applies the completion bonuses and builds the outcome.
// profileCoins is the profile's coin balance right now, so the delta
// captures exactly what this attempt earned net of powerup spends.
func (s *Session) CompleteLevel(profileCoins int, now time.Time) Outcome {
	s.Phase = PhaseLevelComplete

	levelBonus := s.Level * 50
	streakBonus := s.Streak * 15
	accuracyBonus := 0
	if s.TotalAnswers > 0 {
		accuracyBonus = 100 * s.CorrectAnswers / s.TotalAnswers
	}
	s.Score += levelBonus + streakBonus + accuracyBonus

	return Outcome{
		Level:          s.Level + 1,
		Score:          s.Score,
		CoinsDelta:     s.Coins - profileCoins,
		Streak:         s.Streak,
		CorrectAnswers: s.CorrectAnswers,
		TotalAnswers:   s.TotalAnswers,
		PlayTime:       int(now.Sub(s.startedAt).Seconds()),
	}
}

// FailLevel builds the game-over outcome: stats and streak are still
// recorded but the attempt earns no coins.
func (s *Session) FailLevel(now time.Time) Outcome {
	s.Phase = PhaseGameOver

	return Outcome{
		Level:          s.Level,
		Score:          s.Score,
		CoinsDelta:     0,
		Streak:         s.Streak,
		CorrectAnswers: s.CorrectAnswers,
		TotalAnswers:   s.TotalAnswers,
		PlayTime:       int(now.Sub(s.startedAt).Seconds()),
	}
}

// Compliment surfaces a correct-answer message from the generator's pool.
func (s *Session) Compliment() string {
	return s.gen.RandomCompliment()
}
