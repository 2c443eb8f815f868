package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akshat/mathwars/internal/badges"
	"github.com/akshat/mathwars/internal/game"
	"github.com/akshat/mathwars/internal/store"
)

var (
	// ErrUserNotFound is returned when no profile exists for a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredentials is returned when the password does not match.
	ErrBadCredentials = errors.New("invalid password")
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("username already exists")
	// ErrValidation wraps registration input failures.
	ErrValidation = errors.New("invalid input")
)

const (
	userKeyPrefix = "user:"
	statsKey      = "stats"

	registerCoins = 100
	guestCoins    = 50
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Manager owns the active profile and the global stats blob. All
// persistence goes through the injected KV store; guest profiles exist
// only in memory.
type Manager struct {
	kv       store.KV
	now      func() time.Time
	current  *Profile
	stats    GlobalStats
	guestSeq int
}

// NewManager loads the global stats blob and returns a ready Manager.
// now may be nil, in which case time.Now is used.
func NewManager(ctx context.Context, kv store.KV, now func() time.Time) (*Manager, error) {
	if now == nil {
		now = time.Now
	}
	m := &Manager{kv: kv, now: now, stats: GlobalStats{HighestLevel: 1}}

	raw, ok, err := kv.Get(ctx, statsKey)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &m.stats); err != nil {
			return nil, fmt.Errorf("decode stats: %w", err)
		}
	}
	return m, nil
}

// Current returns the logged-in profile, or nil.
func (m *Manager) Current() *Profile {
	return m.current
}

// Stats returns the global stats blob.
func (m *Manager) Stats() GlobalStats {
	return m.stats
}

// Logout clears the active profile.
func (m *Manager) Logout() {
	m.current = nil
}

// Register creates a new profile with the starting bonus and logs it in.
func (m *Manager) Register(ctx context.Context, username, password string) (*Profile, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	if _, ok, err := m.kv.Get(ctx, userKey(username)); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if ok {
		return nil, ErrUserExists
	}

	now := m.now()
	p := &Profile{
		ID:         uuid.NewString(),
		Username:   username,
		Password:   password,
		Level:      1,
		Coins:      registerCoins,
		Badges:     []string{"welcome"},
		CreatedAt:  now,
		LastPlayed: now,
	}
	if err := m.save(ctx, p); err != nil {
		return nil, err
	}
	m.current = p
	return p, nil
}

// Login loads a profile, checks the password, and records the login time.
func (m *Manager) Login(ctx context.Context, username, password string) (*Profile, error) {
	p, err := m.load(ctx, username)
	if err != nil {
		return nil, err
	}
	if p.Password != password {
		return nil, ErrBadCredentials
	}

	p.LastPlayed = m.now()
	if err := m.save(ctx, p); err != nil {
		return nil, err
	}
	m.current = p
	return p, nil
}

// LoginAsGuest creates an ephemeral Guest_N profile. It is never
// persisted; progress lives only for this process.
func (m *Manager) LoginAsGuest() *Profile {
	m.guestSeq++
	p := &Profile{
		ID:        uuid.NewString(),
		Username:  fmt.Sprintf("Guest_%d", m.guestSeq),
		Level:     1,
		Coins:     guestCoins,
		Badges:    []string{"guest"},
		IsGuest:   true,
		CreatedAt: m.now(),
	}
	m.current = p
	return p
}

// Lookup loads a stored profile by name without logging it in.
func (m *Manager) Lookup(ctx context.Context, username string) (*Profile, error) {
	return m.load(ctx, username)
}

// SpendCoins deducts amount from the active profile, persisting the new
// balance for registered users.
func (m *Manager) SpendCoins(ctx context.Context, amount int) error {
	if m.current == nil {
		return nil
	}
	if m.current.Coins < amount {
		return game.ErrInsufficientCoins
	}
	m.current.Coins -= amount
	if m.current.IsGuest {
		return nil
	}
	return m.save(ctx, m.current)
}

// UpdateProgress folds a finished level attempt into the active profile
// and the global stats, re-evaluates badges, and persists both blobs for
// registered users. It returns the newly earned visible badges.
func (m *Manager) UpdateProgress(ctx context.Context, out game.Outcome) ([]badges.Badge, error) {
	p := m.current
	if p == nil {
		return nil, nil
	}

	if out.Level > p.Level {
		p.Level = out.Level
	}
	p.Coins += out.CoinsDelta
	p.Streak = out.Streak
	p.TotalScore += out.Score
	p.CorrectAnswers += out.CorrectAnswers
	p.TotalAnswers += out.TotalAnswers
	p.PlayTime += out.PlayTime
	p.GamesPlayed++
	if out.Streak > p.BestStreak {
		p.BestStreak = out.Streak
	}

	m.stats.TotalGames++
	m.stats.TotalQuestions += out.TotalAnswers
	m.stats.TotalCorrect += out.CorrectAnswers
	m.stats.TotalCoins += out.CoinsDelta
	if out.Level > m.stats.HighestLevel {
		m.stats.HighestLevel = out.Level
	}
	if out.Streak > m.stats.LongestStreak {
		m.stats.LongestStreak = out.Streak
	}

	earned := badges.Evaluate(p.badgeStats(), p.HasBadge)
	var visible []badges.Badge
	for _, b := range earned {
		p.Badges = append(p.Badges, b.ID)
		if !b.Hidden {
			visible = append(visible, b)
		}
	}

	if !p.IsGuest {
		p.LastPlayed = m.now()
		if err := m.save(ctx, p); err != nil {
			return visible, err
		}
		if err := m.saveStats(ctx); err != nil {
			return visible, err
		}
	}
	return visible, nil
}

// Leaderboard returns the top 10 registered profiles ordered by level,
// ties broken by total score.
func (m *Manager) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	entries, err := m.kv.List(ctx, userKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	rows := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		var p Profile
		if err := json.Unmarshal(e.Value, &p); err != nil {
			return nil, fmt.Errorf("decode %q: %w", e.Key, err)
		}
		rows = append(rows, LeaderboardRow{
			Username:   p.Username,
			Level:      p.Level,
			TotalScore: p.TotalScore,
			Coins:      p.Coins,
			BestStreak: p.BestStreak,
			Accuracy:   p.Accuracy(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Level != rows[j].Level {
			return rows[i].Level > rows[j].Level
		}
		return rows[i].TotalScore > rows[j].TotalScore
	})
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows, nil
}

// DeleteAccount removes a registered profile, logging it out if active.
func (m *Manager) DeleteAccount(ctx context.Context, username string) error {
	if _, ok, err := m.kv.Get(ctx, userKey(username)); err != nil {
		return fmt.Errorf("check username: %w", err)
	} else if !ok {
		return ErrUserNotFound
	}
	if err := m.kv.Delete(ctx, userKey(username)); err != nil {
		return err
	}
	if m.current != nil && m.current.Username == username {
		m.Logout()
	}
	return nil
}

// ResetAll wipes every profile, the global stats, and any saved game.
func (m *Manager) ResetAll(ctx context.Context) error {
	entries, err := m.kv.List(ctx, "")
	if err != nil {
		return fmt.Errorf("list store: %w", err)
	}
	for _, e := range entries {
		if err := m.kv.Delete(ctx, e.Key); err != nil {
			return err
		}
	}
	m.stats = GlobalStats{HighestLevel: 1}
	m.Logout()
	return nil
}

func (m *Manager) load(ctx context.Context, username string) (*Profile, error) {
	raw, ok, err := m.kv.Get(ctx, userKey(username))
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", username, err)
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode %q: %w", username, err)
	}
	return &p, nil
}

func (m *Manager) save(ctx context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode %q: %w", p.Username, err)
	}
	if err := m.kv.Set(ctx, userKey(p.Username), raw); err != nil {
		return fmt.Errorf("save %q: %w", p.Username, err)
	}
	return nil
}

func (m *Manager) saveStats(ctx context.Context) error {
	raw, err := json.Marshal(m.stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := m.kv.Set(ctx, statsKey, raw); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

func userKey(username string) string {
	return userKeyPrefix + username
}

func validateCredentials(username, password string) error {
	switch {
	case len(username) < 3:
		return fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	case len(username) > 20:
		return fmt.Errorf("%w: username must be less than 20 characters", ErrValidation)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", ErrValidation)
	case len(password) < 4:
		return fmt.Errorf("%w: password must be at least 4 characters", ErrValidation)
	}
	return nil
}
