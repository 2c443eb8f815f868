package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const gameStateKey = "gamestate"

// gameStateMaxAge bounds how long a saved game stays restorable.
const gameStateMaxAge = time.Hour

// SavedGame is the small resume blob written on level outcomes and menu
// returns. It is restored on the next launch only while fresh.
type SavedGame struct {
	Level     int       `json:"level"`
	Coins     int       `json:"coins"`
	Streak    int       `json:"streak"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveGameState records the resume point for the active session.
func (m *Manager) SaveGameState(ctx context.Context, level, coins, streak int) error {
	raw, err := json.Marshal(SavedGame{
		Level:     level,
		Coins:     coins,
		Streak:    streak,
		Timestamp: m.now(),
	})
	if err != nil {
		return fmt.Errorf("encode game state: %w", err)
	}
	if err := m.kv.Set(ctx, gameStateKey, raw); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

// LoadGameState returns the saved resume point, or nil when none exists
// or the blob is older than an hour.
func (m *Manager) LoadGameState(ctx context.Context) (*SavedGame, error) {
	raw, ok, err := m.kv.Get(ctx, gameStateKey)
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var sg SavedGame
	if err := json.Unmarshal(raw, &sg); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	if m.now().Sub(sg.Timestamp) >= gameStateMaxAge {
		return nil, nil
	}
	return &sg, nil
}

// ClearGameState drops the resume blob.
func (m *Manager) ClearGameState(ctx context.Context) error {
	return m.kv.Delete(ctx, gameStateKey)
}
