package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SaveFile is the export blob: the active profile plus the global stats.
type SaveFile struct {
	User      *Profile    `json:"user"`
	Stats     GlobalStats `json:"stats"`
	Timestamp time.Time   `json:"timestamp"`
}

// saveFileSchema guards imports against hand-edited or truncated blobs.
const saveFileSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["user", "stats", "timestamp"],
	"properties": {
		"user": {
			"type": "object",
			"required": ["username", "level", "coins"],
			"properties": {
				"username": {"type": "string", "minLength": 1},
				"level": {"type": "integer", "minimum": 1},
				"coins": {"type": "integer", "minimum": 0},
				"badges": {"type": "array", "items": {"type": "string"}}
			}
		},
		"stats": {
			"type": "object",
			"properties": {
				"totalGames": {"type": "integer", "minimum": 0},
				"totalQuestions": {"type": "integer", "minimum": 0},
				"totalCorrect": {"type": "integer", "minimum": 0}
			}
		},
		"timestamp": {"type": "string"}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledSaveSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(saveFileSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse save schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://savefile.json", parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://savefile.json")
	})
	return compiledSchema, schemaErr
}

// Export serializes the active profile and global stats to a save blob.
func (m *Manager) Export() ([]byte, error) {
	if m.current == nil {
		return nil, ErrUserNotFound
	}
	raw, err := json.MarshalIndent(SaveFile{
		User:      m.current,
		Stats:     m.stats,
		Timestamp: m.now(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode save file: %w", err)
	}
	return raw, nil
}

// ExportUser serializes a stored profile by name without logging it in.
func (m *Manager) ExportUser(ctx context.Context, username string) ([]byte, error) {
	p, err := m.load(ctx, username)
	if err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(SaveFile{
		User:      p,
		Stats:     m.stats,
		Timestamp: m.now(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode save file: %w", err)
	}
	return raw, nil
}

// Import validates a save blob against the schema, then restores the
// profile and global stats. Nothing changes when validation fails.
func (m *Manager) Import(ctx context.Context, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrValidation, err)
	}

	schema, err := compiledSaveSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var sf SaveFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return fmt.Errorf("decode save file: %w", err)
	}

	m.current = sf.User
	m.stats = sf.Stats
	if !sf.User.IsGuest {
		if err := m.save(ctx, sf.User); err != nil {
			return err
		}
	}
	return m.saveStats(ctx)
}
