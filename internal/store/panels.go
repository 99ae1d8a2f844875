package store

import (
	"context"
	"encoding/json"

	"github.com/roosce/monday-question/internal/model"
)

const (
	keyRoster  = "teamMembers"
	keyHistory = "questionHistory"
)

// LoadRoster returns the persisted team roster. A missing or malformed
// value is an empty roster, never an error.
func (s Store) LoadRoster(ctx context.Context) ([]string, error) {
	raw, ok, err := s.getValue(ctx, keyRoster)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	var roster []string
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		// Corrupt value; treat as absent.
		return []string{}, nil
	}
	if roster == nil {
		roster = []string{}
	}
	return roster, nil
}

// SaveRoster persists the full roster, replacing whatever was stored.
func (s Store) SaveRoster(ctx context.Context, roster []string) error {
	if roster == nil {
		roster = []string{}
	}
	b, err := json.Marshal(roster)
	if err != nil {
		return err
	}
	return s.putValue(ctx, keyRoster, string(b))
}

// LoadHistory returns the persisted question history. Unlike the roster, an
// empty or absent history is seeded with a single placeholder entry (and the
// seed is persisted) so the panel has something to show on first run.
func (s Store) LoadHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	raw, ok, err := s.getValue(ctx, keyHistory)
	if err != nil {
		return nil, err
	}
	var history []model.HistoryEntry
	if ok {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			history = nil
		}
	}
	if len(history) == 0 {
		history = []model.HistoryEntry{model.PlaceholderEntry()}
		if err := s.SaveHistory(ctx, history); err != nil {
			return nil, err
		}
	}
	return history, nil
}

// SaveHistory persists the full history, replacing whatever was stored.
func (s Store) SaveHistory(ctx context.Context, history []model.HistoryEntry) error {
	if history == nil {
		history = []model.HistoryEntry{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.putValue(ctx, keyHistory, string(b))
}
