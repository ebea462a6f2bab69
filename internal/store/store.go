// Package store persists running activities for the stand-in backend API.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"bullsharks/internal/activity"
)

// DefaultDBPath is the default relative path for the SQLite DB.
// Open creates the parent dir if needed.
const DefaultDBPath = ".bullsharks/activities.db"

// Store is the persistence facade the API serves from.
// Implementations are SQLite or in-memory.
type Store interface {
	// InsertActivities upserts records by ID and reports how many were written.
	// A record without an ID gets a fresh UUID.
	InsertActivities(ctx context.Context, records []activity.Activity) (int, error)
	// AllActivities returns every stored record, newest date first.
	AllActivities(ctx context.Context) ([]activity.Activity, error)
	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}

// newID fills in a missing activity ID.
func newID(a activity.Activity) activity.Activity {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return a
}

// MemStore is an in-memory Store for tests and throwaway runs.
type MemStore struct {
	mu   sync.RWMutex
	byID map[string]activity.Activity
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[string]activity.Activity)}
}

func (s *MemStore) InsertActivities(ctx context.Context, records []activity.Activity) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range records {
		a = newID(a)
		s.byID[a.ID] = a
	}
	return len(records), nil
}

func (s *MemStore) AllActivities(ctx context.Context) ([]activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]activity.Activity, 0, len(s.byID))
	for _, a := range s.byID {
		out = append(out, a)
	}
	s.mu.RUnlock()
	sortNewestFirst(out)
	return out, nil
}

func (s *MemStore) Ping(ctx context.Context) error { return ctx.Err() }

func sortNewestFirst(records []activity.Activity) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].ID < records[j].ID
	})
}
