// Package memory provides an in-memory entry store. It is the default
// backend for local development and the storage double in tests; semantics
// match the SQLite repository.
package memory

import (
	"context"
	"sync"
	"time"

	"networth/internal/core"
	"networth/internal/ports"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Entry
}

var _ ports.Store = (*Store)(nil)

func New() *Store {
	return &Store{nextID: 1}
}

// Append stores the entry, assigning the next ID and the current timestamp.
func (s *Store) Append(_ context.Context, e core.Entry) (core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	e.Details = cloneDetails(e.Details)
	s.items = append(s.items, e)
	return cloneEntry(e), nil
}

// List returns matching entries, most recently created first. Ties on the
// second-resolution timestamp fall back to insertion order.
func (s *Store) List(_ context.Context, f ports.Filter) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.Entry
	for i := len(s.items) - 1; i >= 0; i-- {
		e := s.items[i]
		if f.Kind != "" && e.Kind != f.Kind {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	return out, nil
}

// Totals sums amounts per kind over all stored entries.
func (s *Store) Totals(_ context.Context) (core.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals core.Totals
	for _, e := range s.items {
		switch e.Kind {
		case core.Asset:
			totals.Assets = totals.Assets.Add(e.Amount)
		case core.Liability:
			totals.Liabilities = totals.Liabilities.Add(e.Amount)
		}
	}
	return totals, nil
}

func cloneEntry(e core.Entry) core.Entry {
	e.Details = cloneDetails(e.Details)
	return e
}

func cloneDetails(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}
	out := make(map[string]any, len(details))
	for k, v := range details {
		out[k] = v
	}
	return out
}
