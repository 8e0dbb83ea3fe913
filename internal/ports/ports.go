package ports

import (
	"context"

	"networth/internal/core"
)

// Filter narrows a listing. Zero values match everything; when both are set
// an entry must match both.
type Filter struct {
	Kind     core.Kind
	Category string
}

// Ports for outbound storage adapters.
type (
	EntryWriter interface {
		// Append persists the entry and returns it with store-assigned
		// ID and CreatedAt. Entries are never updated or deleted.
		Append(ctx context.Context, e core.Entry) (core.Entry, error)
	}

	EntryLister interface {
		// List returns entries matching the filter, most recently
		// created first.
		List(ctx context.Context, f Filter) ([]core.Entry, error)
	}

	TotalsReader interface {
		// Totals sums amounts per kind over all entries. An empty store
		// yields zero totals.
		Totals(ctx context.Context) (core.Totals, error)
	}

	// Store is the full storage surface the entry service needs.
	Store interface {
		EntryWriter
		EntryLister
		TotalsReader
	}
)
