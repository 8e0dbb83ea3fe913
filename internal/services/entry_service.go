package services

import (
	"context"
	"fmt"
	"log/slog"

	"networth/internal/core"
	"networth/internal/ports"
	"networth/internal/taxonomy"
)

// EventPublisher notifies downstream consumers that an entry was recorded.
type EventPublisher interface {
	PublishEntryRecorded(ctx context.Context, id int64, kind string) error
}

// EntryService runs the record pipeline: resolve the schema for the selected
// taxonomy path, validate the raw input against it, append the entry, then
// publish an event for the snapshot worker.
type EntryService struct {
	registry *taxonomy.Registry
	store    ports.Store
	events   EventPublisher
}

// NewEntryService wires the service. events may be nil; recording then skips
// publishing and the worker catches up on its periodic pass.
func NewEntryService(registry *taxonomy.Registry, store ports.Store, events EventPublisher) *EntryService {
	return &EntryService{
		registry: registry,
		store:    store,
		events:   events,
	}
}

// Record validates and persists one entry. Validation failures are returned
// as-is for the caller to report back to the user; nothing is persisted on
// any failure. The append is the durability point: a publish failure after a
// successful append is logged and swallowed.
func (s *EntryService) Record(ctx context.Context, kind core.Kind, category, subcategory string, in core.EntryInput) (core.Entry, error) {
	schema, err := s.registry.Schema(kind, category, subcategory)
	if err != nil {
		return core.Entry{}, err
	}

	entry, err := core.BuildEntry(kind, category, subcategory, schema, in)
	if err != nil {
		return core.Entry{}, err
	}

	stored, err := s.store.Append(ctx, entry)
	if err != nil {
		return core.Entry{}, fmt.Errorf("append entry: %w", err)
	}

	slog.InfoContext(ctx, "Entry recorded",
		"id", stored.ID,
		"kind", stored.Kind,
		"category", stored.Category,
		"subcategory", stored.Subcategory,
		"amount", stored.Amount.String())

	if s.events != nil {
		if err := s.events.PublishEntryRecorded(ctx, stored.ID, string(stored.Kind)); err != nil {
			// Entry is saved; the worker's periodic pass covers lost events.
			slog.ErrorContext(ctx, "Failed to publish entry recorded event",
				"id", stored.ID, "error", err)
		}
	}

	return stored, nil
}

// List returns entries matching the filter, most recently created first.
func (s *EntryService) List(ctx context.Context, f ports.Filter) ([]core.Entry, error) {
	entries, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Totals aggregates amounts per kind over the whole store.
func (s *EntryService) Totals(ctx context.Context) (core.Totals, error) {
	totals, err := s.store.Totals(ctx)
	if err != nil {
		return core.Totals{}, fmt.Errorf("read totals: %w", err)
	}
	return totals, nil
}
