package memory

import (
	"context"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"networth/internal/core"
	"networth/internal/ports"
)

func entry(kind core.Kind, category, name string, amount int64) core.Entry {
	return core.Entry{
		Kind:        kind,
		Category:    category,
		Subcategory: "sub",
		Name:        name,
		Amount:      decimal.NewFromInt(amount),
		Details:     map[string]any{"bank": "DBS"},
	}
}

func TestStore_AppendAndList(t *testing.T) {
	s := New()
	ctx := context.Background()

	a, err := s.Append(ctx, entry(core.Asset, "Cash & Cash-like", "first", 100))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	b, err := s.Append(ctx, entry(core.Liability, "Personal Debt", "second", 40))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if a.ID == 0 || b.ID == a.ID {
		t.Errorf("IDs not assigned uniquely: %d, %d", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}

	all, err := s.List(ctx, ports.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].Name != "second" {
		t.Errorf("List() = %+v, want most recent first", all)
	}

	liabilities, err := s.List(ctx, ports.Filter{Kind: core.Liability})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(liabilities) != 1 || liabilities[0].Name != "second" {
		t.Errorf("kind filter = %+v", liabilities)
	}

	none, err := s.List(ctx, ports.Filter{Kind: core.Liability, Category: "Cash & Cash-like"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("conjunction filter = %+v, want empty", none)
	}
}

func TestStore_DetailsIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := entry(core.Asset, "Cash & Cash-like", "a", 1)
	stored, err := s.Append(ctx, in)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Mutating the caller's maps must not leak into the store.
	in.Details["bank"] = "mutated"
	stored.Details["bank"] = "also mutated"

	got, err := s.List(ctx, ports.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].Details["bank"] != "DBS" {
		t.Errorf("stored details mutated: %#v", got[0].Details)
	}
}

func TestStore_Totals(t *testing.T) {
	s := New()
	ctx := context.Background()

	empty, err := s.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if !empty.Assets.IsZero() || !empty.Liabilities.IsZero() {
		t.Errorf("empty totals = %+v", empty)
	}

	s.Append(ctx, entry(core.Asset, "c", "a", 100))
	s.Append(ctx, entry(core.Liability, "c", "l", 40))

	totals, err := s.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if !totals.Assets.Equal(decimal.NewFromInt(100)) || !totals.Liabilities.Equal(decimal.NewFromInt(40)) {
		t.Errorf("totals = %+v, want 100/40", totals)
	}
	if !totals.NetWorth().Equal(decimal.NewFromInt(60)) {
		t.Errorf("net worth = %s, want 60", totals.NetWorth())
	}
}

func TestStore_RepeatedListIdentical(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Append(ctx, entry(core.Asset, "c", "a", 1))
	s.Append(ctx, entry(core.Asset, "c", "b", 2))

	first, _ := s.List(ctx, ports.Filter{})
	second, _ := s.List(ctx, ports.Filter{})
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated List() differs without intervening Append")
	}
}
