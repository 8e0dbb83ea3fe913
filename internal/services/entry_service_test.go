package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"networth/internal/core"
	"networth/internal/ports"
	"networth/internal/storage/memory"
	"networth/internal/taxonomy"
)

type capturingPublisher struct {
	ids   []int64
	kinds []string
	err   error
}

func (p *capturingPublisher) PublishEntryRecorded(_ context.Context, id int64, kind string) error {
	if p.err != nil {
		return p.err
	}
	p.ids = append(p.ids, id)
	p.kinds = append(p.kinds, kind)
	return nil
}

func newTestService(events EventPublisher) (*EntryService, *memory.Store) {
	store := memory.New()
	return NewEntryService(taxonomy.Default(), store, events), store
}

func TestEntryService_Record(t *testing.T) {
	pub := &capturingPublisher{}
	svc, store := newTestService(pub)
	ctx := context.Background()

	entry, err := svc.Record(ctx, core.Asset, "Cash & Cash-like", "Cash (local currency)", core.EntryInput{
		Name:     "DBS Savings",
		Currency: "SGD",
		Owner:    "You",
		Amount:   "5000",
		Details: map[string]string{
			"bank":          "DBS",
			"interest_rate": "1.5",
			"liquidity":     "Instant",
		},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.ID == 0 || entry.CreatedAt.IsZero() {
		t.Error("stored entry must carry ID and CreatedAt")
	}
	if !entry.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Amount = %s, want 5000", entry.Amount)
	}

	// Details carry exactly the schema's keys; unsubmitted fields are empty
	// strings.
	schema, err := taxonomy.Default().Schema(core.Asset, "Cash & Cash-like", "Cash (local currency)")
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	for _, key := range schema.Keys() {
		if _, ok := entry.Details[key]; !ok {
			t.Errorf("Details missing schema key %q", key)
		}
	}
	if len(entry.Details) != len(schema) {
		t.Errorf("Details has %d keys, want %d", len(entry.Details), len(schema))
	}
	if entry.Details["account_nickname"] != "" {
		t.Errorf("Details[account_nickname] = %#v, want empty string", entry.Details["account_nickname"])
	}

	if len(pub.ids) != 1 || pub.ids[0] != entry.ID || pub.kinds[0] != "asset" {
		t.Errorf("publisher saw %v/%v, want [%d]/[asset]", pub.ids, pub.kinds, entry.ID)
	}

	listed, err := store.List(ctx, ports.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("store holds %d entries, want 1", len(listed))
	}
}

func TestEntryService_RecordValidationFailuresPersistNothing(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      core.EntryInput
		wantErr error
	}{
		{
			name:    "empty name",
			in:      core.EntryInput{Name: "  ", Amount: "100"},
			wantErr: core.ErrEmptyName,
		},
		{
			name:    "zero amount",
			in:      core.EntryInput{Name: "x", Amount: "0"},
			wantErr: core.ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			in:      core.EntryInput{Name: "x", Amount: "-5"},
			wantErr: core.ErrNonPositiveAmount,
		},
		{
			name: "choice outside set",
			in: core.EntryInput{
				Name:    "DBS Savings",
				Amount:  "5000",
				Details: map[string]string{"liquidity": "Weekly"},
			},
			wantErr: core.ErrInvalidChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, core.Asset, "Cash & Cash-like", "Cash (local currency)", tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Record error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	listed, err := store.List(ctx, ports.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("store holds %d entries after failed validations, want 0", len(listed))
	}
}

func TestEntryService_RecordUnknownTaxonomyPath(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	in := core.EntryInput{Name: "x", Amount: "10"}

	_, err := svc.Record(ctx, core.Asset, "Derivatives", "Options", in)
	if !errors.Is(err, taxonomy.ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}

	_, err = svc.Record(ctx, core.Asset, "Cash & Cash-like", "Gold bars", in)
	if !errors.Is(err, taxonomy.ErrUnknownSubcategory) {
		t.Errorf("error = %v, want ErrUnknownSubcategory", err)
	}
}

func TestEntryService_PublishFailureDoesNotFailRecord(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("broker down")}
	svc, store := newTestService(pub)
	ctx := context.Background()

	entry, err := svc.Record(ctx, core.Liability, "Personal Debt", "Credit card", core.EntryInput{
		Name:   "Credit card – HSBC",
		Amount: "40",
	})
	if err != nil {
		t.Fatalf("Record should succeed when only the publish fails: %v", err)
	}
	if entry.ID == 0 {
		t.Error("entry not stored")
	}

	listed, _ := store.List(ctx, ports.Filter{})
	if len(listed) != 1 {
		t.Errorf("store holds %d entries, want 1", len(listed))
	}
}

func TestEntryService_TotalsAndNetWorth(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	empty, err := svc.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if !empty.Assets.IsZero() || !empty.Liabilities.IsZero() {
		t.Errorf("empty totals = %+v", empty)
	}

	if _, err := svc.Record(ctx, core.Asset, "Cash & Cash-like", "Cash (local currency)", core.EntryInput{
		Name: "a", Amount: "100",
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := svc.Record(ctx, core.Liability, "Personal Debt", "Credit card", core.EntryInput{
		Name: "l", Amount: "40",
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	totals, err := svc.Totals(ctx)
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
