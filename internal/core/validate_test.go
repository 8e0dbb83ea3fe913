package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

var cashSchema = Schema{
	{Key: "bank", Label: "Bank / provider", Type: TextField},
	{Key: "account_type", Label: "Account type", Type: ChoiceField, Choices: []string{"Current", "Savings"}},
	{Key: "interest_rate", Label: "Interest rate (%)", Type: NumberField},
	{Key: "liquidity", Label: "Liquidity", Type: ChoiceField, Choices: []string{"Instant", "1-3 days", "Term"}},
}

func TestBuildEntry(t *testing.T) {
	in := EntryInput{
		Name:     "DBS Savings",
		Currency: "SGD",
		Owner:    "You",
		Amount:   "5000",
		Details: map[string]string{
			"bank":          "DBS",
			"interest_rate": "1.5",
			"liquidity":     "Instant",
		},
	}

	entry, err := BuildEntry(Asset, "Cash & Cash-like", "Cash (local currency)", cashSchema, in)
	if err != nil {
		t.Fatalf("BuildEntry: %v", err)
	}

	if entry.Kind != Asset {
		t.Errorf("Kind = %q, want %q", entry.Kind, Asset)
	}
	if entry.Name != "DBS Savings" {
		t.Errorf("Name = %q", entry.Name)
	}
	if !entry.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Amount = %s, want 5000", entry.Amount)
	}
	if entry.ID != 0 || !entry.CreatedAt.IsZero() {
		t.Error("ID and CreatedAt must be unset until the store appends the entry")
	}

	// Details keys equal exactly the schema's field keys; the unsubmitted
	// account_type normalizes to the empty string.
	if len(entry.Details) != len(cashSchema) {
		t.Fatalf("Details has %d keys, want %d", len(entry.Details), len(cashSchema))
	}
	if got := entry.Details["account_type"]; got != "" {
		t.Errorf("Details[account_type] = %#v, want empty string", got)
	}
	if got := entry.Details["bank"]; got != "DBS" {
		t.Errorf("Details[bank] = %#v", got)
	}
	if got := entry.Details["interest_rate"]; got != 1.5 {
		t.Errorf("Details[interest_rate] = %#v, want 1.5", got)
	}
	if got := entry.Details["liquidity"]; got != "Instant" {
		t.Errorf("Details[liquidity] = %#v", got)
	}
}

func TestBuildEntry_TrimsName(t *testing.T) {
	in := EntryInput{Name: "  HSBC Current  ", Amount: "120.50"}
	entry, err := BuildEntry(Asset, "c", "s", nil, in)
	if err != nil {
		t.Fatalf("BuildEntry: %v", err)
	}
	if entry.Name != "HSBC Current" {
		t.Errorf("Name = %q, want trimmed", entry.Name)
	}
}

func TestBuildEntry_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		in := EntryInput{Name: name, Amount: "100"}
		if _, err := BuildEntry(Asset, "c", "s", cashSchema, in); !errors.Is(err, ErrEmptyName) {
			t.Errorf("BuildEntry(name=%q) error = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestBuildEntry_NonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-1", "-0.01", "", "abc"} {
		in := EntryInput{Name: "x", Amount: amount}
		if _, err := BuildEntry(Liability, "c", "s", cashSchema, in); !errors.Is(err, ErrNonPositiveAmount) {
			t.Errorf("BuildEntry(amount=%q) error = %v, want ErrNonPositiveAmount", amount, err)
		}
	}
}

func TestBuildEntry_FieldFailureNamesField(t *testing.T) {
	in := EntryInput{
		Name:   "DBS Savings",
		Amount: "5000",
		Details: map[string]string{
			"liquidity": "Weekly",
		},
	}
	_, err := BuildEntry(Asset, "c", "s", cashSchema, in)
	if !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("error = %v, want ErrInvalidChoice", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FieldError", err)
	}
	if fe.Field != "liquidity" {
		t.Errorf("FieldError.Field = %q, want %q", fe.Field, "liquidity")
	}
}

func TestBuildEntry_IgnoresUnknownDetailKeys(t *testing.T) {
	in := EntryInput{
		Name:   "DBS Savings",
		Amount: "5000",
		Details: map[string]string{
			"bank":    "DBS",
			"_csrf":   "token",
			"comment": "client-side noise",
		},
	}
	entry, err := BuildEntry(Asset, "c", "s", cashSchema, in)
	if err != nil {
		t.Fatalf("BuildEntry: %v", err)
	}
	if _, ok := entry.Details["_csrf"]; ok {
		t.Error("unknown raw keys must not be persisted")
	}
	if len(entry.Details) != len(cashSchema) {
		t.Errorf("Details has %d keys, want %d", len(entry.Details), len(cashSchema))
	}
}

func TestParseAmount_Precision(t *testing.T) {
	d, err := ParseAmount("123456789.123456789")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if d.String() != "123456789.123456789" {
		t.Errorf("ParseAmount kept %s, want full precision", d)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    Kind
		wantErr bool
	}{
		{"asset", Asset, false},
		{"Liability", Liability, false},
		{" ASSET ", Asset, false},
		{"equity", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrInvalidKind", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %q, %v, want %q", tt.raw, got, err, tt.want)
		}
	}
}
