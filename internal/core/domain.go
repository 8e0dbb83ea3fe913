package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Asset     Kind = "asset"
	Liability Kind = "liability"
)

type (
	// Kind is the top-level classification of an entry.
	Kind string

	// Entry is a recorded asset or liability. ID and CreatedAt are assigned
	// by the store on append; everything else is fixed at validation time.
	// Entries are immutable once stored.
	Entry struct {
		ID          int64
		Kind        Kind
		Category    string
		Subcategory string
		Name        string
		Currency    string
		Amount      decimal.Decimal
		Owner       string
		Details     map[string]any
		CreatedAt   time.Time
	}

	// EntryInput is the raw form payload for a new entry, before validation.
	// Details holds raw field values keyed by field key; keys the schema does
	// not declare are ignored.
	EntryInput struct {
		Name     string
		Currency string
		Owner    string
		Amount   string
		Details  map[string]string
	}
)

var (
	ErrInvalidKind       = errors.New("invalid kind")
	ErrEmptyName         = errors.New("empty name")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidChoice     = errors.New("invalid choice")
)

// FieldError annotates a field-level validation failure with the key of the
// failing field. It unwraps to the underlying sentinel for errors.Is checks.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("field %q: %v", e.Field, e.Err) }

func (e *FieldError) Unwrap() error { return e.Err }

// ParseKind parses the wire/persisted representation of a kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Asset:
		return Asset, nil
	case Liability:
		return Liability, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

func (k Kind) Validate() error {
	if k != Asset && k != Liability {
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(k))
	}
	return nil
}

// ParseAmount parses a raw amount string. Only finite values strictly greater
// than zero are accepted; zero and negative amounts are rejected as a product
// rule, not a numeric-type constraint.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, ErrNonPositiveAmount
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, ErrNonPositiveAmount
	}
	return d, nil
}
