package core

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	TextField   FieldType = "text"
	NumberField FieldType = "number"
	DateField   FieldType = "date"
	ChoiceField FieldType = "choice"
)

// DateFormat is the normalized ISO-8601 representation of date field values.
const DateFormat = "2006-01-02"

// readDateFormat additionally allows single-digit month/day on input.
const readDateFormat = "2006-1-2"

type (
	FieldType string

	// FieldDefinition declares one subcategory-specific data point: its key,
	// display label, type, and (for choice fields) the selectable values.
	// Definitions are fixed at taxonomy-definition time.
	FieldDefinition struct {
		Key     string
		Label   string
		Type    FieldType
		Choices []string
	}

	// Schema is the ordered field list of one subcategory. Keys are unique
	// within a schema; the order drives form presentation.
	Schema []FieldDefinition
)

// Keys returns the field keys in schema order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.Key
	}
	return keys
}

// Validate checks the schema invariant: no duplicate field keys.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		seen[f.Key] = struct{}{}
	}
	return nil
}

// Normalize parses a raw field value according to the field's type and
// returns the value to persist. An empty raw value normalizes to the empty
// string for every type, so a subcategory's detail-key set stays stable
// across entries. On failure it returns one of ErrInvalidNumber,
// ErrInvalidDate or ErrInvalidChoice.
func (f FieldDefinition) Normalize(raw string) (any, error) {
	switch f.Type {
	case NumberField:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return "", nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidNumber
		}
		return v, nil
	case DateField:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return "", nil
		}
		t, err := time.Parse(DateFormat, raw)
		if err != nil {
			t, err = time.Parse(readDateFormat, raw)
		}
		if err != nil {
			return nil, ErrInvalidDate
		}
		return t.Format(DateFormat), nil
	case ChoiceField:
		if raw == "" {
			return "", nil
		}
		if !slices.Contains(f.Choices, raw) {
			return nil, ErrInvalidChoice
		}
		return raw, nil
	default:
		// Text and anything unrecognized: stored verbatim.
		return raw, nil
	}
}
