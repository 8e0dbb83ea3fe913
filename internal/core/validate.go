package core

import "strings"

// BuildEntry is the single boundary where raw form input becomes a typed,
// normalized entry. It is a pure function of (schema, input): identifier
// assignment and timestamping belong to the store.
//
// Checks run in a fixed order so the first failure reported is
// deterministic: name, amount, then each schema field in definition order.
// Raw detail keys the schema does not declare are ignored; schema fields
// missing from the input are treated as empty and still appear in the
// resulting details map, so the detail-key set always equals the schema's
// key set.
func BuildEntry(kind Kind, category, subcategory string, schema Schema, in EntryInput) (Entry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return Entry{}, err
	}

	details := make(map[string]any, len(schema))
	for _, f := range schema {
		v, err := f.Normalize(in.Details[f.Key])
		if err != nil {
			return Entry{}, &FieldError{Field: f.Key, Err: err}
		}
		details[f.Key] = v
	}

	return Entry{
		Kind:        kind,
		Category:    category,
		Subcategory: subcategory,
		Name:        name,
		Currency:    strings.TrimSpace(in.Currency),
		Amount:      amount,
		Owner:       strings.TrimSpace(in.Owner),
		Details:     details,
	}, nil
}
