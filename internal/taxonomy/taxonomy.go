// Package taxonomy holds the fixed two-level catalog of asset and liability
// types. The catalog is compiled-in configuration: it is built once at
// package initialization, never mutated, and therefore safe for
// unsynchronized concurrent reads.
package taxonomy

import (
	"errors"
	"fmt"

	"networth/internal/core"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubcategory = errors.New("unknown subcategory")
)

type (
	subcategory struct {
		name   string
		schema core.Schema
	}

	category struct {
		name string
		subs []subcategory
	}

	kindCatalog struct {
		order []category
		index map[string]int
	}

	// Registry maps (kind, category, subcategory) to the ordered field
	// schema that applies to entries recorded under that path. Listing
	// order is definition order, not alphabetical; it drives form
	// presentation and must stay stable.
	Registry struct {
		kinds map[core.Kind]kindCatalog
	}
)

var defaultRegistry = mustBuild(map[core.Kind][]category{
	core.Asset:     assetCategories,
	core.Liability: liabilityCategories,
})

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// mustBuild indexes the declarative catalog and enforces its invariants:
// every category has at least one subcategory, names are unique within
// their kind, and no schema carries duplicate field keys. The data is a
// compile-time literal, so violations are programmer errors and panic.
func mustBuild(kinds map[core.Kind][]category) *Registry {
	r := &Registry{kinds: make(map[core.Kind]kindCatalog, len(kinds))}
	for kind, cats := range kinds {
		catalog := kindCatalog{order: cats, index: make(map[string]int, len(cats))}
		for i, c := range cats {
			if _, dup := catalog.index[c.name]; dup {
				panic(fmt.Sprintf("taxonomy: duplicate category %q for kind %q", c.name, kind))
			}
			if len(c.subs) == 0 {
				panic(fmt.Sprintf("taxonomy: category %q has no subcategories", c.name))
			}
			seen := make(map[string]struct{}, len(c.subs))
			for _, s := range c.subs {
				if _, dup := seen[s.name]; dup {
					panic(fmt.Sprintf("taxonomy: duplicate subcategory %q under %q", s.name, c.name))
				}
				seen[s.name] = struct{}{}
				if err := s.schema.Validate(); err != nil {
					panic(fmt.Sprintf("taxonomy: %s / %s: %v", c.name, s.name, err))
				}
			}
			catalog.index[c.name] = i
		}
		r.kinds[kind] = catalog
	}
	return r
}

// Categories lists category names for a kind in definition order.
func (r *Registry) Categories(kind core.Kind) []string {
	catalog, ok := r.kinds[kind]
	if !ok {
		return nil
	}
	names := make([]string, len(catalog.order))
	for i, c := range catalog.order {
		names[i] = c.name
	}
	return names
}

// Subcategories lists subcategory names under a category in definition order.
func (r *Registry) Subcategories(kind core.Kind, categoryName string) ([]string, error) {
	c, err := r.category(kind, categoryName)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(c.subs))
	for i, s := range c.subs {
		names[i] = s.name
	}
	return names, nil
}

// Schema resolves the field schema for a taxonomy path. The returned slice
// is shared registry state and must not be modified.
func (r *Registry) Schema(kind core.Kind, categoryName, subcategoryName string) (core.Schema, error) {
	c, err := r.category(kind, categoryName)
	if err != nil {
		return nil, err
	}
	for _, s := range c.subs {
		if s.name == subcategoryName {
			return s.schema, nil
		}
	}
	return nil, fmt.Errorf("%w: %q / %q", ErrUnknownSubcategory, categoryName, subcategoryName)
}

func (r *Registry) category(kind core.Kind, name string) (category, error) {
	catalog, ok := r.kinds[kind]
	if !ok {
		return category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	i, ok := catalog.index[name]
	if !ok {
		return category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return catalog.order[i], nil
}

// Declarative catalog constructors, kept terse so the data files read like
// a schema definition rather than code.

func cat(name string, subs ...subcategory) category {
	return category{name: name, subs: subs}
}

func sub(name string, fields ...core.FieldDefinition) subcategory {
	return subcategory{name: name, schema: core.Schema(fields)}
}

func text(key, label string) core.FieldDefinition {
	return core.FieldDefinition{Key: key, Label: label, Type: core.TextField}
}

func number(key, label string) core.FieldDefinition {
	return core.FieldDefinition{Key: key, Label: label, Type: core.NumberField}
}

func date(key, label string) core.FieldDefinition {
	return core.FieldDefinition{Key: key, Label: label, Type: core.DateField}
}

func choice(key, label string, choices ...string) core.FieldDefinition {
	return core.FieldDefinition{Key: key, Label: label, Type: core.ChoiceField, Choices: choices}
}
