package taxonomy

import (
	"errors"
	"slices"
	"testing"

	"networth/internal/core"
)

func TestDefault_EveryPathResolves(t *testing.T) {
	r := Default()

	for _, kind := range []core.Kind{core.Asset, core.Liability} {
		cats := r.Categories(kind)
		if len(cats) == 0 {
			t.Fatalf("no categories for kind %q", kind)
		}
		for _, cat := range cats {
			subs, err := r.Subcategories(kind, cat)
			if err != nil {
				t.Fatalf("Subcategories(%q, %q): %v", kind, cat, err)
			}
			if len(subs) == 0 {
				t.Errorf("category %q has no subcategories", cat)
			}
			for _, sub := range subs {
				schema, err := r.Schema(kind, cat, sub)
				if err != nil {
					t.Fatalf("Schema(%q, %q, %q): %v", kind, cat, sub, err)
				}
				if err := schema.Validate(); err != nil {
					t.Errorf("%s / %s: %v", cat, sub, err)
				}
			}
		}
	}
}

func TestDefault_DefinitionOrderIsStable(t *testing.T) {
	r := Default()

	wantAssets := []string{
		"Cash & Cash-like",
		"Listed Investments",
		"Real Estate & Land",
		"Retirement & Employment-linked",
		"Insurance Assets",
		"Private Market Investments",
		"Business & Professional Interests",
		"Digital & Crypto Assets",
		"Luxury & Collectible Assets",
		"Claims & Receivables",
	}
	if got := r.Categories(core.Asset); !slices.Equal(got, wantAssets) {
		t.Errorf("asset categories = %v, want %v", got, wantAssets)
	}

	// Repeated reads return the same sequence.
	again := r.Categories(core.Asset)
	if !slices.Equal(again, wantAssets) {
		t.Errorf("second read = %v, want identical sequence", again)
	}

	subs, err := r.Subcategories(core.Liability, "Personal Debt")
	if err != nil {
		t.Fatalf("Subcategories: %v", err)
	}
	wantSubs := []string{"Credit card", "Personal loan", "BNPL / instalment plan"}
	if !slices.Equal(subs, wantSubs) {
		t.Errorf("Personal Debt subcategories = %v, want %v", subs, wantSubs)
	}
}

func TestDefault_SchemaContent(t *testing.T) {
	schema, err := Default().Schema(core.Asset, "Cash & Cash-like", "Cash (local currency)")
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	wantKeys := []string{"bank", "account_type", "account_nickname", "account_number", "interest_rate", "liquidity"}
	if got := schema.Keys(); !slices.Equal(got, wantKeys) {
		t.Fatalf("keys = %v, want %v", got, wantKeys)
	}
	liquidity := schema[5]
	if liquidity.Type != core.ChoiceField {
		t.Errorf("liquidity type = %q, want choice", liquidity.Type)
	}
	if want := []string{"Instant", "1-3 days", "Term"}; !slices.Equal(liquidity.Choices, want) {
		t.Errorf("liquidity choices = %v, want %v", liquidity.Choices, want)
	}
}

func TestRegistry_UnknownPaths(t *testing.T) {
	r := Default()

	if _, err := r.Subcategories(core.Asset, "Derivatives"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category error = %v, want ErrUnknownCategory", err)
	}
	if _, err := r.Schema(core.Asset, "Derivatives", "Options"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category error = %v, want ErrUnknownCategory", err)
	}
	if _, err := r.Schema(core.Asset, "Cash & Cash-like", "Gold bars"); !errors.Is(err, ErrUnknownSubcategory) {
		t.Errorf("unknown subcategory error = %v, want ErrUnknownSubcategory", err)
	}
	// Categories exist per kind: an asset category is not a liability one.
	if _, err := r.Schema(core.Liability, "Cash & Cash-like", "Cash (local currency)"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("cross-kind lookup error = %v, want ErrUnknownCategory", err)
	}
	if got := r.Categories(core.Kind("equity")); got != nil {
		t.Errorf("Categories(unknown kind) = %v, want nil", got)
	}
}
