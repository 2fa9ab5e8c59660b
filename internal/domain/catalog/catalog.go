// Package catalog implements the product search predicate and the brand
// normalization applied at ingestion time.
package catalog

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jpmotors/spares-api/internal/domain/entity"
)

// Sentinel brand values.
const (
	BrandOther = "Other" // no brand derivable from the upstream record
	BrandAll   = "All"   // dropdown option that bypasses the brand filter
)

// attributeKeys are the upstream spellings checked, in priority order. The
// source schema was inconsistent about casing, so all known variants are
// tried before falling back to the category.
var attributeKeys = []string{"brand", "Brand", "BRAND"}

var titleCaser = cases.Title(language.English, cases.NoLower)

// DeriveBrand resolves a product's brand from the prioritized source fields:
// the explicit brand column, the known attribute-key spellings, then the
// category. Returns BrandOther when none yields a value. Called once at
// ingestion; the stored Product carries the normalized result.
func DeriveBrand(explicit string, attributes json.RawMessage, category string) string {
	if b := normalize(explicit); b != "" {
		return b
	}
	if len(attributes) > 0 {
		var attrs map[string]any
		if err := json.Unmarshal(attributes, &attrs); err == nil {
			for _, key := range attributeKeys {
				if v, ok := attrs[key].(string); ok {
					if b := normalize(v); b != "" {
						return b
					}
				}
			}
		}
	}
	if b := normalize(category); b != "" {
		return b
	}
	return BrandOther
}

// normalize trims and Title-cases a candidate brand, preserving existing
// upper-case runs (TVS stays TVS, "bajaj" becomes "Bajaj").
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}

// Filter returns the products matching both predicates: a case-insensitive
// substring search over name, part number and brand, AND an exact brand
// match. An empty search term matches everything; brand "" or BrandAll
// bypasses the brand filter.
func Filter(products []*entity.Product, searchTerm, brand string) []*entity.Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	byBrand := brand != "" && brand != BrandAll

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matches(p, term) {
			continue
		}
		if byBrand && p.Brand != brand {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p *entity.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.PartNumber), term) ||
		strings.Contains(strings.ToLower(p.Brand), term)
}

// Brands returns the dropdown list: distinct brand values across products,
// BrandOther excluded, sorted ascending, with BrandAll prepended.
func Brands(products []*entity.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.Brand == "" || p.Brand == BrandOther {
			continue
		}
		seen[p.Brand] = struct{}{}
	}
	brands := make([]string, 0, len(seen)+1)
	for b := range seen {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return append([]string{BrandAll}, brands...)
}
