package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmotors/spares-api/internal/domain/catalog"
	"github.com/jpmotors/spares-api/internal/domain/entity"
)

func products() []*entity.Product {
	return []*entity.Product{
		{ID: "p1", Name: "Brake Shoe Set", PartNumber: "BS-204", Brand: "Bajaj"},
		{ID: "p2", Name: "Clutch Plate", PartNumber: "CP-110", Brand: "TVS"},
		{ID: "p3", Name: "Head Lamp Assembly", PartNumber: "HL-330", Brand: "Bajaj"},
		{ID: "p4", Name: "Wiring Harness", PartNumber: "WH-775", Brand: "Other"},
	}
}

func TestDeriveBrand_PriorityOrder(t *testing.T) {
	attrs := json.RawMessage(`{"Brand": "piaggio"}`)

	// explicit field wins over attributes and category
	assert.Equal(t, "Bajaj", catalog.DeriveBrand("bajaj", attrs, "Electrical"))

	// attribute spellings tried in order: brand, Brand, BRAND
	assert.Equal(t, "Piaggio", catalog.DeriveBrand("", attrs, "Electrical"))
	assert.Equal(t, "TVS", catalog.DeriveBrand("", json.RawMessage(`{"BRAND": "TVS"}`), ""))
	assert.Equal(t, "Ape", catalog.DeriveBrand("", json.RawMessage(`{"brand": "ape", "Brand": "ignored"}`), ""))

	// category is the last fallback
	assert.Equal(t, "Electrical", catalog.DeriveBrand("", nil, "Electrical"))

	// nothing derivable -> sentinel
	assert.Equal(t, catalog.BrandOther, catalog.DeriveBrand("", nil, ""))
	assert.Equal(t, catalog.BrandOther, catalog.DeriveBrand("  ", json.RawMessage(`{"color": "red"}`), ""))
	assert.Equal(t, catalog.BrandOther, catalog.DeriveBrand("", json.RawMessage(`not json`), ""))
}

func TestFilter_SearchTermIsCaseInsensitiveSubstring(t *testing.T) {
	got := catalog.Filter(products(), "brake", "")
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// part number match
	got = catalog.Filter(products(), "cp-1", "")
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	// brand match
	got = catalog.Filter(products(), "tvs", "")
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	// empty term matches everything
	assert.Len(t, catalog.Filter(products(), "", ""), 4)
}

func TestFilter_BrandExactMatchAndsWithSearch(t *testing.T) {
	got := catalog.Filter(products(), "", "Bajaj")
	assert.Len(t, got, 2)

	// AND of both predicates
	got = catalog.Filter(products(), "lamp", "Bajaj")
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)

	// "All" bypasses the brand filter
	assert.Len(t, catalog.Filter(products(), "", catalog.BrandAll), 4)

	// exact match only, no substring on the brand filter
	assert.Empty(t, catalog.Filter(products(), "", "Baj"))
}

func TestBrands_DistinctSortedWithAllPrepended(t *testing.T) {
	got := catalog.Brands(products())
	assert.Equal(t, []string{catalog.BrandAll, "Bajaj", "TVS"}, got)
}

func TestBrands_EmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{catalog.BrandAll}, catalog.Brands(nil))
}
