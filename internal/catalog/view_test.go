package catalog_test

import (
	"testing"

	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Laptop", Price: 900, Stock: 3},
		{ID: 2, Name: "Mouse", Price: 25, Stock: 40},
		{ID: 3, Name: "Laptop Stand", Price: 45, Stock: 0},
		{ID: 4, Name: "Keyboard", Price: 90, Stock: 12},
	}
}

func names(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestVisibleProducts_SearchIsCaseSensitive(t *testing.T) {
	products := []model.Product{{ID: 1, Name: "Laptop", Price: 1, Stock: 1}}

	assert.Empty(t, catalog.VisibleProducts(products, "laptop", catalog.SortNone))
	assert.Len(t, catalog.VisibleProducts(products, "Lap", catalog.SortNone), 1)
}

func TestVisibleProducts_EmptySearchKeepsAll(t *testing.T) {
	visible := catalog.VisibleProducts(sampleProducts(), "", catalog.SortNone)

	assert.Equal(t, sampleProducts(), visible)
}

func TestVisibleProducts_Sort(t *testing.T) {
	tests := []struct {
		name string
		mode catalog.SortMode
		want []string
	}{
		{"price desc", catalog.SortPriceDesc, []string{"Laptop", "Keyboard", "Laptop Stand", "Mouse"}},
		{"price asc", catalog.SortPriceAsc, []string{"Mouse", "Laptop Stand", "Keyboard", "Laptop"}},
		{"stock desc", catalog.SortStockDesc, []string{"Mouse", "Keyboard", "Laptop", "Laptop Stand"}},
		{"stock asc", catalog.SortStockAsc, []string{"Laptop Stand", "Laptop", "Keyboard", "Mouse"}},
		{"none", catalog.SortNone, []string{"Laptop", "Mouse", "Laptop Stand", "Keyboard"}},
		{"unknown", catalog.SortMode("name-asc"), []string{"Laptop", "Mouse", "Laptop Stand", "Keyboard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(catalog.VisibleProducts(sampleProducts(), "", tt.mode)))
		})
	}
}

func TestVisibleProducts_OrderingProperties(t *testing.T) {
	products := append(sampleProducts(),
		model.Product{ID: 5, Name: "Cable", Price: 25, Stock: 12},
		model.Product{ID: 6, Name: "Hub", Price: 60, Stock: 3},
	)

	byPrice := catalog.VisibleProducts(products, "", catalog.SortPriceDesc)
	for i := 1; i < len(byPrice); i++ {
		assert.GreaterOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	byStock := catalog.VisibleProducts(products, "", catalog.SortStockAsc)
	for i := 1; i < len(byStock); i++ {
		assert.LessOrEqual(t, byStock[i-1].Stock, byStock[i].Stock)
	}
}

func TestVisibleProducts_FilterThenSort(t *testing.T) {
	visible := catalog.VisibleProducts(sampleProducts(), "Laptop", catalog.SortPriceAsc)

	assert.Equal(t, []string{"Laptop Stand", "Laptop"}, names(visible))
}

func TestVisibleProducts_DoesNotMutateSource(t *testing.T) {
	products := sampleProducts()

	visible := catalog.VisibleProducts(products, "", catalog.SortPriceAsc)
	require.NotEmpty(t, visible)
	visible[0].Name = "changed"

	assert.Equal(t, sampleProducts(), products)
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		raw  string
		want catalog.SortMode
	}{
		{"price-desc", catalog.SortPriceDesc},
		{"harga-tertinggi", catalog.SortPriceDesc},
		{"harga-terendah", catalog.SortPriceAsc},
		{"stok-terbanyak", catalog.SortStockDesc},
		{"stok-tersedikit", catalog.SortStockAsc},
		{"", catalog.SortNone},
		{"whatever", catalog.SortMode("whatever")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ParseSortMode(tt.raw))
		})
	}

	assert.True(t, catalog.SortStockAsc.Known())
	assert.False(t, catalog.SortNone.Known())
	assert.False(t, catalog.SortMode("whatever").Known())
}
