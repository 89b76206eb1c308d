package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/iyhunko/product-catalog/internal/model"
)

// SortMode selects the ordering of the visible products.
type SortMode string

const (
	// SortNone keeps insertion order.
	SortNone      SortMode = ""
	SortPriceDesc SortMode = "price-desc"
	SortPriceAsc  SortMode = "price-asc"
	SortStockDesc SortMode = "stock-desc"
	SortStockAsc  SortMode = "stock-asc"
)

// sortAliases maps the storefront's original select values onto sort modes.
var sortAliases = map[string]SortMode{
	"harga-tertinggi": SortPriceDesc,
	"harga-terendah":  SortPriceAsc,
	"stok-terbanyak":  SortStockDesc,
	"stok-tersedikit": SortStockAsc,
}

// ParseSortMode maps raw select input to a SortMode. Unknown values are kept
// as-is and leave the order untouched.
func ParseSortMode(raw string) SortMode {
	if mode, ok := sortAliases[raw]; ok {
		return mode
	}
	return SortMode(raw)
}

// Known reports whether the mode actually reorders products.
func (m SortMode) Known() bool {
	switch m {
	case SortPriceDesc, SortPriceAsc, SortStockDesc, SortStockAsc:
		return true
	}
	return false
}

// VisibleProducts filters products by a case-sensitive name substring and then
// orders them by mode. The result is a new slice; products is never modified.
func VisibleProducts(products []model.Product, searchTerm string, mode SortMode) []model.Product {
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if searchTerm == "" || strings.Contains(p.Name, searchTerm) {
			result = append(result, p)
		}
	}

	switch mode {
	case SortPriceDesc:
		slices.SortFunc(result, func(a, b model.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortPriceAsc:
		slices.SortFunc(result, func(a, b model.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortStockDesc:
		slices.SortFunc(result, func(a, b model.Product) int { return cmp.Compare(b.Stock, a.Stock) })
	case SortStockAsc:
		slices.SortFunc(result, func(a, b model.Product) int { return cmp.Compare(a.Stock, b.Stock) })
	}

	return result
}
