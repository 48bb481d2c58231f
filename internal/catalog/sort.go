package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied to the derived view.
type SortKey string

const (
	SortDefault      SortKey = "default"
	SortPriceLowHigh SortKey = "price-low-high"
	SortPriceHighLow SortKey = "price-high-low"
	SortNameAZ       SortKey = "name-a-z"
	SortNameZA       SortKey = "name-z-a"
)

// ParseSortKey normalizes a raw sort value, falling back to SortDefault for
// anything unrecognized so stale or hand-edited query params never error.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.TrimSpace(raw)) {
	case SortPriceLowHigh:
		return SortPriceLowHigh
	case SortPriceHighLow:
		return SortPriceHighLow
	case SortNameAZ:
		return SortNameAZ
	case SortNameZA:
		return SortNameZA
	default:
		return SortDefault
	}
}

// sortProducts orders products in place by the given key. The sort is stable
// so products with equal keys keep their filtered order.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAZ:
		c := titleCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) < 0
		})
	case SortNameZA:
		c := titleCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) > 0
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID < products[j].ID
		})
	}
}

// titleCollator builds a locale-aware comparator for product titles.
//
// A fresh collator per sort keeps sortProducts safe for callers sorting from
// multiple goroutines; collators carry internal buffers.
func titleCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}
