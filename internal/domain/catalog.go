package domain

import (
	"sort"
	"strings"
)

// SortOption determines the ordering of a catalog listing.
type SortOption string

// Catalog sort options.
const (
	SortBestSellers  SortOption = "best-sellers"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortAlphabetical SortOption = "alphabetical"
)

// IsValidSortOption checks if a sort option string is valid.
func IsValidSortOption(sortBy string) bool {
	switch SortOption(sortBy) {
	case SortBestSellers, SortPriceLowHigh, SortPriceHighLow, SortAlphabetical:
		return true
	}
	return false
}

// PriceRange is a half-open price bucket [Min, Max). A Max of zero or less
// means unbounded above.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether a price falls inside the bucket.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return r.Max <= 0 || price < r.Max
}

// PriceBucket resolves a named storefront price bucket. The "all" name (and
// the empty string) resolves to an unbounded range.
func PriceBucket(name string) (PriceRange, bool) {
	switch name {
	case "", "all":
		return PriceRange{}, true
	case "under-20":
		return PriceRange{Min: 0, Max: 20}, true
	case "20-30":
		return PriceRange{Min: 20, Max: 30}, true
	case "30-50":
		return PriceRange{Min: 30, Max: 50}, true
	case "over-50":
		return PriceRange{Min: 50}, true
	}
	return PriceRange{}, false
}

// ProductFilter holds the composable catalog filters. Zero values mean
// "no constraint": an empty Query matches everything, an empty or "all"
// Category matches every category, the zero PriceRange is unbounded, and
// BestSellersOnly false keeps non-best-sellers.
type ProductFilter struct {
	Query           string
	Category        string
	PriceRange      PriceRange
	BestSellersOnly bool
}

// FilterProducts applies the filters sequentially and returns the matching
// products in their original order. The input slice is never modified.
func FilterProducts(products []Product, filter ProductFilter) []Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]Product, 0, len(products))
	for _, p := range products {
		if !p.MatchesQuery(query) {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && string(p.Category) != filter.Category {
			continue
		}
		if !filter.PriceRange.Contains(p.Price) {
			continue
		}
		if filter.BestSellersOnly && !p.IsBestSeller {
			continue
		}
		result = append(result, p)
	}
	return result
}

// SortProducts sorts products in place according to the given option.
// Best-sellers-first is stable: ties keep their input order.
func SortProducts(products []Product, sortBy SortOption) {
	switch sortBy {
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortAlphabetical:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortBestSellers:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsBestSeller && !products[j].IsBestSeller
		})
	}
}
