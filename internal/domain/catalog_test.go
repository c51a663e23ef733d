package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeFixture() []Product {
	return []Product{
		{ID: "p1", Name: "Daily Multivitamin", Description: "Complete daily nutrition", Category: CategoryMultivitamins, Price: 24.99, IsBestSeller: true},
		{ID: "p2", Name: "Vitamin C 1000mg", Description: "Immune support", Category: CategoryMultivitamins, Price: 19.99},
		{ID: "p3", Name: "Omega-3 Fish Oil", Description: "Heart and brain health", Category: CategoryOmega, Price: 29.99, IsBestSeller: true},
		{ID: "p4", Name: "Ashwagandha Extract", Description: "Stress relief", Category: CategoryHerbal, Price: 34.99},
		{ID: "p5", Name: "Whey Protein Isolate", Description: "Muscle recovery", Category: CategoryProtein, Price: 54.99},
	}
}

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		name  string
		want  PriceRange
		valid bool
	}{
		{"", PriceRange{}, true},
		{"all", PriceRange{}, true},
		{"under-20", PriceRange{Min: 0, Max: 20}, true},
		{"20-30", PriceRange{Min: 20, Max: 30}, true},
		{"30-50", PriceRange{Min: 30, Max: 50}, true},
		{"over-50", PriceRange{Min: 50}, true},
		{"bogus", PriceRange{}, false},
	}
	for _, tt := range tests {
		got, ok := PriceBucket(tt.name)
		assert.Equal(t, tt.valid, ok, "bucket %q", tt.name)
		assert.Equal(t, tt.want, got, "bucket %q", tt.name)
	}
}

func TestPriceRange_ContainsIsHalfOpen(t *testing.T) {
	bucket, ok := PriceBucket("20-30")
	require.True(t, ok)

	assert.True(t, bucket.Contains(20))
	assert.True(t, bucket.Contains(29.99))
	assert.False(t, bucket.Contains(30))
	assert.False(t, bucket.Contains(19.99))

	unbounded, ok := PriceBucket("over-50")
	require.True(t, ok)
	assert.True(t, unbounded.Contains(50))
	assert.True(t, unbounded.Contains(999.99))
	assert.False(t, unbounded.Contains(49.99))
}

func TestFilterProducts(t *testing.T) {
	products := storeFixture()

	t.Run("zero filter keeps everything", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{})
		assert.Len(t, got, len(products))
	})

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{Query: "OMEGA"})
		require.Len(t, got, 1)
		assert.Equal(t, "p3", got[0].ID)
	})

	t.Run("query matches description", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{Query: "immune"})
		require.Len(t, got, 1)
		assert.Equal(t, "p2", got[0].ID)
	})

	t.Run("query is trimmed", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{Query: "  fish oil  "})
		require.Len(t, got, 1)
		assert.Equal(t, "p3", got[0].ID)
	})

	t.Run("category", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{Category: "multivitamins"})
		assert.Len(t, got, 2)
	})

	t.Run("category all keeps everything", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{Category: "all"})
		assert.Len(t, got, len(products))
	})

	t.Run("price bucket boundary is exclusive above", func(t *testing.T) {
		bucket, _ := PriceBucket("20-30")
		got := FilterProducts(products, ProductFilter{PriceRange: bucket})
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0].ID)
		assert.Equal(t, "p3", got[1].ID)
	})

	t.Run("best sellers only", func(t *testing.T) {
		got := FilterProducts(products, ProductFilter{BestSellersOnly: true})
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0].ID)
		assert.Equal(t, "p3", got[1].ID)
	})

	t.Run("filters compose", func(t *testing.T) {
		bucket, _ := PriceBucket("20-30")
		got := FilterProducts(products, ProductFilter{
			Query:      "daily",
			Category:   "multivitamins",
			PriceRange: bucket,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		before := storeFixture()
		_ = FilterProducts(before, ProductFilter{Query: "omega"})
		assert.Equal(t, storeFixture(), before)
	})
}

func TestSortProducts(t *testing.T) {
	t.Run("price low to high", func(t *testing.T) {
		products := storeFixture()
		SortProducts(products, SortPriceLowHigh)
		assert.Equal(t, []string{"p2", "p1", "p3", "p4", "p5"}, productIDs(products))
	})

	t.Run("price high to low", func(t *testing.T) {
		products := storeFixture()
		SortProducts(products, SortPriceHighLow)
		assert.Equal(t, []string{"p5", "p4", "p3", "p1", "p2"}, productIDs(products))
	})

	t.Run("alphabetical", func(t *testing.T) {
		products := storeFixture()
		SortProducts(products, SortAlphabetical)
		assert.Equal(t, []string{"p4", "p1", "p3", "p2", "p5"}, productIDs(products))
	})

	t.Run("best sellers first is stable", func(t *testing.T) {
		products := storeFixture()
		SortProducts(products, SortBestSellers)
		assert.Equal(t, []string{"p1", "p3", "p2", "p4", "p5"}, productIDs(products))
	})
}

func TestIsValidSortOption(t *testing.T) {
	for _, opt := range []string{"best-sellers", "price-low-high", "price-high-low", "alphabetical"} {
		assert.True(t, IsValidSortOption(opt), opt)
	}
	assert.False(t, IsValidSortOption("newest"))
	assert.False(t, IsValidSortOption(""))
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories() {
		assert.True(t, IsValidCategory(string(c)))
	}
	assert.False(t, IsValidCategory("vitamins"))
}

func productIDs(products []Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
