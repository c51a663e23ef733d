package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitacart/storefront/internal/domain"
)

func TestLoad(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	t.Run("catalog", func(t *testing.T) {
		require.NotEmpty(t, store.Products)

		seen := make(map[string]bool)
		for _, p := range store.Products {
			assert.NotEmpty(t, p.ID)
			assert.NotEmpty(t, p.Name)
			assert.True(t, domain.IsValidCategory(string(p.Category)), "product %s has category %q", p.ID, p.Category)
			assert.GreaterOrEqual(t, p.Price, float64(0))
			assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("orders are newest first", func(t *testing.T) {
		require.NotEmpty(t, store.Orders)
		for i := 1; i < len(store.Orders); i++ {
			assert.False(t, store.Orders[i-1].DateOfPurchase.Before(store.Orders[i].DateOfPurchase),
				"order %s is older than the one after it", store.Orders[i-1].ID)
		}
	})

	t.Run("orders carry valid statuses", func(t *testing.T) {
		for _, o := range store.Orders {
			assert.True(t, domain.IsValidStatus(o.Status), "order %s has status %q", o.ID, o.Status)
			assert.NotEmpty(t, o.Items)
		}
	})

	t.Run("faqs", func(t *testing.T) {
		require.NotEmpty(t, store.FAQs)
		for _, f := range store.FAQs {
			assert.NotEmpty(t, f.Question)
			assert.NotEmpty(t, f.Answer)
		}
	})
}
