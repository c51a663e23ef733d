package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vitaminC = Product{ID: "p1", Name: "Vitamin C", Price: 19.99}
	fishOil  = Product{ID: "p2", Name: "Omega-3 Fish Oil", Price: 29.99}
)

func TestNewCart(t *testing.T) {
	cart := NewCart()

	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, float64(0), cart.TotalAmount)
}

func TestCart_AddProduct(t *testing.T) {
	t.Run("first add creates an item with quantity one", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.Equal(t, 1, cart.TotalItems)
		assert.Equal(t, 19.99, cart.TotalAmount)
	})

	t.Run("adding the same product twice increments quantity", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.AddProduct(vitaminC)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 2, cart.TotalItems)
		assert.Equal(t, 39.98, cart.TotalAmount)
	})

	t.Run("distinct products keep insertion order", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.AddProduct(fishOil)
		cart.AddProduct(vitaminC)

		require.Len(t, cart.Items, 2)
		assert.Equal(t, "p1", cart.Items[0].Product.ID)
		assert.Equal(t, "p2", cart.Items[1].Product.ID)
		assert.Equal(t, 3, cart.TotalItems)
		assert.Equal(t, 69.97, cart.TotalAmount)
	})
}

func TestCart_RemoveProduct(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(vitaminC)
	cart.AddProduct(fishOil)

	cart.RemoveProduct("p1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].Product.ID)
	assert.Equal(t, 29.99, cart.TotalAmount)

	t.Run("absent product is a no-op", func(t *testing.T) {
		cart.RemoveProduct("missing")
		assert.Len(t, cart.Items, 1)
	})

	t.Run("removing the last item restores the empty cart", func(t *testing.T) {
		cart.RemoveProduct("p2")
		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.TotalItems)
		assert.Equal(t, float64(0), cart.TotalAmount)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("sets the quantity directly", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.SetQuantity("p1", 5)

		assert.Equal(t, 5, cart.TotalItems)
		assert.Equal(t, 99.95, cart.TotalAmount)
	})

	t.Run("zero removes the item", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.SetQuantity("p1", 0)

		assert.Empty(t, cart.Items)
	})

	t.Run("negative removes the item", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.SetQuantity("p1", -3)

		assert.Empty(t, cart.Items)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.SetQuantity("missing", 4)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestCart_IncrementDecrement(t *testing.T) {
	t.Run("increment adds one unit", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.IncrementQuantity("p1")

		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("decrement removes one unit", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.AddProduct(vitaminC)
		cart.DecrementQuantity("p1")

		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("decrement at quantity one removes the item", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.DecrementQuantity("p1")

		assert.Empty(t, cart.Items)
		assert.Equal(t, float64(0), cart.TotalAmount)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		cart := NewCart()
		cart.AddProduct(vitaminC)
		cart.IncrementQuantity("missing")
		cart.DecrementQuantity("missing")

		assert.Equal(t, 1, cart.TotalItems)
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(vitaminC)
	cart.AddProduct(fishOil)

	cart.Clear()

	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, float64(0), cart.TotalAmount)
}

func TestCart_TotalsAreRoundedToCents(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: "p1", Name: "Magnesium", Price: 0.1})
	cart.AddProduct(Product{ID: "p2", Name: "Zinc", Price: 0.2})

	assert.Equal(t, 0.3, cart.TotalAmount)
}

func TestCart_Clone(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(vitaminC)

	clone := cart.Clone()
	clone.AddProduct(fishOil)

	assert.Len(t, cart.Items, 1)
	assert.Len(t, clone.Items, 2)
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 19.99, RoundAmount(19.99))
	assert.Equal(t, 0.3, RoundAmount(0.1+0.2))
	assert.Equal(t, 2.68, RoundAmount(2.675000001))
	assert.Equal(t, float64(0), RoundAmount(0))
}
