package domain

import "math"

// CartItem pairs a catalog product with a quantity. A cart holds at most one
// item per product ID; the item is created on first add and removed when its
// quantity would drop below one.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the price contribution of this item.
func (i *CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart is a session-scoped collection of selected products in insertion order,
// with totals derived from the items. Totals are recomputed after every
// mutation and never patched incrementally, so they cannot diverge from the
// items.
type Cart struct {
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
}

// NewCart returns the canonical empty cart: no items, zero totals.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// RoundAmount rounds a dollar amount to cents, half away from zero.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// AddProduct adds one unit of the product. If the product is already in the
// cart its quantity is incremented, otherwise a new item is appended.
func (c *Cart) AddProduct(p Product) {
	if i := c.findIndex(p.ID); i >= 0 {
		c.Items[i].Quantity++
	} else {
		c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
	}
	c.recalculate()
}

// RemoveProduct deletes the item for the given product ID. Removing an absent
// product is a no-op.
func (c *Cart) RemoveProduct(productID string) {
	i := c.findIndex(productID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.recalculate()
}

// SetQuantity sets the quantity of the item directly. A quantity of zero or
// less delegates to RemoveProduct. No upper bound is enforced and the value is
// independent of the product's stock. Setting an absent product is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveProduct(productID)
		return
	}
	i := c.findIndex(productID)
	if i < 0 {
		return
	}
	c.Items[i].Quantity = quantity
	c.recalculate()
}

// IncrementQuantity adds one unit to an existing item. Incrementing an absent
// product is a no-op.
func (c *Cart) IncrementQuantity(productID string) {
	i := c.findIndex(productID)
	if i < 0 {
		return
	}
	c.Items[i].Quantity++
	c.recalculate()
}

// DecrementQuantity removes one unit from an existing item. An item at
// quantity one is removed entirely; an absent product is a no-op.
func (c *Cart) DecrementQuantity(productID string) {
	i := c.findIndex(productID)
	if i < 0 {
		return
	}
	if c.Items[i].Quantity <= 1 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	} else {
		c.Items[i].Quantity--
	}
	c.recalculate()
}

// Clear resets the cart to the canonical empty state unconditionally.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.TotalItems = 0
	c.TotalAmount = 0
}

// Contains reports whether the product is in the cart.
func (c *Cart) Contains(productID string) bool {
	return c.findIndex(productID) >= 0
}

// Item returns the cart item for the given product ID, if present.
func (c *Cart) Item(productID string) (CartItem, bool) {
	if i := c.findIndex(productID); i >= 0 {
		return c.Items[i], true
	}
	return CartItem{}, false
}

// Clone returns a deep copy of the cart. Repositories hand out clones so a
// caller mutating its copy cannot corrupt shared state.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		Items:       make([]CartItem, len(c.Items)),
		TotalItems:  c.TotalItems,
		TotalAmount: c.TotalAmount,
	}
	copy(clone.Items, c.Items)
	return clone
}

func (c *Cart) findIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// recalculate rebuilds the derived totals from the items. An emptied cart
// collapses back to the canonical empty state.
func (c *Cart) recalculate() {
	if len(c.Items) == 0 {
		c.Clear()
		return
	}
	var totalItems int
	var totalAmount float64
	for i := range c.Items {
		totalItems += c.Items[i].Quantity
		totalAmount += c.Items[i].LineTotal()
	}
	c.TotalItems = totalItems
	c.TotalAmount = RoundAmount(totalAmount)
}
