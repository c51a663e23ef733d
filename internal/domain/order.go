package domain

import (
	"strings"
	"time"
)

// Order status constants. There is no enforced transition graph: any status
// may be set from any other, including reverting a completed order.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "inprogress"
	OrderStatusCompleted  = "completed"
)

// ValidStatuses returns all valid order statuses.
func ValidStatuses() []string {
	return []string{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is a line item snapshotted from the cart at checkout time. It is
// decoupled from the live catalog so later catalog changes never affect order
// history.
type OrderItem struct {
	ProductID   string  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=1"`
	ImageURL    string  `json:"image_url"`
}

// LineTotal returns the total price for this line item.
func (i *OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is a placed order. Everything except Status is immutable after
// creation; orders are never deleted.
type Order struct {
	ID              string          `json:"id" validate:"required"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	Items           []OrderItem     `json:"items" validate:"min=1,dive"`
	TotalAmount     float64         `json:"total_amount" validate:"gte=0"`
	TotalItems      int             `json:"total_items" validate:"gte=1"`
	Status          string          `json:"status" validate:"required,oneof=pending inprogress completed"`
	DateOfPurchase  time.Time       `json:"date_of_purchase"`
}

// OrderItemsFromCart snapshots cart items into order line items.
func OrderItemsFromCart(items []CartItem) []OrderItem {
	snapshot := make([]OrderItem, len(items))
	for i, item := range items {
		snapshot[i] = OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Price:       item.Product.Price,
			Quantity:    item.Quantity,
			ImageURL:    item.Product.ImageURL,
		}
	}
	return snapshot
}

// MatchesQuery reports whether the order matches a lowercased search query by
// substring over its ID, the customer's full name, or any item's product name.
// An empty query matches every order.
func (o *Order) MatchesQuery(loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.ID), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerDetails.FullName()), loweredQuery) {
		return true
	}
	for i := range o.Items {
		if strings.Contains(strings.ToLower(o.Items[i].ProductName), loweredQuery) {
			return true
		}
	}
	return false
}

// EndOfDay returns the last representable instant of the day containing t,
// in t's location. Used to make a "to" date bound inclusive.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
