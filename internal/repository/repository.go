package repository

import (
	"context"
	"time"

	"github.com/vitacart/storefront/internal/domain"
)

// CatalogRepository provides read-only access to the product catalog.
type CatalogRepository interface {
	// List returns every product in catalog order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// FAQRepository provides read-only access to the static FAQ entries.
type FAQRepository interface {
	// List returns every FAQ entry in display order.
	List(ctx context.Context) ([]domain.FAQ, error)
}

// CartRepository stores one cart per browsing session.
type CartRepository interface {
	// Get retrieves the cart for a session.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save stores the cart for a session, replacing any existing one.
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error

	// Delete removes the cart for a session.
	Delete(ctx context.Context, sessionID string) error
}

// OrderFilter defines the composable criteria for listing orders. The zero
// value matches every order: an empty or "all" Status skips status filtering,
// a blank Query matches everything, and nil bounds are unbounded. The To
// bound is extended to the end of its day so the range is inclusive.
type OrderFilter struct {
	Status string
	Query  string
	From   *time.Time
	To     *time.Time
}

// OrderRepository is the in-memory order ledger.
type OrderRepository interface {
	// Create assigns the order its ledger ID and prepends it, so the most
	// recently placed order is always first.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List returns orders matching the given filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)

	// UpdateStatus changes the status of an order.
	UpdateStatus(ctx context.Context, id string, status string) error

	// Count returns the number of orders in the ledger.
	Count(ctx context.Context) (int, error)
}

// SessionRepository tracks the provider-portal authentication flag per
// browsing session. Flags live only in process memory and vanish on restart.
type SessionRepository interface {
	// SetAuthenticated sets or clears the authentication flag for a session.
	SetAuthenticated(ctx context.Context, sessionID string, authenticated bool) error

	// IsAuthenticated reports whether the session has logged in. Unknown
	// sessions are simply not authenticated.
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
}
