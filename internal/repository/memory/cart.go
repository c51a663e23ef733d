package memory

import (
	"context"
	"sync"

	apperrors "github.com/vitacart/storefront/pkg/errors"

	"github.com/vitacart/storefront/internal/domain"
)

// CartRepository keeps one cart per session in a mutex-guarded map. Carts are
// cloned on the way in and out so callers never share slice memory with the
// stored value.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository creates an empty cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

// Get retrieves the cart for a session.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}
	return cart.Clone(), nil
}

// Save stores the cart for a session, replacing any existing one.
func (r *CartRepository) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = cart.Clone()
	return nil
}

// Delete removes the cart for a session. Deleting an absent cart is a no-op.
func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
