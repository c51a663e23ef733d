package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	apperrors "github.com/vitacart/storefront/pkg/errors"

	"github.com/vitacart/storefront/internal/domain"
	"github.com/vitacart/storefront/internal/repository"
)

// OrderRepository is the in-memory order ledger: a mutex-guarded slice held
// newest first. ID assignment and insertion happen inside the same critical
// section, so concurrent checkouts can never mint the same ledger ID.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderRepository creates an order repository seeded with the given
// orders, which must already be newest first.
func NewOrderRepository(seed []domain.Order) *OrderRepository {
	orders := make([]domain.Order, len(seed))
	copy(orders, seed)
	return &OrderRepository{orders: orders}
}

// Create assigns the order the next ledger ID and prepends it.
func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = fmt.Sprintf("ORD-%d-%03d", order.DateOfPurchase.Year(), len(r.orders)+1)
	r.orders = append([]domain.Order{*order}, r.orders...)
	return nil
}

// GetByID retrieves an order by ID.
func (r *OrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, apperrors.NotFound("order", id)
}

// List returns orders matching the filter, newest first.
func (r *OrderRepository) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]domain.Order, 0, len(r.orders))
	for i := range r.orders {
		order := &r.orders[i]
		if filter.Status != "" && filter.Status != "all" && order.Status != filter.Status {
			continue
		}
		if !order.MatchesQuery(query) {
			continue
		}
		if filter.From != nil && order.DateOfPurchase.Before(*filter.From) {
			continue
		}
		if filter.To != nil && order.DateOfPurchase.After(domain.EndOfDay(*filter.To)) {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

// UpdateStatus changes the status of an order.
func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return apperrors.NotFound("order", id)
}

// Count returns the number of orders in the ledger.
func (r *OrderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders), nil
}
