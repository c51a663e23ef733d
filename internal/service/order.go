package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "github.com/vitacart/storefront/pkg/errors"
	"github.com/vitacart/storefront/pkg/validator"

	"github.com/vitacart/storefront/internal/domain"
	"github.com/vitacart/storefront/internal/repository"
)

// OrderConfig holds the checkout policy knobs.
type OrderConfig struct {
	// ShippingCost is charged when the cart subtotal is below the free
	// shipping threshold.
	ShippingCost float64

	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold float64

	// ProcessingDelay simulates the payment provider round trip. The delay
	// always elapses fully and checkout never fails because of it.
	ProcessingDelay time.Duration
}

// OrderService handles checkout and the provider-facing order ledger.
type OrderService struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
	cfg    OrderConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, cfg OrderConfig, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		carts:  carts,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Checkout converts the session's cart into an order. The customer details
// are validated, shipping is added when the subtotal is below the free
// shipping threshold, and the cart is emptied once the order is recorded.
// Checking out an empty cart is rejected.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, details domain.CustomerDetails) (*domain.Order, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if err := validator.Validate(&details); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if errors.Is(err, apperrors.ErrNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, apperrors.InvalidInput("cart is empty")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "get cart")
	}

	shipping := s.cfg.ShippingCost
	if cart.TotalAmount >= s.cfg.FreeShippingThreshold {
		shipping = 0
	}

	// Simulated payment provider round trip.
	if s.cfg.ProcessingDelay > 0 {
		time.Sleep(s.cfg.ProcessingDelay)
	}

	order := &domain.Order{
		CustomerDetails: details,
		Items:           domain.OrderItemsFromCart(cart.Items),
		TotalAmount:     domain.RoundAmount(cart.TotalAmount + shipping),
		TotalItems:      cart.TotalItems,
		Status:          domain.OrderStatusPending,
		DateOfPurchase:  s.now(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Wrap(err, "create order")
	}
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return nil, apperrors.Wrap(err, "clear cart after checkout")
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("session_id", sessionID),
		slog.Float64("total_amount", order.TotalAmount),
		slog.Int("total_items", order.TotalItems),
	)
	return order, nil
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}
	return s.orders.GetByID(ctx, id)
}

// ListOrders returns the ledger filtered per the given criteria, newest
// first.
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	if filter.Status != "" && filter.Status != "all" && !domain.IsValidStatus(filter.Status) {
		return nil, apperrors.InvalidInput("status must be one of: pending, inprogress, completed, all")
	}
	return s.orders.List(ctx, filter)
}

// UpdateOrderStatus sets the order's status and returns the updated order.
// All transitions are allowed, including moving a completed order back.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}
	if !domain.IsValidStatus(status) {
		return nil, apperrors.InvalidInput("status must be one of: pending, inprogress, completed")
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", id),
		slog.String("status", status),
	)
	return s.orders.GetByID(ctx, id)
}
