package service

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/vitacart/storefront/pkg/errors"

	"github.com/vitacart/storefront/internal/domain"
	"github.com/vitacart/storefront/internal/repository"
)

// CartService manages the per-session shopping cart. Every mutation resolves
// the session's cart, applies one cart operation, and saves the result; the
// updated cart is always returned so the storefront can render it without a
// second round trip.
type CartService struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository, logger *slog.Logger) *CartService {
	return &CartService{carts: carts, catalog: catalog, logger: logger}
}

// GetCart returns the session's cart. A session without a cart gets the
// canonical empty cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	cart, err := s.carts.Get(ctx, sessionID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "get cart")
	}
	return cart, nil
}

// AddToCart adds one unit of the product to the session's cart. The product
// must exist in the catalog; the cart stores a snapshot of it.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.AddProduct(*product)
	})
}

// RemoveFromCart deletes the product's line item. Removing a product that is
// not in the cart leaves the cart unchanged.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.RemoveProduct(productID)
	})
}

// UpdateQuantity sets the product's quantity directly. Zero or negative
// quantities remove the line item.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.SetQuantity(productID, quantity)
	})
}

// IncrementQuantity adds one unit to the product's line item.
func (s *CartService) IncrementQuantity(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.IncrementQuantity(productID)
	})
}

// DecrementQuantity removes one unit from the product's line item, dropping
// the item entirely at quantity one.
func (s *CartService) DecrementQuantity(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) {
		cart.DecrementQuantity(productID)
	})
}

// ClearCart resets the session's cart to empty.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return nil, apperrors.Wrap(err, "clear cart")
	}
	s.logger.InfoContext(ctx, "cart cleared", slog.String("session_id", sessionID))
	return domain.NewCart(), nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, apply func(*domain.Cart)) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	apply(cart)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, apperrors.Wrap(err, "save cart")
	}
	s.logger.DebugContext(ctx, "cart updated",
		slog.String("session_id", sessionID),
		slog.Int("total_items", cart.TotalItems),
		slog.Float64("total_amount", cart.TotalAmount),
	)
	return cart, nil
}
