package memory

import (
	"context"

	apperrors "github.com/vitacart/storefront/pkg/errors"

	"github.com/vitacart/storefront/internal/domain"
)

// CatalogRepository serves the product catalog from memory. The catalog is
// loaded once at startup and never mutated afterwards, so reads need no
// locking.
type CatalogRepository struct {
	products []domain.Product
	byID     map[string]int
}

// NewCatalogRepository builds a catalog repository over the given products,
// preserving their order.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	byID := make(map[string]int, len(products))
	for i := range products {
		byID[products[i].ID] = i
	}
	return &CatalogRepository{products: products, byID: byID}
}

// List returns every product in catalog order.
func (r *CatalogRepository) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by ID.
func (r *CatalogRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}

// FAQRepository serves the static FAQ entries from memory.
type FAQRepository struct {
	faqs []domain.FAQ
}

// NewFAQRepository builds a FAQ repository over the given entries.
func NewFAQRepository(faqs []domain.FAQ) *FAQRepository {
	return &FAQRepository{faqs: faqs}
}

// List returns every FAQ entry in display order.
func (r *FAQRepository) List(_ context.Context) ([]domain.FAQ, error) {
	out := make([]domain.FAQ, len(r.faqs))
	copy(out, r.faqs)
	return out, nil
}
