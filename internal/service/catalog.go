package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/vitacart/storefront/pkg/errors"

	"github.com/vitacart/storefront/internal/domain"
	"github.com/vitacart/storefront/internal/repository"
)

// CatalogService answers storefront browsing queries over the immutable
// product catalog and FAQ entries.
type CatalogService struct {
	catalog repository.CatalogRepository
	faqs    repository.FAQRepository
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog repository.CatalogRepository, faqs repository.FAQRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, faqs: faqs, logger: logger}
}

// ListProductsInput carries the browsing filters as they arrive from the
// query string. Empty values mean "no constraint"; SortBy defaults to
// best sellers first.
type ListProductsInput struct {
	Query           string
	Category        string
	PriceBucket     string
	SortBy          string
	BestSellersOnly bool
}

// ListProducts returns the catalog filtered and sorted per the input.
func (s *CatalogService) ListProducts(ctx context.Context, input ListProductsInput) ([]domain.Product, error) {
	if input.Category != "" && input.Category != "all" && !domain.IsValidCategory(input.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", input.Category))
	}
	priceRange, ok := domain.PriceBucket(input.PriceBucket)
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown price range %q", input.PriceBucket))
	}
	sortBy := domain.SortOption(input.SortBy)
	if input.SortBy == "" {
		sortBy = domain.SortBestSellers
	} else if !domain.IsValidSortOption(input.SortBy) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown sort option %q", input.SortBy))
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "list products")
	}

	filtered := domain.FilterProducts(products, domain.ProductFilter{
		Query:           input.Query,
		Category:        input.Category,
		PriceRange:      priceRange,
		BestSellersOnly: input.BestSellersOnly,
	})
	domain.SortProducts(filtered, sortBy)
	return filtered, nil
}

// GetProduct retrieves a single product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	return s.catalog.GetByID(ctx, id)
}

// ListFAQs returns the static FAQ entries.
func (s *CatalogService) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	return s.faqs.List(ctx)
}
