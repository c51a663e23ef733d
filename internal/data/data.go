// Package data embeds the storefront seed data: the product catalog, the FAQ
// entries, and the initial order ledger. Every record is validated at load
// time so a malformed seed file fails startup instead of surfacing later as a
// broken response.
package data

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/vitacart/storefront/pkg/validator"

	"github.com/vitacart/storefront/internal/domain"
)

//go:embed products.json orders.json faqs.json
var files embed.FS

// Store holds the decoded and validated seed data. Orders are newest first,
// matching the ledger's display order.
type Store struct {
	Products []domain.Product
	Orders   []domain.Order
	FAQs     []domain.FAQ
}

// Load decodes and validates all embedded seed files.
func Load() (*Store, error) {
	products, err := loadProducts()
	if err != nil {
		return nil, err
	}
	orders, err := loadOrders()
	if err != nil {
		return nil, err
	}
	faqs, err := loadFAQs()
	if err != nil {
		return nil, err
	}
	return &Store{Products: products, Orders: orders, FAQs: faqs}, nil
}

func loadProducts() ([]domain.Product, error) {
	var products []domain.Product
	if err := decode("products.json", &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("products.json: catalog is empty")
	}
	seen := make(map[string]bool, len(products))
	for i := range products {
		if err := validator.Validate(&products[i]); err != nil {
			return nil, fmt.Errorf("products.json: product %q: %w", products[i].ID, err)
		}
		if seen[products[i].ID] {
			return nil, fmt.Errorf("products.json: duplicate product id %q", products[i].ID)
		}
		seen[products[i].ID] = true
	}
	return products, nil
}

func loadOrders() ([]domain.Order, error) {
	var orders []domain.Order
	if err := decode("orders.json", &orders); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(orders))
	for i := range orders {
		if err := validator.Validate(&orders[i]); err != nil {
			return nil, fmt.Errorf("orders.json: order %q: %w", orders[i].ID, err)
		}
		if seen[orders[i].ID] {
			return nil, fmt.Errorf("orders.json: duplicate order id %q", orders[i].ID)
		}
		seen[orders[i].ID] = true
		if orders[i].DateOfPurchase.IsZero() {
			return nil, fmt.Errorf("orders.json: order %q: missing date_of_purchase", orders[i].ID)
		}
	}
	return orders, nil
}

func loadFAQs() ([]domain.FAQ, error) {
	var faqs []domain.FAQ
	if err := decode("faqs.json", &faqs); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(faqs))
	for i := range faqs {
		if err := validator.Validate(&faqs[i]); err != nil {
			return nil, fmt.Errorf("faqs.json: entry %q: %w", faqs[i].ID, err)
		}
		if seen[faqs[i].ID] {
			return nil, fmt.Errorf("faqs.json: duplicate faq id %q", faqs[i].ID)
		}
		seen[faqs[i].ID] = true
	}
	return faqs, nil
}

func decode(name string, dst any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
