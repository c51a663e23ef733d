package service

import (
	"io"
	"log/slog"

	"github.com/vitacart/storefront/internal/domain"
	"github.com/vitacart/storefront/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Daily Multivitamin", Description: "Complete daily nutrition", Category: domain.CategoryMultivitamins, Price: 24.99, IsBestSeller: true, Stock: 10},
		{ID: "p2", Name: "Vitamin C 1000mg", Description: "Immune support", Category: domain.CategoryMultivitamins, Price: 19.99, Stock: 10},
		{ID: "p3", Name: "Omega-3 Fish Oil", Description: "Heart and brain health", Category: domain.CategoryOmega, Price: 29.99, IsBestSeller: true, Stock: 10},
		{ID: "p4", Name: "Whey Protein Isolate", Description: "Muscle recovery", Category: domain.CategoryProtein, Price: 54.99, Stock: 10},
	}
}

func testCatalogRepo() *memory.CatalogRepository {
	return memory.NewCatalogRepository(testProducts())
}

func testCustomer() domain.CustomerDetails {
	return domain.CustomerDetails{
		FirstName: "Sarah",
		LastName:  "Johnson",
		Email:     "sarah.johnson@example.com",
		Phone:     "(212) 555-0117",
		Address:   "1550 Riverside Drive",
		City:      "New York",
		State:     "NY",
		ZipCode:   "10032",
		Country:   "United States",
	}
}
