package domain

import "strings"

// Category is the supplement category a product belongs to.
type Category string

// Product categories.
const (
	CategoryMultivitamins Category = "multivitamins"
	CategoryMinerals      Category = "minerals"
	CategoryHerbal        Category = "herbal"
	CategoryProtein       Category = "protein"
	CategoryOmega         Category = "omega"
	CategoryProbiotics    Category = "probiotics"
)

// ValidCategories returns all valid product categories.
func ValidCategories() []Category {
	return []Category{
		CategoryMultivitamins,
		CategoryMinerals,
		CategoryHerbal,
		CategoryProtein,
		CategoryOmega,
		CategoryProbiotics,
	}
}

// IsValidCategory checks if a category string is valid.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if string(c) == category {
			return true
		}
	}
	return false
}

// Product represents an immutable catalog entry. Products are loaded once at
// startup from the embedded catalog data and never mutated afterwards.
type Product struct {
	ID              string   `json:"id" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Category        Category `json:"category" validate:"required,oneof=multivitamins minerals herbal protein omega probiotics"`
	Price           float64  `json:"price" validate:"gte=0"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"long_description"`
	Benefits        []string `json:"benefits"`
	Ingredients     []string `json:"ingredients"`
	Dosage          string   `json:"dosage"`
	ImageURL        string   `json:"image_url"`
	IsBestSeller    bool     `json:"is_best_seller"`
	Stock           int      `json:"stock" validate:"gte=0"`
}

// MatchesQuery reports whether the product matches a lowercased search query
// by substring over its name or short description. An empty query matches.
func (p *Product) MatchesQuery(loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Description), loweredQuery)
}
