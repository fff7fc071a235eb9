// Package filter defines the search filter predicate set.
package filter

import (
	"fmt"
	"strings"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// missingPriceMax is the sentinel a missing (zero) price compares as against
// price_max. Asymmetric with the 0 used for price_min on purpose: the legacy
// storefront behaves this way and callers depend on it.
const missingPriceMax = 999999

// Filter narrows a matched product set. The zero value matches everything.
type Filter struct {
	category  string
	animal    string
	priceMin  *float64
	priceMax  *float64
	hasImages bool
}

// New validates and creates a Filter. Price bounds must be non-negative and
// ordered; violations are rejected here so they never reach the scorer.
func New(category, animal string, priceMin, priceMax *float64, hasImages bool) (Filter, error) {
	if priceMin != nil && *priceMin < 0 {
		return Filter{}, fmt.Errorf("price_min must be non-negative, got %v", *priceMin)
	}
	if priceMax != nil && *priceMax < 0 {
		return Filter{}, fmt.Errorf("price_max must be non-negative, got %v", *priceMax)
	}
	if priceMin != nil && priceMax != nil && *priceMin > *priceMax {
		return Filter{}, fmt.Errorf("price_min %v exceeds price_max %v", *priceMin, *priceMax)
	}
	return Filter{
		category:  strings.ToLower(strings.TrimSpace(category)),
		animal:    strings.ToLower(strings.TrimSpace(animal)),
		priceMin:  priceMin,
		priceMax:  priceMax,
		hasImages: hasImages,
	}, nil
}

// Category returns the category substring predicate.
func (f Filter) Category() string { return f.category }

// Animal returns the exact-match animal predicate.
func (f Filter) Animal() string { return f.animal }

// PriceMin returns the inclusive lower price bound, if set.
func (f Filter) PriceMin() *float64 { return f.priceMin }

// PriceMax returns the inclusive upper price bound, if set.
func (f Filter) PriceMax() *float64 { return f.priceMax }

// HasImages reports whether only products with images pass.
func (f Filter) HasImages() bool { return f.hasImages }

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return f.category == "" && f.animal == "" &&
		f.priceMin == nil && f.priceMax == nil && !f.hasImages
}

// Matches reports whether p passes every set predicate.
func (f Filter) Matches(p *product.Product) bool {
	if f.category != "" {
		slug := strings.ToLower(p.CategorySlug())
		ptype := strings.ToLower(p.ProductType())
		if !strings.Contains(slug, f.category) && !strings.Contains(ptype, f.category) {
			return false
		}
	}

	if f.animal != "" && strings.ToLower(p.Animal()) != f.animal {
		return false
	}

	if f.priceMin != nil && p.Price() < *f.priceMin {
		return false
	}

	if f.priceMax != nil {
		price := p.Price()
		if price == 0 {
			price = missingPriceMax
		}
		if price > *f.priceMax {
			return false
		}
	}

	if f.hasImages && !p.HasImages() {
		return false
	}

	return true
}
