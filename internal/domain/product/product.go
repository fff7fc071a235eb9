// Package product defines the catalog's central aggregate.
package product

import "fmt"

// Badges that mark high-demand products for merchandising boosts.
const (
	BadgeBestseller = "Bestseller"
	BadgeHot        = "Hot"
	BadgeNew        = "New"
	BadgeTrending   = "Trending"
)

// Fields carries every product attribute for construction and hydration.
type Fields struct {
	ID             string
	Title          string
	Description    string
	SEOTitle       string
	SEODescription string
	Bullets        []string
	Tags           []string
	Category       string
	CategorySlug   string
	ProductType    string
	Animal         string
	Price          float64
	Images         []string
	Rating         float64
	ReviewsCount   int
	Stock          int
	Published      bool
	Badge          string
	IsBundle       bool
	SupplierSKU    string
}

// Product is an immutable catalog record. Scoring never mutates it.
type Product struct {
	f Fields
}

// New validates and creates a Product.
func New(f Fields) (Product, error) {
	if f.ID == "" {
		return Product{}, fmt.Errorf("product ID is required")
	}
	if f.Title == "" {
		return Product{}, fmt.Errorf("product title is required")
	}
	if f.Price < 0 {
		return Product{}, fmt.Errorf("product price must be non-negative, got %v", f.Price)
	}
	if f.Rating < 0 || f.Rating > 5 {
		return Product{}, fmt.Errorf("product rating must be in [0, 5], got %v", f.Rating)
	}
	if f.Stock < 0 {
		return Product{}, fmt.Errorf("product stock must be non-negative, got %d", f.Stock)
	}
	return Product{f: cloneFields(f)}, nil
}

// Reconstruct creates a Product without validation (storage hydration).
func Reconstruct(f Fields) Product {
	return Product{f: f}
}

// ID returns the stable identity key.
func (p *Product) ID() string { return p.f.ID }

// Title returns the display name, the primary relevance signal.
func (p *Product) Title() string { return p.f.Title }

// Description returns the long-form product description.
func (p *Product) Description() string { return p.f.Description }

// SEOTitle returns the generated SEO title.
func (p *Product) SEOTitle() string { return p.f.SEOTitle }

// SEODescription returns the generated meta description.
func (p *Product) SEODescription() string { return p.f.SEODescription }

// Bullets returns the benefit bullet points.
func (p *Product) Bullets() []string { return p.f.Bullets }

// Tags returns the short classification tags.
func (p *Product) Tags() []string { return p.f.Tags }

// Category returns the display category name.
func (p *Product) Category() string { return p.f.Category }

// CategorySlug returns the URL-safe category key.
func (p *Product) CategorySlug() string { return p.f.CategorySlug }

// ProductType returns the supplier-side type string.
func (p *Product) ProductType() string { return p.f.ProductType }

// Animal returns the animal classification (dog, cat, ...).
func (p *Product) Animal() string { return p.f.Animal }

// Price returns the retail price.
func (p *Product) Price() float64 { return p.f.Price }

// Images returns the ordered image references.
func (p *Product) Images() []string { return p.f.Images }

// Rating returns the average review rating in [0, 5].
func (p *Product) Rating() float64 { return p.f.Rating }

// ReviewsCount returns the number of reviews.
func (p *Product) ReviewsCount() int { return p.f.ReviewsCount }

// Stock returns the units in stock.
func (p *Product) Stock() int { return p.f.Stock }

// Published reports whether the product is live on the storefront.
func (p *Product) Published() bool { return p.f.Published }

// Badge returns the merchandising badge, if any.
func (p *Product) Badge() string { return p.f.Badge }

// IsBundle reports whether the product is a multi-item bundle.
func (p *Product) IsBundle() bool { return p.f.IsBundle }

// SupplierSKU returns the upstream feed identifier.
func (p *Product) SupplierSKU() string { return p.f.SupplierSKU }

// HasImages reports whether at least one image reference is present.
func (p *Product) HasImages() bool { return len(p.f.Images) > 0 }

// HasBundleTag reports whether the product carries a "bundle" tag.
func (p *Product) HasBundleTag() bool {
	for _, t := range p.f.Tags {
		if t == "bundle" {
			return true
		}
	}
	return false
}

// WithSEO returns a copy with generated SEO content applied.
func (p *Product) WithSEO(title, description string, bullets []string) Product {
	f := cloneFields(p.f)
	f.SEOTitle = title
	f.SEODescription = description
	f.Bullets = append([]string(nil), bullets...)
	return Product{f: f}
}

// WithStock returns a copy with the stock level replaced.
func (p *Product) WithStock(stock int) Product {
	f := cloneFields(p.f)
	f.Stock = stock
	return Product{f: f}
}

// Snapshot returns a copy of all fields (storage serialization).
func (p *Product) Snapshot() Fields {
	return cloneFields(p.f)
}

func cloneFields(f Fields) Fields {
	c := f
	c.Bullets = append([]string(nil), f.Bullets...)
	c.Tags = append([]string(nil), f.Tags...)
	c.Images = append([]string(nil), f.Images...)
	return c
}
