package catalog

import "github.com/getpawsy/pawsy/internal/domain/product"

// productDTO is the stored JSON shape of a product. Field names match the
// legacy storefront files so an existing catalog loads unchanged.
type productDTO struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	SEOTitle       string   `json:"seo_title,omitempty"`
	SEODescription string   `json:"seo_description,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Category       string   `json:"category,omitempty"`
	CategorySlug   string   `json:"category_slug,omitempty"`
	ProductType    string   `json:"product_type,omitempty"`
	Animal         string   `json:"animal,omitempty"`
	Price          float64  `json:"price"`
	Images         []string `json:"images,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	ReviewsCount   int      `json:"reviews_count,omitempty"`
	Stock          int      `json:"stock"`
	Published      *bool    `json:"published,omitempty"`
	Badge          string   `json:"badge,omitempty"`
	IsBundle       bool     `json:"is_bundle,omitempty"`
	SupplierSKU    string   `json:"supplier_sku,omitempty"`
}

func toDTO(p *product.Product) productDTO {
	f := p.Snapshot()
	published := f.Published
	return productDTO{
		ID:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		SEOTitle:       f.SEOTitle,
		SEODescription: f.SEODescription,
		Bullets:        f.Bullets,
		Tags:           f.Tags,
		Category:       f.Category,
		CategorySlug:   f.CategorySlug,
		ProductType:    f.ProductType,
		Animal:         f.Animal,
		Price:          f.Price,
		Images:         f.Images,
		Rating:         f.Rating,
		ReviewsCount:   f.ReviewsCount,
		Stock:          f.Stock,
		Published:      &published,
		Badge:          f.Badge,
		IsBundle:       f.IsBundle,
		SupplierSKU:    f.SupplierSKU,
	}
}

func fromDTO(d productDTO) product.Product {
	published := true // legacy records omit the field and mean "live"
	if d.Published != nil {
		published = *d.Published
	}
	return product.Reconstruct(product.Fields{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		SEOTitle:       d.SEOTitle,
		SEODescription: d.SEODescription,
		Bullets:        d.Bullets,
		Tags:           d.Tags,
		Category:       d.Category,
		CategorySlug:   d.CategorySlug,
		ProductType:    d.ProductType,
		Animal:         d.Animal,
		Price:          d.Price,
		Images:         d.Images,
		Rating:         d.Rating,
		ReviewsCount:   d.ReviewsCount,
		Stock:          d.Stock,
		Published:      published,
		Badge:          d.Badge,
		IsBundle:       d.IsBundle,
		SupplierSKU:    d.SupplierSKU,
	})
}
