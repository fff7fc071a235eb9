package seo

import (
	"context"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// Content is generated SEO copy for one product.
type Content struct {
	Title       string
	Description string
	Bullets     []string
}

// Source reports which generator produced the content.
type Source string

const (
	// SourceProvider means the AI provider generated the content.
	SourceProvider Source = "provider"
	// SourceFallback means the deterministic template generated it.
	SourceFallback Source = "fallback"
)

// Generator produces SEO content from product attributes.
type Generator interface {
	Generate(ctx context.Context, p *product.Product) (Content, error)
}

// Catalog is the product store the service reads from and writes back to.
type Catalog interface {
	Snapshot(ctx context.Context) ([]product.Product, error)
	Save(ctx context.Context, products []product.Product) error
}
