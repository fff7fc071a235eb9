// Package seo enriches catalog products with generated titles, meta
// descriptions, and benefit bullets, degrading to template copy when the
// AI provider is unavailable.
package seo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
)

// Result is the outcome of a single-product generation.
type Result struct {
	Product product.Product
	Source  Source
}

// BatchStats summarizes a catalog-wide regeneration.
type BatchStats struct {
	Total    int
	Provider int
	Fallback int
	Skipped  int
}

// Service generates and persists SEO content.
type Service struct {
	catalog   Catalog
	generator Generator
	logger    *zap.Logger
}

// New creates an SEO service. generator may be nil: every product then gets
// template content.
func New(catalog Catalog, generator Generator, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, generator: generator, logger: logger}
}

// GenerateFor regenerates SEO content for one product and saves the catalog.
// Provider failures degrade to the template fallback and are not errors.
func (s *Service) GenerateFor(ctx context.Context, id string) (Result, error) {
	products, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load catalog: %w", err)
	}

	target := -1
	for i := range products {
		if products[i].ID() == id {
			target = i
			break
		}
	}
	if target < 0 {
		return Result{}, domain.ErrProductNotFound
	}

	updated, source := s.generate(ctx, &products[target])
	products[target] = updated

	if err := s.catalog.Save(ctx, products); err != nil {
		return Result{}, fmt.Errorf("save catalog: %w", err)
	}
	return Result{Product: updated, Source: source}, nil
}

// GenerateAll generates SEO content for every product that has none yet and
// saves the catalog once at the end. Products already carrying a title are
// left alone; use GenerateFor to force a regeneration.
func (s *Service) GenerateAll(ctx context.Context) (BatchStats, error) {
	products, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return BatchStats{}, fmt.Errorf("load catalog: %w", err)
	}

	stats := BatchStats{Total: len(products)}
	for i := range products {
		if err := ctx.Err(); err != nil {
			return BatchStats{}, err
		}
		if products[i].SEOTitle() != "" {
			stats.Skipped++
			continue
		}
		updated, source := s.generate(ctx, &products[i])
		products[i] = updated
		if source == SourceProvider {
			stats.Provider++
		} else {
			stats.Fallback++
		}
	}

	if err := s.catalog.Save(ctx, products); err != nil {
		return BatchStats{}, fmt.Errorf("save catalog: %w", err)
	}
	return stats, nil
}

func (s *Service) generate(ctx context.Context, p *product.Product) (product.Product, Source) {
	if s.generator != nil {
		content, err := s.generator.Generate(ctx, p)
		if err == nil {
			return p.WithSEO(content.Title, content.Description, content.Bullets), SourceProvider
		}
		s.logger.Warn("seo provider failed, using template fallback",
			zap.String("product_id", p.ID()),
			zap.Error(err),
		)
	}

	content := FallbackContent(p)
	return p.WithSEO(content.Title, content.Description, content.Bullets), SourceFallback
}
