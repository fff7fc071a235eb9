// Package importer pulls the supplier product feed, maps feed items into
// catalog products with retail pricing, and merges them into the catalog.
package importer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/domain/text"
)

// defaultStock is the stock level assigned to imported products. The feed
// carries no inventory numbers; dropshipped items are restocked upstream.
const defaultStock = 50

// DefaultPageSize is the feed page size used when the caller passes 0.
const DefaultPageSize = 100

// Stats summarizes one import run.
type Stats struct {
	Fetched  int
	Created  int
	Updated  int
	Skipped  int
	Products int
}

// Service imports supplier feed items into the catalog.
type Service struct {
	supplier Supplier
	catalog  Catalog
	indexer  Indexer
	markup   float64
	pageSize int
	logger   *zap.Logger
}

// New creates an import service. markup scales supplier cost before the
// retail pricing tiers; 0 means no extra markup.
func New(supplier Supplier, catalog Catalog, indexer Indexer, markup float64, pageSize int, logger *zap.Logger) *Service {
	if markup <= 0 {
		markup = 1.0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		supplier: supplier,
		catalog:  catalog,
		indexer:  indexer,
		markup:   markup,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Run pulls the whole feed page by page, merges it into the catalog, and
// invalidates the search index. Malformed feed items are skipped and
// counted, never fatal.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	existing, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load catalog: %w", err)
	}

	bySKU := make(map[string]int, len(existing))
	byID := make(map[string]int, len(existing))
	for i := range existing {
		if sku := existing[i].SupplierSKU(); sku != "" {
			bySKU[sku] = i
		}
		byID[existing[i].ID()] = i
	}

	var stats Stats
	for page := 1; ; page++ {
		items, err := s.supplier.Fetch(ctx, page, s.pageSize)
		if err != nil {
			return Stats{}, fmt.Errorf("%w: fetch page %d: %w", domain.ErrFeedUnavailable, page, err)
		}
		if len(items) == 0 {
			break
		}
		stats.Fetched += len(items)

		for _, item := range items {
			p, err := s.mapItem(item)
			if err != nil {
				stats.Skipped++
				s.logger.Warn("skipping malformed feed item",
					zap.String("feed_id", item.ID),
					zap.Error(err),
				)
				continue
			}

			if i, ok := lookup(bySKU, p.SupplierSKU(), byID, p.ID()); ok {
				// Keep the existing catalog identity on re-import.
				updated := product.Reconstruct(mergeFields(&existing[i], &p))
				existing[i] = updated
				stats.Updated++
				continue
			}

			existing = append(existing, p)
			byID[p.ID()] = len(existing) - 1
			if sku := p.SupplierSKU(); sku != "" {
				bySKU[sku] = len(existing) - 1
			}
			stats.Created++
		}

		if len(items) < s.pageSize {
			break
		}
	}

	if err := s.catalog.Save(ctx, existing); err != nil {
		return Stats{}, fmt.Errorf("save catalog: %w", err)
	}
	if err := s.indexer.Invalidate(ctx); err != nil {
		s.logger.Warn("index invalidation failed after import", zap.Error(err))
	}

	stats.Products = len(existing)
	return stats, nil
}

func (s *Service) mapItem(item FeedItem) (product.Product, error) {
	if strings.TrimSpace(item.Name) == "" {
		return product.Product{}, fmt.Errorf("feed item has no name")
	}
	if item.Price <= 0 {
		return product.Product{}, fmt.Errorf("feed item has price %v", item.Price)
	}

	id := item.ID
	if id == "" {
		id = uuid.NewString()
	}

	category := item.Category
	if category == "" {
		category = "Accessories"
	}
	slug := slugify(category)
	animal := animalFor(category)

	f := product.Fields{
		ID:           id,
		Title:        item.Name,
		Description:  item.Description,
		Tags:         []string{animal, slug},
		Category:     category,
		CategorySlug: slug,
		Animal:       animal,
		Price:        retailPrice(item.Price * s.markup),
		Stock:        defaultStock,
		Published:    true,
		SupplierSKU:  item.SKU,
	}
	if item.Image != "" {
		f.Images = []string{item.Image}
	}

	return product.New(f)
}

// retailPrice applies the tiered markup and rounds to a .99 price point.
// Cheap items carry the largest multiple.
func retailPrice(cost float64) float64 {
	var markup float64
	switch {
	case cost < 10:
		markup = 2.5
	case cost <= 30:
		markup = 2.0
	default:
		markup = 1.5
	}
	return math.Floor(cost*markup) + 0.99
}

func animalFor(category string) string {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "dog"):
		return "dog"
	case strings.Contains(lower, "cat"):
		return "cat"
	default:
		return "pet"
	}
}

func slugify(s string) string {
	return strings.ReplaceAll(text.Normalize(s), " ", "-")
}

// mergeFields overlays freshly imported attributes on an existing product,
// preserving its identity and storefront state.
func mergeFields(existing, imported *product.Product) product.Fields {
	f := imported.Snapshot()
	f.ID = existing.ID()
	f.SEOTitle = existing.SEOTitle()
	f.SEODescription = existing.SEODescription()
	f.Bullets = existing.Bullets()
	f.Rating = existing.Rating()
	f.ReviewsCount = existing.ReviewsCount()
	f.Badge = existing.Badge()
	f.Published = existing.Published()
	return f
}

func lookup(bySKU map[string]int, sku string, byID map[string]int, id string) (int, bool) {
	if sku != "" {
		if i, ok := bySKU[sku]; ok {
			return i, true
		}
	}
	i, ok := byID[id]
	return i, ok
}
