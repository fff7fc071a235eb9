package importer

import (
	"context"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// FeedItem is one raw supplier feed record.
type FeedItem struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Category    string
	Image       string
	Price       float64
	Weight      float64
}

// Supplier fetches pages of the upstream product feed. An empty page ends
// the import.
type Supplier interface {
	Fetch(ctx context.Context, page, pageSize int) ([]FeedItem, error)
}

// Catalog is the product store imports merge into.
type Catalog interface {
	Snapshot(ctx context.Context) ([]product.Product, error)
	Save(ctx context.Context, products []product.Product) error
}

// Indexer drops the derived search index after the catalog changes.
type Indexer interface {
	Invalidate(ctx context.Context) error
}
