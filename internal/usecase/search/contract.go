package search

import (
	"context"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// Catalog supplies the product snapshot a search operates on. Every call
// returns an independent copy-on-read snapshot; the service never caches.
type Catalog interface {
	Snapshot(ctx context.Context) ([]product.Product, error)
}
