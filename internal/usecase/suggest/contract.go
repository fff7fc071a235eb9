package suggest

import (
	"context"

	"github.com/getpawsy/pawsy/internal/domain/index"
	"github.com/getpawsy/pawsy/internal/domain/product"
)

// Catalog supplies the products the index is derived from.
type Catalog interface {
	Snapshot(ctx context.Context) ([]product.Product, error)
}

// Cache persists the derived index between rebuilds.
type Cache interface {
	Load(ctx context.Context) (*index.Index, error)
	Save(ctx context.Context, idx *index.Index) error
	Invalidate(ctx context.Context) error
}
