package health

import (
	"context"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// StorePinger checks backing store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks that the catalog loads and decodes.
type CatalogChecker interface {
	Snapshot(ctx context.Context) ([]product.Product, error)
}
