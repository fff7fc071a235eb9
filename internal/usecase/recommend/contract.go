package recommend

import (
	"context"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// Catalog supplies the candidate pool for recommendations.
type Catalog interface {
	Snapshot(ctx context.Context) ([]product.Product, error)
}
