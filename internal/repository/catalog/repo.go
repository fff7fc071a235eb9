// Package catalog persists the product catalog as a single wholesale-loaded
// document, giving every caller an independent copy-on-read snapshot.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/storage"
)

const catalogKey = "catalog"

// store is the consumer interface for catalog persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo implements the catalog provider contracts of the usecase layer.
type Repo struct {
	store store
	key   string
}

// New creates a catalog repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, key: keyPrefix + catalogKey}
}

// Snapshot loads the full catalog. A missing key is an empty catalog, not an
// error; I/O failures surface as ErrCatalogUnavailable so callers can tell
// "no matches" from "store down".
func (r *Repo) Snapshot(ctx context.Context) ([]product.Product, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: load catalog: %w", domain.ErrCatalogUnavailable, err)
	}

	var dtos []productDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %w", domain.ErrCatalogUnavailable, err)
	}

	products := make([]product.Product, 0, len(dtos))
	for _, d := range dtos {
		if d.ID == "" {
			continue // legacy files contain placeholder rows without ids
		}
		products = append(products, fromDTO(d))
	}
	return products, nil
}

// Save replaces the full catalog.
func (r *Repo) Save(ctx context.Context, products []product.Product) error {
	dtos := make([]productDTO, len(products))
	for i := range products {
		dtos[i] = toDTO(&products[i])
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: save catalog: %w", domain.ErrCatalogUnavailable, err)
	}
	return nil
}

// Get returns a single product by id.
func (r *Repo) Get(ctx context.Context, id string) (product.Product, error) {
	products, err := r.Snapshot(ctx)
	if err != nil {
		return product.Product{}, err
	}
	for i := range products {
		if products[i].ID() == id {
			return products[i], nil
		}
	}
	return product.Product{}, domain.ErrProductNotFound
}
