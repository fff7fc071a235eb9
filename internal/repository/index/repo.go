// Package index caches the derived search index. The cache is an
// optimization, not a contract: a missing index is reported as
// storage.ErrKeyNotFound and callers rebuild from the catalog.
package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getpawsy/pawsy/internal/domain"
	domindex "github.com/getpawsy/pawsy/internal/domain/index"
	"github.com/getpawsy/pawsy/internal/storage"
)

const indexKey = "search_index"

// store is the consumer interface for index persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// indexDTO is the stored JSON shape, matching the legacy search_index file.
type indexDTO struct {
	Terms      map[string][]string   `json:"terms"`
	Categories map[string][]string   `json:"categories"`
	Animals    map[string][]string   `json:"animals"`
	Products   map[string]summaryDTO `json:"products"`
}

type summaryDTO struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// Repo persists the derived search index.
type Repo struct {
	store store
	key   string
}

// New creates an index repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, key: keyPrefix + indexKey}
}

// Load returns the cached index. Missing cache returns storage.ErrKeyNotFound.
func (r *Repo) Load(ctx context.Context) (*domindex.Index, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: load index: %w", domain.ErrIndexUnavailable, err)
	}

	var dto indexDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		// A corrupt cache is treated as absent: the index is derived data.
		return nil, storage.ErrKeyNotFound
	}

	products := make(map[string]domindex.Summary, len(dto.Products))
	for id, s := range dto.Products {
		products[id] = domindex.Summary{Title: s.Title, Price: s.Price, Image: s.Image}
	}

	return domindex.Reconstruct(dto.Terms, dto.Categories, dto.Animals, products), nil
}

// Save replaces the cached index.
func (r *Repo) Save(ctx context.Context, idx *domindex.Index) error {
	products := make(map[string]summaryDTO, idx.ProductCount())
	for id, s := range idx.Products() {
		products[id] = summaryDTO{Title: s.Title, Price: s.Price, Image: s.Image}
	}

	data, err := json.Marshal(indexDTO{
		Terms:      idx.Terms(),
		Categories: idx.Categories(),
		Animals:    idx.Animals(),
		Products:   products,
	})
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: save index: %w", domain.ErrIndexUnavailable, err)
	}
	return nil
}

// Invalidate drops the cached index.
func (r *Repo) Invalidate(ctx context.Context) error {
	if err := r.store.Del(ctx, r.key); err != nil {
		return fmt.Errorf("%w: invalidate index: %w", domain.ErrIndexUnavailable, err)
	}
	return nil
}
