package suggest

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain/index"
	"github.com/getpawsy/pawsy/internal/domain/text"
	"github.com/getpawsy/pawsy/internal/storage"
)

// DefaultLimit is the suggestion count returned when the caller passes 0.
const DefaultLimit = 5

// Stats summarizes a rebuild for operators.
type Stats struct {
	Terms    int
	Products int
}

// Service serves autocomplete suggestions, rebuilding the index from the
// catalog whenever the cached copy is missing.
type Service struct {
	catalog Catalog
	cache   Cache
	logger  *zap.Logger
}

// New creates a suggestion service.
func New(catalog Catalog, cache Cache, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, cache: cache, logger: logger}
}

// Rebuild derives the index from the current catalog and replaces the cache.
func (s *Service) Rebuild(ctx context.Context) (Stats, error) {
	idx, err := s.rebuild(ctx)
	if err != nil {
		return Stats{}, err
	}
	if err := s.cache.Save(ctx, idx); err != nil {
		return Stats{}, fmt.Errorf("save index: %w", err)
	}
	return Stats{Terms: idx.TermCount(), Products: idx.ProductCount()}, nil
}

// Invalidate drops the cached index. The next Suggest call rebuilds it.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

// Suggest returns up to limit indexed terms starting with the normalized
// query, most frequent first. Empty and whitespace-only queries return
// nothing. limit 0 means DefaultLimit.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]index.Suggestion, error) {
	prefix := text.Normalize(query)
	if prefix == "" {
		return []index.Suggestion{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	idx, err := s.cache.Load(ctx)
	if errors.Is(err, storage.ErrKeyNotFound) {
		idx, err = s.rebuild(ctx)
		if err != nil {
			return nil, err
		}
		// Cache write-back is best effort: the freshly built index can
		// serve this request either way.
		if saveErr := s.cache.Save(ctx, idx); saveErr != nil {
			s.logger.Warn("index cache write failed", zap.Error(saveErr))
		}
	} else if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	suggestions := idx.SuggestionsFor(prefix, limit)
	if suggestions == nil {
		suggestions = []index.Suggestion{}
	}
	return suggestions, nil
}

func (s *Service) rebuild(ctx context.Context) (*index.Index, error) {
	products, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return Build(products), nil
}
