// Package search implements catalog relevance search: weighted fuzzy scoring
// over product fields, predicate filtering, and stable ordering.
package search

import (
	"context"
	"fmt"

	"github.com/getpawsy/pawsy/internal/domain/search/request"
	"github.com/getpawsy/pawsy/internal/domain/search/result"
	"github.com/getpawsy/pawsy/internal/domain/text"
)

// Service handles catalog search.
type Service struct {
	catalog  Catalog
	minScore float64
}

// New creates a search service with the default match threshold.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog, minScore: DefaultMinScore}
}

// WithMinScore overrides the match threshold.
func (s *Service) WithMinScore(minScore float64) *Service {
	if minScore > 0 {
		s.minScore = minScore
	}
	return s
}

// Search scores the catalog against the query, filters, sorts, and limits.
// Empty and whitespace-only queries match nothing: an empty string is a
// substring of every field and would make every product "relevant".
// Total counts matches after filtering, before the limit.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	page := result.Page{
		Results: []result.Result{},
		Query:   req.Query(),
		Filter:  req.Filter(),
		Sort:    req.Sort(),
	}

	if text.Normalize(req.Query()) == "" {
		return page, nil
	}

	products, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return result.Page{}, fmt.Errorf("load catalog: %w", err)
	}

	f := req.Filter()
	matched := make([]result.Result, 0, len(products))
	for i := range products {
		score := Score(&products[i], req.Query())
		if score < s.minScore {
			continue
		}
		if !f.Matches(&products[i]) {
			continue
		}
		matched = append(matched, result.New(products[i], score))
	}

	sortResults(matched, req.Sort())

	page.Total = len(matched)
	if len(matched) > req.Limit() {
		matched = matched[:req.Limit()]
	}
	page.Results = matched

	return page, nil
}
