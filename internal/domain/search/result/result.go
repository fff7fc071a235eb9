// Package result defines search results and the response page.
package result

import (
	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/domain/search/filter"
	"github.com/getpawsy/pawsy/internal/domain/search/sortkey"
)

// Result is a scored product match.
type Result struct {
	p     product.Product
	score float64
}

// New creates a Result.
func New(p product.Product, score float64) Result {
	return Result{p: p, score: score}
}

// Product returns the matched product.
func (r *Result) Product() *product.Product { return &r.p }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// Page is the search response envelope. Total counts all matches after
// filtering, before the limit is applied.
type Page struct {
	Results []Result
	Total   int
	Query   string
	Filter  filter.Filter
	Sort    sortkey.Key
}
