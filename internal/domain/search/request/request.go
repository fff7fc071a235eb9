// Package request defines the validated search request.
package request

import (
	"fmt"

	"github.com/getpawsy/pawsy/internal/domain/search/filter"
	"github.com/getpawsy/pawsy/internal/domain/search/sortkey"
)

const (
	// DefaultLimit is the result cap used when the caller passes 0.
	DefaultLimit = 50
	// MaxLimit is the result cap the API boundary enforces unless
	// configuration overrides it.
	MaxLimit = 200
)

// Request is a validated search request (immutable value object).
type Request struct {
	query string
	f     filter.Filter
	sort  sortkey.Key
	limit int
}

// New validates and creates a Request. limit 0 means DefaultLimit; the
// maximum is enforced at the API boundary, where it is configurable.
func New(query string, f filter.Filter, sort sortkey.Key, limit int) (Request, error) {
	if limit < 0 {
		return Request{}, fmt.Errorf("limit must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if sort == "" {
		sort = sortkey.Relevance
	}
	return Request{query: query, f: f, sort: sort, limit: limit}, nil
}

// Query returns the raw query text.
func (r *Request) Query() string { return r.query }

// Filter returns the filter predicate set.
func (r *Request) Filter() filter.Filter { return r.f }

// Sort returns the requested ordering.
func (r *Request) Sort() sortkey.Key { return r.sort }

// Limit returns the result cap.
func (r *Request) Limit() int { return r.limit }
