// Package domain holds the catalog engine's shared domain types and sentinel errors.
package domain

import "errors"

var (
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuery signals a malformed search query, filter, or sort key.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCatalogUnavailable signals that the catalog backing store failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrIndexUnavailable signals that the search index could not be loaded or rebuilt.
	ErrIndexUnavailable = errors.New("search index unavailable")
	// ErrContentProvider signals an SEO content provider failure.
	ErrContentProvider = errors.New("content provider error")
	// ErrFeedUnavailable signals a supplier feed failure.
	ErrFeedUnavailable = errors.New("supplier feed unavailable")
)
