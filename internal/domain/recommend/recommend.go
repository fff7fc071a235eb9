// Package recommend defines the recommendation request model.
package recommend

import "fmt"

// Context selects the scoring heuristic for a recommendation request.
type Context string

const (
	// ContextProduct recommends against a single seed product.
	ContextProduct Context = "product"
	// ContextCart recommends against the current cart contents.
	ContextCart Context = "cart"
	// ContextCheckout recommends cheap last-chance add-ons.
	ContextCheckout Context = "checkout"
	// ContextPostPurchase recommends follow-ups after an order.
	ContextPostPurchase Context = "post_purchase"
	// ContextPopular ranks by popularity only.
	ContextPopular Context = "popular"
)

const (
	// DefaultLimit is the recommendation cap used when the caller passes 0.
	DefaultLimit = 3
	// MaxLimit is the recommendation cap the API boundary enforces unless
	// configuration overrides it.
	MaxLimit = 20
)

// ParseContext validates a context string. Empty input defaults to popular.
func ParseContext(s string) (Context, error) {
	switch Context(s) {
	case "":
		return ContextPopular, nil
	case ContextProduct, ContextCart, ContextCheckout, ContextPostPurchase, ContextPopular:
		return Context(s), nil
	default:
		return "", fmt.Errorf("unknown recommendation context %q", s)
	}
}

// CartItem references a catalog product inside a cart or order.
type CartItem struct {
	ProductID string
	Quantity  int
}

// Request is a validated recommendation request.
type Request struct {
	ctx    Context
	seedID string
	items  []CartItem
	limit  int
}

// NewRequest validates and creates a Request. limit 0 means DefaultLimit;
// the maximum is enforced at the API boundary, where it is configurable.
// The product context requires a seed id; cart contexts accept empty carts
// (they degrade to the popularity fallback downstream).
func NewRequest(ctx Context, seedID string, items []CartItem, limit int) (Request, error) {
	if limit < 0 {
		return Request{}, fmt.Errorf("limit must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if ctx == ContextProduct && seedID == "" {
		return Request{}, fmt.Errorf("product context requires a product id")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return Request{}, fmt.Errorf("cart items require a product id")
		}
	}
	return Request{ctx: ctx, seedID: seedID, items: items, limit: limit}, nil
}

// Context returns the scoring context.
func (r *Request) Context() Context { return r.ctx }

// SeedID returns the seed product id (product context).
func (r *Request) SeedID() string { return r.seedID }

// Items returns the cart or order items.
func (r *Request) Items() []CartItem { return r.items }

// Limit returns the recommendation cap.
func (r *Request) Limit() int { return r.limit }
