package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/domain/recommend"
)

// Recommendation is the ranked response. Fallback reports whether the
// popularity ranking served the request instead of the context heuristic.
type Recommendation struct {
	Products []product.Product
	Fallback bool
}

// Service ranks recommendation candidates.
type Service struct {
	catalog Catalog
}

// New creates a recommendation service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Recommend ranks catalog candidates for the request's context. A missing
// seed or a candidate set with no positive score degrades to the popularity
// fallback; Recommend never fails for lack of candidates.
func (s *Service) Recommend(ctx context.Context, req *recommend.Request) (Recommendation, error) {
	products, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return Recommendation{}, fmt.Errorf("load catalog: %w", err)
	}

	switch req.Context() {
	case recommend.ContextProduct:
		return s.forProduct(products, req), nil
	case recommend.ContextCart:
		return s.forCart(products, req), nil
	case recommend.ContextCheckout:
		return s.forCheckout(products, req), nil
	case recommend.ContextPostPurchase:
		return s.forPostPurchase(products, req), nil
	default:
		return Recommendation{Products: popular(products, req.Limit()), Fallback: true}, nil
	}
}

func (s *Service) forProduct(products []product.Product, req *recommend.Request) Recommendation {
	seed := findByID(products, req.SeedID())
	if seed == nil {
		return Recommendation{Products: popular(products, req.Limit()), Fallback: true}
	}

	var candidates []candidate
	for i := range products {
		c := &products[i]
		if c.ID() == seed.ID() || !c.Published() || c.Stock() <= 0 {
			continue
		}
		score := similarityScore(seed, c)
		if inUpsellBand(seed.Price(), c.Price()) {
			score += upsellBandBonus
		}
		candidates = append(candidates, candidate{p: *c, score: score})
	}

	return rank(candidates, products, req.Limit())
}

func (s *Service) forCart(products []product.Product, req *recommend.Request) Recommendation {
	inCart, categories, cartTags := cartSignals(products, req.Items())

	var candidates []candidate
	for i := range products {
		c := &products[i]
		if _, ok := inCart[c.ID()]; ok {
			continue
		}
		if !c.Published() || c.Stock() <= 0 {
			continue
		}
		candidates = append(candidates, candidate{p: *c, score: cartScore(c, categories, cartTags)})
	}

	return rank(candidates, products, req.Limit())
}

func (s *Service) forCheckout(products []product.Product, req *recommend.Request) Recommendation {
	inCart, _, _ := cartSignals(products, req.Items())

	var candidates []candidate
	for i := range products {
		c := &products[i]
		if _, ok := inCart[c.ID()]; ok {
			continue
		}
		if !c.Published() || c.Stock() <= 0 {
			continue
		}
		candidates = append(candidates, candidate{p: *c, score: checkoutScore(c)})
	}

	return rank(candidates, products, req.Limit())
}

func (s *Service) forPostPurchase(products []product.Product, req *recommend.Request) Recommendation {
	ordered, categories, _ := cartSignals(products, req.Items())

	var candidates []candidate
	for i := range products {
		c := &products[i]
		if _, ok := ordered[c.ID()]; ok {
			continue
		}
		if !c.Published() || c.Stock() <= 0 {
			continue
		}
		candidates = append(candidates, candidate{p: *c, score: postPurchaseScore(c, categories)})
	}

	return rank(candidates, products, req.Limit())
}

type candidate struct {
	p     product.Product
	score float64
}

// rank orders candidates by score descending, preserving catalog order on
// ties, and truncates to limit. When nothing scores above zero the
// popularity fallback takes over.
func rank(candidates []candidate, products []product.Product, limit int) Recommendation {
	best := 0.0
	for _, c := range candidates {
		if c.score > best {
			best = c.score
		}
	}
	if len(candidates) == 0 || best <= 0 {
		return Recommendation{Products: popular(products, limit), Fallback: true}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]product.Product, len(candidates))
	for i, c := range candidates {
		out[i] = c.p
	}
	return Recommendation{Products: out}
}

// popular ranks published products by rating and review volume.
func popular(products []product.Product, limit int) []product.Product {
	var candidates []candidate
	for i := range products {
		c := &products[i]
		if !c.Published() {
			continue
		}
		candidates = append(candidates, candidate{p: *c, score: popularityScore(c)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]product.Product, len(candidates))
	for i, c := range candidates {
		out[i] = c.p
	}
	return out
}

// cartSignals resolves cart items against the catalog and aggregates the
// exclusion set, category set, and tag union. Items referencing unknown
// products still count toward exclusion but contribute no signals.
func cartSignals(
	products []product.Product, items []recommend.CartItem,
) (ids, categories, tags map[string]struct{}) {
	ids = make(map[string]struct{}, len(items))
	categories = make(map[string]struct{})
	tags = make(map[string]struct{})

	for _, item := range items {
		ids[item.ProductID] = struct{}{}
		p := findByID(products, item.ProductID)
		if p == nil {
			continue
		}
		if p.Category() != "" {
			categories[p.Category()] = struct{}{}
		}
		for _, t := range p.Tags() {
			tags[t] = struct{}{}
		}
	}
	return ids, categories, tags
}

func findByID(products []product.Product, id string) *product.Product {
	if id == "" {
		return nil
	}
	for i := range products {
		if products[i].ID() == id {
			return &products[i]
		}
	}
	return nil
}
