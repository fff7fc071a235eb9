// Package recommend ranks upsell and related-product candidates with
// context-specific heuristics, falling back to popularity ranking.
package recommend

import (
	"math"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

// similarityScore rates how related candidate c is to the seed product.
// Category equality, tag-set Jaccard overlap, price proximity, and the
// candidate's own rating all contribute.
func similarityScore(seed, c *product.Product) float64 {
	score := 0.0

	if seed.Category() != "" && seed.Category() == c.Category() {
		score += 30
	}

	score += jaccard(tagSet(seed.Tags()), tagSet(c.Tags())) * 40

	// Price proximity: full 20 points at equal prices, fading to zero at a
	// 50% relative difference.
	if seed.Price() > 0 && c.Price() > 0 {
		diff := math.Abs(seed.Price()-c.Price()) / math.Max(seed.Price(), c.Price())
		score += math.Max(0, 20-diff*40)
	}

	switch {
	case c.Rating() >= 4.5:
		score += 10
	case c.Rating() >= 4.0:
		score += 5
	}

	return score
}

// inUpsellBand reports whether the candidate price sits strictly above the
// seed price but within 1.5x of it.
func inUpsellBand(seedPrice, candidatePrice float64) bool {
	return candidatePrice > seedPrice && candidatePrice <= seedPrice*1.5
}

// upsellBandBonus is the flat bonus for candidates in the upsell band.
const upsellBandBonus = 15

// cartScore rates a candidate against the aggregated cart signals.
func cartScore(c *product.Product, categories, cartTags map[string]struct{}) float64 {
	score := 0.0

	if _, ok := categories[c.Category()]; ok && c.Category() != "" {
		score += 20
	}

	tags := tagSet(c.Tags())
	if intersects(tags, cartTags) {
		score += jaccard(tags, cartTags) * 30
	}

	switch {
	case c.Price() < 20:
		score += 25
	case c.Price() < 40:
		score += 15
	}

	switch c.Badge() {
	case product.BadgeBestseller, product.BadgeHot, product.BadgeTrending:
		score += 10
	}

	if c.Rating() >= 4.5 {
		score += 10
	}

	return score
}

// checkoutScore rates a candidate as a last-chance add-on: cheap, proven,
// and bundle-friendly items win.
func checkoutScore(c *product.Product) float64 {
	score := 0.0

	switch {
	case c.Price() <= 15:
		score += 40
	case c.Price() <= 25:
		score += 20
	}

	switch c.Badge() {
	case product.BadgeBestseller, product.BadgeHot:
		score += 20
	}

	if c.Rating() >= 4.7 {
		score += 15
	}

	if c.HasBundleTag() || c.IsBundle() {
		score += 10
	}

	return score
}

// postPurchaseScore rates a follow-up candidate after an order. The rating
// term is centered on 4.0, so poorly rated products score negative and fall
// through to the popularity fallback.
func postPurchaseScore(c *product.Product, categories map[string]struct{}) float64 {
	score := 0.0

	if _, ok := categories[c.Category()]; ok && c.Category() != "" {
		score += 25
	}

	switch c.Badge() {
	case product.BadgeBestseller, product.BadgeNew, product.BadgeTrending:
		score += 15
	}

	score += (c.Rating() - 4) * 20

	return score
}

// popularityScore is the terminal fallback ranking.
func popularityScore(c *product.Product) float64 {
	score := c.Rating()*20 + float64(c.ReviewsCount())/10
	if c.Badge() == product.BadgeBestseller {
		score += 50
	}
	return score
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func intersects(a, b map[string]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}
