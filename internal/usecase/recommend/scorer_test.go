package recommend

import (
	"math"
	"testing"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

func TestSimilarityScore_ComponentSum(t *testing.T) {
	seed := product.Reconstruct(product.Fields{
		ID: "s", Category: "toys", Tags: []string{"dog", "toy"}, Price: 10,
	})
	c := product.Reconstruct(product.Fields{
		ID: "c", Category: "toys", Tags: []string{"dog", "toy"}, Price: 10, Rating: 4.5,
	})

	// category 30 + full tag overlap 40 + equal price 20 + rating 10
	if got := similarityScore(&seed, &c); got != 100 {
		t.Errorf("similarityScore = %v, want 100", got)
	}
}

func TestSimilarityScore_PartialTagOverlap(t *testing.T) {
	seed := product.Reconstruct(product.Fields{ID: "s", Tags: []string{"dog", "toy"}})
	c := product.Reconstruct(product.Fields{ID: "c", Tags: []string{"dog", "ball"}})

	// Jaccard 1/3 over the 40-point tag weight.
	want := 40.0 / 3.0
	if got := similarityScore(&seed, &c); math.Abs(got-want) > 1e-9 {
		t.Errorf("similarityScore = %v, want %v", got, want)
	}
}

func TestSimilarityScore_PriceProximity(t *testing.T) {
	seed := product.Reconstruct(product.Fields{ID: "s", Price: 10})

	prices := []float64{10, 11, 13, 15, 20, 100}
	prev := math.Inf(1)
	for _, price := range prices {
		c := product.Reconstruct(product.Fields{ID: "c", Price: price})
		got := similarityScore(&seed, &c)
		if got > prev {
			t.Errorf("price %v scored %v, above closer price's %v", price, got, prev)
		}
		prev = got
	}

	// 50% relative difference and beyond scores zero.
	far := product.Reconstruct(product.Fields{ID: "c", Price: 20})
	if got := similarityScore(&seed, &far); got != 0 {
		t.Errorf("50%% difference scored %v, want 0", got)
	}

	// Missing prices contribute nothing either way.
	unpriced := product.Reconstruct(product.Fields{ID: "c"})
	if got := similarityScore(&seed, &unpriced); got != 0 {
		t.Errorf("missing price scored %v, want 0", got)
	}
}

func TestSimilarityScore_RatingTiers(t *testing.T) {
	seed := product.Reconstruct(product.Fields{ID: "s"})

	tests := []struct {
		rating float64
		want   float64
	}{
		{4.5, 10},
		{4.9, 10},
		{4.0, 5},
		{4.4, 5},
		{3.9, 0},
		{0, 0},
	}
	for _, tc := range tests {
		c := product.Reconstruct(product.Fields{ID: "c", Rating: tc.rating})
		if got := similarityScore(&seed, &c); got != tc.want {
			t.Errorf("rating %v scored %v, want %v", tc.rating, got, tc.want)
		}
	}
}

func TestInUpsellBand(t *testing.T) {
	tests := []struct {
		seed, candidate float64
		want            bool
	}{
		{10, 10, false}, // not strictly greater
		{10, 11, true},
		{10, 15, true},  // exactly 1.5x is in
		{10, 16, false}, // beyond the band
		{10, 9, false},
		{0, 5, false}, // 5 > 0 but 5 > 0*1.5
	}
	for _, tc := range tests {
		if got := inUpsellBand(tc.seed, tc.candidate); got != tc.want {
			t.Errorf("inUpsellBand(%v, %v) = %v, want %v", tc.seed, tc.candidate, got, tc.want)
		}
	}
}

func TestCheckoutScore(t *testing.T) {
	cheap := product.Reconstruct(product.Fields{
		ID: "1", Price: 12, Badge: product.BadgeHot, Rating: 4.8, Tags: []string{"bundle"},
	})
	// 40 (price <= 15) + 20 (badge) + 15 (rating >= 4.7) + 10 (bundle tag)
	if got := checkoutScore(&cheap); got != 85 {
		t.Errorf("checkoutScore = %v, want 85", got)
	}

	mid := product.Reconstruct(product.Fields{ID: "2", Price: 25})
	if got := checkoutScore(&mid); got != 20 {
		t.Errorf("checkoutScore at $25 = %v, want 20", got)
	}

	pricey := product.Reconstruct(product.Fields{ID: "3", Price: 60, IsBundle: true})
	if got := checkoutScore(&pricey); got != 10 {
		t.Errorf("checkoutScore = %v, want 10 (bundle only)", got)
	}
}

func TestPostPurchaseScore_NegativeForPoorRatings(t *testing.T) {
	categories := map[string]struct{}{"toys": {}}

	poor := product.Reconstruct(product.Fields{ID: "1", Category: "beds", Rating: 3})
	if got := postPurchaseScore(&poor, categories); got != -20 {
		t.Errorf("postPurchaseScore = %v, want -20", got)
	}

	strong := product.Reconstruct(product.Fields{
		ID: "2", Category: "toys", Badge: product.BadgeNew, Rating: 4.5,
	})
	// 25 (category) + 15 (badge) + 10 (rating term)
	if got := postPurchaseScore(&strong, categories); got != 50 {
		t.Errorf("postPurchaseScore = %v, want 50", got)
	}
}

func TestCartScore(t *testing.T) {
	categories := map[string]struct{}{"toys": {}}
	cartTags := map[string]struct{}{"dog": {}, "toy": {}}

	c := product.Reconstruct(product.Fields{
		ID: "1", Category: "toys", Tags: []string{"dog", "toy"},
		Price: 15, Badge: product.BadgeTrending, Rating: 4.6,
	})
	// 20 (category) + 30 (full tag overlap) + 25 (price < 20) + 10 (badge) + 10 (rating)
	if got := cartScore(&c, categories, cartTags); got != 95 {
		t.Errorf("cartScore = %v, want 95", got)
	}

	unrelated := product.Reconstruct(product.Fields{ID: "2", Category: "beds", Price: 50})
	if got := cartScore(&unrelated, categories, cartTags); got != 0 {
		t.Errorf("cartScore = %v, want 0", got)
	}
}

func TestPopularityScore(t *testing.T) {
	p := product.Reconstruct(product.Fields{
		ID: "1", Rating: 4.5, ReviewsCount: 200, Badge: product.BadgeBestseller,
	})
	// 4.5*20 + 200/10 + 50
	if got := popularityScore(&p); got != 160 {
		t.Errorf("popularityScore = %v, want 160", got)
	}

	plain := product.Reconstruct(product.Fields{ID: "2", Rating: 3, ReviewsCount: 10})
	if got := popularityScore(&plain); got != 61 {
		t.Errorf("popularityScore = %v, want 61", got)
	}
}
