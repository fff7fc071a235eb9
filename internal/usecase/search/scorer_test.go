package search

import (
	"testing"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

func TestScore_NonNegative(t *testing.T) {
	products := []product.Product{
		product.Reconstruct(product.Fields{ID: "1", Title: "Squeaky Dog Ball", Tags: []string{"dog", "toy"}}),
		product.Reconstruct(product.Fields{ID: "2", Title: "Cat Feather Wand"}),
		product.Reconstruct(product.Fields{ID: "3", Title: "x"}),
		product.Reconstruct(product.Fields{ID: "4", Title: "Bed", Images: []string{"a.jpg"}}),
	}
	queries := []string{"", "dog", "dgo bll", "zzzzz", "dog toy bed wand", "!!!"}

	for _, p := range products {
		for _, q := range queries {
			if got := Score(&p, q); got < 0 {
				t.Errorf("Score(%s, %q) = %v, want >= 0", p.ID(), q, got)
			}
		}
	}
}

func TestScore_TitleSubstringDominates(t *testing.T) {
	p := product.Reconstruct(product.Fields{ID: "1", Title: "Squeaky Dog Ball"})

	// Query is a literal substring of the normalized title: full title weight
	// plus the flat substring bonus.
	got := Score(&p, "dog ball")
	if got != 150 {
		t.Errorf("substring query score = %v, want 150 (100 + 50 bonus)", got)
	}
}

func TestScore_ExactComponentSum(t *testing.T) {
	p := product.Reconstruct(product.Fields{
		ID:       "1",
		Title:    "Dog Ball",
		Tags:     []string{"dog"},
		Category: "Toys",
		Animal:   "dog",
	})

	// title substring: 100 + 50; tag substring: 20; animal substring: 30.
	got := Score(&p, "dog")
	if got != 200 {
		t.Errorf("Score = %v, want 200", got)
	}
}

func TestScore_ImageBonus(t *testing.T) {
	with := product.Reconstruct(product.Fields{ID: "1", Title: "Dog Ball", Images: []string{"a.jpg"}})
	without := product.Reconstruct(product.Fields{ID: "2", Title: "Dog Ball"})

	diff := Score(&with, "dog") - Score(&without, "dog")
	if diff != bonusImages {
		t.Errorf("image bonus = %v, want %v", diff, float64(bonusImages))
	}
}

func TestScore_CategoryBonus(t *testing.T) {
	in := product.Reconstruct(product.Fields{ID: "1", Title: "Fluffy Bed", Category: "Dog Beds"})
	out := product.Reconstruct(product.Fields{ID: "2", Title: "Fluffy Bed", Category: "Cat Beds"})

	diff := Score(&in, "dog") - Score(&out, "dog")
	if diff != bonusCategory {
		t.Errorf("category bonus = %v, want %v", diff, float64(bonusCategory))
	}
}

func TestScore_EmptyQuery(t *testing.T) {
	p := product.Reconstruct(product.Fields{
		ID: "1", Title: "Dog Ball", Images: []string{"a.jpg"}, Category: "Toys",
	})

	for _, q := range []string{"", "   ", "!!!"} {
		if got := Score(&p, q); got != 0 {
			t.Errorf("Score with query %q = %v, want 0", q, got)
		}
	}
}

func TestScore_BulletsAndDescription(t *testing.T) {
	p := product.Reconstruct(product.Fields{
		ID:             "1",
		Title:          "Plush Bed",
		SEODescription: "Cozy dog bed for large breeds",
		Bullets:        []string{"Perfect for dogs", "Machine washable"},
	})

	base := product.Reconstruct(product.Fields{ID: "2", Title: "Plush Bed"})

	if Score(&p, "dog") <= Score(&base, "dog") {
		t.Error("description and bullets must contribute to the score")
	}
}

func TestScore_PureFunction(t *testing.T) {
	p := product.Reconstruct(product.Fields{ID: "1", Title: "Dog Ball", Tags: []string{"dog"}})

	first := Score(&p, "dog ball")
	for i := 0; i < 5; i++ {
		if got := Score(&p, "dog ball"); got != first {
			t.Fatalf("score not deterministic: %v != %v", got, first)
		}
	}
}
