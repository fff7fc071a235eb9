// Package suggest builds the derived search index and serves autocomplete
// suggestions from it.
package suggest

import (
	"strings"

	"github.com/getpawsy/pawsy/internal/domain/index"
	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/domain/text"
)

// Build derives a fresh index from the catalog. Pure and deterministic:
// the same catalog always yields an identical index. Unpublished products
// are skipped so they never surface in autocomplete.
func Build(products []product.Product) *index.Index {
	idx := index.New()

	for i := range products {
		p := &products[i]
		if !p.Published() {
			continue
		}
		id := p.ID()

		for _, token := range text.Tokenize(p.Title()) {
			if len(token) >= index.MinTermLength {
				idx.AddTerm(token, id)
			}
		}

		for _, tag := range p.Tags() {
			if norm := text.Normalize(tag); norm != "" {
				idx.AddTerm(norm, id)
			}
		}

		if slug := strings.ToLower(strings.TrimSpace(p.CategorySlug())); slug != "" {
			idx.AddCategory(slug, id)
		}

		if animal := strings.ToLower(strings.TrimSpace(p.Animal())); animal != "" {
			idx.AddAnimal(animal, id)
		}

		summary := index.Summary{Title: p.Title(), Price: p.Price()}
		if images := p.Images(); len(images) > 0 {
			summary.Image = images[0]
		}
		idx.AddProduct(id, summary)
	}

	return idx
}
