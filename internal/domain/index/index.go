// Package index defines the derived search index: term, category, and animal
// postings plus lightweight product summaries for autocomplete rendering.
// The index is pure derived data, safe to discard and rebuild at any time.
package index

import "sort"

// MinTermLength is the shortest title token that gets indexed.
const MinTermLength = 3

// Summary is the slice of a product the autocomplete UI needs.
type Summary struct {
	Title string
	Price float64
	Image string
}

// Suggestion is an indexed term with its postings count.
type Suggestion struct {
	Term  string
	Count int
}

// Index maps normalized terms and classification values to product ids.
type Index struct {
	terms      map[string][]string
	categories map[string][]string
	animals    map[string][]string
	products   map[string]Summary
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		terms:      make(map[string][]string),
		categories: make(map[string][]string),
		animals:    make(map[string][]string),
		products:   make(map[string]Summary),
	}
}

// Reconstruct creates an Index from stored postings (storage hydration).
func Reconstruct(
	terms, categories, animals map[string][]string, products map[string]Summary,
) *Index {
	idx := New()
	if terms != nil {
		idx.terms = terms
	}
	if categories != nil {
		idx.categories = categories
	}
	if animals != nil {
		idx.animals = animals
	}
	if products != nil {
		idx.products = products
	}
	return idx
}

// AddTerm appends id to the term's postings list. Ids are a set: a repeated
// (term, id) pair is ignored.
func (i *Index) AddTerm(term, id string) {
	i.terms[term] = appendUnique(i.terms[term], id)
}

// AddCategory appends id to the category postings list.
func (i *Index) AddCategory(category, id string) {
	i.categories[category] = appendUnique(i.categories[category], id)
}

// AddAnimal appends id to the animal postings list.
func (i *Index) AddAnimal(animal, id string) {
	i.animals[animal] = appendUnique(i.animals[animal], id)
}

// AddProduct stores the product summary.
func (i *Index) AddProduct(id string, s Summary) {
	i.products[id] = s
}

// Postings returns the product ids indexed under term.
func (i *Index) Postings(term string) []string { return i.terms[term] }

// Terms returns the full term postings map.
func (i *Index) Terms() map[string][]string { return i.terms }

// Categories returns the category postings map.
func (i *Index) Categories() map[string][]string { return i.categories }

// Animals returns the animal postings map.
func (i *Index) Animals() map[string][]string { return i.animals }

// Products returns the product summary map.
func (i *Index) Products() map[string]Summary { return i.products }

// TermCount returns the number of distinct indexed terms.
func (i *Index) TermCount() int { return len(i.terms) }

// ProductCount returns the number of indexed products.
func (i *Index) ProductCount() int { return len(i.products) }

// SuggestionsFor returns every indexed term starting with prefix, ranked by
// postings count descending with alphabetical tie-break for determinism,
// truncated to limit. An empty prefix returns nothing.
func (i *Index) SuggestionsFor(prefix string, limit int) []Suggestion {
	if prefix == "" || limit <= 0 {
		return nil
	}

	var out []Suggestion
	for term, ids := range i.terms {
		if hasPrefix(term, prefix) {
			out = append(out, Suggestion{Term: term, Count: len(ids)})
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Term < out[b].Term
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
