package importer

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
)

type mockSupplier struct {
	pages [][]FeedItem
	err   error
	calls int
}

func (m *mockSupplier) Fetch(_ context.Context, page, _ int) ([]FeedItem, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if page > len(m.pages) {
		return nil, nil
	}
	return m.pages[page-1], nil
}

type mockCatalog struct {
	products []product.Product
	saved    []product.Product
}

func (m *mockCatalog) Snapshot(_ context.Context) ([]product.Product, error) {
	return m.products, nil
}

func (m *mockCatalog) Save(_ context.Context, products []product.Product) error {
	m.saved = products
	return nil
}

type mockIndexer struct {
	invalidated bool
}

func (m *mockIndexer) Invalidate(_ context.Context) error {
	m.invalidated = true
	return nil
}

func TestRun_CreatesProducts(t *testing.T) {
	supplier := &mockSupplier{pages: [][]FeedItem{{
		{ID: "cj-1", SKU: "SKU-1", Name: "Squeaky Dog Ball", Category: "Dog Toys", Price: 5, Image: "ball.jpg"},
	}}}
	catalog := &mockCatalog{}
	indexer := &mockIndexer{}
	svc := New(supplier, catalog, indexer, 0, 0, zap.NewNop())

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Created != 1 || stats.Fetched != 1 || stats.Skipped != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if len(catalog.saved) != 1 {
		t.Fatalf("saved %d products, want 1", len(catalog.saved))
	}

	p := catalog.saved[0]
	if p.ID() != "cj-1" || p.SupplierSKU() != "SKU-1" {
		t.Errorf("identity = %s / %s", p.ID(), p.SupplierSKU())
	}
	if p.Animal() != "dog" || p.CategorySlug() != "dog-toys" {
		t.Errorf("classification = %s / %s", p.Animal(), p.CategorySlug())
	}
	if p.Price() != 12.99 { // 5 * 2.5 = 12.50, floored to the .99 point
		t.Errorf("price = %v, want 12.99", p.Price())
	}
	if p.Stock() != defaultStock || !p.Published() {
		t.Errorf("stock = %d published = %v", p.Stock(), p.Published())
	}
	if !indexer.invalidated {
		t.Error("index not invalidated after import")
	}
}

func TestRun_SkipsMalformedItems(t *testing.T) {
	supplier := &mockSupplier{pages: [][]FeedItem{{
		{ID: "ok", Name: "Cat Tree", Category: "Cat Furniture", Price: 40},
		{ID: "no-name", Name: "  ", Price: 10},
		{ID: "free", Name: "Mystery Item", Price: 0},
	}}}
	catalog := &mockCatalog{}
	svc := New(supplier, catalog, &mockIndexer{}, 0, 0, zap.NewNop())

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Created != 1 || stats.Skipped != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if len(catalog.saved) != 1 || catalog.saved[0].ID() != "ok" {
		t.Errorf("saved = %v", catalog.saved)
	}
	if got := catalog.saved[0].Price(); got != 60.99 { // 40 * 1.5
		t.Errorf("price = %v, want 60.99", got)
	}
}

func TestRun_UpdatesExistingBySKU(t *testing.T) {
	catalog := &mockCatalog{products: []product.Product{
		product.Reconstruct(product.Fields{
			ID: "local-id", Title: "Old Title", SupplierSKU: "SKU-1",
			SEOTitle: "Handwritten SEO", Rating: 4.8, ReviewsCount: 120,
			Published: true, Price: 9.99, Stock: 3,
		}),
	}}
	supplier := &mockSupplier{pages: [][]FeedItem{{
		{ID: "cj-new", SKU: "SKU-1", Name: "New Title", Category: "Dog Toys", Price: 5},
	}}}
	svc := New(supplier, catalog, &mockIndexer{}, 0, 0, zap.NewNop())

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Updated != 1 || stats.Created != 0 {
		t.Errorf("stats = %+v", stats)
	}

	p := catalog.saved[0]
	if p.ID() != "local-id" {
		t.Errorf("id = %s, re-import must keep catalog identity", p.ID())
	}
	if p.Title() != "New Title" {
		t.Errorf("title = %q, want feed title", p.Title())
	}
	if p.SEOTitle() != "Handwritten SEO" || p.Rating() != 4.8 || p.ReviewsCount() != 120 {
		t.Error("re-import dropped curated SEO or review data")
	}
}

func TestRun_AssignsIDWhenFeedHasNone(t *testing.T) {
	supplier := &mockSupplier{pages: [][]FeedItem{{
		{Name: "Tag-less Toy", Price: 5},
		{Name: "Another Toy", Price: 5},
	}}}
	catalog := &mockCatalog{}
	svc := New(supplier, catalog, &mockIndexer{}, 0, 0, zap.NewNop())

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(catalog.saved) != 2 {
		t.Fatalf("saved %d products, want 2", len(catalog.saved))
	}
	a, b := catalog.saved[0].ID(), catalog.saved[1].ID()
	if a == "" || b == "" || a == b {
		t.Errorf("generated ids = %q, %q", a, b)
	}
}

func TestRun_Paginates(t *testing.T) {
	supplier := &mockSupplier{pages: [][]FeedItem{
		{
			{ID: "1", Name: "A", Price: 5},
			{ID: "2", Name: "B", Price: 5},
		},
		{
			{ID: "3", Name: "C", Price: 5},
		},
	}}
	catalog := &mockCatalog{}
	svc := New(supplier, catalog, &mockIndexer{}, 0, 2, zap.NewNop())

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Fetched != 3 || stats.Created != 3 {
		t.Errorf("stats = %+v", stats)
	}
	// The short second page ends the run without a third fetch.
	if supplier.calls != 2 {
		t.Errorf("fetch calls = %d, want 2", supplier.calls)
	}
}

func TestRun_FeedErrorWrapped(t *testing.T) {
	supplier := &mockSupplier{err: errors.New("upstream 500")}
	svc := New(supplier, &mockCatalog{}, &mockIndexer{}, 0, 0, zap.NewNop())

	_, err := svc.Run(context.Background())
	if !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Errorf("err = %v, want ErrFeedUnavailable", err)
	}
}

func TestRetailPrice_Tiers(t *testing.T) {
	tests := []struct {
		cost float64
		want float64
	}{
		{5, 12.99},   // x2.5
		{9.99, 24.99}, // x2.5 just under the tier edge
		{10, 20.99},  // x2.0 from $10
		{30, 60.99},  // x2.0 up to $30
		{40, 60.99},  // x1.5 above $30
	}
	for _, tc := range tests {
		if got := retailPrice(tc.cost); got != tc.want {
			t.Errorf("retailPrice(%v) = %v, want %v", tc.cost, got, tc.want)
		}
	}
}

func TestAnimalFor(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Dog Toys", "dog"},
		{"Cat Furniture", "cat"},
		{"Aquarium Decor", "pet"},
		{"", "pet"},
	}
	for _, tc := range tests {
		if got := animalFor(tc.category); got != tc.want {
			t.Errorf("animalFor(%q) = %s, want %s", tc.category, got, tc.want)
		}
	}
}
