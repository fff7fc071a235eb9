package index

import "testing"

func TestAddTerm_Dedupes(t *testing.T) {
	idx := New()
	idx.AddTerm("ball", "p1")
	idx.AddTerm("ball", "p1")
	idx.AddTerm("ball", "p2")

	if got := idx.Postings("ball"); len(got) != 2 {
		t.Errorf("expected 2 postings, got %v", got)
	}
}

func TestSuggestionsFor_RankedByCount(t *testing.T) {
	idx := New()
	for _, id := range []string{"p1", "p2", "p3"} {
		idx.AddTerm("ball", id)
	}
	idx.AddTerm("balm", "p1")
	idx.AddTerm("bandana", "p1")
	idx.AddTerm("collar", "p1")

	got := idx.SuggestionsFor("ba", 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", got)
	}
	if got[0].Term != "ball" || got[0].Count != 3 {
		t.Errorf("expected ball(3) first, got %+v", got[0])
	}
	// Equal counts break ties alphabetically
	if got[1].Term != "balm" || got[2].Term != "bandana" {
		t.Errorf("expected alphabetical tie-break, got %+v", got[1:])
	}
}

func TestSuggestionsFor_Limit(t *testing.T) {
	idx := New()
	idx.AddTerm("ball", "p1")
	idx.AddTerm("balm", "p2")

	if got := idx.SuggestionsFor("ba", 1); len(got) != 1 {
		t.Errorf("expected 1 suggestion, got %v", got)
	}
}

func TestSuggestionsFor_EmptyPrefix(t *testing.T) {
	idx := New()
	idx.AddTerm("ball", "p1")

	if got := idx.SuggestionsFor("", 5); got != nil {
		t.Errorf("expected no suggestions for empty prefix, got %v", got)
	}
}

func TestReconstruct(t *testing.T) {
	idx := Reconstruct(
		map[string][]string{"ball": {"p1"}},
		map[string][]string{"toys": {"p1"}},
		map[string][]string{"dog": {"p1"}},
		map[string]Summary{"p1": {Title: "Dog Ball", Price: 8}},
	)

	if idx.TermCount() != 1 || idx.ProductCount() != 1 {
		t.Errorf("unexpected counts: terms=%d products=%d", idx.TermCount(), idx.ProductCount())
	}
	if len(idx.Categories()["toys"]) != 1 || len(idx.Animals()["dog"]) != 1 {
		t.Error("classification postings not hydrated")
	}
}
