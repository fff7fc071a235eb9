package text

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "Squeaky Dog Ball", "squeaky dog ball"},
		{"punctuation", "cat-toy! (feather)", "cat toy feather"},
		{"collapse whitespace", "  dog   \t bed  ", "dog bed"},
		{"only punctuation", "!!!", ""},
		{"digits kept", "2-pack toys", "2 pack toys"},
		{"underscore kept", "tug_rope", "tug_rope"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Squeaky Dog-Ball!")
	want := []string{"squeaky", "dog", "ball"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}

	if toks := Tokenize("  !! "); toks != nil {
		t.Errorf("expected nil tokens for punctuation-only input, got %v", toks)
	}
}

func TestMatchScore_Substring(t *testing.T) {
	if got := MatchScore("dog", "squeaky dog ball"); got != 1.0 {
		t.Errorf("substring match = %v, want 1.0", got)
	}
	// Normalization happens before matching
	if got := MatchScore("DOG!", "Squeaky Dog Ball"); got != 1.0 {
		t.Errorf("normalized substring match = %v, want 1.0", got)
	}
}

func TestMatchScore_WordOverlap(t *testing.T) {
	// "dog collar" vs text containing "dog" but not "collar", no substring:
	// 1 of 2 query words present -> 0.8 + 0.5*0.2 = 0.9
	got := MatchScore("dog collar", "ball for a dog")
	if math.Abs(got-0.9) > 1e-9 {
		t.Errorf("word overlap score = %v, want 0.9", got)
	}

	// All words present but not contiguous -> 0.8 + 1.0*0.2 = 1.0
	got = MatchScore("dog ball", "ball for a dog")
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("full word overlap score = %v, want 1.0", got)
	}
}

func TestMatchScore_FuzzyFallback(t *testing.T) {
	// No shared words: falls back to sequence ratio, strictly below 0.8.
	got := MatchScore("dgo", "dog")
	if got <= 0 || got >= 0.8 {
		t.Errorf("fuzzy score = %v, want in (0, 0.8)", got)
	}
}

func TestMatchScore_Empty(t *testing.T) {
	if got := MatchScore("", "dog"); got != 0 {
		t.Errorf("empty query score = %v, want 0", got)
	}
	if got := MatchScore("dog", ""); got != 0 {
		t.Errorf("empty text score = %v, want 0", got)
	}
	if got := MatchScore("  !!", "dog"); got != 0 {
		t.Errorf("whitespace-only query score = %v, want 0", got)
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("abc", "abc"); got != 1.0 {
		t.Errorf("identical strings = %v, want 1.0", got)
	}
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings = %v, want 0", got)
	}
	// "abcd" vs "bcde": longest block "bcd" (3 chars), ratio = 2*3/8 = 0.75
	if got := Similarity("abcd", "bcde"); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Similarity(abcd, bcde) = %v, want 0.75", got)
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("both empty = %v, want 1.0", got)
	}
	if got := Similarity("a", ""); got != 0 {
		t.Errorf("one empty = %v, want 0", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"squeaky", "squeeky"},
		{"feather wand", "wand feather"},
		{"dog", "dogs"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Similarity(%q, %q)=%v != Similarity(%q, %q)=%v",
				p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}
