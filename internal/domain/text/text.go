// Package text provides the normalization and fuzzy-matching primitives shared
// by relevance scoring and index building.
package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, replaces every non-alphanumeric rune with a space,
// collapses runs of whitespace, and trims. Empty input yields an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastSpace := true // swallow leading whitespace
	for _, r := range strings.ToLower(s) {
		if isAlnum(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// Tokenize normalizes s and splits it into words.
func Tokenize(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}
	return strings.Split(norm, " ")
}

// MatchScore scores how well query matches text, both normalized first.
// Exact substring containment scores 1.0. Otherwise the fraction of query
// words present in text scales into [0.8, 1.0]. Otherwise a character
// sequence similarity ratio in [0, 1) is the typo fallback.
// Either side empty scores 0.
func MatchScore(query, text string) float64 {
	query = Normalize(query)
	text = Normalize(text)
	if query == "" || text == "" {
		return 0
	}

	if strings.Contains(text, query) {
		return 1.0
	}

	queryWords := strings.Split(query, " ")
	textWords := make(map[string]struct{})
	for _, w := range strings.Split(text, " ") {
		textWords[w] = struct{}{}
	}

	matches := 0
	for _, w := range queryWords {
		if _, ok := textWords[w]; ok {
			matches++
		}
	}
	if matches > 0 {
		return 0.8 + (float64(matches)/float64(len(queryWords)))*0.2
	}

	return Similarity(query, text)
}

// Similarity computes a longest-matching-blocks sequence ratio in [0, 1]:
// twice the number of matching characters over the total length of both
// strings, with matches found by recursively splitting around the longest
// common substring (Ratcliff-Obershelp).
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := matchingChars([]rune(a), []rune(b))
	return 2.0 * float64(matched) / float64(len([]rune(a))+len([]rune(b)))
}

// matchingChars counts characters in matching blocks between a and b.
func matchingChars(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingChars(a[:ai], b[:bi])
	total += matchingChars(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the longest common substring of a and b.
// Returns its start offsets and length; earliest in a wins ties.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] = length of common suffix of a[:i+1] and b[:j+1]
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := range a {
		for j := range b {
			if a[i] != b[j] {
				cur[j+1] = 0
				continue
			}
			cur[j+1] = prev[j] + 1
			if cur[j+1] > size {
				size = cur[j+1]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
		prev, cur = cur, prev
	}

	return ai, bi, size
}

// isAlnum reports whether r is a word character: letters, digits, and
// underscore, including non-ASCII letters so accented product names survive.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
