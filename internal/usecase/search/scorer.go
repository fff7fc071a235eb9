package search

import (
	"strings"

	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/domain/text"
)

// Field weights. Title dominates; classification matches are flat bonuses.
const (
	weightTitle         = 100
	bonusTitleSubstring = 50
	weightTag           = 20
	weightDescription   = 15
	weightBullet        = 10
	bonusCategory       = 25
	bonusAnimal         = 30
	bonusImages         = 5
)

// DefaultMinScore is the threshold below which a product is not a match.
const DefaultMinScore = 10

// Score computes the relevance of p for query. Pure and total: any product
// and any query yield a finite non-negative score. query is expected to be
// non-empty after normalization; the service short-circuits empty queries.
func Score(p *product.Product, query string) float64 {
	normQuery := text.Normalize(query)
	if normQuery == "" {
		return 0
	}

	score := 0.0

	normTitle := text.Normalize(p.Title())
	score += text.MatchScore(normQuery, normTitle) * weightTitle
	if strings.Contains(normTitle, normQuery) {
		score += bonusTitleSubstring
	}

	for _, tag := range p.Tags() {
		score += text.MatchScore(normQuery, tag) * weightTag
	}

	score += text.MatchScore(normQuery, p.SEODescription()) * weightDescription

	for _, bullet := range p.Bullets() {
		score += text.MatchScore(normQuery, bullet) * weightBullet
	}

	if category := text.Normalize(p.Category()); category != "" &&
		strings.Contains(category, normQuery) {
		score += bonusCategory
	}

	if animal := strings.ToLower(p.Animal()); animal != "" &&
		strings.Contains(animal, normQuery) {
		score += bonusAnimal
	}

	if p.HasImages() {
		score += bonusImages
	}

	return score
}
