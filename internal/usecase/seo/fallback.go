package seo

import (
	"fmt"
	"strings"

	"github.com/getpawsy/pawsy/internal/domain/product"
)

const (
	maxTitleLen       = 60
	maxDescriptionLen = 160
)

// FallbackContent builds deterministic template SEO copy. It is the terminal
// generator: it never fails, so products always end up with usable metadata
// even when the AI provider is down or unconfigured.
func FallbackContent(p *product.Product) Content {
	category := strings.ToLower(p.Category())

	description := p.Description()
	if description == "" {
		description = fmt.Sprintf(
			"Shop %s at GetPawsy. Premium quality %s for your pet.", p.Title(), category,
		)
	}

	return Content{
		Title:       truncate(p.Title()+" | Premium Pet Products | GetPawsy", maxTitleLen),
		Description: truncate(description, maxDescriptionLen),
		Bullets: []string{
			fmt.Sprintf("Premium quality %s", category),
			"Durable and safe materials",
			"Fast US shipping",
			"Satisfaction guaranteed",
		},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
