// Package sortkey enumerates the supported result orderings.
package sortkey

import "fmt"

// Key is a result ordering.
type Key string

const (
	// Relevance orders by descending relevance score (the default).
	Relevance Key = "relevance"
	// PriceLow orders by ascending price; missing prices sort as 0.
	PriceLow Key = "price_low"
	// PriceHigh orders by descending price.
	PriceHigh Key = "price_high"
	// Name orders by case-insensitive title.
	Name Key = "name"
)

// Parse validates a sort key string. Empty input defaults to Relevance;
// unknown keys are rejected rather than silently reinterpreted.
func Parse(s string) (Key, error) {
	switch Key(s) {
	case "":
		return Relevance, nil
	case Relevance, PriceLow, PriceHigh, Name:
		return Key(s), nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want relevance, price_low, price_high, or name)", s)
	}
}
