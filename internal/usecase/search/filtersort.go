package search

import (
	"sort"
	"strings"

	"github.com/getpawsy/pawsy/internal/domain/search/result"
	"github.com/getpawsy/pawsy/internal/domain/search/sortkey"
)

// sortResults orders results in place. Every ordering is stable so that
// equal keys keep catalog order: identical-score products must come back
// in a deterministic order.
//
// Missing (zero) prices sort as 0 for both price orderings; only the
// price_max filter treats them as maximal. See the filter package.
func sortResults(results []result.Result, key sortkey.Key) {
	switch key {
	case sortkey.Relevance:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score() > results[j].Score()
		})
	case sortkey.PriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Product().Price() < results[j].Product().Price()
		})
	case sortkey.PriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Product().Price() > results[j].Product().Price()
		})
	case sortkey.Name:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].Product().Title()) <
				strings.ToLower(results[j].Product().Title())
		})
	}
}
