package chi

import (
	"github.com/getpawsy/pawsy/internal/domain/recommend"
	"github.com/getpawsy/pawsy/internal/domain/search/request"
	suggestuc "github.com/getpawsy/pawsy/internal/usecase/suggest"
)

// Limits holds the operator-configurable result caps. The transport resolves
// every incoming limit against these before the request reaches a service:
// zero becomes the default, anything above the max is rejected.
type Limits struct {
	SearchDefault    int
	SearchMax        int
	SuggestDefault   int
	RecommendDefault int
	RecommendMax     int
}

// DefaultLimits returns the caps used when no configuration overrides them.
func DefaultLimits() Limits {
	return Limits{
		SearchDefault:    request.DefaultLimit,
		SearchMax:        request.MaxLimit,
		SuggestDefault:   suggestuc.DefaultLimit,
		RecommendDefault: recommend.DefaultLimit,
		RecommendMax:     recommend.MaxLimit,
	}
}
