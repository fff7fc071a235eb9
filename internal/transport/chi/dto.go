package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/domain/recommend"
	"github.com/getpawsy/pawsy/internal/domain/search/filter"
	"github.com/getpawsy/pawsy/internal/domain/search/request"
	"github.com/getpawsy/pawsy/internal/domain/search/result"
	"github.com/getpawsy/pawsy/internal/domain/search/sortkey"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeUnauthorized       = "unauthorized"
	codeProductNotFound    = "product_not_found"
	codeContentProvider    = "content_provider_error"
	codeFeedUnavailable    = "feed_unavailable"
	codeCatalogUnavailable = "catalog_unavailable"
	codeIndexUnavailable   = "index_unavailable"
	codeNotConfigured      = "not_configured"
	codeInternalError      = "internal_error"
)

// errorDTO is the JSON error envelope.
type errorDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// productDTO is the public product view.
type productDTO struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	SEOTitle       string   `json:"seo_title,omitempty"`
	SEODescription string   `json:"seo_description,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Category       string   `json:"category,omitempty"`
	CategorySlug   string   `json:"category_slug,omitempty"`
	Animal         string   `json:"animal,omitempty"`
	Price          float64  `json:"price"`
	Images         []string `json:"images,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	ReviewsCount   int      `json:"reviews_count,omitempty"`
	Stock          int      `json:"stock"`
	Badge          string   `json:"badge,omitempty"`
}

func productToDTO(p *product.Product) productDTO {
	return productDTO{
		ID:             p.ID(),
		Title:          p.Title(),
		Description:    p.Description(),
		SEOTitle:       p.SEOTitle(),
		SEODescription: p.SEODescription(),
		Bullets:        p.Bullets(),
		Tags:           p.Tags(),
		Category:       p.Category(),
		CategorySlug:   p.CategorySlug(),
		Animal:         p.Animal(),
		Price:          p.Price(),
		Images:         p.Images(),
		Rating:         p.Rating(),
		ReviewsCount:   p.ReviewsCount(),
		Stock:          p.Stock(),
		Badge:          p.Badge(),
	}
}

// searchResultDTO is one scored search hit.
type searchResultDTO struct {
	productDTO
	Score float64 `json:"score"`
}

// filtersDTO echoes the applied filters back to the caller.
type filtersDTO struct {
	Category  string   `json:"category,omitempty"`
	Animal    string   `json:"animal,omitempty"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	HasImages bool     `json:"has_images,omitempty"`
}

// searchResponseDTO is the search envelope. Total counts matches before the
// limit.
type searchResponseDTO struct {
	Results []searchResultDTO `json:"results"`
	Total   int               `json:"total"`
	Query   string            `json:"query"`
	Filters filtersDTO        `json:"filters"`
	Sort    string            `json:"sort"`
}

func searchPageToDTO(page *result.Page) searchResponseDTO {
	results := make([]searchResultDTO, len(page.Results))
	for i := range page.Results {
		r := &page.Results[i]
		results[i] = searchResultDTO{
			productDTO: productToDTO(r.Product()),
			Score:      r.Score(),
		}
	}
	return searchResponseDTO{
		Results: results,
		Total:   page.Total,
		Query:   page.Query,
		Filters: filtersDTO{
			Category:  page.Filter.Category(),
			Animal:    page.Filter.Animal(),
			PriceMin:  page.Filter.PriceMin(),
			PriceMax:  page.Filter.PriceMax(),
			HasImages: page.Filter.HasImages(),
		},
		Sort: string(page.Sort),
	}
}

// suggestionDTO is one autocomplete suggestion.
type suggestionDTO struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type suggestResponseDTO struct {
	Suggestions []suggestionDTO `json:"suggestions"`
	Query       string          `json:"query"`
}

// recommendRequestDTO is the POST /recommend body.
type recommendRequestDTO struct {
	Context   string        `json:"context"`
	ProductID string        `json:"product_id"`
	Items     []cartItemDTO `json:"items"`
	Limit     int           `json:"limit"`
}

type cartItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type recommendResponseDTO struct {
	Recommendations []productDTO `json:"recommendations"`
	Context         string       `json:"context"`
	Source          string       `json:"source"` // scored or fallback
}

type rebuildResponseDTO struct {
	Terms    int `json:"terms"`
	Products int `json:"products"`
}

type importResponseDTO struct {
	Fetched  int `json:"fetched"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Products int `json:"products"`
}

type seoResponseDTO struct {
	Product productDTO `json:"product"`
	Source  string     `json:"source"`
}

type healthResponseDTO struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// errMalformedBody marks request bodies that could not be decoded at all,
// as opposed to well-formed bodies that fail validation.
var errMalformedBody = errors.New("invalid request body")

// resolveLimit applies the configured caps to a caller-supplied limit.
func resolveLimit(limit, def, max int) (int, error) {
	if limit < 0 || limit > max {
		return 0, fmt.Errorf("limit must be between 1 and %d, got %d", max, limit)
	}
	if limit == 0 {
		return def, nil
	}
	return limit, nil
}

// parseSearchRequest builds a validated search request from query params.
func parseSearchRequest(r *http.Request, limits Limits) (request.Request, error) {
	q := r.URL.Query()

	priceMin, err := parseFloatParam(q.Get("price_min"), "price_min")
	if err != nil {
		return request.Request{}, err
	}
	priceMax, err := parseFloatParam(q.Get("price_max"), "price_max")
	if err != nil {
		return request.Request{}, err
	}

	hasImages := false
	if raw := q.Get("has_images"); raw != "" {
		hasImages, err = strconv.ParseBool(raw)
		if err != nil {
			return request.Request{}, fmt.Errorf("has_images must be a boolean, got %q", raw)
		}
	}

	f, err := filter.New(q.Get("category"), q.Get("animal"), priceMin, priceMax, hasImages)
	if err != nil {
		return request.Request{}, err
	}

	sort, err := sortkey.Parse(q.Get("sort"))
	if err != nil {
		return request.Request{}, err
	}

	limit, err := parseIntParam(q.Get("limit"), "limit")
	if err != nil {
		return request.Request{}, err
	}
	limit, err = resolveLimit(limit, limits.SearchDefault, limits.SearchMax)
	if err != nil {
		return request.Request{}, err
	}

	return request.New(q.Get("q"), f, sort, limit)
}

// parseRecommendRequest builds a validated recommendation request from the
// JSON body.
func parseRecommendRequest(r *http.Request, limits Limits) (recommend.Request, error) {
	var dto recommendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return recommend.Request{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	ctx, err := recommend.ParseContext(dto.Context)
	if err != nil {
		return recommend.Request{}, err
	}

	items := make([]recommend.CartItem, len(dto.Items))
	for i, item := range dto.Items {
		items[i] = recommend.CartItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	limit, err := resolveLimit(dto.Limit, limits.RecommendDefault, limits.RecommendMax)
	if err != nil {
		return recommend.Request{}, err
	}

	return recommend.NewRequest(ctx, dto.ProductID, items, limit)
}

func parseFloatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", name, raw)
	}
	return &v, nil
}

func parseIntParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorDTO{Code: code, Message: message})
}
