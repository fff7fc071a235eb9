// Package chi exposes the catalog engine over HTTP.
package chi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
	"github.com/getpawsy/pawsy/internal/metrics"
	healthuc "github.com/getpawsy/pawsy/internal/usecase/health"
	importeruc "github.com/getpawsy/pawsy/internal/usecase/importer"
	recommenduc "github.com/getpawsy/pawsy/internal/usecase/recommend"
	searchuc "github.com/getpawsy/pawsy/internal/usecase/search"
	seouc "github.com/getpawsy/pawsy/internal/usecase/seo"
	suggestuc "github.com/getpawsy/pawsy/internal/usecase/suggest"
	"github.com/getpawsy/pawsy/internal/version"
)

// Catalog is the single-product lookup the transport needs.
type Catalog interface {
	Get(ctx context.Context, id string) (product.Product, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the catalog API.
type Server struct {
	search        *searchuc.Service
	suggest       *suggestuc.Service
	recommend     *recommenduc.Service
	seo           *seouc.Service
	importer      *importeruc.Service
	catalog       Catalog
	health        *healthuc.Service
	logger        *zap.Logger
	limits        Limits
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. importer may be nil when no supplier
// feed is configured.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	recommend *recommenduc.Service,
	seo *seouc.Service,
	importer *importeruc.Service,
	catalog Catalog,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		suggest:   suggest,
		recommend: recommend,
		seo:       seo,
		importer:  importer,
		catalog:   catalog,
		health:    health,
		logger:    logger,
		limits:    DefaultLimits(),
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, codeProductNotFound),
		sentinelHandler(domain.ErrContentProvider, http.StatusBadGateway, codeContentProvider),
		sentinelHandler(domain.ErrFeedUnavailable, http.StatusBadGateway, codeFeedUnavailable),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, codeCatalogUnavailable),
		sentinelHandler(domain.ErrIndexUnavailable, http.StatusServiceUnavailable, codeIndexUnavailable),
	}
	return s
}

// WithLimits overrides the configured result caps. Zero fields keep their
// defaults.
func (s *Server) WithLimits(l Limits) *Server {
	d := DefaultLimits()
	if l.SearchDefault > 0 {
		d.SearchDefault = l.SearchDefault
	}
	if l.SearchMax > 0 {
		d.SearchMax = l.SearchMax
	}
	if l.SuggestDefault > 0 {
		d.SuggestDefault = l.SuggestDefault
	}
	if l.RecommendDefault > 0 {
		d.RecommendDefault = l.RecommendDefault
	}
	if l.RecommendMax > 0 {
		d.RecommendMax = l.RecommendMax
	}
	s.limits = d
	return s
}

// Routes mounts all handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/suggest", s.Suggest)
		r.Post("/recommend", s.Recommend)
		r.Get("/products/{id}", s.GetProduct)
		r.Post("/products/{id}/seo", s.GenerateSEO)
		r.Post("/index/rebuild", s.RebuildIndex)
		r.Post("/import", s.Import)
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r, s.limits)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	start := time.Now()
	page, err := s.search.Search(r.Context(), &req)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	outcome := "matched"
	if page.Total == 0 {
		outcome = "empty"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()

	writeJSON(w, http.StatusOK, searchPageToDTO(&page))
}

// Suggest handles GET /api/v1/suggest.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, err := parseIntParam(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}
	if limit == 0 {
		limit = s.limits.SuggestDefault
	}

	suggestions, err := s.suggest.Suggest(r.Context(), query, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	dto := suggestResponseDTO{Suggestions: make([]suggestionDTO, len(suggestions)), Query: query}
	for i, sg := range suggestions {
		dto.Suggestions[i] = suggestionDTO{Term: sg.Term, Count: sg.Count}
	}
	writeJSON(w, http.StatusOK, dto)
}

// Recommend handles POST /api/v1/recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	req, err := parseRecommendRequest(r, s.limits)
	if err != nil {
		code := codeValidationFailed
		if errors.Is(err, errMalformedBody) {
			code = codeBadRequest
		}
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}

	rec, err := s.recommend.Recommend(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	source := "scored"
	if rec.Fallback {
		source = "fallback"
	}
	metrics.RecommendationsTotal.WithLabelValues(string(req.Context()), source).Inc()

	dto := recommendResponseDTO{
		Recommendations: make([]productDTO, len(rec.Products)),
		Context:         string(req.Context()),
		Source:          source,
	}
	for i := range rec.Products {
		dto.Recommendations[i] = productToDTO(&rec.Products[i])
	}
	writeJSON(w, http.StatusOK, dto)
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToDTO(&p))
}

// GenerateSEO handles POST /api/v1/products/{id}/seo.
func (s *Server) GenerateSEO(w http.ResponseWriter, r *http.Request) {
	res, err := s.seo.GenerateFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	metrics.SEOGenerationsTotal.WithLabelValues(string(res.Source)).Inc()

	writeJSON(w, http.StatusOK, seoResponseDTO{
		Product: productToDTO(&res.Product),
		Source:  string(res.Source),
	})
}

// RebuildIndex handles POST /api/v1/index/rebuild.
func (s *Server) RebuildIndex(w http.ResponseWriter, r *http.Request) {
	stats, err := s.suggest.Rebuild(r.Context())
	if err != nil {
		metrics.IndexRebuildsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.IndexRebuildsTotal.WithLabelValues("success").Inc()

	writeJSON(w, http.StatusOK, rebuildResponseDTO{
		Terms:    stats.Terms,
		Products: stats.Products,
	})
}

// Import handles POST /api/v1/import.
func (s *Server) Import(w http.ResponseWriter, r *http.Request) {
	if s.importer == nil {
		writeError(w, http.StatusNotImplemented, codeNotConfigured, "no supplier feed configured")
		return
	}

	stats, err := s.importer.Run(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponseDTO{
		Fetched:  stats.Fetched,
		Created:  stats.Created,
		Updated:  stats.Updated,
		Skipped:  stats.Skipped,
		Products: stats.Products,
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponseDTO{
		Status:  string(report.Status),
		Version: version.Version,
		Checks:  checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrProductNotFound,
		domain.ErrContentProvider,
		domain.ErrFeedUnavailable,
		domain.ErrCatalogUnavailable,
		domain.ErrIndexUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
