package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/config"
	logpkg "github.com/getpawsy/pawsy/internal/logger"
	"github.com/getpawsy/pawsy/internal/metrics"
	catalogrepo "github.com/getpawsy/pawsy/internal/repository/catalog"
	indexrepo "github.com/getpawsy/pawsy/internal/repository/index"
	"github.com/getpawsy/pawsy/internal/storage"
	storageFile "github.com/getpawsy/pawsy/internal/storage/file"
	storageRedis "github.com/getpawsy/pawsy/internal/storage/redis"
	chiTransport "github.com/getpawsy/pawsy/internal/transport/chi"
	cjTransport "github.com/getpawsy/pawsy/internal/transport/cj"
	openaiTransport "github.com/getpawsy/pawsy/internal/transport/openai"
	healthuc "github.com/getpawsy/pawsy/internal/usecase/health"
	importeruc "github.com/getpawsy/pawsy/internal/usecase/importer"
	recommenduc "github.com/getpawsy/pawsy/internal/usecase/recommend"
	searchuc "github.com/getpawsy/pawsy/internal/usecase/search"
	seouc "github.com/getpawsy/pawsy/internal/usecase/seo"
	suggestuc "github.com/getpawsy/pawsy/internal/usecase/suggest"
	"github.com/getpawsy/pawsy/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting pawsy catalog engine",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// Create backing store based on driver
	var store storage.Store
	switch cfg.Storage.Driver {
	case "file":
		store, err = storageFile.NewStore(storageFile.Config{Dir: cfg.Storage.DataDir})
	case "redis":
		store, err = storageRedis.NewStore(storageRedis.Config{
			Addrs:    cfg.Storage.Addrs,
			Password: cfg.Storage.Password,
		})
	default:
		logger.Fatal("Unknown storage driver", zap.String("driver", cfg.Storage.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Storage.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Store not ready", zap.Error(err))
	}
	logger.Info("Connected to storage")

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	// Repositories
	catalogRepo := catalogrepo.New(store, cfg.Storage.KeyPrefix)
	indexRepo := indexrepo.New(store, cfg.Storage.KeyPrefix)

	// SEO content provider. Nil without an API key: the usecase then serves
	// template content.
	var generator seouc.Generator
	if cfg.SEO.APIKey != "" {
		generator = openaiTransport.NewGenerator(&openaiTransport.Config{
			APIKey:      cfg.SEO.APIKey,
			BaseURL:     cfg.SEO.BaseURL,
			Model:       cfg.SEO.Model,
			Temperature: float32(cfg.SEO.Temperature),
			Logger:      logger,
		})
		logger.Info("SEO content provider configured", zap.String("model", cfg.SEO.Model))
	}

	// Use case services
	searchSvc := searchuc.New(catalogRepo).WithMinScore(cfg.Search.MinScore)
	suggestSvc := suggestuc.New(catalogRepo, indexRepo, logger)
	recommendSvc := recommenduc.New(catalogRepo)
	seoSvc := seouc.New(catalogRepo, generator, logger)

	var importerSvc *importeruc.Service
	if cfg.Import.FeedURL != "" {
		supplier := cjTransport.New(cfg.Import.FeedURL, cfg.Import.APIKey)
		importerSvc = importeruc.New(
			supplier, catalogRepo, suggestSvc,
			cfg.Import.PriceMarkup, cfg.Import.PageSize, logger,
		)
		logger.Info("Supplier feed configured", zap.String("feed_url", cfg.Import.FeedURL))
	}

	healthSvc := healthuc.New(store, catalogRepo)

	server := chiTransport.NewServer(
		searchSvc, suggestSvc, recommendSvc, seoSvc, importerSvc,
		catalogRepo, healthSvc, logger,
	).WithLimits(chiTransport.Limits{
		SearchDefault:    cfg.Search.DefaultLimit,
		SearchMax:        cfg.Search.MaxLimit,
		SuggestDefault:   cfg.Search.SuggestLimit,
		RecommendDefault: cfg.Recommend.DefaultLimit,
		RecommendMax:     cfg.Recommend.MaxLimit,
	})

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
