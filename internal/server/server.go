package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/StrideShop_Go/internal/auth"
	"github.com/osse101/StrideShop_Go/internal/catalog"
	"github.com/osse101/StrideShop_Go/internal/database"
	"github.com/osse101/StrideShop_Go/internal/handler"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/metrics"
	"github.com/osse101/StrideShop_Go/internal/shop"
	"github.com/osse101/StrideShop_Go/internal/user"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Dependencies are the services the routes call into
type Dependencies struct {
	DBPool           database.Pool
	ShopService      shop.Service
	UserService      user.Service
	CatalogService   catalog.Service
	CatalogRefresher handler.CatalogRefresher
	TokenValidator   *auth.TokenValidator
}

type Server struct {
	httpServer  *http.Server
	rateLimiter *RateLimiter
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	detector := NewSuspiciousActivityDetector()
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, opts.TrustedProxies)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, deps, detector, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		rateLimiter: limiter,
	}
}

func newRouter(opts Options, deps Dependencies, detector *SuspiciousActivityDetector, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)

		// Player routes, identified by bearer token
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(deps.TokenValidator))

			shopHandler := handler.NewShopHandler(deps.ShopService)
			r.Route("/shop", func(r chi.Router) {
				r.Get("/", shopHandler.HandleGetShop)
				r.Post("/purchase", shopHandler.HandlePurchase)
				r.Get("/countdown", shopHandler.HandleGetCountdown)
			})

			r.Route("/user", func(r chi.Router) {
				r.Post("/register", handler.HandleRegisterUser(deps.UserService))
				r.Get("/profile", handler.HandleGetProfile(deps.UserService))
			})

			r.Get("/catalog", handler.HandleGetCatalog(deps.CatalogService))
		})

		// Admin routes, shared API key
		r.Route("/admin", func(r chi.Router) {
			r.Use(APIKeyMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Post("/coins/award", handler.HandleAwardCoins(deps.UserService))
			r.Post("/catalog/sync", handler.HandleSyncCatalog(deps.CatalogRefresher))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server and the limiter housekeeping
func (s *Server) Start() error {
	s.rateLimiter.StartCleanup(LimiterCleanupInterval, LimiterIdleTTL)
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	s.rateLimiter.Stop()
	return s.httpServer.Shutdown(ctx)
}
