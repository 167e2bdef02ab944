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

	"github.com/kioskworks/roulette-go/internal/audit"
	"github.com/kioskworks/roulette-go/internal/database"
	"github.com/kioskworks/roulette-go/internal/draw"
	"github.com/kioskworks/roulette-go/internal/handler"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/metrics"
	"github.com/kioskworks/roulette-go/internal/roulette"
	"github.com/kioskworks/roulette-go/internal/session"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	drawService     draw.Service
	sessionService  session.Service
	rouletteService roulette.Service
	auditService    audit.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, drawService draw.Service, sessionService session.Service, rouletteService roulette.Service, auditService audit.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		rouletteHandler := handler.NewRouletteHandler(rouletteService)
		drawHandler := handler.NewDrawHandler(drawService, sessionService)
		recordsHandler := handler.NewRecordsHandler(drawService, rouletteService)
		auditHandler := handler.NewAuditHandler(auditService)

		r.Route("/roulettes", func(r chi.Router) {
			r.Post("/", rouletteHandler.HandleCreate)
			r.Get("/", rouletteHandler.HandleList)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rouletteHandler.HandleGet)
				r.Patch("/status", rouletteHandler.HandleUpdateStatus)
				r.Delete("/", rouletteHandler.HandleDelete)

				r.Post("/prizes", rouletteHandler.HandleAddPrize)

				// Kiosk endpoints
				r.Post("/activate", drawHandler.HandleActivate)
				r.Post("/draw", drawHandler.HandleDraw)

				r.Get("/records", recordsHandler.HandleList)
				r.Get("/records/export", recordsHandler.HandleExport)
				r.Get("/audit", auditHandler.HandleList)
			})
		})

		r.Route("/prizes/{prizeId}", func(r chi.Router) {
			r.Patch("/", rouletteHandler.HandleUpdatePrize)
			r.Delete("/", rouletteHandler.HandleDeletePrize)
		})

		r.Delete("/sessions/{id}", drawHandler.HandleDeactivate)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		drawService:     drawService,
		sessionService:  sessionService,
		rouletteService: rouletteService,
		auditService:    auditService,
	}
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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
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
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
