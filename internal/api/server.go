package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/legiit/coldmail-backend/internal/api/docs"
	generationapi "github.com/legiit/coldmail-backend/internal/api/generation"
	"github.com/legiit/coldmail-backend/internal/api/middleware"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(generationHandler *generationapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))

	// CORS: the generator is called from browser clients on arbitrary
	// origins, so preflight must succeed for everyone.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:         300,
	}))

	// Generation is token-heavy; the timeout has to cover a full vendor
	// round trip.
	r.Use(chimiddleware.Timeout(90 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	generationapi.RegisterRoutes(r, generationHandler)

	return r
}
