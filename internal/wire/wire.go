// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"cinix-booking/internal/adaptor"
	"cinix-booking/internal/clock"
	"cinix-booking/internal/data/repository"
	"cinix-booking/internal/event"
	"cinix-booking/internal/usecase"
	"cinix-booking/pkg/middleware"
	"cinix-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthCheck reports whether a dependency (ticket storage) is reachable.
type HealthCheck func(ctx context.Context) error

// Deps menyimpan dependency luar yang dibuat di main
type Deps struct {
	Repo      *repository.Repository
	Backend   usecase.Backend
	Publisher event.Publisher
	Clock     clock.Clock
	Health    HealthCheck
}

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	if deps.Clock == nil {
		deps.Clock = clock.NewSystem()
	}
	if deps.Publisher == nil {
		deps.Publisher = event.NewNoopPublisher()
	}

	// Initialize services dan handlers
	service := usecase.NewService(deps.Repo, deps.Backend, deps.Publisher, config, deps.Clock, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, deps.Health, config.App.CORSOrigins, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, health HealthCheck, corsOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Identity())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(corsOrigins))

	// Apply routes
	wireBooking(r, handler.Booking)
	wireCheckout(r, handler.Checkout)
	wireTicket(r, handler.Ticket)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := health(ctx); err != nil {
				logger.Warn("Health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("UNAVAILABLE"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
