package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"skyward/flightdeck/internal/api"
	"skyward/flightdeck/internal/config"
	"skyward/flightdeck/internal/logging"
	"skyward/flightdeck/internal/metrics"
	"skyward/flightdeck/internal/middleware"
	"skyward/flightdeck/internal/services"
)

// RegisterRoutes assembles the Chi router with all middleware and the flights
// API.
func RegisterRoutes(cfg *config.Config, flightSvc *services.FlightService, conn *sqlx.DB, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst).Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(conn, cfg.FlightsFile, upSince))

	r.Route("/flights", func(flights chi.Router) {
		flights.Get("/", api.ListFlightsHandler(flightSvc))
		flights.Post("/", api.CreateFlightHandler(flightSvc))
		flights.Get("/{flight_id}", api.GetFlightHandler(flightSvc))
		flights.Put("/{flight_id}", api.UpdateFlightHandler(flightSvc))
		flights.Delete("/{flight_id}", api.DeleteFlightHandler(flightSvc))
	})

	logging.Info("Router initialized", "routes", "/flights, /healthCheck")

	return r
}
