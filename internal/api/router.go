package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"golang.org/x/sync/errgroup"
)

// Pinger reports backend connectivity. Both the pgx pool and the redis
// client are adapted to it in main.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity in parallel; 200 when both respond, 503 otherwise.
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "ok"
		redisStatus := "ok"

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := db.Ping(gCtx); err != nil {
				log.Error("health check: db ping failed", "err", err)
				dbStatus = "error"
			}
			return nil
		})
		g.Go(func() error {
			if err := redis.Ping(gCtx); err != nil {
				log.Error("health check: redis ping failed", "err", err)
				redisStatus = "error"
			}
			return nil
		})
		_ = g.Wait()

		status := http.StatusOK
		overall := "ok"
		if dbStatus != "ok" || redisStatus != "ok" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied globally: 60 requests per minute per IP.
func NewRouter(handlers *Handlers, db, redisClient Pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/api/health", HealthHandlerFunc(db, redisClient, log))

	r.Get("/api/destinations", handlers.ListDestinations)
	r.Get("/api/destinations/{id}", handlers.GetDestination)
	r.Get("/api/search", handlers.SearchDestinations)
	r.Get("/api/destinations/{id}/hotels", handlers.GetHotels)
	r.Get("/api/destinations/{id}/restaurants", handlers.GetRestaurants)
	r.Get("/api/destinations/{id}/attractions", handlers.GetAttractions)
	r.Get("/api/destinations/{id}/weather", handlers.GetWeather)

	r.Get("/api/itineraries", handlers.ListItineraries)
	r.Post("/api/itineraries", handlers.CreateItinerary)
	r.Delete("/api/itineraries/{id}", handlers.DeleteItinerary)

	r.Get("/api/planner", handlers.GetPlanner)
	r.Post("/api/planner/items", handlers.AddPlannerItem)
	r.Delete("/api/planner/items/{id}", handlers.RemovePlannerItem)
	r.Post("/api/planner/reorder", handlers.ReorderPlanner)
	r.Post("/api/planner/clear", handlers.ClearPlanner)
	r.Post("/api/planner/save", handlers.SavePlanner)
	r.Delete("/api/planner/itineraries/{id}", handlers.DeletePlannerItinerary)

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
