// Package api exposes the travel service over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	store   RecordStore
	merger  Merger
	planner ItineraryPlanner
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(store RecordStore, merger Merger, planner ItineraryPlanner, log *slog.Logger) *Handlers {
	return &Handlers{
		store:   store,
		merger:  merger,
		planner: planner,
		log:     log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListDestinations handles GET /api/destinations.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.store.Destinations(r.Context())
	if err != nil {
		h.log.Error("list destinations failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}

// GetDestination handles GET /api/destinations/{id}.
func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dest, err := h.store.Destination(r.Context(), id)
	if err != nil {
		h.log.Error("get destination failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch destination")
		return
	}
	if dest == nil {
		writeError(w, http.StatusNotFound, "Destination not found")
		return
	}
	writeJSON(w, http.StatusOK, dest)
}

// SearchDestinations handles GET /api/search?q=.
func (h *Handlers) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter required")
		return
	}

	results, err := h.store.SearchDestinations(r.Context(), query)
	if err != nil {
		h.log.Error("search destinations failed", "query", query, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to search destinations")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// GetHotels handles GET /api/destinations/{id}/hotels.
func (h *Handlers) GetHotels(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	hotels, err := h.merger.Hotels(r.Context(), id)
	if err != nil {
		h.log.Error("get hotels failed", "destination", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

// GetRestaurants handles GET /api/destinations/{id}/restaurants.
func (h *Handlers) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	restaurants, err := h.merger.Restaurants(r.Context(), id)
	if err != nil {
		h.log.Error("get restaurants failed", "destination", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch restaurants")
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

// GetAttractions handles GET /api/destinations/{id}/attractions.
func (h *Handlers) GetAttractions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	attractions, err := h.merger.Attractions(r.Context(), id)
	if err != nil {
		h.log.Error("get attractions failed", "destination", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch attractions")
		return
	}
	writeJSON(w, http.StatusOK, attractions)
}

// GetWeather handles GET /api/destinations/{id}/weather.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	weather, err := h.merger.Weather(r.Context(), id)
	if err != nil {
		h.log.Error("get weather failed", "destination", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch weather")
		return
	}
	if weather == nil {
		writeError(w, http.StatusNotFound, "Weather data not found")
		return
	}
	writeJSON(w, http.StatusOK, weather)
}

// ListItineraries handles GET /api/itineraries.
func (h *Handlers) ListItineraries(w http.ResponseWriter, r *http.Request) {
	itineraries, err := h.store.Itineraries(r.Context())
	if err != nil {
		h.log.Error("list itineraries failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}
	writeJSON(w, http.StatusOK, itineraries)
}

// CreateItinerary handles POST /api/itineraries.
func (h *Handlers) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var in travel.InsertItinerary
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid itinerary data")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid itinerary data")
		return
	}

	it, err := h.store.CreateItinerary(r.Context(), in)
	if err != nil {
		h.log.Error("create itinerary failed", "name", in.Name, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create itinerary")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// DeleteItinerary handles DELETE /api/itineraries/{id}.
func (h *Handlers) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteItinerary(r.Context(), id); err != nil {
		h.log.Error("delete itinerary failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete itinerary")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
