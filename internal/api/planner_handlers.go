package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/neon-voyager/internal/planner"
	"github.com/neexbeast/neon-voyager/internal/travel"
)

// plannerState is the response body for GET /api/planner.
type plannerState struct {
	Current []travel.ItineraryItem `json:"current"`
	Saved   []travel.Itinerary     `json:"saved"`
}

// reorderRequest is the body for POST /api/planner/reorder.
type reorderRequest struct {
	FromIndex int `json:"fromIndex"`
	ToIndex   int `json:"toIndex"`
}

// savePlannerRequest is the body for POST /api/planner/save.
type savePlannerRequest struct {
	Name          string `json:"name"`
	DestinationID string `json:"destinationId"`
}

// GetPlanner handles GET /api/planner.
func (h *Handlers) GetPlanner(w http.ResponseWriter, r *http.Request) {
	state := plannerState{
		Current: h.planner.Current(),
		Saved:   h.planner.Saved(),
	}
	writeJSON(w, http.StatusOK, state)
}

// AddPlannerItem handles POST /api/planner/items.
func (h *Handlers) AddPlannerItem(w http.ResponseWriter, r *http.Request) {
	var item travel.ItineraryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item.ID == "" {
		writeError(w, http.StatusBadRequest, "Invalid itinerary item")
		return
	}

	h.planner.AddItem(r.Context(), item)
	writeJSON(w, http.StatusCreated, item)
}

// RemovePlannerItem handles DELETE /api/planner/items/{id}.
func (h *Handlers) RemovePlannerItem(w http.ResponseWriter, r *http.Request) {
	h.planner.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ReorderPlanner handles POST /api/planner/reorder.
func (h *Handlers) ReorderPlanner(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid reorder request")
		return
	}

	if err := h.planner.Reorder(r.Context(), req.FromIndex, req.ToIndex); err != nil {
		if errors.Is(err, planner.ErrIndexOutOfRange) {
			writeError(w, http.StatusBadRequest, "Reorder index out of range")
			return
		}
		h.log.Error("reorder failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to reorder itinerary")
		return
	}
	writeJSON(w, http.StatusOK, h.planner.Current())
}

// ClearPlanner handles POST /api/planner/clear.
func (h *Handlers) ClearPlanner(w http.ResponseWriter, r *http.Request) {
	h.planner.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// SavePlanner handles POST /api/planner/save.
func (h *Handlers) SavePlanner(w http.ResponseWriter, r *http.Request) {
	var req savePlannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid save request")
		return
	}

	it, err := h.planner.Save(r.Context(), req.Name, req.DestinationID)
	if err != nil {
		if errors.Is(err, planner.ErrEmptyName) || errors.Is(err, planner.ErrEmptyItinerary) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("save planner itinerary failed", "name", req.Name, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// DeletePlannerItinerary handles DELETE /api/planner/itineraries/{id}.
func (h *Handlers) DeletePlannerItinerary(w http.ResponseWriter, r *http.Request) {
	h.planner.DeleteSaved(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
