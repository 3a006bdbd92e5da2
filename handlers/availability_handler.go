package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"availabilityAPI/internal/types/availability"
	"availabilityAPI/middleware"
	"availabilityAPI/services"
)

type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
}

func NewAvailabilityHandler(availabilityService *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// GetMonthAvailability answers GET /api/availability?year=&month= with a
// status for every day of the month.
func (h *AvailabilityHandler) GetMonthAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		respondWithError(w, http.StatusBadRequest, "year and month required")
		return
	}

	days, err := h.availabilityService.GetMonth(ctx, year, month)
	if err != nil {
		log.Printf("Failed to fetch availability for %d-%d: %v", year, month, err)
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondWithJSON(w, http.StatusOK, availability.MonthResponse{Days: days})
}

// UpdateDayStatus answers PUT /api/availability. The admin password travels in
// the request body and is checked on every call.
func (h *AvailabilityHandler) UpdateDayStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req availability.UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.availabilityService.SetDayStatus(ctx, req.Date, req.Status, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
	case errors.Is(err, services.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case err != nil:
		log.Printf("Failed to update day status for %s: %v", req.Date, err)
		respondWithError(w, http.StatusInternalServerError, "Database error")
	default:
		middleware.RecordStatusUpdate(string(req.Status))
		w.WriteHeader(http.StatusNoContent)
	}
}
