package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"skyward/flightdeck/internal/constants"
	"skyward/flightdeck/internal/db/repositories"
	"skyward/flightdeck/internal/mirror"
	"skyward/flightdeck/internal/models/dtos"
	"skyward/flightdeck/internal/services"
)

const maxPerPage = 100

// ListFlightsHandler handles GET /flights
//
// Supported query parameters: page, per_page, sort_by, sort_order,
// filter_field, filter_value, columns (comma-separated projection).
func ListFlightsHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := dtos.ListFlightsQuery{
			Page:        1,
			PerPage:     10,
			SortBy:      r.URL.Query().Get("sort_by"),
			SortOrder:   r.URL.Query().Get("sort_order"),
			FilterField: r.URL.Query().Get("filter_field"),
			FilterValue: r.URL.Query().Get("filter_value"),
		}

		if raw := r.URL.Query().Get("page"); raw != "" {
			p, err := strconv.Atoi(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid page parameter")
				return
			}
			q.Page = p
		}
		if raw := r.URL.Query().Get("per_page"); raw != "" {
			pp, err := strconv.Atoi(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid per_page parameter")
				return
			}
			q.PerPage = pp
		}
		if q.PerPage > maxPerPage {
			respondWithError(w, http.StatusBadRequest, "per_page must be at most "+strconv.Itoa(maxPerPage))
			return
		}

		if raw := r.URL.Query().Get("columns"); raw != "" && raw != "*" {
			q.Columns = strings.Split(raw, ",")
		}

		page, err := svc.List(r.Context(), q)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, "Fetched flights", page)
	}
}

// GetFlightHandler handles GET /flights/{flight_id}
func GetFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID, ok := parseFlightID(w, r)
		if !ok {
			return
		}

		flight, err := svc.Get(r.Context(), flightID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, "Fetched flight", flight)
	}
}

// CreateFlightHandler handles POST /flights
func CreateFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		flight, err := svc.Create(r.Context(), &req)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, constants.MsgFlightCreated, flight)
	}
}

// UpdateFlightHandler handles PUT /flights/{flight_id}
func UpdateFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID, ok := parseFlightID(w, r)
		if !ok {
			return
		}

		var req dtos.UpdateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		flight, err := svc.Update(r.Context(), flightID, &req)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, constants.MsgFlightUpdated, flight)
	}
}

// DeleteFlightHandler handles DELETE /flights/{flight_id}
func DeleteFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID, ok := parseFlightID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), flightID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithSuccess[any](w, http.StatusOK, constants.MsgFlightDeleted, nil)
	}
}

func parseFlightID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "flight_id")
	flightID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flight_id")
		return 0, false
	}
	return flightID, true
}

// respondWithStoreError maps store and mirror errors onto HTTP statuses.
func respondWithStoreError(w http.ResponseWriter, err error) {
	var fe *mirror.FlushError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		respondWithError(w, http.StatusNotFound, constants.MsgFlightNotFound)
	case errors.Is(err, repositories.ErrInvalidColumn),
		errors.Is(err, repositories.ErrInvalidPagination),
		errors.Is(err, repositories.ErrInvalidSortOrder),
		errors.Is(err, services.ErrNoFieldsToUpdate):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &fe):
		respondWithError(w, http.StatusInternalServerError, "Failed to persist flights to record store file")
	default:
		respondWithError(w, http.StatusInternalServerError, constants.MsgStoreUnavailable)
	}
}
