package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"skyward/flightdeck/internal/common"
	"skyward/flightdeck/internal/db"
	"skyward/flightdeck/internal/db/repositories"
	"skyward/flightdeck/internal/mirror"
	"skyward/flightdeck/internal/services"
)

func setupTestRouter(t *testing.T) http.Handler {
	conn, err := db.OpenInMemory()
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	repo := repositories.NewFlightRepository(conn, nil)
	m := mirror.New(filepath.Join(t.TempDir(), "flights.json"), repo, nil)
	if err := m.LoadOnStartup(context.Background()); err != nil {
		t.Fatalf("LoadOnStartup failed: %v", err)
	}

	svc := services.NewFlightService(repo, m, common.NewCacheService(60, 600), nil)

	r := chi.NewRouter()
	r.Route("/flights", func(flights chi.Router) {
		flights.Get("/", ListFlightsHandler(svc))
		flights.Post("/", CreateFlightHandler(svc))
		flights.Get("/{flight_id}", GetFlightHandler(svc))
		flights.Put("/{flight_id}", UpdateFlightHandler(svc))
		flights.Delete("/{flight_id}", DeleteFlightHandler(svc))
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer = &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return envelope
}

func TestListFlightsDefaults(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/flights", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["status"] != "success" {
		t.Errorf("Expected success status, got %v", envelope["status"])
	}
	data := envelope["data"].(map[string]any)
	if data["total"].(float64) != 2 {
		t.Errorf("Expected total 2 from seed data, got %v", data["total"])
	}
	if data["page"].(float64) != 1 || data["per_page"].(float64) != 10 {
		t.Errorf("Expected default pagination 1/10, got %v/%v", data["page"], data["per_page"])
	}
}

func TestListFlightsRejectsUnknownColumn(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/flights?columns=flight_id,password", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown column, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/flights?sort_by=nope", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown sort column, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/flights?sort_order=sideways", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad sort order, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/flights?page=0", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for page 0, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/flights?per_page=500", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for oversized per_page, got %d", rec.Code)
	}
}

func TestListFlightsFilter(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/flights?filter_field=origin&filter_value=THR", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["total"].(float64) != 1 {
		t.Errorf("Expected 1 flight from THR, got %v", data["total"])
	}
}

func TestCreateFlight(t *testing.T) {
	router := setupTestRouter(t)

	body := map[string]any{
		"flight_number":    "LH9010",
		"origin":           "FRA",
		"destination":      "ATL",
		"departure_time":   "2025-12-01 10:00:00",
		"arrival_time":     "2025-12-01 19:30:00",
		"duration_minutes": 570,
		"aircraft_type":    "B747",
		"seats_total":      364,
		"seats_available":  102,
		"status":           "Scheduled",
		"process_id":       "P-900",
	}
	rec := doRequest(t, router, http.MethodPost, "/flights", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["flight_id"].(float64) != 3 {
		t.Errorf("Expected flight_id 3 after the two seed flights, got %v", data["flight_id"])
	}
	if data["created_at"] != data["updated_at"] {
		t.Errorf("Expected created_at == updated_at, got %v vs %v", data["created_at"], data["updated_at"])
	}

	rec = doRequest(t, router, http.MethodGet, "/flights/3", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected to fetch created flight, got %d", rec.Code)
	}
}

func TestUpdateFlight(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/flights/1", map[string]any{"status": "Boarding"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["status"] != "Boarding" {
		t.Errorf("Expected updated status in response, got %v", data["status"])
	}

	rec = doRequest(t, router, http.MethodPut, "/flights/999", map[string]any{"status": "Boarding"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown flight, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPut, "/flights/1", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty update, got %d", rec.Code)
	}
}

func TestDeleteFlight(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/flights/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, "/flights/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/flights/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 getting deleted flight, got %d", rec.Code)
	}
}

func TestFlightIDMustBeNumeric(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/flights/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric flight_id, got %d", rec.Code)
	}
}
