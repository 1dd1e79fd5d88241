package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"skyward/flightdeck/internal/common"
	"skyward/flightdeck/internal/db"
	"skyward/flightdeck/internal/db/repositories"
	"skyward/flightdeck/internal/mirror"
	"skyward/flightdeck/internal/models/dtos"
	"skyward/flightdeck/internal/models/entities"
)

func setupService(t *testing.T, path string) (*FlightService, *repositories.FlightRepository) {
	conn, err := db.OpenInMemory()
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	repo := repositories.NewFlightRepository(conn, nil)
	m := mirror.New(path, repo, nil)
	if err := m.LoadOnStartup(context.Background()); err != nil {
		t.Fatalf("LoadOnStartup failed: %v", err)
	}

	cache := common.NewCacheService(60, 600)
	return NewFlightService(repo, m, cache, nil), repo
}

func readRecordFile(t *testing.T, path string) []entities.Flight {
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read record store file: %v", err)
	}
	var flights []entities.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		t.Fatalf("Record store file is not a JSON flight array: %v", err)
	}
	return flights
}

func TestCreateFlushesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	svc, _ := setupService(t, path)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.CreateFlightRequest{
		FlightNumber: "SP3001",
		Origin:       "JED",
		Destination:  "CAI",
		Status:       "Scheduled",
		ProcessID:    "P-301",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	onDisk := readRecordFile(t, path)
	found := false
	for _, f := range onDisk {
		if f.FlightID == created.FlightID {
			found = true
			if f != *created {
				t.Errorf("On-disk record differs from created record: %+v vs %+v", f, created)
			}
		}
	}
	if !found {
		t.Errorf("Created flight %d not present in record store file", created.FlightID)
	}
}

func TestUpdateFlushesAndInvalidatesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	svc, _ := setupService(t, path)
	ctx := context.Background()

	// Warm the cache
	if _, err := svc.Get(ctx, 1); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	status := "Boarding"
	updated, err := svc.Update(ctx, 1, &dtos.UpdateFlightRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "Boarding" {
		t.Errorf("Expected updated status, got %q", updated.Status)
	}

	// A fresh Get must not serve the stale cached record
	got, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get after update failed: %v", err)
	}
	if got.Status != "Boarding" {
		t.Errorf("Cache served stale record: %+v", got)
	}

	onDisk := readRecordFile(t, path)
	if onDisk[0].Status != "Boarding" {
		t.Errorf("Record store file not flushed after update: %+v", onDisk[0])
	}
}

func TestUpdateWithoutFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	svc, _ := setupService(t, path)

	if _, err := svc.Update(context.Background(), 1, &dtos.UpdateFlightRequest{}); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Errorf("Expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestDeleteFlushesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	svc, _ := setupService(t, path)
	ctx := context.Background()

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	for _, f := range readRecordFile(t, path) {
		if f.FlightID == 1 {
			t.Errorf("Deleted flight still present in record store file")
		}
	}
}

func TestMutationSurfacesFlushFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.json")
	svc, _ := setupService(t, path)
	ctx := context.Background()

	// Replace the file with a directory so the next flush fails
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove record store file: %v", err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("Failed to block record store path: %v", err)
	}

	_, err := svc.Create(ctx, &dtos.CreateFlightRequest{
		FlightNumber: "SP3002",
		Origin:       "JED",
		Destination:  "AMM",
		Status:       "Scheduled",
	})
	var fe *mirror.FlushError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FlushError when flush cannot write, got %v", err)
	}
}
