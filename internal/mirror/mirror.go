package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"skyward/flightdeck/internal/db/repositories"
	"skyward/flightdeck/internal/logging"
	"skyward/flightdeck/internal/metrics"
	"skyward/flightdeck/internal/models/entities"
)

// FlushError reports a failed flush of the record store file. The in-memory
// table has already been mutated when this is returned, so the table and the
// file are known to diverge until the next successful flush.
type FlushError struct {
	Path    string
	Records int
	Err     error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("flush %d records to %s: %v", e.Records, e.Path, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// Mirror keeps the record store file synchronized with the in-memory flights
// table: full load at startup, full overwrite after every mutation.
type Mirror struct {
	path       string
	repo       *repositories.FlightRepository
	metricsReg *metrics.MetricsRegistry
}

func New(path string, repo *repositories.FlightRepository, metricsReg *metrics.MetricsRegistry) *Mirror {
	return &Mirror{path: path, repo: repo, metricsReg: metricsReg}
}

// Path returns the location of the record store file.
func (m *Mirror) Path() string {
	return m.path
}

// LoadOnStartup populates the flights table from the record store file. A
// missing or unreadable file is replaced with a seed dataset, written out
// immediately so the file exists after startup.
func (m *Mirror) LoadOnStartup(ctx context.Context) error {
	flights, err := m.readFile()
	if err != nil {
		logging.Warn("Record store file unusable, seeding defaults",
			"path", m.path,
			"reason", err.Error(),
		)
		flights = SeedFlights()
		if err := m.writeFile(flights); err != nil {
			return fmt.Errorf("write seed record store file: %w", err)
		}
	}

	if err := m.repo.Init(ctx, flights); err != nil {
		return fmt.Errorf("initialize flights table: %w", err)
	}

	if m.metricsReg != nil {
		m.metricsReg.StoreRecords.Set(float64(len(flights)))
	}

	logging.Info("Flights table loaded from record store file",
		"path", m.path,
		"records", len(flights),
	)
	return nil
}

// Flush overwrites the record store file with the full current table. Called
// synchronously after every successful mutation; a failure here means the file
// no longer matches the table and is surfaced as a FlushError.
func (m *Mirror) Flush(ctx context.Context) error {
	start := time.Now()

	flights, err := m.repo.ExportAll(ctx)
	if err != nil {
		m.countFlush("error")
		return &FlushError{Path: m.path, Err: err}
	}

	if err := m.writeFile(flights); err != nil {
		m.countFlush("error")
		return &FlushError{Path: m.path, Records: len(flights), Err: err}
	}

	if m.metricsReg != nil {
		m.metricsReg.FlushDuration.Observe(time.Since(start).Seconds())
		m.metricsReg.StoreRecords.Set(float64(len(flights)))
	}
	m.countFlush("success")
	return nil
}

func (m *Mirror) countFlush(outcome string) {
	if m.metricsReg != nil {
		m.metricsReg.FlushesTotal.WithLabelValues(outcome).Inc()
	}
}

func (m *Mirror) readFile() ([]entities.Flight, error) {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		return nil, err
	}

	var flights []entities.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		return nil, fmt.Errorf("decode record store file: %w", err)
	}
	return flights, nil
}

func (m *Mirror) writeFile(flights []entities.Flight) error {
	data, err := json.MarshalIndent(flights, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return err
	}
	if m.metricsReg != nil {
		m.metricsReg.FlushBytesLast.Set(float64(len(data)))
	}
	return nil
}
