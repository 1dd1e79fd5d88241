package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"skyward/flightdeck/internal/common"
	"skyward/flightdeck/internal/db/repositories"
	"skyward/flightdeck/internal/logging"
	"skyward/flightdeck/internal/metrics"
	"skyward/flightdeck/internal/mirror"
	"skyward/flightdeck/internal/models/dtos"
	"skyward/flightdeck/internal/models/dtos/responses"
	"skyward/flightdeck/internal/models/entities"
)

// ErrNoFieldsToUpdate is returned when an update request carries no updatable
// field.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

const cacheTTL = 60 * time.Second

// FlightService wires the flights table to its file mirror: reads go straight
// to the table, every successful mutation is flushed to the record store file
// before the call returns. Mutations are serialized so the mutate+flush pair
// never interleaves within the process.
type FlightService struct {
	repo       *repositories.FlightRepository
	mirror     *mirror.Mirror
	cache      *common.CacheService
	metricsReg *metrics.MetricsRegistry

	mu sync.Mutex
}

func NewFlightService(repo *repositories.FlightRepository, m *mirror.Mirror, cache *common.CacheService, metricsReg *metrics.MetricsRegistry) *FlightService {
	return &FlightService{
		repo:       repo,
		mirror:     m,
		cache:      cache,
		metricsReg: metricsReg,
	}
}

// List returns one page of the filtered flight set.
func (svc *FlightService) List(ctx context.Context, q dtos.ListFlightsQuery) (*responses.FlightListPage, error) {
	rows, total, err := svc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &responses.FlightListPage{
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
		Data:    rows,
	}, nil
}

// Get returns a single flight, serving repeat lookups from the read cache.
func (svc *FlightService) Get(ctx context.Context, flightID int64) (*entities.Flight, error) {
	key := cacheKey(flightID)

	if svc.cache != nil {
		if cached, found := svc.cache.Get(key); found {
			svc.countCache(true)
			return cached.(*entities.Flight), nil
		}
		svc.countCache(false)
	}

	flight, err := svc.repo.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		svc.cache.Set(key, flight, cacheTTL)
	}
	return flight, nil
}

// Create inserts a new flight and flushes the table to the record store file.
func (svc *FlightService) Create(ctx context.Context, req *dtos.CreateFlightRequest) (*entities.Flight, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	flight, err := svc.repo.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := svc.flush(ctx); err != nil {
		return nil, err
	}
	return flight, nil
}

// Update merges the supplied fields into an existing flight and flushes.
func (svc *FlightService) Update(ctx context.Context, flightID int64, req *dtos.UpdateFlightRequest) (*entities.Flight, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	flight, err := svc.repo.Update(ctx, flightID, fields)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		svc.cache.Delete(cacheKey(flightID))
	}

	if err := svc.flush(ctx); err != nil {
		return nil, err
	}
	return flight, nil
}

// Delete removes a flight and flushes.
func (svc *FlightService) Delete(ctx context.Context, flightID int64) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if err := svc.repo.Delete(ctx, flightID); err != nil {
		return err
	}

	if svc.cache != nil {
		svc.cache.Delete(cacheKey(flightID))
	}

	return svc.flush(ctx)
}

func (svc *FlightService) flush(ctx context.Context) error {
	err := svc.mirror.Flush(ctx)
	if err == nil {
		return nil
	}

	// The table changed but the file did not. Log everything needed to
	// reconcile the two by hand.
	var fe *mirror.FlushError
	if errors.As(err, &fe) {
		logging.Error("Record store flush failed, table and file diverge",
			"path", fe.Path,
			"records_in_table", fe.Records,
			"error", fe.Err.Error(),
		)
	}
	return err
}

func (svc *FlightService) countCache(hit bool) {
	if svc.metricsReg == nil {
		return
	}
	if hit {
		svc.metricsReg.CacheHitsTotal.WithLabelValues("flight_id").Inc()
	} else {
		svc.metricsReg.CacheMissesTotal.WithLabelValues("flight_id").Inc()
	}
}

func cacheKey(flightID int64) string {
	return fmt.Sprintf("flight:%d", flightID)
}
