package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"skyward/flightdeck/internal/constants"
	"skyward/flightdeck/internal/metrics"
	"skyward/flightdeck/internal/models/dtos"
	"skyward/flightdeck/internal/models/entities"
)

// FlightRepository is the queryable in-memory table of flight records. All
// identifiers in dynamically assembled statements are validated against the
// flights column allow-list before any SQL text is built; values always travel
// as bound parameters.
type FlightRepository struct {
	db         *sqlx.DB
	metricsReg *metrics.MetricsRegistry
}

func NewFlightRepository(db *sqlx.DB, metricsReg *metrics.MetricsRegistry) *FlightRepository {
	return &FlightRepository{db: db, metricsReg: metricsReg}
}

func (r *FlightRepository) observe(operation string, start time.Time) {
	if r.metricsReg == nil {
		return
	}
	r.metricsReg.StoreQueriesTotal.WithLabelValues(operation).Inc()
	r.metricsReg.StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Init rebuilds the flights table from an ordered record sequence, preserving
// the flight_id of every record.
func (r *FlightRepository) Init(ctx context.Context, flights []entities.Flight) error {
	defer r.observe("init", time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	if _, err := tx.ExecContext(ctx, constants.DropFlightsTable); err != nil {
		return fmt.Errorf("drop flights table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, constants.CreateFlightsTable); err != nil {
		return fmt.Errorf("create flights table: %w", err)
	}

	for _, f := range flights {
		if _, err := tx.ExecContext(ctx, constants.InsertFlightWithID,
			f.FlightID,
			f.FlightNumber,
			f.Origin,
			f.Destination,
			f.DepartureTime,
			f.ArrivalTime,
			f.DurationMin,
			f.AircraftType,
			f.SeatsTotal,
			f.SeatsAvailable,
			f.Status,
			f.CreatedAt,
			f.UpdatedAt,
			f.ProcessID,
		); err != nil {
			return fmt.Errorf("insert flight %d: %w", f.FlightID, err)
		}
	}

	return tx.Commit()
}

// List runs a filtered, sorted, paginated read over the flights table and
// returns one page of rows plus the total size of the filtered set.
func (r *FlightRepository) List(ctx context.Context, q dtos.ListFlightsQuery) ([]map[string]any, int, error) {
	defer r.observe("list", time.Now())

	if q.Page <= 0 || q.PerPage <= 0 {
		return nil, 0, fmt.Errorf("%w: page and per_page must be positive", ErrInvalidPagination)
	}

	selectClause := "*"
	if len(q.Columns) > 0 {
		cols := make([]string, 0, len(q.Columns))
		for _, c := range q.Columns {
			c = strings.TrimSpace(c)
			if !constants.IsFlightColumn(c) {
				return nil, 0, fmt.Errorf("%w: %s", ErrInvalidColumn, c)
			}
			cols = append(cols, c)
		}
		selectClause = strings.Join(cols, ", ")
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "flight_id"
	}
	if !constants.IsFlightColumn(sortBy) {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidColumn, sortBy)
	}

	sortOrder := strings.ToLower(q.SortOrder)
	switch sortOrder {
	case "":
		sortOrder = "ASC"
	case "asc":
		sortOrder = "ASC"
	case "desc":
		sortOrder = "DESC"
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidSortOrder, q.SortOrder)
	}

	whereClause := ""
	whereArgs := []any{}
	if q.FilterField != "" && q.FilterValue != "" {
		if !constants.IsFlightColumn(q.FilterField) {
			return nil, 0, fmt.Errorf("%w: %s", ErrInvalidColumn, q.FilterField)
		}
		whereClause = fmt.Sprintf(" WHERE %s LIKE ?", q.FilterField)
		whereArgs = append(whereArgs, "%"+q.FilterValue+"%")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM " + constants.FlightTable + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, whereArgs...); err != nil {
		return nil, 0, fmt.Errorf("count flights: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s LIMIT ? OFFSET ?",
		selectClause, constants.FlightTable, whereClause, sortBy, sortOrder)
	args := append(whereArgs, q.PerPage, (q.Page-1)*q.PerPage)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	results := []map[string]any{}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, 0, fmt.Errorf("scan flight row: %w", err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetByID returns a single flight or ErrNotFound.
func (r *FlightRepository) GetByID(ctx context.Context, flightID int64) (*entities.Flight, error) {
	defer r.observe("get", time.Now())

	var flight entities.Flight
	err := r.db.GetContext(ctx, &flight, constants.GetFlightByID, flightID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

// Insert appends a new flight. The table assigns the next flight_id and both
// timestamps are set to the current time.
func (r *FlightRepository) Insert(ctx context.Context, req *dtos.CreateFlightRequest) (*entities.Flight, error) {
	defer r.observe("insert", time.Now())

	now := time.Now().Format(entities.TimestampLayout)

	res, err := r.db.ExecContext(ctx, constants.InsertFlight,
		req.FlightNumber,
		req.Origin,
		req.Destination,
		req.DepartureTime,
		req.ArrivalTime,
		req.DurationMin,
		req.AircraftType,
		req.SeatsTotal,
		req.SeatsAvailable,
		req.Status,
		now,
		now,
		req.ProcessID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert flight: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read inserted flight id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update merges the supplied fields into an existing flight and refreshes
// updated_at. flight_id and created_at are immutable and silently dropped if
// present in fields.
func (r *FlightRepository) Update(ctx context.Context, flightID int64, fields map[string]any) (*entities.Flight, error) {
	defer r.observe("update", time.Now())

	if _, err := r.GetByID(ctx, flightID); err != nil {
		return nil, err
	}

	delete(fields, "flight_id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	setClauses := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for name, value := range fields {
		if !constants.IsFlightColumn(name) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidColumn, name)
		}
		setClauses = append(setClauses, name+" = ?")
		args = append(args, value)
	}

	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now().Format(entities.TimestampLayout))
	args = append(args, flightID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE flight_id = ?",
		constants.FlightTable, strings.Join(setClauses, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update flight %d: %w", flightID, err)
	}

	return r.GetByID(ctx, flightID)
}

// Delete removes a flight or returns ErrNotFound.
func (r *FlightRepository) Delete(ctx context.Context, flightID int64) error {
	defer r.observe("delete", time.Now())

	res, err := r.db.ExecContext(ctx, constants.DeleteFlightByID, flightID)
	if err != nil {
		return fmt.Errorf("delete flight %d: %w", flightID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExportAll returns every flight ordered by flight_id, for the persistence
// flush.
func (r *FlightRepository) ExportAll(ctx context.Context) ([]entities.Flight, error) {
	defer r.observe("export", time.Now())

	flights := []entities.Flight{}
	if err := r.db.SelectContext(ctx, &flights, constants.ExportAllFlights); err != nil {
		return nil, fmt.Errorf("export flights: %w", err)
	}
	return flights, nil
}

// Count returns the number of rows in the flights table.
func (r *FlightRepository) Count(ctx context.Context) (int, error) {
	defer r.observe("count", time.Now())

	var count int
	if err := r.db.GetContext(ctx, &count, constants.CountAllFlights); err != nil {
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return count, nil
}
