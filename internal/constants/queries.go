package constants

const (
	CreateFlightsTable = `
	CREATE TABLE IF NOT EXISTS flights (
		flight_id        INTEGER PRIMARY KEY AUTOINCREMENT,
		flight_number    TEXT,
		origin           TEXT,
		destination      TEXT,
		departure_time   TEXT,
		arrival_time     TEXT,
		duration_minutes INTEGER,
		aircraft_type    TEXT,
		seats_total      INTEGER,
		seats_available  INTEGER,
		status           TEXT,
		created_at       TEXT,
		updated_at       TEXT,
		process_id       TEXT
	)
	`

	DropFlightsTable = `
	DROP TABLE IF EXISTS flights
	`

	GetFlightByID = `
	SELECT * FROM flights WHERE flight_id = ?
	`

	InsertFlight = `
	INSERT INTO flights
		(flight_number, origin, destination, departure_time, arrival_time,
		 duration_minutes, aircraft_type, seats_total, seats_available, status,
		 created_at, updated_at, process_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	InsertFlightWithID = `
	INSERT INTO flights
		(flight_id, flight_number, origin, destination, departure_time, arrival_time,
		 duration_minutes, aircraft_type, seats_total, seats_available, status,
		 created_at, updated_at, process_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	DeleteFlightByID = `
	DELETE FROM flights WHERE flight_id = ?
	`

	ExportAllFlights = `
	SELECT * FROM flights ORDER BY flight_id ASC
	`

	CountAllFlights = `
	SELECT COUNT(*) FROM flights
	`
)
