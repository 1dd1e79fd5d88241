package entities

// TimestampLayout is the wire and storage format for all flight timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Flight is a single flight record as stored in the flights table and in the
// record store file.
type Flight struct {
	FlightID       int64  `db:"flight_id" json:"flight_id"`
	FlightNumber   string `db:"flight_number" json:"flight_number"`
	Origin         string `db:"origin" json:"origin"`
	Destination    string `db:"destination" json:"destination"`
	DepartureTime  string `db:"departure_time" json:"departure_time"`
	ArrivalTime    string `db:"arrival_time" json:"arrival_time"`
	DurationMin    int    `db:"duration_minutes" json:"duration_minutes"`
	AircraftType   string `db:"aircraft_type" json:"aircraft_type"`
	SeatsTotal     int    `db:"seats_total" json:"seats_total"`
	SeatsAvailable int    `db:"seats_available" json:"seats_available"`
	Status         string `db:"status" json:"status"`
	CreatedAt      string `db:"created_at" json:"created_at"`
	UpdatedAt      string `db:"updated_at" json:"updated_at"`
	ProcessID      string `db:"process_id" json:"process_id"`
}
