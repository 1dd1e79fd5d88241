package constants

// FlightTable is the name of the in-memory flights table.
const FlightTable = "flights"

// FlightColumns lists every column of the flights table in schema order.
// Identifiers used in dynamically assembled queries must come from this set;
// anything else is rejected before a query is built.
var FlightColumns = []string{
	"flight_id",
	"flight_number",
	"origin",
	"destination",
	"departure_time",
	"arrival_time",
	"duration_minutes",
	"aircraft_type",
	"seats_total",
	"seats_available",
	"status",
	"created_at",
	"updated_at",
	"process_id",
}

var flightColumnSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(FlightColumns))
	for _, c := range FlightColumns {
		m[c] = struct{}{}
	}
	return m
}()

// IsFlightColumn reports whether name is a known flights column.
func IsFlightColumn(name string) bool {
	_, ok := flightColumnSet[name]
	return ok
}
