package dtos

// CreateFlightRequest is the body of POST /flights. The store assigns
// flight_id and both timestamps.
type CreateFlightRequest struct {
	FlightNumber   string `json:"flight_number"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	DurationMin    int    `json:"duration_minutes"`
	AircraftType   string `json:"aircraft_type"`
	SeatsTotal     int    `json:"seats_total"`
	SeatsAvailable int    `json:"seats_available"`
	Status         string `json:"status"`
	ProcessID      string `json:"process_id"`
}

// UpdateFlightRequest is the body of PUT /flights/{flight_id}. Every field is
// optional; only fields present in the body are applied. flight_id and
// created_at cannot be changed, updated_at is refreshed by the store.
type UpdateFlightRequest struct {
	FlightNumber   *string `json:"flight_number"`
	Origin         *string `json:"origin"`
	Destination    *string `json:"destination"`
	DepartureTime  *string `json:"departure_time"`
	ArrivalTime    *string `json:"arrival_time"`
	DurationMin    *int    `json:"duration_minutes"`
	AircraftType   *string `json:"aircraft_type"`
	SeatsTotal     *int    `json:"seats_total"`
	SeatsAvailable *int    `json:"seats_available"`
	Status         *string `json:"status"`
	ProcessID      *string `json:"process_id"`
}

// Fields flattens the request into column name -> value pairs for the fields
// that were actually supplied.
func (r *UpdateFlightRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.FlightNumber != nil {
		fields["flight_number"] = *r.FlightNumber
	}
	if r.Origin != nil {
		fields["origin"] = *r.Origin
	}
	if r.Destination != nil {
		fields["destination"] = *r.Destination
	}
	if r.DepartureTime != nil {
		fields["departure_time"] = *r.DepartureTime
	}
	if r.ArrivalTime != nil {
		fields["arrival_time"] = *r.ArrivalTime
	}
	if r.DurationMin != nil {
		fields["duration_minutes"] = *r.DurationMin
	}
	if r.AircraftType != nil {
		fields["aircraft_type"] = *r.AircraftType
	}
	if r.SeatsTotal != nil {
		fields["seats_total"] = *r.SeatsTotal
	}
	if r.SeatsAvailable != nil {
		fields["seats_available"] = *r.SeatsAvailable
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.ProcessID != nil {
		fields["process_id"] = *r.ProcessID
	}
	return fields
}

// ListFlightsQuery carries the parsed query parameters of GET /flights.
type ListFlightsQuery struct {
	Page        int
	PerPage     int
	SortBy      string
	SortOrder   string
	FilterField string
	FilterValue string
	Columns     []string
}
