package mirror

import "skyward/flightdeck/internal/models/entities"

// SeedFlights returns the default dataset written when no record store file
// exists yet.
func SeedFlights() []entities.Flight {
	return []entities.Flight{
		{
			FlightID:       1,
			FlightNumber:   "SP1001",
			Origin:         "JED",
			Destination:    "JED",
			DepartureTime:  "2025-11-08 01:00:00",
			ArrivalTime:    "2025-11-08 01:57:00",
			DurationMin:    57,
			AircraftType:   "A321",
			SeatsTotal:     150,
			SeatsAvailable: 26,
			Status:         "departed",
			CreatedAt:      "2025-10-10 01:00:00",
			UpdatedAt:      "2025-11-08 01:00:00",
			ProcessID:      "P-238",
		},
		{
			FlightID:       2,
			FlightNumber:   "SP1002",
			Origin:         "THR",
			Destination:    "JED",
			DepartureTime:  "2025-11-05 18:00:00",
			ArrivalTime:    "2025-11-05 19:00:00",
			DurationMin:    60,
			AircraftType:   "A321",
			SeatsTotal:     250,
			SeatsAvailable: 6,
			Status:         "departed",
			CreatedAt:      "2025-10-13 18:00:00",
			UpdatedAt:      "2025-11-02 18:00:00",
			ProcessID:      "P-215",
		},
	}
}
