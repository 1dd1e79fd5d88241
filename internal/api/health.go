package api

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"skyward/flightdeck/internal/models/dtos/responses"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, recordFile string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]responses.ServiceStatus)

		storeStatus := "ok"
		storeDetails := "Flights table reachable"
		if err := db.Ping(); err != nil {
			storeStatus = "down"
			storeDetails = err.Error()
		}
		services["store"] = responses.ServiceStatus{
			Status:  storeStatus,
			Details: storeDetails,
		}

		fileStatus := "ok"
		fileDetails := "Record store file present"
		if _, err := os.Stat(recordFile); err != nil {
			fileStatus = "down"
			fileDetails = err.Error()
		}
		services["record_file"] = responses.ServiceStatus{
			Status:  fileStatus,
			Details: fileDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := responses.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
