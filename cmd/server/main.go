package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyward/flightdeck/internal/common"
	"skyward/flightdeck/internal/config"
	"skyward/flightdeck/internal/db"
	"skyward/flightdeck/internal/db/repositories"
	"skyward/flightdeck/internal/logging"
	"skyward/flightdeck/internal/metrics"
	"skyward/flightdeck/internal/mirror"
	"skyward/flightdeck/internal/routes"
	"skyward/flightdeck/internal/services"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Flightdeck starting up",
		"environment", cfg.AppEnv,
		"record_file", cfg.FlightsFile,
	)

	conn, err := db.OpenInMemory()
	if err != nil {
		logging.Error("Failed to open in-memory store", "error", err.Error())
		log.Fatalf("Failed to open in-memory store: %v", err)
	}
	defer conn.Close()

	metricsReg := metrics.NewMetricsRegistry()

	flightRepo := repositories.NewFlightRepository(conn, metricsReg)
	storeMirror := mirror.New(cfg.FlightsFile, flightRepo, metricsReg)

	if err := storeMirror.LoadOnStartup(context.Background()); err != nil {
		logging.Error("Failed to load record store file", "error", err.Error())
		log.Fatalf("Failed to load record store file: %v", err)
	}

	cacheSvc := common.NewCacheService(cfg.CacheTTLSeconds, cfg.CacheCleanupSeconds)
	flightSvc := services.NewFlightService(flightRepo, storeMirror, cacheSvc, metricsReg)

	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, flightSvc, conn, metricsReg, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("Server starting", "port", cfg.Port)

	log.Printf("Starting server on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
