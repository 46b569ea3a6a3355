package main

import (
	"log"

	"github.com/joho/godotenv"

	"streaksim/adapters/rng"
	"streaksim/app"
	"streaksim/internal"
	"streaksim/internal/config"
	"streaksim/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	estimator := app.NewEstimatorService(rng.NewAdapter(), logger.Named("estimator"), cfg.Sim.Workers)
	application := ui.NewApp(estimator, logger.Named("http"))

	logger.Info("simulation workers: %d", cfg.Sim.Workers)
	if err := application.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
