// cmd/tools/seed/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"ekthaa-chatbot/internal/catalog"
	"ekthaa-chatbot/internal/common/config"
	"ekthaa-chatbot/internal/common/database"
	"ekthaa-chatbot/internal/common/logger"
)

// Seeds the catalog tables with the demo data set.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	postgres, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		log.WithError(err).Error("Failed to connect to PostgreSQL")
		os.Exit(1)
	}
	defer postgres.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.Ping(ctx); err != nil {
		log.WithError(err).Error("PostgreSQL ping failed")
		os.Exit(1)
	}
	if err := catalog.Seed(ctx, postgres.GetDB()); err != nil {
		log.WithError(err).Error("Seeding failed")
		os.Exit(1)
	}

	log.Info("Catalog seeded")
}
