package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel PMS API
// @version 1.0
// @description Property-management backend: rooms, guests, bookings, consumables, housekeeping and dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
