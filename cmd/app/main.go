package main

import (
	"hostly/config"
	"hostly/di"
	"hostly/helper"
	"hostly/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hostly Booking API
// @version 1.0
// @description Booking intake, pricing and host billing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Run(cfg, helper.ActionUp, 0); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
