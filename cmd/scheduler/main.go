package main

import (
	"hostly/config"
	"hostly/di"
	"hostly/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if err := di.InitializeScheduler().Run(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run scheduler")
	}
}
