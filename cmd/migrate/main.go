package main

import (
	"hostly/config"
	"hostly/helper"
	"hostly/shared/logger"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	argLength      = 2
	forceArgLength = 3
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop, step-up or force <version>")
	}

	action := os.Args[1]
	version := 0

	if action == helper.ActionForce {
		if len(os.Args) < forceArgLength {
			log.Fatal().Msg("force requires a version")
		}

		parsed, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Str("version", os.Args[2]).Msg("Invalid migration version")
		}

		version = parsed
	}

	if err := helper.Run(cfg, action, version); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
