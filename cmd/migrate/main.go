package main

import (
	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action (up, down, step-up or drop) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
