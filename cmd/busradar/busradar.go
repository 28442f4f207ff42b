package main

import (
	"os"
	"time"

	"github.com/busradar/busradar/pkg/api"
	"github.com/busradar/busradar/pkg/database"
	"github.com/busradar/busradar/pkg/redis_client"
	"github.com/busradar/busradar/pkg/registry"
	"github.com/busradar/busradar/pkg/tracker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("BUSRADAR_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("BUSRADAR_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	if err := database.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := redis_client.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}

	registry.SetupCaches()

	app := &cli.App{
		Name:        "busradar",
		Description: "Single binary of truth for busradar - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			tracker.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
