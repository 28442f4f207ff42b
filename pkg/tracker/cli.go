package tracker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "tracker",
		Usage: "Live vehicle tracking maintenance services",
		Subcommands: []*cli.Command{
			{
				Name:  "monitor",
				Usage: "run the liveness and retention sweeps on their schedules",
				Action: func(c *cli.Context) error {
					monitor := NewMonitor(LoadConfig())
					monitor.Start()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					monitor.Stop()

					return nil
				},
			},
			{
				Name:  "sweep-liveness",
				Usage: "run a single liveness sweep and exit",
				Action: func(c *cli.Context) error {
					count, err := MarkStaleVehiclesOffline(context.Background(), LoadConfig())
					if err != nil {
						return err
					}

					log.Info().Int64("count", count).Msg("Marked stale vehicles offline")

					return nil
				},
			},
			{
				Name:  "sweep-retention",
				Usage: "run a single retention sweep and exit",
				Action: func(c *cli.Context) error {
					count, err := PurgeExpiredReports(context.Background(), LoadConfig())
					if err != nil {
						return err
					}

					log.Info().Int64("count", count).Msg("Purged expired position reports")

					return nil
				},
			},
			{
				Name:  "nearby",
				Usage: "run a nearby search against the live store",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     "latitude",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "longitude",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "radius",
						Value: 5,
						Usage: "search radius in kilometres",
					},
				},
				Action: func(c *cli.Context) error {
					latitude := c.Float64("latitude")
					longitude := c.Float64("longitude")

					snapshots, err := FindNearby(context.Background(), LoadConfig(), &latitude, &longitude, c.Float64("radius"))
					if err != nil {
						return err
					}

					pretty.Println(snapshots)

					return nil
				},
			},
		},
	}
}
