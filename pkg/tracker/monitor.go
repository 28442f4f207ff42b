package tracker

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Monitor owns the two periodic sweeps. Each job runs under
// SkipIfStillRunning so a slow sweep delays its next tick instead of
// piling up concurrent runs, and under Recover so a panicking sweep
// never takes the process down.
type Monitor struct {
	config    Config
	scheduler *cron.Cron
}

func NewMonitor(config Config) *Monitor {
	logger := cronLogger{}

	return &Monitor{
		config: config,
		scheduler: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(logger),
			cron.Recover(logger),
		)),
	}
}

func (monitor *Monitor) Start() {
	monitor.scheduler.Schedule(cron.Every(monitor.config.LivenessSweepInterval), cron.FuncJob(monitor.runLivenessSweep))
	monitor.scheduler.Schedule(cron.Every(monitor.config.RetentionSweepInterval), cron.FuncJob(monitor.runRetentionSweep))

	monitor.scheduler.Start()

	log.Info().
		Str("liveness", monitor.config.LivenessSweepInterval.String()).
		Str("retention", monitor.config.RetentionSweepInterval.String()).
		Msg("Tracker monitor started")
}

// Stop waits for any in-flight sweep to finish.
func (monitor *Monitor) Stop() {
	<-monitor.scheduler.Stop().Done()

	log.Info().Msg("Tracker monitor stopped")
}

func (monitor *Monitor) runLivenessSweep() {
	count, err := MarkStaleVehiclesOffline(context.Background(), monitor.config)
	if err != nil {
		log.Error().Err(err).Msg("Liveness sweep failed")
		return
	}

	if count != 0 {
		log.Info().Int64("count", count).Msg("Marked stale vehicles offline")
	}
}

func (monitor *Monitor) runRetentionSweep() {
	count, err := PurgeExpiredReports(context.Background(), monitor.config)
	if err != nil {
		log.Error().Err(err).Msg("Retention sweep failed")
		return
	}

	if count != 0 {
		log.Info().Int64("count", count).Msg("Purged expired position reports")
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Info().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
