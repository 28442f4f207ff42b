package tracker

import (
	"time"

	"github.com/busradar/busradar/pkg/util"
	"github.com/rs/zerolog/log"
)

const (
	defaultStaleThreshold         = 5 * time.Minute
	defaultRetentionHorizon       = 24 * time.Hour
	defaultLivenessSweepInterval  = 1 * time.Minute
	defaultRetentionSweepInterval = 1 * time.Hour
)

type Config struct {
	// StaleThreshold is the maximum age of a position report before a
	// vehicle is treated as offline.
	StaleThreshold time.Duration

	// RetentionHorizon is the maximum age of a history record before it
	// is purged.
	RetentionHorizon time.Duration

	LivenessSweepInterval  time.Duration
	RetentionSweepInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		StaleThreshold:         defaultStaleThreshold,
		RetentionHorizon:       defaultRetentionHorizon,
		LivenessSweepInterval:  defaultLivenessSweepInterval,
		RetentionSweepInterval: defaultRetentionSweepInterval,
	}
}

// LoadConfig returns the default configuration with any BUSRADAR_
// environment overrides applied.
func LoadConfig() Config {
	config := DefaultConfig()

	config.StaleThreshold = durationFromEnvironment("BUSRADAR_STALE_THRESHOLD", config.StaleThreshold)
	config.RetentionHorizon = durationFromEnvironment("BUSRADAR_RETENTION_HORIZON", config.RetentionHorizon)
	config.LivenessSweepInterval = durationFromEnvironment("BUSRADAR_LIVENESS_SWEEP_INTERVAL", config.LivenessSweepInterval)
	config.RetentionSweepInterval = durationFromEnvironment("BUSRADAR_RETENTION_SWEEP_INTERVAL", config.RetentionSweepInterval)

	return config
}

func durationFromEnvironment(name string, defaultValue time.Duration) time.Duration {
	value := util.GetEnvironmentVariable(name, "")
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Err(err).Str("variable", name).Msg("Invalid duration, using default")
		return defaultValue
	}

	return parsed
}
