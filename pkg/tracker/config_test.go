package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.Equal(t, 5*time.Minute, config.StaleThreshold)
	require.Equal(t, 24*time.Hour, config.RetentionHorizon)
	require.Equal(t, 1*time.Minute, config.LivenessSweepInterval)
	require.Equal(t, 1*time.Hour, config.RetentionSweepInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BUSRADAR_STALE_THRESHOLD", "10m")
	t.Setenv("BUSRADAR_RETENTION_HORIZON", "48h")

	config := LoadConfig()

	require.Equal(t, 10*time.Minute, config.StaleThreshold)
	require.Equal(t, 48*time.Hour, config.RetentionHorizon)
	require.Equal(t, 1*time.Minute, config.LivenessSweepInterval)
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	t.Setenv("BUSRADAR_STALE_THRESHOLD", "not-a-duration")

	config := LoadConfig()

	require.Equal(t, 5*time.Minute, config.StaleThreshold)
}
