package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const staleThreshold = 5 * time.Minute

func TestEffectiveOnline(t *testing.T) {
	now := time.Now()
	recent := now.Add(-1 * time.Minute)
	stale := now.Add(-6 * time.Minute)

	vehicle := &Vehicle{IsOnline: true, LastReportedAt: &recent}
	require.True(t, vehicle.EffectiveOnline(now, staleThreshold))

	// Stored flag still set but the report is stale
	vehicle = &Vehicle{IsOnline: true, LastReportedAt: &stale}
	require.False(t, vehicle.EffectiveOnline(now, staleThreshold))

	// Toggled online without ever reporting
	vehicle = &Vehicle{IsOnline: true}
	require.False(t, vehicle.EffectiveOnline(now, staleThreshold))

	// Toggled offline despite a recent report
	vehicle = &Vehicle{IsOnline: false, LastReportedAt: &recent}
	require.False(t, vehicle.EffectiveOnline(now, staleThreshold))
}

func TestEffectiveOnlineBoundary(t *testing.T) {
	now := time.Now()
	exactlyAtThreshold := now.Add(-staleThreshold)

	vehicle := &Vehicle{IsOnline: true, LastReportedAt: &exactlyAtThreshold}
	require.False(t, vehicle.EffectiveOnline(now, staleThreshold))

	justInside := now.Add(-staleThreshold + time.Second)
	vehicle.LastReportedAt = &justInside
	require.True(t, vehicle.EffectiveOnline(now, staleThreshold))
}

func TestSnapshot(t *testing.T) {
	now := time.Now()
	reportedAt := now.Add(-30 * time.Second)

	vehicle := &Vehicle{
		PrimaryIdentifier: "bus-42",
		PlateNumber:       "RAD 123 X",
		CurrentLocation:   &Location{Latitude: 51.5, Longitude: -0.1},
		LastReportedAt:    &reportedAt,
		Speed:             31.5,
		Heading:           90,
		IsOnline:          true,
		IsActive:          true,
	}

	snapshot := vehicle.Snapshot(now, staleThreshold)

	require.Equal(t, "bus-42", snapshot.ID)
	require.Equal(t, "RAD 123 X", snapshot.PlateNumber)
	require.Equal(t, vehicle.CurrentLocation, snapshot.CurrentLocation)
	require.Equal(t, 31.5, snapshot.Speed)
	require.True(t, snapshot.IsOnline)
	require.Equal(t, &reportedAt, snapshot.LastSeen)
	require.Nil(t, snapshot.DistanceKm)
}

func TestSnapshotWithDistanceFrom(t *testing.T) {
	origin := &Location{Latitude: 0, Longitude: 0}

	snapshot := &VehicleSnapshot{
		CurrentLocation: &Location{Latitude: 0, Longitude: 0.01},
	}
	snapshot.WithDistanceFrom(origin)

	require.NotNil(t, snapshot.DistanceKm)
	// ~1.112 km rounded to 2dp
	require.Equal(t, 1.11, *snapshot.DistanceKm)

	// No stored position means no distance
	snapshot = &VehicleSnapshot{}
	snapshot.WithDistanceFrom(origin)
	require.Nil(t, snapshot.DistanceKm)
}
