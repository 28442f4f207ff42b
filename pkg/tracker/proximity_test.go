package tracker

import (
	"testing"

	"github.com/busradar/busradar/pkg/fleet"
	"github.com/stretchr/testify/require"
)

func vehicleAt(identifier string, latitude float64, longitude float64) *fleet.Vehicle {
	return &fleet.Vehicle{
		PrimaryIdentifier: identifier,
		CurrentLocation:   &fleet.Location{Latitude: latitude, Longitude: longitude},
		IsActive:          true,
		IsOnline:          true,
	}
}

func TestRankByDistance(t *testing.T) {
	origin := &fleet.Location{Latitude: 0, Longitude: 0}

	// Roughly 0.5km, 2km and 8km north of the origin
	half := vehicleAt("half-km", 0.0045, 0)
	two := vehicleAt("two-km", 0.018, 0)
	eight := vehicleAt("eight-km", 0.072, 0)

	ranked := rankByDistance(origin, []*fleet.Vehicle{eight, half, two}, 5)

	require.Len(t, ranked, 2)
	require.Equal(t, "half-km", ranked[0].PrimaryIdentifier)
	require.Equal(t, "two-km", ranked[1].PrimaryIdentifier)
}

func TestRankByDistanceExactRadiusCutoff(t *testing.T) {
	origin := &fleet.Location{Latitude: 0, Longitude: 0}

	// Just inside and well outside a 1km radius
	inside := vehicleAt("inside", 0.0085, 0)
	outside := vehicleAt("outside", 0.0095, 0)

	ranked := rankByDistance(origin, []*fleet.Vehicle{outside, inside}, 1)

	require.Len(t, ranked, 1)
	require.Equal(t, "inside", ranked[0].PrimaryIdentifier)
}

func TestRankByDistanceSkipsMissingLocation(t *testing.T) {
	origin := &fleet.Location{Latitude: 0, Longitude: 0}

	neverReported := &fleet.Vehicle{PrimaryIdentifier: "silent", IsActive: true}
	nearby := vehicleAt("nearby", 0.001, 0.001)

	ranked := rankByDistance(origin, []*fleet.Vehicle{neverReported, nearby}, 5)

	require.Len(t, ranked, 1)
	require.Equal(t, "nearby", ranked[0].PrimaryIdentifier)
}

func TestRankByDistanceEmpty(t *testing.T) {
	origin := &fleet.Location{Latitude: 0, Longitude: 0}

	require.Empty(t, rankByDistance(origin, nil, 5))
}
