package tracker

import (
	"testing"
	"time"

	"github.com/busradar/busradar/pkg/fleet"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAssignedVehicleFilter(t *testing.T) {
	require.Equal(t, bson.M{"operatorref": "op-1"}, assignedVehicleFilter("op-1", ""))

	require.Equal(t, bson.M{
		"operatorref":       "op-1",
		"primaryidentifier": "bus-42",
	}, assignedVehicleFilter("op-1", "bus-42"))
}

func TestStaleVehiclesFilter(t *testing.T) {
	now := time.Now()

	filter := staleVehiclesFilter(now, 5*time.Minute)

	require.Equal(t, true, filter["isonline"])
	require.Equal(t, bson.M{"$lt": now.Add(-5 * time.Minute)}, filter["lastreportedat"])
}

func TestExpiredReportsFilter(t *testing.T) {
	now := time.Now()

	filter := expiredReportsFilter(now, 24*time.Hour)

	require.Equal(t, bson.M{
		"reportedat": bson.M{"$lt": now.Add(-24 * time.Hour)},
	}, filter)
}

func TestHistoryWindowFilter(t *testing.T) {
	since := time.Now().Add(-1 * time.Hour)

	require.Equal(t, bson.M{
		"vehicleref": "bus-42",
		"reportedat": bson.M{"$gte": since},
	}, historyWindowFilter("bus-42", since))
}

func TestNearbyPrefilter(t *testing.T) {
	now := time.Now()
	origin := &fleet.Location{Latitude: 51.5, Longitude: -0.1}

	filter := nearbyPrefilter(origin, 111, now, 5*time.Minute)

	require.Equal(t, true, filter["isactive"])

	require.Equal(t, bson.M{
		"$gte": 50.5,
		"$lte": 52.5,
	}, filter["currentlocation.latitude"])

	require.Equal(t, bson.M{
		"$gte": -1.1,
		"$lte": 0.9,
	}, filter["currentlocation.longitude"])

	require.Equal(t, bson.M{
		"$gte": now.Add(-5 * time.Minute),
	}, filter["lastreportedat"])
}
