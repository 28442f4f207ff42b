package tracker

import (
	"time"

	"github.com/busradar/busradar/pkg/fleet"
	"go.mongodb.org/mongo-driver/bson"
)

// assignedVehicleFilter matches the vehicle assigned to the operator,
// optionally pinned to an explicit vehicle identifier.
func assignedVehicleFilter(operatorRef string, vehicleID string) bson.M {
	filter := bson.M{"operatorref": operatorRef}

	if vehicleID != "" {
		filter["primaryidentifier"] = vehicleID
	}

	return filter
}

// staleVehiclesFilter matches vehicles still flagged online whose last
// report predates the staleness cutoff.
func staleVehiclesFilter(now time.Time, staleThreshold time.Duration) bson.M {
	cutoff := now.Add(-staleThreshold)

	return bson.M{
		"isonline":       true,
		"lastreportedat": bson.M{"$lt": cutoff},
	}
}

// expiredReportsFilter matches history rows past the retention horizon.
func expiredReportsFilter(now time.Time, retentionHorizon time.Duration) bson.M {
	cutoff := now.Add(-retentionHorizon)

	return bson.M{
		"reportedat": bson.M{"$lt": cutoff},
	}
}

// historyWindowFilter matches a vehicle's history rows newer than the
// lookback window.
func historyWindowFilter(vehicleRef string, since time.Time) bson.M {
	return bson.M{
		"vehicleref": vehicleRef,
		"reportedat": bson.M{"$gte": since},
	}
}

// nearbyPrefilter is the coarse bounding box query for proximity
// search: active vehicles with a stored position inside the degree box
// and a report within the staleness window. Vehicles with no position
// at all can never match the range comparisons.
func nearbyPrefilter(origin *fleet.Location, radiusKm float64, now time.Time, staleThreshold time.Duration) bson.M {
	box := origin.BoxAround(radiusKm)

	return bson.M{
		"isactive": true,
		"currentlocation.latitude": bson.M{
			"$gte": box.MinLatitude,
			"$lte": box.MaxLatitude,
		},
		"currentlocation.longitude": bson.M{
			"$gte": box.MinLongitude,
			"$lte": box.MaxLongitude,
		},
		"lastreportedat": bson.M{
			"$gte": now.Add(-staleThreshold),
		},
	}
}
