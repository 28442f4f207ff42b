package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/busradar/busradar/pkg/database"
	"github.com/busradar/busradar/pkg/fleet"
	"github.com/busradar/busradar/pkg/util"
	"github.com/rs/zerolog/log"
)

// FindNearby returns snapshots of active, recently reporting vehicles
// within radiusKm of the query point, nearest first. Two phases: a
// coarse degree-box prefilter against the store, then exact haversine
// ranking with a cutoff at the true radius.
func FindNearby(ctx context.Context, config Config, latitude *float64, longitude *float64, radiusKm float64) ([]*fleet.VehicleSnapshot, error) {
	if latitude == nil {
		return nil, &ValidationError{Field: "latitude", Message: "latitude is required"}
	}
	if *latitude < -90 || *latitude > 90 {
		return nil, &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}
	if longitude == nil {
		return nil, &ValidationError{Field: "longitude", Message: "longitude is required"}
	}
	if *longitude < -180 || *longitude > 180 {
		return nil, &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}
	if radiusKm <= 0 {
		return nil, &ValidationError{Field: "radius", Message: "radius must be positive"}
	}

	origin := &fleet.Location{
		Latitude:  *latitude,
		Longitude: *longitude,
	}
	now := time.Now()

	vehiclesCollection := database.GetCollection("vehicles")
	cursor, err := vehiclesCollection.Find(ctx, nearbyPrefilter(origin, radiusKm, now, config.StaleThreshold))
	if err != nil {
		return nil, err
	}

	var candidates []*fleet.Vehicle
	for cursor.Next(ctx) {
		var vehicle *fleet.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			log.Error().Err(err).Msg("Failed to decode Vehicle")
			continue
		}

		candidates = append(candidates, vehicle)
	}

	snapshots := []*fleet.VehicleSnapshot{}
	for _, vehicle := range rankByDistance(origin, candidates, radiusKm) {
		snapshot := vehicle.Snapshot(now, config.StaleThreshold).WithDistanceFrom(origin)
		populateSnapshot(ctx, snapshot, vehicle)

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// rankByDistance discards candidates whose exact great-circle distance
// from the origin exceeds radiusKm and sorts the remainder nearest
// first.
func rankByDistance(origin *fleet.Location, vehicles []*fleet.Vehicle, radiusKm float64) []*fleet.Vehicle {
	util.InPlaceFilter(&vehicles, func(vehicle *fleet.Vehicle) bool {
		return vehicle.CurrentLocation != nil && origin.DistanceKm(vehicle.CurrentLocation) <= radiusKm
	})

	sort.SliceStable(vehicles, func(i int, j int) bool {
		return origin.DistanceKm(vehicles[i].CurrentLocation) < origin.DistanceKm(vehicles[j].CurrentLocation)
	})

	return vehicles
}
