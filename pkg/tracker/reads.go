package tracker

import (
	"context"
	"time"

	"github.com/busradar/busradar/pkg/database"
	"github.com/busradar/busradar/pkg/fleet"
	"github.com/busradar/busradar/pkg/registry"
	"github.com/busradar/busradar/pkg/util"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetVehicleSnapshot returns the current snapshot for one vehicle.
func GetVehicleSnapshot(ctx context.Context, config Config, vehicleID string) (*fleet.VehicleSnapshot, error) {
	vehiclesCollection := database.GetCollection("vehicles")

	var vehicle *fleet.Vehicle
	vehiclesCollection.FindOne(ctx, bson.M{"primaryidentifier": vehicleID}).Decode(&vehicle)

	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	snapshot := vehicle.Snapshot(time.Now(), config.StaleThreshold)
	populateSnapshot(ctx, snapshot, vehicle)

	return snapshot, nil
}

type ListFilter struct {
	RouteRef string
	IsOnline *bool
}

// ListVehicleSnapshots returns snapshots for all active vehicles. The
// IsOnline filter is applied against the effective online flag, which
// is recomputed here rather than trusting the stored one - a listing
// must never show a vehicle online just because the sweep hasn't run
// yet.
func ListVehicleSnapshots(ctx context.Context, config Config, filter ListFilter) ([]*fleet.VehicleSnapshot, error) {
	query := bson.M{"isactive": true}
	if filter.RouteRef != "" {
		query["routeref"] = filter.RouteRef
	}

	vehiclesCollection := database.GetCollection("vehicles")
	cursor, err := vehiclesCollection.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snapshots := []*fleet.VehicleSnapshot{}

	for cursor.Next(ctx) {
		var vehicle *fleet.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			log.Error().Err(err).Msg("Failed to decode Vehicle")
			continue
		}

		snapshot := vehicle.Snapshot(now, config.StaleThreshold)
		populateSnapshot(ctx, snapshot, vehicle)

		snapshots = append(snapshots, snapshot)
	}

	if filter.IsOnline != nil {
		util.InPlaceFilter(&snapshots, func(snapshot *fleet.VehicleSnapshot) bool {
			return snapshot.IsOnline == *filter.IsOnline
		})
	}

	return snapshots, nil
}

// VehicleHistory returns the vehicle's position reports from the last
// given number of hours, most recent first.
func VehicleHistory(ctx context.Context, vehicleID string, hours float64) ([]*fleet.PositionReport, error) {
	if hours <= 0 {
		return nil, &ValidationError{Field: "hours", Message: "hours must be positive"}
	}

	vehiclesCollection := database.GetCollection("vehicles")

	var vehicle *fleet.Vehicle
	vehiclesCollection.FindOne(ctx, bson.M{"primaryidentifier": vehicleID}).Decode(&vehicle)

	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	since := time.Now().Add(-time.Duration(hours * float64(time.Hour)))

	opts := options.Find().SetSort(bson.D{{Key: "reportedat", Value: -1}})

	historyCollection := database.GetCollection("location_history")
	cursor, err := historyCollection.Find(ctx, historyWindowFilter(vehicleID, since), opts)
	if err != nil {
		return nil, err
	}

	reports := []*fleet.PositionReport{}
	for cursor.Next(ctx) {
		var report *fleet.PositionReport
		if err := cursor.Decode(&report); err != nil {
			log.Error().Err(err).Msg("Failed to decode PositionReport")
			continue
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// populateSnapshot embeds route and driver details from the registry.
// Lookup failures are logged and the snapshot is returned without the
// embed, a missing route name should never fail a location read.
func populateSnapshot(ctx context.Context, snapshot *fleet.VehicleSnapshot, vehicle *fleet.Vehicle) {
	routeInfo, err := registry.Route(ctx, vehicle.RouteRef)
	if err != nil {
		log.Error().Err(err).Str("route", vehicle.RouteRef).Msg("Failed to resolve route")
	} else {
		snapshot.Route = routeInfo
	}

	operatorInfo, err := registry.Operator(ctx, vehicle.OperatorRef)
	if err != nil {
		log.Error().Err(err).Str("operator", vehicle.OperatorRef).Msg("Failed to resolve operator")
	} else {
		snapshot.Driver = operatorInfo
	}
}
