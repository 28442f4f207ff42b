package tracker

import (
	"context"
	"time"

	"github.com/busradar/busradar/pkg/database"
	"github.com/busradar/busradar/pkg/fleet"
	"go.mongodb.org/mongo-driver/bson"
)

// ReportPosition accepts a position report from the operator identified
// by operatorRef. The vehicle's live fields are overwritten in place
// and a history row is appended - every accepted call produces a new
// row, duplicates included. Returns the updated vehicle snapshot.
func ReportPosition(ctx context.Context, config Config, operatorRef string, input *ReportInput) (*fleet.VehicleSnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vehiclesCollection := database.GetCollection("vehicles")

	var vehicle *fleet.Vehicle
	vehiclesCollection.FindOne(ctx, assignedVehicleFilter(operatorRef, input.VehicleID)).Decode(&vehicle)

	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	now := time.Now()
	location := &fleet.Location{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
	}

	update := bson.M{"$set": bson.M{
		"currentlocation":      location,
		"speed":                input.speed(),
		"heading":              input.heading(),
		"lastreportedat":       now,
		"isonline":             true,
		"modificationdatetime": now,
	}}

	searchQuery := bson.M{"primaryidentifier": vehicle.PrimaryIdentifier}
	if _, err := vehiclesCollection.UpdateOne(ctx, searchQuery, update); err != nil {
		return nil, err
	}

	report := &fleet.PositionReport{
		VehicleRef: vehicle.PrimaryIdentifier,
		Location:   *location,
		Speed:      input.speed(),
		Heading:    input.heading(),
		Accuracy:   input.accuracy(),
		ReportedAt: now,
	}

	historyCollection := database.GetCollection("location_history")
	if _, err := historyCollection.InsertOne(ctx, report); err != nil {
		return nil, err
	}

	vehicle.CurrentLocation = location
	vehicle.Speed = input.speed()
	vehicle.Heading = input.heading()
	vehicle.LastReportedAt = &now
	vehicle.IsOnline = true
	vehicle.ModificationDateTime = now

	snapshot := vehicle.Snapshot(now, config.StaleThreshold)
	populateSnapshot(ctx, snapshot, vehicle)

	return snapshot, nil
}

// SetOnlineStatus is the explicit operator toggle. It writes the stored
// liveness flag only - lastreportedat is untouched, so going online
// without reporting does not make the vehicle publicly online.
func SetOnlineStatus(ctx context.Context, operatorRef string, vehicleID string, online bool) error {
	vehiclesCollection := database.GetCollection("vehicles")

	var vehicle *fleet.Vehicle
	vehiclesCollection.FindOne(ctx, assignedVehicleFilter(operatorRef, vehicleID)).Decode(&vehicle)

	if vehicle == nil {
		return ErrVehicleNotFound
	}

	update := bson.M{"$set": bson.M{
		"isonline":             online,
		"modificationdatetime": time.Now(),
	}}

	searchQuery := bson.M{"primaryidentifier": vehicle.PrimaryIdentifier}
	_, err := vehiclesCollection.UpdateOne(ctx, searchQuery, update)

	return err
}
