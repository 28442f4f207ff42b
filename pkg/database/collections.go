package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createVehiclesIndexes()
	createLocationHistoryIndexes()
}

func createVehiclesIndexes() {
	vehiclesCollection := GetCollection("vehicles")
	vehiclesIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "primaryidentifier", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "operatorref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "routeref", Value: 1}},
		},
		{
			// Bounding box prefilter for nearby search
			Keys: bson.D{
				{Key: "currentlocation.latitude", Value: 1},
				{Key: "currentlocation.longitude", Value: 1},
			},
		},
		{
			// Stale liveness sweep
			Keys: bson.D{
				{Key: "isonline", Value: 1},
				{Key: "lastreportedat", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := vehiclesCollection.Indexes().CreateMany(context.Background(), vehiclesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createLocationHistoryIndexes() {
	locationHistoryCollection := GetCollection("location_history")
	locationHistoryIndex := []mongo.IndexModel{
		{
			// Trail queries
			Keys: bson.D{
				{Key: "vehicleref", Value: 1},
				{Key: "reportedat", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "reportedat", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(24 * 3600), // Expire after 24 hours
		},
	}

	opts := options.CreateIndexes()
	_, err := locationHistoryCollection.Indexes().CreateMany(context.Background(), locationHistoryIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
