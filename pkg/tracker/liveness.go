package tracker

import (
	"context"
	"time"

	"github.com/busradar/busradar/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

// MarkStaleVehiclesOffline is the liveness sweep: every vehicle still
// flagged online whose last report is older than the staleness
// threshold gets its stored flag cleared in one bulk update. This is
// the only place staleness is corrected server side - read paths
// recompute the effective flag themselves, so at most one sweep
// interval of stored-flag lag is ever visible.
func MarkStaleVehiclesOffline(ctx context.Context, config Config) (int64, error) {
	vehiclesCollection := database.GetCollection("vehicles")

	update := bson.M{"$set": bson.M{"isonline": false}}

	result, err := vehiclesCollection.UpdateMany(ctx, staleVehiclesFilter(time.Now(), config.StaleThreshold), update)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
