package tracker

import (
	"context"
	"time"

	"github.com/busradar/busradar/pkg/database"
)

// PurgeExpiredReports deletes history rows older than the retention
// horizon. The collection also carries a TTL index with the same bound,
// the sweep keeps the horizon honest when the store's expiry monitor
// lags behind. Delete-by-predicate, safe to run alongside ingest
// appends, and idempotent.
func PurgeExpiredReports(ctx context.Context, config Config) (int64, error) {
	historyCollection := database.GetCollection("location_history")

	result, err := historyCollection.DeleteMany(ctx, expiredReportsFilter(time.Now(), config.RetentionHorizon))
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
