// Package registry provides narrow read-only accessors for records
// owned by the surrounding fleet management platform (routes and the
// operators driving the vehicles). The tracking core never writes to
// these collections, it only embeds their details into snapshots.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/busradar/busradar/pkg/database"
	"github.com/busradar/busradar/pkg/fleet"
	"github.com/busradar/busradar/pkg/redis_client"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"go.mongodb.org/mongo-driver/bson"
)

var lookupCache *cache.Cache[string]

const cacheExpiration = 5 * time.Minute

func SetupCaches() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(cacheExpiration))

	lookupCache = cache.New[string](redisStore)
}

// Route returns the route details for the given reference, or nil when
// the route does not exist.
func Route(ctx context.Context, routeRef string) (*fleet.RouteInfo, error) {
	if routeRef == "" {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("registry/route/%s", routeRef)

	if cached, err := lookupCache.Get(ctx, cacheKey); err == nil && cached != "" {
		var routeInfo *fleet.RouteInfo
		if err := json.Unmarshal([]byte(cached), &routeInfo); err == nil {
			return routeInfo, nil
		}
	}

	routesCollection := database.GetCollection("routes")

	var routeInfo *fleet.RouteInfo
	routesCollection.FindOne(ctx, bson.M{"primaryidentifier": routeRef}).Decode(&routeInfo)

	if routeInfo == nil {
		return nil, nil
	}

	if encoded, err := json.Marshal(routeInfo); err == nil {
		lookupCache.Set(ctx, cacheKey, string(encoded))
	}

	return routeInfo, nil
}

// Operator returns the operator (driver) details for the given
// reference, or nil when the operator does not exist.
func Operator(ctx context.Context, operatorRef string) (*fleet.OperatorInfo, error) {
	if operatorRef == "" {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("registry/operator/%s", operatorRef)

	if cached, err := lookupCache.Get(ctx, cacheKey); err == nil && cached != "" {
		var operatorInfo *fleet.OperatorInfo
		if err := json.Unmarshal([]byte(cached), &operatorInfo); err == nil {
			return operatorInfo, nil
		}
	}

	operatorsCollection := database.GetCollection("operators")

	var operatorInfo *fleet.OperatorInfo
	operatorsCollection.FindOne(ctx, bson.M{"primaryidentifier": operatorRef}).Decode(&operatorInfo)

	if operatorInfo == nil {
		return nil, nil
	}

	if encoded, err := json.Marshal(operatorInfo); err == nil {
		lookupCache.Set(ctx, cacheKey, string(encoded))
	}

	return operatorInfo, nil
}
