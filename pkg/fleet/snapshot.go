package fleet

import (
	"math"
	"time"
)

// RouteInfo and OperatorInfo are the narrow views of records owned by
// the surrounding CRUD platform that get embedded into snapshots.
type RouteInfo struct {
	Name        string `json:"name" groups:"basic"`
	Description string `json:"description" groups:"basic"`
}

type OperatorInfo struct {
	Name  string `json:"name" groups:"basic"`
	Email string `json:"email" groups:"detailed"`
	Phone string `json:"phone" groups:"detailed"`
}

// VehicleSnapshot is the read-side representation of a vehicle returned
// by the location API. IsOnline here is always the effective flag, not
// the stored one.
type VehicleSnapshot struct {
	ID          string `json:"id" groups:"basic"`
	PlateNumber string `json:"plateNumber" groups:"basic"`

	Driver *OperatorInfo `json:"driver,omitempty" groups:"basic"`
	Route  *RouteInfo    `json:"route,omitempty" groups:"basic"`

	CurrentLocation *Location  `json:"currentLocation" groups:"basic"`
	Speed           float64    `json:"speed" groups:"basic"`
	Heading         float64    `json:"heading" groups:"basic"`
	IsOnline        bool       `json:"isOnline" groups:"basic"`
	LastSeen        *time.Time `json:"lastSeen" groups:"basic"`

	// DistanceKm is only populated by nearby search, rounded to 2dp.
	DistanceKm *float64 `json:"distance,omitempty" groups:"basic"`
}

// Snapshot builds the read-side view of the vehicle at the given time.
func (v *Vehicle) Snapshot(now time.Time, staleThreshold time.Duration) *VehicleSnapshot {
	return &VehicleSnapshot{
		ID:          v.PrimaryIdentifier,
		PlateNumber: v.PlateNumber,

		CurrentLocation: v.CurrentLocation,
		Speed:           v.Speed,
		Heading:         v.Heading,
		IsOnline:        v.EffectiveOnline(now, staleThreshold),
		LastSeen:        v.LastReportedAt,
	}
}

// WithDistanceFrom records the rounded great-circle distance from the
// origin on the snapshot.
func (s *VehicleSnapshot) WithDistanceFrom(origin *Location) *VehicleSnapshot {
	if s.CurrentLocation == nil {
		return s
	}

	distance := math.Round(origin.DistanceKm(s.CurrentLocation)*100) / 100
	s.DistanceKm = &distance

	return s
}
