package fleet

import "time"

// Vehicle is the persisted record of a tracked bus. Registration and
// route/operator assignment are owned by the fleet management side of
// the platform, this core only mutates the live tracking fields.
type Vehicle struct {
	PrimaryIdentifier string `groups:"basic"`
	PlateNumber       string `groups:"basic"`

	Capacity    int    `groups:"detailed"`
	RouteRef    string `groups:"internal"`
	OperatorRef string `groups:"internal"`

	// CurrentLocation is nil until the vehicle reports for the first time.
	CurrentLocation *Location  `groups:"basic"`
	LastReportedAt  *time.Time `groups:"basic"`
	Speed           float64    `groups:"basic"`
	Heading         float64    `groups:"basic"`

	// IsOnline is the stored liveness flag. It is advisory on its own -
	// an operator toggle can set it without a recent report, and the
	// liveness sweep only corrects it once per tick. Use EffectiveOnline
	// for anything passenger facing.
	IsOnline bool `groups:"internal"`
	IsActive bool `groups:"internal"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}

// EffectiveOnline reports whether the vehicle should be presented as
// online: the stored flag must be set and the last report must be
// within the staleness window.
func (v *Vehicle) EffectiveOnline(now time.Time, staleThreshold time.Duration) bool {
	if !v.IsOnline || v.LastReportedAt == nil {
		return false
	}

	return now.Sub(*v.LastReportedAt) < staleThreshold
}
