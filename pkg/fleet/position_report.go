package fleet

import "time"

// PositionReport is a single accepted location report, immutable once
// written. Rows expire from the history log after the retention
// horizon. ReportedAt is the authoritative ordering key - out of order
// arrivals are stored as received and never resequenced.
type PositionReport struct {
	VehicleRef string `groups:"basic"`

	Location Location `groups:"basic"`
	Speed    float64  `groups:"basic"`
	Heading  float64  `groups:"basic"`
	Accuracy float64  `groups:"basic"`

	ReportedAt time.Time `groups:"basic"`
}
