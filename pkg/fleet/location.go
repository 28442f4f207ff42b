package fleet

import "math"

const earthRadiusKm = 6371

// Rough km covered by one degree of latitude, used for the coarse
// bounding box prefilter before exact distances are calculated.
const kmPerDegree = 111.0

type Location struct {
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
}

// DistanceKm returns the great-circle distance in kilometres between
// the two locations using the haversine formula.
func (l *Location) DistanceKm(other *Location) float64 {
	dLat := (other.Latitude - l.Latitude) * math.Pi / 180
	dLon := (other.Longitude - l.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(l.Latitude*math.Pi/180)*math.Cos(other.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

type BoundingBox struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// BoxAround returns the degree-delta bounding box centred on the
// location covering at least radiusKm in every direction.
func (l *Location) BoxAround(radiusKm float64) BoundingBox {
	delta := radiusKm / kmPerDegree

	return BoundingBox{
		MinLatitude:  l.Latitude - delta,
		MaxLatitude:  l.Latitude + delta,
		MinLongitude: l.Longitude - delta,
		MaxLongitude: l.Longitude + delta,
	}
}
