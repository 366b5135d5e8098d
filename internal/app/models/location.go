package models

import "github.com/FACorreiaa/passadia/internal/pkg/geo"

// Coordinates is a latitude/longitude pair as stored on walkway documents.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether c is present and inside the WGS84 ranges.
func (c *Coordinates) Valid() bool {
	if c == nil {
		return false
	}
	return geo.ValidateCoordinates(c.Latitude, c.Longitude)
}

// DistanceKm is the great-circle distance between c and other.
func (c *Coordinates) DistanceKm(other *Coordinates) float64 {
	return geo.HaversineKm(c.Latitude, c.Longitude, other.Latitude, other.Longitude)
}

// Trajectory describes where a walkway starts and ends.
type Trajectory struct {
	Start     *Coordinates `json:"start,omitempty"`
	End       *Coordinates `json:"end,omitempty"`
	RoundTrip bool         `json:"roundTrip"`
}
