// Package geo provides great-circle distance calculation and the office
// geofence check used to gate attendance actions.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusMeters is the mean Earth radius. Spherical approximation is
// fine at geofence scale (hundreds of meters).
const earthRadiusMeters = 6371000

// Coordinate is a WGS84 point in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the haversine distance between two coordinates in meters.
// It fails only on non-finite inputs.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	for _, v := range [...]float64{lat1, lon1, lat2, lon2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("non-finite coordinate: %v", v)
		}
	}

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// Result is the outcome of a single geofence check. DistanceMeters is -1
// when the check itself could not be computed; callers must treat that as
// a validation failure, not as "outside the zone".
type Result struct {
	IsWithin       bool
	DistanceMeters float64
	Office         Coordinate
	User           Coordinate
	RadiusMeters   float64
	Err            error
}

// Failed reports whether the check could not be computed at all.
func (r Result) Failed() bool {
	return r.DistanceMeters < 0
}

// Validator classifies coordinates against a fixed office geofence. The
// office coordinate and radius are immutable for the process lifetime.
type Validator struct {
	office Coordinate
	radius float64
}

func NewValidator(office Coordinate, radiusMeters float64) *Validator {
	return &Validator{office: office, radius: radiusMeters}
}

// Check computes the distance from the office and classifies the point.
// The boundary is inclusive: exactly at the radius counts as inside.
// Check never panics; malformed input produces a failed Result.
func (v *Validator) Check(lat, lon float64) Result {
	user := Coordinate{Latitude: lat, Longitude: lon}

	dist, err := Distance(v.office.Latitude, v.office.Longitude, lat, lon)
	if err != nil {
		return Result{
			IsWithin:       false,
			DistanceMeters: -1,
			Office:         v.office,
			User:           user,
			RadiusMeters:   v.radius,
			Err:            err,
		}
	}

	return Result{
		IsWithin:       dist <= v.radius,
		DistanceMeters: dist,
		Office:         v.office,
		User:           user,
		RadiusMeters:   v.radius,
	}
}

// Office returns the configured office coordinate.
func (v *Validator) Office() Coordinate {
	return v.office
}

// RadiusMeters returns the configured geofence radius.
func (v *Validator) RadiusMeters() float64 {
	return v.radius
}
