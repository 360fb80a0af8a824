package models

import (
	"fmt"
	"math"
)

type Center struct {
	Latitude  float64 // decimal degrees
	Longitude float64 // decimal degrees
	Altitude  float64 // meters
}

func NewCenter(lat, lon Coordinate, alt float64) Center {
	return Center{
		Latitude:  lat.Degrees(),
		Longitude: lon.Degrees(),
		Altitude:  alt,
	}
}

// Validate rejects centers the placemark geometry cannot handle: altitude
// must be positive and finite (tilt divides by it, the ring radii scale with
// it) and the poles are excluded (the longitude offset divides by cos(lat)).
func (c Center) Validate() error {
	if !(c.Altitude > 0) || math.IsInf(c.Altitude, 0) {
		return fmt.Errorf("%w: %v (must be finite and > 0 meters)", ErrInvalidAltitude, c.Altitude)
	}
	if !(c.Latitude > -90 && c.Latitude < 90) {
		return fmt.Errorf("%w: latitude %v", ErrOutOfRange, c.Latitude)
	}
	if !(c.Longitude >= -180 && c.Longitude <= 180) {
		return fmt.Errorf("%w: longitude %v", ErrOutOfRange, c.Longitude)
	}
	return nil
}

type RingSpec struct {
	Radius float64
	Points int
}

// Placemark is a single camera viewpoint. Altitude is always 0; the viewer
// places the camera Range meters away from the looked-at point.
type Placemark struct {
	Index     int // 1-based within its ring
	Longitude float64
	Latitude  float64
	Altitude  float64
	Range     float64
	Tilt      float64 // degrees
	Heading   float64 // degrees
}

func (p Placemark) Name() string {
	return fmt.Sprintf("Position %02d", p.Index)
}

type Ring struct {
	Spec       RingSpec
	Placemarks []Placemark
}

func (r Ring) Name() string {
	return fmt.Sprintf("Ring %3.1f", r.Spec.Radius)
}
