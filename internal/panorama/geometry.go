package panorama

import (
	"math"

	"github.com/mr1hm/go-panorama-kml/internal/models"
)

const (
	radToDeg = 180.0 / math.Pi
	degToRad = math.Pi / 180.0
)

// ComputePlacemark places the camera for one point of a ring. The offsets use
// a small-angle approximation where one radius unit spans 90/10000 degrees of
// latitude, while radius*1000 is taken as ground distance in meters for range
// and tilt. A zero altitude yields NaN/Inf; callers validate the center first.
func ComputePlacemark(center models.Center, index int, radius, angle float64) models.Placemark {
	dLat := (radius * math.Cos(angle)) * (90.0 / 10000.0)
	dLon := (radius * math.Sin(angle)) * (90.0 / (10000 * math.Cos(center.Latitude*degToRad)))

	ground := radius * 1000.0

	return models.Placemark{
		Index:     index,
		Longitude: center.Longitude + dLon,
		Latitude:  center.Latitude + dLat,
		Altitude:  0,
		Range:     math.Sqrt(radius*radius*1000.0*1000.0 + center.Altitude*center.Altitude),
		Tilt:      math.Atan(ground/center.Altitude) * radToDeg,
		Heading:   angle * radToDeg,
	}
}

// RingPlacemarks computes every placemark of a ring in increasing angle order.
func RingPlacemarks(center models.Center, spec models.RingSpec) []models.Placemark {
	angles := Angles(spec.Points)
	placemarks := make([]models.Placemark, 0, len(angles))
	for i, angle := range angles {
		placemarks = append(placemarks, ComputePlacemark(center, i+1, spec.Radius, angle))
	}
	return placemarks
}

// Build materializes the whole panorama. The KML writer streams instead; this
// is for exporters that need the full collection.
func Build(center models.Center) []models.Ring {
	specs := BuildRings(center.Altitude)
	rings := make([]models.Ring, 0, len(specs))
	for _, spec := range specs {
		rings = append(rings, models.Ring{
			Spec:       spec,
			Placemarks: RingPlacemarks(center, spec),
		})
	}
	return rings
}
