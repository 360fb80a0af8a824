// Package panorama computes the ring of camera viewpoints around a center.
package panorama

import (
	"math"

	"github.com/mr1hm/go-panorama-kml/internal/models"
)

// altitudeScale converts the center altitude into the ring radius unit.
const altitudeScale = 4000.0

var (
	ringFactors = [...]float64{0, 2.5, 5.0, 10.0, 50.0}
	ringPoints  = [...]int{1, 6, 10, 12, 12}
)

// BuildRings returns the fixed five-ring table for the given altitude,
// smallest radius first. Altitude is not validated here.
func BuildRings(altitude float64) []models.RingSpec {
	f := altitude / altitudeScale
	rings := make([]models.RingSpec, len(ringFactors))
	for i, factor := range ringFactors {
		rings[i] = models.RingSpec{
			Radius: f * factor,
			Points: ringPoints[i],
		}
	}
	return rings
}

// TotalPlacemarks is the number of placemarks across every ring.
func TotalPlacemarks() int {
	n := 0
	for _, p := range ringPoints {
		n += p
	}
	return n
}

// Angles returns n evenly spaced angles in radians over a full turn,
// starting at 0.
func Angles(n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = float64(i*2) * math.Pi / float64(n)
	}
	return angles
}
