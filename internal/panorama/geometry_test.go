package panorama

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/go-panorama-kml/internal/models"
)

func TestComputePlacemark_Center(t *testing.T) {
	center := models.Center{Latitude: 45, Longitude: 10, Altitude: 4000}

	p := ComputePlacemark(center, 1, 0, 0)

	assert.Equal(t, 1, p.Index)
	assert.Equal(t, 45.0, p.Latitude)
	assert.Equal(t, 10.0, p.Longitude)
	assert.Zero(t, p.Altitude)
	assert.Equal(t, 4000.0, p.Range)
	assert.Zero(t, p.Tilt)
	assert.Zero(t, p.Heading)
}

func TestComputePlacemark_Formulas(t *testing.T) {
	center := models.Center{Latitude: 45, Longitude: 10, Altitude: 4000}
	radius := 2.5
	angle := math.Pi / 3

	p := ComputePlacemark(center, 2, radius, angle)

	wantLat := 45 + radius*math.Cos(angle)*0.009
	wantLon := 10 + radius*math.Sin(angle)*90/(10000*math.Cos(45*math.Pi/180))

	assert.InDelta(t, wantLat, p.Latitude, 1e-12)
	assert.InDelta(t, wantLon, p.Longitude, 1e-12)
	assert.InDelta(t, math.Hypot(2500, 4000), p.Range, 1e-9)
	assert.InDelta(t, math.Atan(2500.0/4000)*180/math.Pi, p.Tilt, 1e-12)
	assert.InDelta(t, 60, p.Heading, 1e-12)
}

func TestComputePlacemark_KnownValues(t *testing.T) {
	center := models.Center{Latitude: 45, Longitude: 10, Altitude: 4000}

	north := ComputePlacemark(center, 1, 2.5, 0)
	assert.InDelta(t, 45.0225, north.Latitude, 1e-12)
	assert.InDelta(t, 10, north.Longitude, 1e-12)
	assert.InDelta(t, 4716.990566, north.Range, 1e-6)
	assert.InDelta(t, 32.005383, north.Tilt, 1e-6)

	east := ComputePlacemark(center, 4, 10, math.Pi/2)
	assert.InDelta(t, 45, east.Latitude, 1e-12)
	assert.InDelta(t, 10+0.09/math.Cos(math.Pi/4), east.Longitude, 1e-12)
	assert.InDelta(t, 90, east.Heading, 1e-12)
}

func TestComputePlacemark_ZeroAltitudeIsUnguarded(t *testing.T) {
	p := ComputePlacemark(models.Center{Latitude: 45, Longitude: 10}, 1, 0, 0)
	assert.True(t, math.IsNaN(p.Tilt), "atan(0/0) should propagate NaN")
}

func TestRingPlacemarks(t *testing.T) {
	center := models.Center{Latitude: -33.86, Longitude: 151.21, Altitude: 1200}

	for _, spec := range BuildRings(center.Altitude) {
		ps := RingPlacemarks(center, spec)
		require.Len(t, ps, spec.Points)

		for i, p := range ps {
			assert.Equal(t, i+1, p.Index)
			assert.InDelta(t, 360*float64(i)/float64(spec.Points), p.Heading, 1e-9)
			if i > 0 {
				assert.Greater(t, p.Heading, ps[i-1].Heading)
			}
			// all points of a ring share the same distance and tilt
			assert.InDelta(t, ps[0].Range, p.Range, 1e-9)
			assert.InDelta(t, ps[0].Tilt, p.Tilt, 1e-9)
		}
	}
}

func TestBuild(t *testing.T) {
	center := models.NewCenter(models.DMS(45, 30, 0), models.Decimal(10), 4000)
	rings := Build(center)
	require.Len(t, rings, 5)

	total := 0
	for _, r := range rings {
		total += len(r.Placemarks)
	}
	assert.Equal(t, TotalPlacemarks(), total)
	assert.Equal(t, 45.5, rings[0].Placemarks[0].Latitude)
}
