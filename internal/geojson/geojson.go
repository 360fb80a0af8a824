// Package geojson exports a panorama as a GeoJSON FeatureCollection with one
// Point feature per placemark.
package geojson

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mr1hm/go-panorama-kml/internal/models"
	"github.com/mr1hm/go-panorama-kml/internal/panorama"
)

func toFeatureCollection(rings []models.Ring) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, r := range rings {
		for _, p := range r.Placemarks {
			f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
			f.Properties = geojson.Properties{
				"name":    p.Name(),
				"ring":    r.Spec.Radius,
				"index":   p.Index,
				"range":   p.Range,
				"tilt":    p.Tilt,
				"heading": p.Heading,
			}
			fc.Append(f)
		}
	}

	return fc
}

// Encode validates the center and writes the collection to w as one JSON
// document followed by a newline.
func Encode(w io.Writer, center models.Center) error {
	if err := center.Validate(); err != nil {
		return fmt.Errorf("invalid center: %w", err)
	}

	data, err := toFeatureCollection(panorama.Build(center)).MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding feature collection: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("error writing feature collection: %w", err)
	}
	return nil
}
