// Command panokml writes a ring of Google Earth viewpoints around a center
// point as KML (or GeoJSON), to a file or stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mr1hm/go-panorama-kml/internal/config"
	"github.com/mr1hm/go-panorama-kml/internal/geojson"
	"github.com/mr1hm/go-panorama-kml/internal/kml"
	"github.com/mr1hm/go-panorama-kml/internal/logging"
	"github.com/mr1hm/go-panorama-kml/internal/models"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, os.Stderr)

	if err := run(cfg, os.Stdout); err != nil {
		logging.Fatalf("Failed to write panorama: %v", err)
	}
}

// run writes the document for cfg to its output file, or to stdout when no
// file is configured. The writers validate the center before emitting.
func run(cfg *config.Config, stdout io.Writer) (err error) {
	center := cfg.Point()

	slog.Info("generating panorama",
		"lat", center.Latitude,
		"lon", center.Longitude,
		"alt", center.Altitude,
		"format", cfg.Output.Format,
		"output", outputName(cfg.Output.Path),
	)

	out := stdout
	if cfg.Output.Path != "" {
		f := &lazyFile{path: cfg.Output.Path}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}

	if err := write(out, cfg.Output.Format, center); err != nil {
		return err
	}

	slog.Debug("panorama written", "output", outputName(cfg.Output.Path))
	return nil
}

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// lazyFile creates its file on the first write, so a rejected center leaves
// no empty output file behind.
type lazyFile struct {
	path string
	f    io.WriteCloser
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := createFile(l.path)
		if err != nil {
			return 0, fmt.Errorf("error creating output file: %w", err)
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	if err := l.f.Close(); err != nil {
		return fmt.Errorf("error closing output file: %w", err)
	}
	return nil
}

func write(w io.Writer, format string, center models.Center) error {
	switch format {
	case config.FormatGeoJSON:
		return geojson.Encode(w, center)
	default:
		return kml.Write(w, center)
	}
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
