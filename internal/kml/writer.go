// Package kml streams a panorama as a KML 2.1 document. Every line is written
// to the sink as soon as it is formatted; nothing is buffered or revisited.
package kml

import (
	"errors"
	"fmt"
	"io"

	"github.com/mr1hm/go-panorama-kml/internal/models"
	"github.com/mr1hm/go-panorama-kml/internal/panorama"
)

const Namespace = "http://earth.google.com/kml/2.1"

var ErrDocumentWritten = errors.New("kml: document already written")

type Stage int

const (
	StageStart Stage = iota
	StageHeader
	StageRings
	StageFooter
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageHeader:
		return "header"
	case StageRings:
		return "rings"
	case StageFooter:
		return "footer"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Writer emits one document. The first sink error is sticky: later lines are
// dropped and the error is returned from WriteDocument.
type Writer struct {
	w     io.Writer
	err   error
	stage Stage
	rings int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (kw *Writer) Stage() Stage {
	return kw.stage
}

// RingsWritten reports how many ring folders were fully emitted.
func (kw *Writer) RingsWritten() int {
	return kw.rings
}

// WriteDocument validates the center and writes the full document.
func (kw *Writer) WriteDocument(center models.Center) error {
	if kw.stage != StageStart {
		return ErrDocumentWritten
	}
	if err := center.Validate(); err != nil {
		kw.stage = StageFailed
		return fmt.Errorf("invalid center: %w", err)
	}

	kw.header()
	if err := kw.advance(StageHeader); err != nil {
		return err
	}

	for _, spec := range panorama.BuildRings(center.Altitude) {
		kw.ring(center, spec)
		if err := kw.advance(StageRings); err != nil {
			return fmt.Errorf("ring %d: %w", kw.rings+1, err)
		}
		kw.rings++
	}

	kw.footer()
	if err := kw.advance(StageFooter); err != nil {
		return err
	}

	kw.stage = StageDone
	return nil
}

func (kw *Writer) advance(next Stage) error {
	if kw.err != nil {
		kw.stage = StageFailed
		return fmt.Errorf("error writing %s: %w", next, kw.err)
	}
	kw.stage = next
	return nil
}

func (kw *Writer) line(format string, args ...any) {
	if kw.err != nil {
		return
	}
	_, kw.err = fmt.Fprintf(kw.w, format+"\n", args...)
}

func (kw *Writer) header() {
	kw.line(`<?xml version="1.0" encoding="UTF-8"?>`)
	kw.line(`<kml xmlns="%s">`, Namespace)
	kw.line("<Folder>")
	kw.line("  <name>Panorama</name>")
	kw.line("  <open>1</open>")
}

func (kw *Writer) footer() {
	kw.line("</Folder>")
	kw.line("</kml>")
}

func (kw *Writer) ring(center models.Center, spec models.RingSpec) {
	kw.line("<Folder>")
	kw.line("  <name>Ring %3.1f</name>", spec.Radius)
	kw.line("  <open>1</open>")

	for i, angle := range panorama.Angles(spec.Points) {
		kw.placemark(panorama.ComputePlacemark(center, i+1, spec.Radius, angle))
	}

	kw.line("</Folder>")
}

func (kw *Writer) placemark(p models.Placemark) {
	kw.line("  <Placemark>")
	kw.line("    <name>%s</name>", p.Name())
	kw.line("    <LookAt>")
	kw.line("      <longitude>%f</longitude>", p.Longitude)
	kw.line("      <latitude>%f</latitude>", p.Latitude)
	kw.line("      <altitude>%g</altitude>", p.Altitude)
	kw.line("      <range>%f</range>", p.Range)
	kw.line("      <tilt>%f</tilt>", p.Tilt)
	kw.line("      <heading>%f</heading>", p.Heading)
	kw.line("      <altitudeMode>absolute</altitudeMode>")
	kw.line("    </LookAt>")
	kw.line("  </Placemark>")
}

// Write is a convenience for a single document on w.
func Write(w io.Writer, center models.Center) error {
	return NewWriter(w).WriteDocument(center)
}
