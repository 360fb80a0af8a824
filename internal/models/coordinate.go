package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidAltitude   = errors.New("invalid altitude")
	ErrOutOfRange        = errors.New("coordinate out of range")
)

type CoordinateKind int

const (
	KindDecimal CoordinateKind = iota
	KindDMS
)

// Coordinate is a latitude or longitude given either as decimal degrees or
// as a degrees/minutes/seconds triple.
type Coordinate struct {
	Kind  CoordinateKind
	Value float64 // decimal degrees, KindDecimal only
	Deg   float64
	Min   float64
	Sec   float64
}

func Decimal(v float64) Coordinate {
	return Coordinate{Kind: KindDecimal, Value: v}
}

func DMS(deg, min, sec float64) Coordinate {
	return Coordinate{Kind: KindDMS, Deg: deg, Min: min, Sec: sec}
}

// Degrees reduces the coordinate to decimal degrees. The sign of Deg is not
// carried over to Min and Sec.
func (c Coordinate) Degrees() float64 {
	if c.Kind == KindDMS {
		return c.Deg + c.Min/60.0 + c.Sec/3600.0
	}
	return c.Value
}

func (c Coordinate) String() string {
	if c.Kind == KindDMS {
		return fmt.Sprintf("%g:%g:%g", c.Deg, c.Min, c.Sec)
	}
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

// ParseCoordinate accepts "45.5", "45:30:0" or "45,30,0".
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coordinate{}, fmt.Errorf("%w: empty value", ErrInvalidCoordinate)
	}

	parts := strings.Split(strings.ReplaceAll(s, ",", ":"), ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
		}
		return Decimal(v), nil
	case 3:
		var dms [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
			}
			dms[i] = v
		}
		return DMS(dms[0], dms[1], dms[2]), nil
	}

	return Coordinate{}, fmt.Errorf("%w: %q is neither decimal nor d:m:s", ErrInvalidCoordinate, s)
}
