// Package trig provides fixed-point angles and sine/cosine lookups for
// integer pixel geometry.
//
// An Angle is a fraction of a full turn scaled to MaxAngle, measured
// clockwise from 12 o'clock. Sin and Cos return values scaled to MaxRatio.
package trig

import "math"

const (
	// MaxAngle is one full turn.
	MaxAngle = 0x10000
	// MaxRatio is the fixed-point value of 1.0 returned by Sin and Cos.
	MaxRatio = 0xffff
)

// Angle is a fixed-point angle in [0, MaxAngle) once normalized.
type Angle int32

// FromDegrees converts degrees to an Angle, truncating toward zero.
func FromDegrees(deg float64) Angle {
	return Angle(MaxAngle * deg / 360)
}

// Normalize folds a into [0, MaxAngle).
func (a Angle) Normalize() Angle {
	a %= MaxAngle
	if a < 0 {
		a += MaxAngle
	}
	return a
}

// Degrees returns a in degrees within [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a.Normalize()) * 360 / MaxAngle
}

// Sin returns sin(a) scaled to MaxRatio.
func Sin(a Angle) int32 {
	return lookup(math.Sin, a)
}

// Cos returns cos(a) scaled to MaxRatio.
func Cos(a Angle) int32 {
	return lookup(math.Cos, a)
}

func lookup(fn func(float64) float64, a Angle) int32 {
	rad := float64(a.Normalize()) * 2 * math.Pi / MaxAngle
	return int32(math.Round(fn(rad) * MaxRatio))
}
