package face

import "time"

const (
	borderPercent   = 0.01
	faceStrokeWidth = 2
)

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Size is an integer pixel extent.
type Size struct {
	W, H int
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Geometry is the per-frame layout derived from the drawable bounds.
//
// It is recomputed at the start of every redraw and never mutated.
type Geometry struct {
	Center  Point
	RadiusX int
	RadiusY int

	// Radius is min(RadiusX, RadiusY).
	Radius int
}

// GeometryFor derives the face geometry for a width x height surface.
//
// Each radius is 99% of the half extent, and at least the outline stroke
// width smaller than it so the outline never touches the surface edge.
func GeometryFor(width, height int) Geometry {
	bounds := Rect{W: width, H: height}
	rx := insetRadius(width / 2)
	ry := insetRadius(height / 2)
	r := rx
	if ry < r {
		r = ry
	}
	return Geometry{
		Center:  bounds.Center(),
		RadiusX: rx,
		RadiusY: ry,
		Radius:  r,
	}
}

func insetRadius(half int) int {
	r := int(float32(half) * (1 - borderPercent))
	if r > half-faceStrokeWidth {
		r = half - faceStrokeWidth
	}
	if r < 0 {
		r = 0
	}
	return r
}

// Timestamp is the wall-clock reading a frame is drawn for.
type Timestamp struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
	Day    int // 1-31
}

// TimestampOf captures t in its own location.
func TimestampOf(t time.Time) Timestamp {
	h, m, s := t.Clock()
	return Timestamp{Hour: h, Minute: m, Second: s, Day: t.Day()}
}
