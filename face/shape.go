package face

import (
	"errors"
	"fmt"

	"watchface/trig"
)

var (
	ErrUnknownShape    = errors.New("unknown face shape")
	ErrUnknownBoundary = errors.New("unknown boundary strategy")
)

// Kind selects the face outline.
type Kind uint8

const (
	KindCircular Kind = iota + 1
	KindRectangular
)

func (k Kind) String() string {
	switch k {
	case KindCircular:
		return "circular"
	case KindRectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}

// ParseKind maps "circular" or "rectangular" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "circular", "round":
		return KindCircular, nil
	case "rectangular", "rect":
		return KindRectangular, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Boundary selects how a rectangular face projects onto its edge.
type Boundary uint8

const (
	// BoundaryEllipse projects onto the ellipse inscribed in the rectangle.
	BoundaryEllipse Boundary = iota + 1
	// BoundaryEdge projects exactly onto the rectangle edge.
	BoundaryEdge
)

func (b Boundary) String() string {
	switch b {
	case BoundaryEllipse:
		return "ellipse"
	case BoundaryEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// ParseBoundary maps "ellipse" or "edge" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "ellipse":
		return BoundaryEllipse, nil
	case "edge":
		return BoundaryEdge, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
}

// Shape is the boundary capability a face is drawn against.
type Shape interface {
	Kind() Kind
	// Project returns the boundary point at angle a with both radii
	// reduced by inset.
	Project(g Geometry, a trig.Angle, inset int) Point
	// Outline appends the face border commands.
	Outline(g Geometry, b *builder)
}

// Circular is a round face; everything projects onto circles of radius
// g.Radius.
type Circular struct{}

func (Circular) Kind() Kind { return KindCircular }

func (Circular) Project(g Geometry, a trig.Angle, inset int) Point {
	return ProjectCircle(g.Center, a, g.Radius-inset)
}

func (Circular) Outline(g Geometry, b *builder) {
	b.strokeColor(White)
	b.strokeWidth(faceStrokeWidth)
	b.circle(g.Center, g.Radius)
}

// Rectangular is a rounded-rectangle face.
type Rectangular struct {
	Boundary     Boundary
	CornerRadius int
}

func (Rectangular) Kind() Kind { return KindRectangular }

func (r Rectangular) Project(g Geometry, a trig.Angle, inset int) Point {
	rx, ry := g.RadiusX-inset, g.RadiusY-inset
	if r.Boundary == BoundaryEdge {
		return ProjectEdge(g.Center, a, rx, ry)
	}
	return ProjectEllipse(g.Center, a, rx, ry)
}

func (r Rectangular) Outline(g Geometry, b *builder) {
	b.strokeColor(White)
	b.strokeWidth(faceStrokeWidth)
	b.roundRect(Rect{
		X: g.Center.X - g.RadiusX,
		Y: g.Center.Y - g.RadiusY,
		W: 2 * g.RadiusX,
		H: 2 * g.RadiusY,
	}, r.CornerRadius)
}

// ProjectCircle returns the point d pixels from c at angle a, clockwise
// from 12 o'clock.
func ProjectCircle(c Point, a trig.Angle, d int) Point {
	return ProjectEllipse(c, a, d, d)
}

// ProjectEllipse returns the point at angle a on the ellipse with
// horizontal radius rx and vertical radius ry around c.
func ProjectEllipse(c Point, a trig.Angle, rx, ry int) Point {
	return Point{
		X: c.X + mulDiv(int64(trig.Sin(a)), int64(rx), trig.MaxRatio),
		Y: c.Y - mulDiv(int64(trig.Cos(a)), int64(ry), trig.MaxRatio),
	}
}

// ProjectEdge returns where a ray from c at angle a leaves the rectangle
// with half extents rx and ry.
func ProjectEdge(c Point, a trig.Angle, rx, ry int) Point {
	s, co := int64(trig.Sin(a)), int64(trig.Cos(a))
	as, ac := abs64(s), abs64(co)

	// Axis-aligned rays: one component is zero and cannot be divided by.
	switch {
	case as == 0:
		return Point{X: c.X, Y: c.Y - int(sign64(co))*ry}
	case ac == 0:
		return Point{X: c.X + int(sign64(s))*rx, Y: c.Y}
	}

	if as*int64(ry) >= ac*int64(rx) {
		// The vertical sides bind: x = ±rx.
		return Point{
			X: c.X + int(sign64(s))*rx,
			Y: c.Y - mulDiv(co, int64(rx), as),
		}
	}
	return Point{
		X: c.X + mulDiv(s, int64(ry), ac),
		Y: c.Y - int(sign64(co))*ry,
	}
}

// mulDiv returns a*b/d rounded half away from zero; d must be positive.
func mulDiv(a, b, d int64) int {
	p := a * b
	if p < 0 {
		return -int((-p + d/2) / d)
	}
	return int((p + d/2) / d)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign64(v int64) int64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
