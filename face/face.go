// Package face computes the drawing commands of an analog watch face.
//
// A Face is built once from Options and renders a frame as a pure function
// of the surface geometry and the current time. Nothing is cached between
// frames.
package face

import (
	"fmt"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	defaultCornerRadius = 7

	// textMeasureBox bounds digit and date measurement.
	textMeasureBox = 30
)

// Options select a face variant.
type Options struct {
	Shape Kind

	// Boundary applies to rectangular faces; zero selects BoundaryEllipse.
	Boundary Boundary

	// Markers is 12 or 60; zero selects 12.
	Markers int

	// Date enables the day-of-month widget at 3 o'clock.
	Date bool

	// Optional overrides, mostly for tests.
	DigitFont tinyfont.Fonter
	DateFont  tinyfont.Fonter
	Measurer  TextMeasurer
}

// Face is a configured watch face.
type Face struct {
	shape     Shape
	style     Style
	date      bool
	digitFont tinyfont.Fonter
	dateFont  tinyfont.Fonter
	measure   TextMeasurer
}

// New validates opts and returns the face.
func New(opts Options) (*Face, error) {
	var shape Shape
	switch opts.Shape {
	case KindCircular:
		shape = Circular{}
	case KindRectangular:
		b := opts.Boundary
		if b == 0 {
			b = BoundaryEllipse
		}
		if b != BoundaryEllipse && b != BoundaryEdge {
			return nil, fmt.Errorf("face: %w: %d", ErrUnknownBoundary, b)
		}
		shape = Rectangular{Boundary: b, CornerRadius: defaultCornerRadius}
	default:
		return nil, fmt.Errorf("face: %w: %d", ErrUnknownShape, opts.Shape)
	}

	count := opts.Markers
	if count == 0 {
		count = 12
	}
	style, err := StyleFor(count)
	if err != nil {
		return nil, fmt.Errorf("face: %w (got %d)", err, count)
	}

	f := &Face{
		shape:     shape,
		style:     style,
		date:      opts.Date,
		digitFont: opts.DigitFont,
		dateFont:  opts.DateFont,
		measure:   opts.Measurer,
	}
	if f.digitFont == nil {
		f.digitFont = &freesans.Bold9pt7b
	}
	if f.dateFont == nil {
		f.dateFont = &proggy.TinySZ8pt7b
	}
	if f.measure == nil {
		f.measure = FontMeasurer{}
	}
	return f, nil
}

// Shape returns the face boundary.
func (f *Face) Shape() Shape { return f.shape }

// Style returns the tick layout.
func (f *Face) Style() Style { return f.style }

// HasDate reports whether the date widget is drawn.
func (f *Face) HasDate() bool { return f.date }

func (f *Face) String() string {
	s := fmt.Sprintf("shape=%s markers=%d date=%t", f.shape.Kind(), f.style.Count, f.date)
	if r, ok := f.shape.(Rectangular); ok {
		s += " boundary=" + r.Boundary.String()
	}
	return s
}

// centeredText returns the measured rect of s centered on p.
func (f *Face) centeredText(s string, font tinyfont.Fonter, p Point) Rect {
	sz := f.measure.MeasureText(s, font, Rect{W: textMeasureBox, H: textMeasureBox})
	return Rect{X: p.X - sz.W/2, Y: p.Y - sz.H/2, W: sz.W, H: sz.H}
}
