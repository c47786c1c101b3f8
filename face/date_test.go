package face

import "testing"

func TestDateWidgetCircular(t *testing.T) {
	f := mustFace(t, Options{Shape: KindCircular, Date: true})
	w := f.DateWidget(GeometryFor(180, 180), 7)

	// Inset 15 (marker) + 10 (digit) + 16 (pad) from r=88.
	if w.Pos != (Point{137, 90}) {
		t.Fatalf("DateWidget().Pos = %+v, want (137,90)", w.Pos)
	}
	if w.Label != "7" {
		t.Fatalf("DateWidget().Label = %q, want %q", w.Label, "7")
	}
	if want := (Rect{X: 134, Y: 86, W: 6, H: 8}); w.Text != want {
		t.Fatalf("DateWidget().Text = %+v, want %+v", w.Text, want)
	}
	if want := (Rect{X: 132, Y: 84, W: 10, H: 12}); w.Box != want {
		t.Fatalf("DateWidget().Box = %+v, want %+v", w.Box, want)
	}
}

func TestDateWidgetClearsThreeDigit(t *testing.T) {
	for _, opts := range []Options{
		{Shape: KindCircular, Date: true},
		{Shape: KindRectangular, Boundary: BoundaryEllipse, Date: true},
		{Shape: KindRectangular, Boundary: BoundaryEdge, Date: true, Markers: 60},
	} {
		f := mustFace(t, opts)
		g := GeometryFor(144, 168)
		var three Digit
		for _, d := range f.Digits(g) {
			if d.Label == "3" {
				three = d
			}
		}
		w := f.DateWidget(g, 31)
		if w.Box.X+w.Box.W > three.Rect.X {
			t.Fatalf("%v: date box %+v overlaps digit 3 at %+v", opts, w.Box, three.Rect)
		}
		if w.Pos.Y != g.Center.Y {
			t.Fatalf("%v: date y = %d, want %d", opts, w.Pos.Y, g.Center.Y)
		}
	}
}

func TestDateWidgetMatchesFixedOffset(t *testing.T) {
	g := GeometryFor(144, 168)
	inset := HourStyle.MajorLength + HourStyle.DigitOffset + datePad
	want := Point{X: g.Center.X + g.RadiusX - inset, Y: g.Center.Y}
	for _, b := range []Boundary{BoundaryEllipse, BoundaryEdge} {
		f := mustFace(t, Options{Shape: KindRectangular, Boundary: b, Date: true})
		if got := f.DateWidget(g, 1).Pos; got != want {
			t.Fatalf("%s: DateWidget().Pos = %+v, want %+v", b, got, want)
		}
	}
}
