package face

import (
	"errors"
	"math"
	"testing"

	"watchface/trig"
)

func TestProjectCircleDistance(t *testing.T) {
	c := Point{X: 90, Y: 90}
	for _, d := range []int{5, 44, 66, 74, 88, 160} {
		for deg := 0; deg < 360; deg++ {
			p := ProjectCircle(c, trig.FromDegrees(float64(deg)), d)
			got := math.Hypot(float64(p.X-c.X), float64(p.Y-c.Y))
			if math.Abs(got-float64(d)) > 1 {
				t.Fatalf("ProjectCircle(%d°, %d) = %+v at distance %.2f, want %d±1", deg, d, p, got, d)
			}
		}
	}
}

func TestProjectCircleClockwiseFromTwelve(t *testing.T) {
	c := Point{X: 50, Y: 60}
	tests := []struct {
		deg  float64
		want Point
	}{
		{0, Point{50, 20}},
		{90, Point{90, 60}},
		{180, Point{50, 100}},
		{270, Point{10, 60}},
	}
	for _, tt := range tests {
		if got := ProjectCircle(c, trig.FromDegrees(tt.deg), 40); got != tt.want {
			t.Fatalf("ProjectCircle(%v°) = %+v, want %+v", tt.deg, got, tt.want)
		}
	}
}

func TestProjectEllipseAxes(t *testing.T) {
	c := Point{X: 72, Y: 84}
	if got, want := ProjectEllipse(c, trig.FromDegrees(0), 70, 82), (Point{72, 2}); got != want {
		t.Fatalf("ProjectEllipse(0°) = %+v, want %+v", got, want)
	}
	if got, want := ProjectEllipse(c, trig.FromDegrees(90), 70, 82), (Point{142, 84}); got != want {
		t.Fatalf("ProjectEllipse(90°) = %+v, want %+v", got, want)
	}
}

func TestProjectEdgeAxisAligned(t *testing.T) {
	c := Point{X: 72, Y: 84}
	rx, ry := 70, 82
	tests := []struct {
		deg  float64
		want Point
	}{
		{0, Point{c.X, c.Y - ry}},
		{90, Point{c.X + rx, c.Y}},
		{180, Point{c.X, c.Y + ry}},
		{270, Point{c.X - rx, c.Y}},
	}
	for _, tt := range tests {
		if got := ProjectEdge(c, trig.FromDegrees(tt.deg), rx, ry); got != tt.want {
			t.Fatalf("ProjectEdge(%v°) = %+v, want %+v", tt.deg, got, tt.want)
		}
	}
}

func TestProjectEdgeDegenerateRadii(t *testing.T) {
	c := Point{X: 10, Y: 10}
	if got := ProjectEdge(c, trig.FromDegrees(0), 0, 0); got != c {
		t.Fatalf("ProjectEdge(0°, 0, 0) = %+v, want %+v", got, c)
	}
	if got := ProjectEdge(c, trig.FromDegrees(45), 0, 5); got != (Point{10, 10}) {
		t.Fatalf("ProjectEdge(45°, 0, 5) = %+v, want center", got)
	}
}

func TestProjectEdgeStaysOnRectangle(t *testing.T) {
	c := Point{X: 72, Y: 84}
	rx, ry := 70, 82
	for deg := 0; deg < 360; deg++ {
		p := ProjectEdge(c, trig.FromDegrees(float64(deg)), rx, ry)
		dx, dy := abs(p.X-c.X), abs(p.Y-c.Y)
		onSide := dx == rx && dy <= ry
		onTop := dy == ry && dx <= rx
		if !onSide && !onTop {
			t.Fatalf("ProjectEdge(%d°) = %+v, not on the %dx%d edge", deg, p, 2*rx, 2*ry)
		}
	}
}

func TestProjectEdgeDiagonal(t *testing.T) {
	c := Point{X: 72, Y: 84}
	if got, want := ProjectEdge(c, trig.FromDegrees(45), 70, 82), (Point{142, 14}); got != want {
		t.Fatalf("ProjectEdge(45°) = %+v, want %+v", got, want)
	}
	if got, want := ProjectEdge(c, trig.FromDegrees(30), 70, 82), (Point{119, 2}); got != want {
		t.Fatalf("ProjectEdge(30°) = %+v, want %+v", got, want)
	}
}

func TestShapeProjectUsesInset(t *testing.T) {
	g := GeometryFor(144, 168)
	a := trig.FromDegrees(0)

	if got, want := (Circular{}).Project(g, a, 15), (Point{72, 84 - 55}); got != want {
		t.Fatalf("Circular.Project() = %+v, want %+v", got, want)
	}
	ell := Rectangular{Boundary: BoundaryEllipse}
	if got, want := ell.Project(g, a, 15), (Point{72, 84 - 67}); got != want {
		t.Fatalf("Rectangular(ellipse).Project() = %+v, want %+v", got, want)
	}
	edge := Rectangular{Boundary: BoundaryEdge}
	if got, want := edge.Project(g, trig.FromDegrees(90), 15), (Point{72 + 55, 84}); got != want {
		t.Fatalf("Rectangular(edge).Project() = %+v, want %+v", got, want)
	}
}

func TestOutline(t *testing.T) {
	g := GeometryFor(144, 168)

	var b builder
	Circular{}.Outline(g, &b)
	last := b.cmds[len(b.cmds)-1]
	if last.Op != OpCircle || last.Center != g.Center || last.Radius != g.Radius {
		t.Fatalf("Circular.Outline() last = %+v, want circle at center r=%d", last, g.Radius)
	}

	b = builder{}
	Rectangular{CornerRadius: 7}.Outline(g, &b)
	last = b.cmds[len(b.cmds)-1]
	want := Rect{X: 2, Y: 2, W: 140, H: 164}
	if last.Op != OpRoundRect || last.Rect != want || last.Radius != 7 {
		t.Fatalf("Rectangular.Outline() last = %+v, want round-rect %+v r=7", last, want)
	}
}

func TestMulDivRounds(t *testing.T) {
	tests := []struct {
		a, b, d int64
		want    int
	}{
		{7, 1, 2, 4},
		{-7, 1, 2, -4},
		{5, 1, 3, 2},
		{-5, 1, 3, -2},
		{0, 9, 4, 0},
	}
	for _, tt := range tests {
		if got := mulDiv(tt.a, tt.b, tt.d); got != tt.want {
			t.Fatalf("mulDiv(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.d, got, tt.want)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestParseKindAndBoundary(t *testing.T) {
	kinds := map[string]Kind{"circular": KindCircular, "round": KindCircular, "rectangular": KindRectangular, "rect": KindRectangular}
	for in, want := range kinds {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("hexagon"); !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("ParseKind(hexagon) error = %v, want %v", err, ErrUnknownShape)
	}

	for _, want := range []Boundary{BoundaryEllipse, BoundaryEdge} {
		got, err := ParseBoundary(want.String())
		if err != nil || got != want {
			t.Fatalf("ParseBoundary(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseBoundary(""); !errors.Is(err, ErrUnknownBoundary) {
		t.Fatalf("ParseBoundary(\"\") error = %v, want %v", err, ErrUnknownBoundary)
	}
}
