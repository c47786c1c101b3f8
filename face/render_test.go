package face

import (
	"fmt"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"tinygo.org/x/tinyfont"
)

func opsOf(cmds []Command, op Op) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func indexOf(cmds []Command, op Op) int {
	for i, c := range cmds {
		if c.Op == op {
			return i
		}
	}
	return -1
}

func TestRenderEndToEnd(t *testing.T) {
	f := mustFace(t, Options{Shape: KindCircular})
	cmds := f.Frame(180, 180, Timestamp{Hour: 3, Day: 14})

	if cmds[1].Op != OpStrokeWidth || cmds[2].Op != OpCircle {
		t.Fatalf("Render() starts with %s, %s; want outline first", cmds[1].Op, cmds[2].Op)
	}
	if cmds[2].Center != (Point{90, 90}) || cmds[2].Radius != 88 {
		t.Fatalf("outline = %+v, want circle (90,90) r=88", cmds[2])
	}

	lines := opsOf(cmds, OpLine)
	if len(lines) != 12+3 {
		t.Fatalf("len(lines) = %d, want 15", len(lines))
	}
	hands := lines[12:]
	want := []Point{{134, 90}, {90, 24}, {90, 16}}
	for i, h := range hands {
		if h.From != (Point{90, 90}) || h.To != want[i] {
			t.Fatalf("hand %d = %+v -> %+v, want (90,90) -> %+v", i, h.From, h.To, want[i])
		}
	}

	texts := opsOf(cmds, OpText)
	if len(texts) != 4 {
		t.Fatalf("len(texts) = %d, want 4 (no date)", len(texts))
	}

	last := cmds[len(cmds)-1]
	if last.Op != OpFillCircle || last.Center != (Point{90, 90}) || last.Radius != centerDotRadius {
		t.Fatalf("last command = %+v, want center dot", last)
	}
}

func TestRenderDrawOrder(t *testing.T) {
	f := mustFace(t, Options{Shape: KindRectangular, Date: true})
	cmds := f.Frame(144, 168, Timestamp{Hour: 10, Minute: 10, Second: 30, Day: 9})

	outline := indexOf(cmds, OpRoundRect)
	firstLine := indexOf(cmds, OpLine)
	firstText := indexOf(cmds, OpText)
	if !(outline < firstLine && firstLine < firstText) {
		t.Fatalf("outline=%d line=%d text=%d, want outline < markers < digits", outline, firstLine, firstText)
	}

	rr := opsOf(cmds, OpRoundRect)
	if len(rr) != 2 {
		t.Fatalf("round rects = %d, want outline + date box", len(rr))
	}
	texts := opsOf(cmds, OpText)
	if len(texts) != 5 || texts[4].Text != "9" {
		t.Fatalf("texts = %d (last %q), want 4 digits then date %q", len(texts), texts[len(texts)-1].Text, "9")
	}

	var dateAt, handAt int
	for i, c := range cmds {
		if c.Op == OpText && c.Text == "9" && c.Font == f.dateFont {
			dateAt = i
		}
	}
	lines := 0
	for i, c := range cmds {
		if c.Op == OpLine {
			lines++
			if lines == 13 {
				handAt = i
			}
		}
	}
	if dateAt == 0 || handAt < dateAt {
		t.Fatalf("date at %d, first hand at %d; want hands after date", dateAt, handAt)
	}

	seconds := cmds[len(cmds)-3]
	if seconds.Op != OpLine {
		t.Fatalf("cmds[-3] = %s, want second hand line", seconds.Op)
	}
	if c := cmds[len(cmds)-4]; c.Op != OpStrokeColor || c.Color != Red {
		t.Fatalf("second hand color = %+v, want red", c)
	}
}

func TestRenderIsPure(t *testing.T) {
	f := mustFace(t, Options{Shape: KindRectangular, Boundary: BoundaryEdge, Markers: 60, Date: true})
	ts := Timestamp{Hour: 17, Minute: 42, Second: 5, Day: 28}
	a := f.Frame(200, 228, ts)
	b := f.Frame(200, 228, ts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Render() differs between identical calls")
	}
	if len(opsOf(a, OpLine)) != 60+3 {
		t.Fatalf("lines = %d, want 63", len(opsOf(a, OpLine)))
	}
}

func TestRenderTracksBounds(t *testing.T) {
	f := mustFace(t, Options{Shape: KindCircular})
	ts := Timestamp{Hour: 9}
	small := opsOf(f.Frame(100, 100, ts), OpCircle)[0]
	large := opsOf(f.Frame(240, 240, ts), OpCircle)[0]
	if small.Radius >= large.Radius || small.Center == large.Center {
		t.Fatalf("outline small=%+v large=%+v, want geometry from each call's bounds", small, large)
	}
}

// recorder is a Context that logs each call.
type recorder struct {
	calls []string
}

func (r *recorder) logf(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SetStrokeColor(c color.RGBA) { r.logf("stroke-color %d,%d,%d", c.R, c.G, c.B) }
func (r *recorder) SetStrokeWidth(w int)        { r.logf("stroke-width %d", w) }
func (r *recorder) SetFillColor(c color.RGBA)   { r.logf("fill-color %d,%d,%d", c.R, c.G, c.B) }
func (r *recorder) SetTextColor(c color.RGBA)   { r.logf("text-color %d,%d,%d", c.R, c.G, c.B) }
func (r *recorder) DrawLine(p1, p2 Point)       { r.logf("line %v %v", p1, p2) }
func (r *recorder) DrawCircle(c Point, rad int) { r.logf("circle %v %d", c, rad) }
func (r *recorder) FillCircle(c Point, rad int) { r.logf("fill-circle %v %d", c, rad) }

func (r *recorder) DrawRoundRect(rect Rect, corner int) {
	r.logf("round-rect %v %d", rect, corner)
}

func (r *recorder) DrawText(s string, _ tinyfont.Fonter, rect Rect, align Alignment) {
	r.logf("text %q %v %d", s, rect, align)
}

func (r *recorder) MeasureText(s string, _ tinyfont.Fonter, _ Rect) Size {
	return Size{W: 6 * len(s), H: 8}
}

func TestReplay(t *testing.T) {
	f := mustFace(t, Options{Shape: KindCircular, Date: true})
	cmds := f.Frame(180, 180, Timestamp{Hour: 3, Day: 5})

	var r recorder
	Replay(&r, cmds)
	if len(r.calls) != len(cmds) {
		t.Fatalf("Replay() made %d calls for %d commands", len(r.calls), len(cmds))
	}
	for i, c := range cmds {
		if !strings.HasPrefix(r.calls[i], c.Op.String()+" ") {
			t.Fatalf("call %d = %q, want %s", i, r.calls[i], c.Op)
		}
	}
	if got, want := r.calls[len(r.calls)-1], "fill-circle {90 90} 5"; got != want {
		t.Fatalf("last call = %q, want %q", got, want)
	}
}

func TestOpString(t *testing.T) {
	if got := OpRoundRect.String(); got != "round-rect" {
		t.Fatalf("OpRoundRect.String() = %q", got)
	}
	if got := Op(0).String(); got != "op?" {
		t.Fatalf("Op(0).String() = %q, want %q", got, "op?")
	}
}
