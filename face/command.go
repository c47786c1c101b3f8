package face

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Alignment is the horizontal placement of text inside its rect.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Context is the drawing capability a frame is issued against.
type Context interface {
	SetStrokeColor(c color.RGBA)
	SetStrokeWidth(w int)
	SetFillColor(c color.RGBA)
	SetTextColor(c color.RGBA)
	DrawLine(p1, p2 Point)
	DrawCircle(center Point, radius int)
	DrawRoundRect(r Rect, cornerRadius int)
	FillCircle(center Point, radius int)
	DrawText(s string, font tinyfont.Fonter, r Rect, align Alignment)
	MeasureText(s string, font tinyfont.Fonter, bounds Rect) Size
}

// Op identifies a drawing command.
type Op uint8

const (
	OpStrokeColor Op = iota + 1
	OpStrokeWidth
	OpFillColor
	OpTextColor
	OpLine
	OpCircle
	OpRoundRect
	OpFillCircle
	OpText
)

var opNames = [...]string{
	OpStrokeColor: "stroke-color",
	OpStrokeWidth: "stroke-width",
	OpFillColor:   "fill-color",
	OpTextColor:   "text-color",
	OpLine:        "line",
	OpCircle:      "circle",
	OpRoundRect:   "round-rect",
	OpFillCircle:  "fill-circle",
	OpText:        "text",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "op?"
}

// Command is one recorded drawing call. Only the operands of Op are set.
type Command struct {
	Op Op

	Color color.RGBA
	Width int

	From, To Point // OpLine
	Center   Point // OpCircle, OpFillCircle
	Radius   int   // OpCircle, OpFillCircle, OpRoundRect corner

	Rect  Rect // OpRoundRect, OpText
	Text  string
	Font  tinyfont.Fonter
	Align Alignment
}

// Replay issues cmds against ctx in order.
func Replay(ctx Context, cmds []Command) {
	for i := range cmds {
		c := &cmds[i]
		switch c.Op {
		case OpStrokeColor:
			ctx.SetStrokeColor(c.Color)
		case OpStrokeWidth:
			ctx.SetStrokeWidth(c.Width)
		case OpFillColor:
			ctx.SetFillColor(c.Color)
		case OpTextColor:
			ctx.SetTextColor(c.Color)
		case OpLine:
			ctx.DrawLine(c.From, c.To)
		case OpCircle:
			ctx.DrawCircle(c.Center, c.Radius)
		case OpRoundRect:
			ctx.DrawRoundRect(c.Rect, c.Radius)
		case OpFillCircle:
			ctx.FillCircle(c.Center, c.Radius)
		case OpText:
			ctx.DrawText(c.Text, c.Font, c.Rect, c.Align)
		}
	}
}

type builder struct {
	cmds []Command
}

func (b *builder) strokeColor(c color.RGBA) {
	b.cmds = append(b.cmds, Command{Op: OpStrokeColor, Color: c})
}

func (b *builder) strokeWidth(w int) {
	b.cmds = append(b.cmds, Command{Op: OpStrokeWidth, Width: w})
}

func (b *builder) fillColor(c color.RGBA) {
	b.cmds = append(b.cmds, Command{Op: OpFillColor, Color: c})
}

func (b *builder) textColor(c color.RGBA) {
	b.cmds = append(b.cmds, Command{Op: OpTextColor, Color: c})
}

func (b *builder) line(p1, p2 Point) {
	b.cmds = append(b.cmds, Command{Op: OpLine, From: p1, To: p2})
}

func (b *builder) circle(c Point, r int) {
	b.cmds = append(b.cmds, Command{Op: OpCircle, Center: c, Radius: r})
}

func (b *builder) roundRect(r Rect, corner int) {
	b.cmds = append(b.cmds, Command{Op: OpRoundRect, Rect: r, Radius: corner})
}

func (b *builder) fillCircle(c Point, r int) {
	b.cmds = append(b.cmds, Command{Op: OpFillCircle, Center: c, Radius: r})
}

func (b *builder) text(s string, font tinyfont.Fonter, r Rect, align Alignment) {
	b.cmds = append(b.cmds, Command{Op: OpText, Text: s, Font: font, Rect: r, Align: align})
}
