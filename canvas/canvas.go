// Package canvas rasterizes face drawing commands into an RGB565
// framebuffer.
//
// A Canvas implements face.Context for the face and drivers.Displayer for
// tinyfont, so digits and shapes land in the same buffer. Everything is
// clipped to the framebuffer.
package canvas

import (
	"image/color"

	"watchface/face"
	"watchface/hal"

	"tinygo.org/x/tinyfont"
)

// Canvas draws into a hal.Framebuffer.
type Canvas struct {
	fb     hal.Framebuffer
	buf    []byte
	stride int
	w, h   int

	stroke uint16
	fill   uint16
	text   color.RGBA
	width  int
}

// New returns a canvas over fb with white pens and a 1px stroke.
func New(fb hal.Framebuffer) *Canvas {
	c := &Canvas{
		fb:    fb,
		text:  face.White,
		width: 1,
	}
	white := hal.RGB565(0xFF, 0xFF, 0xFF)
	c.stroke, c.fill = white, white
	if fb != nil && fb.Format() == hal.PixelFormatRGB565 {
		c.buf = fb.Buffer()
		c.stride = fb.StrideBytes()
		c.w, c.h = fb.Width(), fb.Height()
	}
	return c
}

// Framebuffer returns the target buffer.
func (c *Canvas) Framebuffer() hal.Framebuffer { return c.fb }

// Clear fills the whole buffer with col.
func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

func (c *Canvas) SetStrokeColor(col color.RGBA) { c.stroke = hal.RGB565(col.R, col.G, col.B) }
func (c *Canvas) SetFillColor(col color.RGBA)   { c.fill = hal.RGB565(col.R, col.G, col.B) }
func (c *Canvas) SetTextColor(col color.RGBA)   { c.text = col }

// SetStrokeWidth sets the pen width; values below 1 are treated as 1.
func (c *Canvas) SetStrokeWidth(w int) {
	if w < 1 {
		w = 1
	}
	c.width = w
}

func (c *Canvas) DrawLine(p1, p2 face.Point) {
	c.line(p1.X, p1.Y, p2.X, p2.Y, c.width, c.stroke)
}

func (c *Canvas) DrawCircle(center face.Point, radius int) {
	if radius < 0 {
		return
	}
	if c.width <= 1 {
		c.circle(center.X, center.Y, radius, c.stroke)
		return
	}
	c.ring(center.X, center.Y, radius, c.width, c.stroke)
}

func (c *Canvas) DrawRoundRect(r face.Rect, cornerRadius int) {
	c.roundRectOutline(r.X, r.Y, r.W, r.H, cornerRadius, c.width, c.stroke)
}

func (c *Canvas) FillCircle(center face.Point, radius int) {
	if radius < 0 {
		return
	}
	c.fillCircle(center.X, center.Y, radius, c.fill)
}

// DrawText draws s in font, aligned horizontally in r and centered
// vertically on the glyph ink.
func (c *Canvas) DrawText(s string, font tinyfont.Fonter, r face.Rect, align face.Alignment) {
	if font == nil || s == "" {
		return
	}
	sz := face.MeasureText(s, font, face.Rect{})
	asc, desc := face.TextExtent(font, s)

	x := r.X
	switch align {
	case face.AlignCenter:
		x = r.X + (r.W-sz.W)/2
	case face.AlignRight:
		x = r.X + r.W - sz.W
	}
	baseline := r.Y + (r.H-(asc+desc))/2 + asc
	tinyfont.WriteLine(c, font, int16(x), int16(baseline), s, c.text)
}

func (c *Canvas) MeasureText(s string, font tinyfont.Fonter, bounds face.Rect) face.Size {
	return face.MeasureText(s, font, bounds)
}

// Size, SetPixel, FillRectangle and Display make the canvas a
// drivers.Displayer.

func (c *Canvas) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), hal.RGB565(col.R, col.G, col.B))
}

// FillRectangle fills a w x h block at x, y.
func (c *Canvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	c.fillRect(int(x), int(y), int(w), int(h), hal.RGB565(col.R, col.G, col.B))
	return nil
}

// Display presents the framebuffer.
func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}
