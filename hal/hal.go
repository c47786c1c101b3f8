package hal

import "time"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Time provides the wall-clock tick stream.
//
// One value is delivered per second boundary, carrying the local time of
// that tick. Sends never block; a consumer that falls behind sees fewer
// ticks, not stale ones.
type Time interface {
	Ticks() <-chan time.Time
}

// HAL is the only contact point between the watch face and the platform.
type HAL interface {
	Logger() Logger
	Display() Display
	Time() Time
}
