//go:build tinygo

package hal

import "time"

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// tinyGoTime ticks on every wall-clock second boundary.
type tinyGoTime struct {
	ch chan time.Time
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan time.Time, 2)}
	go func() {
		t.emit(time.Now())
		for {
			now := time.Now()
			time.Sleep(now.Truncate(time.Second).Add(time.Second).Sub(now))
			t.emit(time.Now())
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan time.Time { return t.ch }

func (t *tinyGoTime) emit(now time.Time) {
	select {
	case t.ch <- now:
	default:
	}
}

// memFramebuffer is an RGB565 buffer whose Present pushes it to a sink.
type memFramebuffer struct {
	w       int
	h       int
	buf     []byte
	present func(buf []byte, w, h int) error
}

func newMemFramebuffer(w, h int, present func([]byte, int, int) error) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2), present: present}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.buf, f.w, f.h)
}
