//go:build tinygo && !baremetal

package hal

import "fmt"

type tinyGoHostHAL struct {
	logger tinyGoHostLogger
	fb     Framebuffer
	t      *tinyGoTime
}

// New returns a TinyGo-on-host HAL (linux/wasm targets) with an
// off-screen framebuffer.
func New() HAL {
	return &tinyGoHostHAL{
		fb: newMemFramebuffer(180, 180, nil),
		t:  newTinyGoTime(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) { fmt.Println(s) }
func (tinyGoHostLogger) WriteLineBytes(b []byte)  { fmt.Println(string(b)) }
