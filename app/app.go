// Package app drives a watch face from a HAL: ticks mark the surface dirty
// and a step redraws it at most once.
package app

import (
	"errors"
	"fmt"
	"time"

	"watchface/canvas"
	"watchface/face"
	"watchface/hal"
	"watchface/internal/buildinfo"
)

const bootDone = "first frame"

// ErrPanic is returned when a redraw panicked.
var ErrPanic = errors.New("watchface: redraw panicked")

// App owns one face bound to one HAL.
type App struct {
	log    hal.Logger
	fb     hal.Framebuffer
	ticks  <-chan time.Time
	face   *face.Face
	canvas *canvas.Canvas
	sched  Scheduler
}

// New binds f to h and logs the startup banner.
func New(h hal.HAL, f *face.Face) *App {
	a := &App{face: f}
	if h != nil {
		a.log = h.Logger()
		if d := h.Display(); d != nil {
			a.fb = d.Framebuffer()
		}
		if t := h.Time(); t != nil {
			a.ticks = t.Ticks()
		}
	}
	a.canvas = canvas.New(a.fb)
	a.logf("watchface %s", buildinfo.String())
	a.logf("face: %s", f)
	if a.fb != nil {
		a.logf("display: %dx%d", a.fb.Width(), a.fb.Height())
	}
	return a
}

// Scheduler exposes the redraw bookkeeping.
func (a *App) Scheduler() *Scheduler { return &a.sched }

// Step drains pending ticks and redraws at most once. It never blocks.
func (a *App) Step() error {
	for {
		select {
		case now, ok := <-a.ticks:
			if !ok {
				a.ticks = nil
				return a.flush()
			}
			a.sched.Mark(now)
			continue
		default:
		}
		return a.flush()
	}
}

// Run blocks on the tick stream and redraws on every tick. It returns
// when the stream closes or a redraw panics.
func Run(h hal.HAL, f *face.Face) error {
	bootStep(h, "app")
	a := New(h, f)
	if a.ticks == nil {
		return errors.New("watchface: no tick source")
	}
	bootStep(h, "waiting for tick")
	first := true
	for now := range a.ticks {
		a.sched.Mark(now)
		if err := a.Step(); err != nil {
			return err
		}
		if first {
			bootStep(h, bootDone)
			first = false
		}
	}
	return nil
}

func (a *App) flush() error {
	var err error
	a.sched.Flush(func(now time.Time) {
		err = a.redraw(now)
	})
	return err
}

// redraw recomputes geometry from the current bounds and paints one frame.
func (a *App) redraw(now time.Time) (err error) {
	if a.fb == nil {
		return nil
	}
	defer a.recoverRedraw(&err)

	g := face.GeometryFor(a.fb.Width(), a.fb.Height())
	cmds := a.face.Render(g, face.TimestampOf(now))

	a.canvas.Clear(face.Black)
	face.Replay(a.canvas, cmds)
	if perr := a.canvas.Display(); perr != nil {
		a.logf("present: %v", perr)
	}
	return nil
}

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
