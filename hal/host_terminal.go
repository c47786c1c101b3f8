//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// TerminalConfig controls the terminal preview runner.
type TerminalConfig struct {
	Host HostConfig
	Hz   int
	// Screen defaults to the controlling terminal.
	Screen tcell.Screen
}

// RunTerminal previews the framebuffer in a terminal using half-block
// cells, two pixels per cell. Esc, q or Ctrl-C quit.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 10
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	scr := cfg.Screen
	if scr == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		scr = s
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	scr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	scr.Clear()

	h := newHostHAL(cfg.Host)
	step := newApp(h)

	runCtx, quit := context.WithCancel(ctx)
	defer quit()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		for {
			switch ev := scr.PollEvent().(type) {
			case nil:
				// Screen finalized.
				return nil
			case *tcell.EventKey:
				if isQuitKey(ev) {
					quit()
				}
			case *tcell.EventResize:
				scr.Sync()
			}
		}
	})

	g.Go(func() error {
		defer scr.Fini()
		t := time.NewTicker(d)
		defer t.Stop()
		var blit terminalBlitter
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				h.t.step()
				if step != nil {
					if err := step(); err != nil {
						return err
					}
				}
				blit.draw(scr, h.fb)
				scr.Show()
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// cellSetter is the part of tcell.Screen the blitter draws through.
type cellSetter interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type terminalBlitter struct{}

// draw scales fb into the terminal, keeping the brightest pixel of each
// block so one-pixel strokes survive downscaling.
func (terminalBlitter) draw(scr cellSetter, fb Framebuffer) {
	cols, rows := scr.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := fb.Width(), fb.Height()
	scale := ceilDiv(w, cols)
	if s := ceilDiv(h, rows*2); s > scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := brightest(fb, cx*scale, 2*cy*scale, scale)
			bottom := brightest(fb, cx*scale, (2*cy+1)*scale, scale)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top[0]), int32(top[1]), int32(top[2]))).
				Background(tcell.NewRGBColor(int32(bottom[0]), int32(bottom[1]), int32(bottom[2])))
			scr.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func brightest(fb Framebuffer, x0, y0, n int) [3]uint8 {
	var best [3]uint8
	bestSum := -1
	for y := y0; y < y0+n; y++ {
		for x := x0; x < x0+n; x++ {
			c := RGBAt(fb, x, y)
			if sum := int(c.R) + int(c.G) + int(c.B); sum > bestSum {
				bestSum = sum
				best = [3]uint8{c.R, c.G, c.B}
			}
		}
	}
	return best
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
