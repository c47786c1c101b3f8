package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"watchface/face"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var crashBanner = color.RGBA{R: 0xC0, G: 0x10, B: 0x10, A: 0xFF}

// recoverRedraw turns a panic in the deferring redraw into ErrPanic, after
// logging the stack and painting it on the display.
func (a *App) recoverRedraw(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()

	a.logf("watchface panic: %v", r)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		a.logf("%s", line)
	}

	lines := []string{"watchface panic:", fmt.Sprintf("%v", r)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	a.drawCrash(lines)

	*errp = fmt.Errorf("%w: %v", ErrPanic, r)
}

// drawCrash paints lines in black on white, wrapping at the display width
// and stopping at the bottom edge.
func (a *App) drawCrash(lines []string) {
	if a.fb == nil {
		return
	}
	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	fontWidth := int(outbox)
	fontHeight := int(font.GetYAdvance())
	ascent, _ := face.TextExtent(font, "Mg")
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = a.canvas.Display()
		return
	}

	a.canvas.Clear(face.White)
	w, h := a.fb.Width(), a.fb.Height()
	_ = a.canvas.FillRectangle(0, 0, int16(w), int16(fontHeight), crashBanner)

	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := 0
	for i, line := range lines {
		fg := face.Black
		if i == 0 {
			fg = face.White
		}
		for len(line) > 0 {
			if y+fontHeight > h {
				_ = a.canvas.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(a.canvas, font, 0, int16(y+ascent), chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.canvas.Display()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
