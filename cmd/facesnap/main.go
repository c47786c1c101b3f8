// Command facesnap renders one watch face frame to a PNG file.
//
//	facesnap -shape rectangular -boundary edge -time 10:09:30 -day 14 -o face.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"watchface/app"
	"watchface/canvas"
	"watchface/face"
	"watchface/hal"
	"watchface/internal/config"
)

func main() {
	cfg := config.Defaults(app.DefaultShape)
	var (
		outPath = flag.String("o", "face.png", "Output PNG path.")
		clock   = flag.String("time", "10:09:30", "Time of day as HH:MM:SS.")
		day     = flag.Int("day", 14, "Day of month for the date widget.")
	)
	flag.StringVar(&cfg.Shape, "shape", cfg.Shape, "circular|rectangular.")
	flag.StringVar(&cfg.Boundary, "boundary", cfg.Boundary, "ellipse|edge (rectangular only).")
	flag.IntVar(&cfg.Markers, "markers", cfg.Markers, "12|60.")
	flag.BoolVar(&cfg.Date, "date", cfg.Date, "Draw the day-of-month widget.")
	flag.IntVar(&cfg.Display.Width, "width", cfg.Display.Width, "Surface width in pixels.")
	flag.IntVar(&cfg.Display.Height, "height", cfg.Display.Height, "Surface height in pixels.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	ts, err := parseClock(*clock, *day)
	if err != nil {
		fatalf("%v", err)
	}
	opts, err := cfg.FaceOptions()
	if err != nil {
		fatalf("%v", err)
	}
	f, err := face.New(opts)
	if err != nil {
		fatalf("%v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fatalf("%v", err)
	}
	if err := snapshot(out, f, cfg.Display.Width, cfg.Display.Height, ts); err != nil {
		_ = out.Close()
		fatalf("render: %v", err)
	}
	if err := out.Close(); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func parseClock(s string, day int) (face.Timestamp, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return face.Timestamp{}, fmt.Errorf("time %q: want HH:MM:SS", s)
	}
	if day < 1 || day > 31 {
		return face.Timestamp{}, fmt.Errorf("day out of range: %d", day)
	}
	return face.Timestamp{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Day: day}, nil
}

// snapshot draws one frame of f on a black w x h surface and encodes it.
func snapshot(w io.Writer, f *face.Face, width, height int, ts face.Timestamp) error {
	fb := hal.NewFramebuffer(width, height)
	c := canvas.New(fb)
	c.Clear(face.Black)
	face.Replay(c, f.Frame(width, height, ts))
	return png.Encode(w, hal.ToRGBA(fb, nil))
}
