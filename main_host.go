//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"watchface/app"
	"watchface/face"
	"watchface/hal"
	"watchface/internal/config"
)

func main() {
	cfg, err := config.Load(app.DefaultShape)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	headless := flag.Bool("headless", false, "Run without a window (same as -mode headless).")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "window|headless|terminal.")
	flag.StringVar(&cfg.Shape, "shape", cfg.Shape, "circular|rectangular.")
	flag.StringVar(&cfg.Boundary, "boundary", cfg.Boundary, "ellipse|edge (rectangular only).")
	flag.IntVar(&cfg.Markers, "markers", cfg.Markers, "12|60.")
	flag.BoolVar(&cfg.Date, "date", cfg.Date, "Draw the day-of-month widget.")
	flag.IntVar(&cfg.Display.Width, "width", cfg.Display.Width, "Display width in pixels.")
	flag.IntVar(&cfg.Display.Height, "height", cfg.Display.Height, "Display height in pixels.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Host refresh rate in headless and terminal modes.")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N refresh cycles in headless mode (0 = run forever).")
	flag.Parse()
	if *headless {
		cfg.Mode = config.ModeHeadless
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.FaceOptions()
	if err != nil {
		return err
	}
	f, err := face.New(opts)
	if err != nil {
		return err
	}

	host := hal.HostConfig{Width: cfg.Display.Width, Height: cfg.Display.Height}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, f).Step
	}

	if cfg.Mode == config.ModeWindow {
		return hal.RunWindow(host, newApp)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case config.ModeHeadless:
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Host: host, Hz: cfg.Hz, Ticks: cfg.Ticks})
	case config.ModeTerminal:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Host: host, Hz: cfg.Hz})
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
