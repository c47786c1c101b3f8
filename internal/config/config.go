// Package config loads the host runner configuration with koanf.
// Precedence: WATCHFACE_* environment variables, then compiled defaults.
// Command-line flags are applied on top by main.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"watchface/face"
)

// EnvPrefix namespaces the environment; WATCHFACE_DISPLAY_WIDTH maps to
// display.width.
const EnvPrefix = "WATCHFACE_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Run modes.
const (
	ModeWindow   = "window"
	ModeHeadless = "headless"
	ModeTerminal = "terminal"
)

// Config holds the face variant and host runner settings.
type Config struct {
	Shape    string `koanf:"shape"`
	Boundary string `koanf:"boundary"`
	Markers  int    `koanf:"markers"`
	Date     bool   `koanf:"date"`

	Display DisplayConfig `koanf:"display"`

	// Mode is window, headless or terminal.
	Mode  string `koanf:"mode"`
	Hz    int    `koanf:"hz"`
	Ticks uint64 `koanf:"ticks"`
}

// DisplayConfig sizes the host framebuffer.
type DisplayConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// Defaults returns the compiled defaults for a build whose default face
// shape is shape.
func Defaults(shape face.Kind) *Config {
	w, h := 180, 180
	if shape == face.KindRectangular {
		w, h = 144, 168
	}
	return &Config{
		Shape:    shape.String(),
		Boundary: face.BoundaryEllipse.String(),
		Markers:  12,
		Date:     true,
		Display:  DisplayConfig{Width: w, Height: h},
		Mode:     ModeWindow,
		Hz:       10,
	}
}

// Load overlays the environment on Defaults(shape) and validates the
// result.
func Load(shape face.Kind) (*Config, error) {
	k := koanf.New(".")

	cfg := Defaults(shape)

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field; flags set after Load should call it again.
func (c *Config) Validate() error {
	if _, err := face.ParseKind(c.Shape); err != nil {
		return fmt.Errorf("%w: shape: %w", ErrInvalid, err)
	}
	if _, err := face.ParseBoundary(c.Boundary); err != nil {
		return fmt.Errorf("%w: boundary: %w", ErrInvalid, err)
	}
	if _, err := face.StyleFor(c.Markers); err != nil {
		return fmt.Errorf("%w: markers: %w", ErrInvalid, err)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	switch c.Mode {
	case ModeWindow, ModeHeadless, ModeTerminal:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	if c.Hz <= 0 {
		return fmt.Errorf("%w: hz %d", ErrInvalid, c.Hz)
	}
	return nil
}

// FaceOptions converts the face fields; call Validate first.
func (c *Config) FaceOptions() (face.Options, error) {
	kind, err := face.ParseKind(c.Shape)
	if err != nil {
		return face.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	b, err := face.ParseBoundary(c.Boundary)
	if err != nil {
		return face.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return face.Options{
		Shape:    kind,
		Boundary: b,
		Markers:  c.Markers,
		Date:     c.Date,
	}, nil
}
