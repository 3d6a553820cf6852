// Package config holds the settings of the canvasdemo command.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"honnef.co/go/canvas"
)

// Prefix is prepended to every environment variable, as in CANVAS_WIDTH.
const Prefix = "CANVAS"

type Config struct {
	Width     int              `envconfig:"WIDTH" default:"160"`
	Height    int              `envconfig:"HEIGHT" default:"120"`
	Zoom      int              `envconfig:"ZOOM" default:"4"`
	Output    string           `envconfig:"OUTPUT" default:"canvas.png"`
	Algorithm canvas.Algorithm `envconfig:"ALGORITHM" default:"Bresenham"`
	LogLevel  slog.Level       `envconfig:"LOG_LEVEL" default:"INFO"`

	ConnectDistance float64 `envconfig:"CONNECT_DISTANCE" default:"10"`
	UnsnapDistance  float64 `envconfig:"UNSNAP_DISTANCE" default:"30"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("config: canvas size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Zoom <= 0 {
		return fmt.Errorf("config: zoom must be positive, got %d", cfg.Zoom)
	}
	if cfg.Output == "" {
		return fmt.Errorf("config: output path must not be empty")
	}
	return nil
}

// SnapOptions returns the snapping distances as used by [canvas.Scene.DragCurve].
func (cfg *Config) SnapOptions() canvas.SnapOptions {
	return canvas.SnapOptions{
		ConnectDistance: cfg.ConnectDistance,
		UnsnapDistance:  cfg.UnsnapDistance,
	}
}
