package landing

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls the landing page. Every field can be set from the
// environment.
type Config struct {
	Width  int `env:"SCROLLFX_WIDTH"  envDefault:"1280"`
	Height int `env:"SCROLLFX_HEIGHT" envDefault:"800"`

	// MobileBreakpoint is the viewport width below which smooth scrolling,
	// the sticker stage and the background timelines are not built.
	MobileBreakpoint float64 `env:"SCROLLFX_MOBILE_BREAKPOINT" envDefault:"768"`
	// Lerp is the smooth scroller's per-frame catch-up fraction.
	Lerp float64 `env:"SCROLLFX_LERP" envDefault:"0.1"`
	// Scrub is the lag in seconds between scroll and timeline progress.
	Scrub float64 `env:"SCROLLFX_SCRUB" envDefault:"1"`

	ModelPath    string  `env:"SCROLLFX_MODEL"         envDefault:"assets/models/sticker.glb"`
	SmokeTexture string  `env:"SCROLLFX_SMOKE_TEXTURE"`
	Sticker      bool    `env:"SCROLLFX_STICKER"       envDefault:"true"`
	ExitAt       float64 `env:"SCROLLFX_EXIT_AT"       envDefault:"0.85"`
	SmokeCount   int     `env:"SCROLLFX_SMOKE_COUNT"   envDefault:"180"`
	SmokeSeed    uint64  `env:"SCROLLFX_SMOKE_SEED"    envDefault:"7"`

	Debug           bool    `env:"SCROLLFX_DEBUG"`
	ShowFPS         bool    `env:"SCROLLFX_SHOW_FPS"`
	Script          string  `env:"SCROLLFX_SCRIPT"`
	ScreenshotDir   string  `env:"SCROLLFX_SCREENSHOT_DIR"   envDefault:"screenshots"`
	ScreenshotScale float64 `env:"SCROLLFX_SCREENSHOT_SCALE" envDefault:"1"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("parse env: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.ExitAt <= 0 || cfg.ExitAt > 1 {
		return Config{}, fmt.Errorf("parse env: exit threshold %v outside (0, 1]", cfg.ExitAt)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no variables are set.
// It is built from the envDefault tags and ignores the process environment.
func DefaultConfig() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("landing: invalid config defaults: %v", err))
	}
	return cfg
}
