package config

import (
	"image/color"

	"github.com/automoto/uitween/logx"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// TweenConfig holds the defaults every tween falls back to
type TweenConfig struct {
	Duration      float64 `yaml:"duration"`       // seconds
	Delay         float64 `yaml:"delay"`          // seconds
	Easing        string  `yaml:"easing"`         // name understood by ease.Lookup
	TimeSource    string  `yaml:"time_source"`    // "scaled" or "unscaled"
	TimeScale     float64 `yaml:"time_scale"`     // multiplier for scaled time
	TickRate      int     `yaml:"tick_rate"`      // ticks per second for headless loops
	ReducedMotion bool    `yaml:"reduced_motion"` // snap to end values instead of animating
}

// LoadingConfig contains loading screen configuration values
type LoadingConfig struct {
	ActivationThreshold float64 `yaml:"activation_threshold"` // raw progress at which the final ease starts
	Layout              string  `yaml:"layout"`               // embedded layout to build the demo from
	StepDelay           float64 `yaml:"step_delay"`           // artificial seconds per warmup step

	BarWidth  float64    `yaml:"-"`
	BarHeight float64    `yaml:"-"`
	BarColor  color.RGBA `yaml:"-"`
	BarBg     color.RGBA `yaml:"-"`
	TextColor color.RGBA `yaml:"-"`
}

// UIConfig contains control panel configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonDisabled  color.RGBA
	TextColor       color.RGBA
	TextDisabled    color.RGBA

	ButtonWidth  int
	ButtonHeight int
	PanelPadding int
	Spacing      int

	FontSize      float64
	LabelFontSize float64
}

// Preset is a named, data-driven animation.
type Preset struct {
	Kind     string  `yaml:"kind"` // move, fade, slide, scale_x, scale_y
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
	Easing   string  `yaml:"easing"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Origin   string  `yaml:"origin"` // fill origin for slide presets
}

// Global configuration instances
var C *Config
var Tween TweenConfig
var Loading LoadingConfig
var UI UIConfig
var Presets map[string]Preset
var Log logx.Config

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 24, G: 28, B: 38, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "uitween",
	}

	Tween = TweenConfig{
		Duration:   0.35,
		Delay:      0,
		Easing:     "outQuad",
		TimeSource: "unscaled", // UI chrome keeps animating while gameplay time is paused
		TimeScale:  1.0,
		TickRate:   60,
	}

	Loading = LoadingConfig{
		ActivationThreshold: 0.9,
		Layout:              "layouts/demo.tmx",
		StepDelay:           0.15,

		BarWidth:  480,
		BarHeight: 18,
		BarColor:  LightBlue,
		BarBg:     DarkBlue,
		TextColor: White,
	}

	UI = UIConfig{
		BackgroundColor: Slate,
		PanelColor:      color.RGBA{R: 36, G: 42, B: 56, A: 230},
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 40, G: 70, B: 120, A: 255},
		ButtonDisabled:  Gray,
		TextColor:       White,
		TextDisabled:    color.RGBA{R: 160, G: 160, B: 160, A: 255},

		ButtonWidth:  150,
		ButtonHeight: 32,
		PanelPadding: 12,
		Spacing:      6,

		FontSize:      14,
		LabelFontSize: 16,
	}

	Presets = map[string]Preset{
		"slide_in":  {Kind: "move", Duration: 0.5, Easing: "outQuad", X: 40, Y: 60},
		"slide_out": {Kind: "move", Duration: 0.4, Easing: "inQuad", X: -400, Y: 60},
		"fade_in":   {Kind: "fade", Duration: 0.3, From: 0, To: 1},
		"fade_out":  {Kind: "fade", Duration: 0.3, From: 1, To: 0},
		"fill":      {Kind: "slide", Duration: 1.2, Easing: "inOutCubic", From: 0, To: 1, Origin: "left"},
		"drain":     {Kind: "slide", Duration: 0.8, From: 1, To: 0, Origin: "right"},
		"pop":       {Kind: "scale_y", Duration: 0.45, Easing: "outBack", From: 0, To: 1},
		"squash":    {Kind: "scale_x", Duration: 0.6, Easing: "outElastic", From: 0.2, To: 1},
	}

	Log = logx.Config{
		Level:   "info",
		Console: true,
	}
}
