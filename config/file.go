package config

import (
	"errors"
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"

	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/tween"
)

// File is the overridable part of the configuration as it appears in a YAML file.
// Keys missing from the file keep their current values.
type File struct {
	Window  Config            `yaml:"window"`
	Tween   TweenConfig       `yaml:"tween"`
	Loading LoadingConfig     `yaml:"loading"`
	Presets map[string]Preset `yaml:"presets"`
	Log     logx.Config       `yaml:"log"`
}

// Snapshot copies the current global configuration.
func Snapshot() *File {
	presets := make(map[string]Preset, len(Presets))
	for k, v := range Presets {
		presets[k] = v
	}
	return &File{
		Window:  *C,
		Tween:   Tween,
		Loading: Loading,
		Presets: presets,
		Log:     Log,
	}
}

// Load parses the YAML file at path on top of the current configuration without
// applying it.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes YAML on top of the current configuration and validates the result.
func Parse(b []byte) (*File, error) {
	f := Snapshot()
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate reports every invalid value in f.
func (f *File) Validate() error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", f.Window.Width, f.Window.Height))
	}
	if f.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window: tps must be positive, got %d", f.Window.TPS))
	}
	if f.Tween.Duration < 0 || f.Tween.Delay < 0 {
		errs = append(errs, fmt.Errorf("tween: duration and delay must be >= 0"))
	}
	if f.Tween.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("tween: time_scale must be >= 0, got %v", f.Tween.TimeScale))
	}
	if _, err := ease.Lookup(f.Tween.Easing); err != nil {
		errs = append(errs, fmt.Errorf("tween: %w", err))
	}
	if _, err := tween.ParseTimeSource(f.Tween.TimeSource); err != nil {
		errs = append(errs, err)
	}
	if t := f.Loading.ActivationThreshold; t <= 0 || t > 1 {
		errs = append(errs, fmt.Errorf("loading: activation_threshold must be in (0,1], got %v", t))
	}
	for name, p := range f.Presets {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the preset's kind, timing and easing.
func (p Preset) Validate() error {
	switch p.Kind {
	case "move", "fade", "slide", "scale_x", "scale_y":
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Duration < 0 || p.Delay < 0 {
		return fmt.Errorf("duration and delay must be >= 0")
	}
	if _, err := ease.Lookup(p.Easing); err != nil {
		return err
	}
	return nil
}

// Apply replaces the global configuration with f.
// It must run on the goroutine that reads the globals (the game loop).
func Apply(f *File) {
	if f == nil {
		return
	}
	win := f.Window
	C = &win
	Tween = f.Tween
	Loading = f.Loading
	Presets = f.Presets
	Log = f.Log
}

// LoadFile loads and applies the YAML file at path.
func LoadFile(path string) error {
	f, err := Load(path)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	Apply(f)
	return nil
}
