package animation

import (
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/automoto/uitween/components"
	"github.com/automoto/uitween/config"
	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/tween"
)

// Play runs a configured preset on e.
func Play(s *tween.Scheduler, e *donburi.Entry, p config.Preset, h Hooks) (*tween.Handle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	easing, err := ease.Lookup(p.Easing)
	if err != nil {
		return nil, err
	}
	t := Timing{Duration: p.Duration, Delay: p.Delay, Easing: easing}

	switch p.Kind {
	case "move":
		return Move(s, e, Vec2{X: p.X, Y: p.Y}, t, h)
	case "fade":
		if err := checkEntry(e, components.Graphic); err != nil {
			return nil, err
		}
		return Fade(s, e, components.Graphic.Get(e).Color, p.From, p.To, t, h)
	case "slide":
		origin, err := components.ParseFillOrigin(p.Origin)
		if err != nil {
			return nil, err
		}
		return Slide(s, e, p.From, p.To, origin, t, h)
	case "scale_x":
		return ScaleAxis(s, e, p.From, p.To, AxisX, t, h)
	case "scale_y":
		return ScaleAxis(s, e, p.From, p.To, AxisY, t, h)
	}
	return nil, fmt.Errorf("animation: unknown preset kind %q", p.Kind)
}

// PlayNamed looks the preset up in config.Presets.
func PlayNamed(s *tween.Scheduler, e *donburi.Entry, name string, h Hooks) (*tween.Handle, error) {
	p, ok := config.Presets[name]
	if !ok {
		return nil, fmt.Errorf("animation: unknown preset %q", name)
	}
	return Play(s, e, p, h)
}
