// Package animation writes tweened values into UI element components.
//
// Every writer starts a tween keyed by Key{Entity, Channel}, so animating one property of
// an element replaces only the previous animation of that same property.
package animation

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi"

	"github.com/automoto/uitween/components"
	"github.com/automoto/uitween/config"
	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/tween"
)

// ErrMissingComponent is returned when the entry lacks the component a writer needs.
var ErrMissingComponent = errors.New("animation: entry is missing a required component")

// ErrInvalidEntry is returned for nil or removed entries.
var ErrInvalidEntry = errors.New("animation: invalid entry")

// Channel is the property an animation writes.
type Channel int

const (
	ChannelMove Channel = iota
	ChannelFade
	ChannelFill
	ChannelScaleX
	ChannelScaleY

	channelCount
)

func (c Channel) String() string {
	switch c {
	case ChannelMove:
		return "move"
	case ChannelFade:
		return "fade"
	case ChannelFill:
		return "fill"
	case ChannelScaleX:
		return "scale_x"
	case ChannelScaleY:
		return "scale_y"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Key identifies one animated property of one entity.
type Key struct {
	Entity  donburi.Entity
	Channel Channel
}

func (k Key) String() string { return fmt.Sprintf("%v/%s", k.Entity, k.Channel) }

// Timing controls when and how fast a writer animates.
// The zero Timing means the configured defaults; set Easing alone for an instant snap.
type Timing struct {
	Duration float64
	Delay    float64
	Easing   ease.Func
}

// DefaultTiming reads config.Tween. An unknown easing name falls back to ease.Default.
func DefaultTiming() Timing {
	f, err := ease.Lookup(config.Tween.Easing)
	if err != nil {
		f = ease.Default
	}
	return Timing{
		Duration: config.Tween.Duration,
		Delay:    config.Tween.Delay,
		Easing:   f,
	}
}

func (t Timing) resolve() Timing {
	if t.Duration == 0 && t.Delay == 0 && t.Easing == nil {
		t = DefaultTiming()
	}
	if config.Tween.ReducedMotion {
		t.Duration = 0
		t.Delay = 0
	}
	return t
}

// Hooks are optional callbacks forwarded to the tween.
type Hooks struct {
	OnPlay     func()
	OnComplete func()
}

type Vec2 struct {
	X, Y float64
}

// Axis selects the scale component ScaleAxis animates.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) channel() Channel {
	if a == AxisY {
		return ChannelScaleY
	}
	return ChannelScaleX
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func checkEntry(e *donburi.Entry, cs ...donburi.IComponentType) error {
	if e == nil || !e.Valid() {
		return ErrInvalidEntry
	}
	for _, c := range cs {
		if !e.HasComponent(c) {
			return fmt.Errorf("%w: %s", ErrMissingComponent, c.Name())
		}
	}
	return nil
}

// start shows the element and starts the tween. apply runs on every update while the
// entry is still valid.
func start(s *tween.Scheduler, e *donburi.Entry, ch Channel, t Timing, h Hooks, onPlay func(), apply func(float64)) (*tween.Handle, error) {
	t = t.resolve()
	show(e)
	return s.Start(Key{Entity: e.Entity(), Channel: ch}, tween.Options{
		Duration: t.Duration,
		Delay:    t.Delay,
		Easing:   t.Easing,
		OnPlay: func() {
			if e.Valid() && onPlay != nil {
				onPlay()
			}
			if h.OnPlay != nil {
				h.OnPlay()
			}
		},
		OnUpdate: func(p float64) {
			if e.Valid() {
				apply(p)
			}
		},
		OnComplete: h.OnComplete,
	})
}

func show(e *donburi.Entry) {
	if e.HasComponent(components.Element) {
		components.Element.Get(e).Visible = true
	}
}

// Move animates the element's position from where it is when the tween starts playing
// to `to`.
func Move(s *tween.Scheduler, e *donburi.Entry, to Vec2, t Timing, h Hooks) (*tween.Handle, error) {
	if err := checkEntry(e, components.Transform); err != nil {
		return nil, err
	}
	var from Vec2
	capture := func() {
		tr := components.Transform.Get(e)
		from = Vec2{X: tr.X, Y: tr.Y}
	}
	capture()
	return start(s, e, ChannelMove, t, h, capture, func(p float64) {
		tr := components.Transform.Get(e)
		tr.X = lerp(from.X, to.X, p)
		tr.Y = lerp(from.Y, to.Y, p)
	})
}

// Fade sets the element color to c and animates its alpha from fromAlpha to toAlpha.
// Reverse fades (fromAlpha > toAlpha) are allowed.
func Fade(s *tween.Scheduler, e *donburi.Entry, c color.RGBA, fromAlpha, toAlpha float64, t Timing, h Hooks) (*tween.Handle, error) {
	if err := checkEntry(e, components.Graphic); err != nil {
		return nil, err
	}
	g := components.Graphic.Get(e)
	g.Color = c
	g.Alpha = fromAlpha
	return start(s, e, ChannelFade, t, h, nil, func(p float64) {
		components.Graphic.Get(e).Alpha = lerp(fromAlpha, toAlpha, p)
	})
}

// FadeIn fades the element from transparent to opaque, keeping its color.
func FadeIn(s *tween.Scheduler, e *donburi.Entry, t Timing, h Hooks) (*tween.Handle, error) {
	if err := checkEntry(e, components.Graphic); err != nil {
		return nil, err
	}
	return Fade(s, e, components.Graphic.Get(e).Color, 0, 1, t, h)
}

// FadeOut fades the element from opaque to transparent, keeping its color.
func FadeOut(s *tween.Scheduler, e *donburi.Entry, t Timing, h Hooks) (*tween.Handle, error) {
	if err := checkEntry(e, components.Graphic); err != nil {
		return nil, err
	}
	return Fade(s, e, components.Graphic.Get(e).Color, 1, 0, t, h)
}

// Slide animates the fill amount from start to end, growing from origin.
func Slide(s *tween.Scheduler, e *donburi.Entry, from, to float64, origin components.FillOrigin, t Timing, h Hooks) (*tween.Handle, error) {
	if err := checkEntry(e, components.Fill); err != nil {
		return nil, err
	}
	f := components.Fill.Get(e)
	f.Origin = origin
	f.Amount = from
	return start(s, e, ChannelFill, t, h, nil, func(p float64) {
		components.Fill.Get(e).Amount = lerp(from, to, p)
	})
}

// ScaleAxis animates one scale component; the other one is left alone.
func ScaleAxis(s *tween.Scheduler, e *donburi.Entry, from, to float64, axis Axis, t Timing, h Hooks) (*tween.Handle, error) {
	if err := checkEntry(e, components.Transform); err != nil {
		return nil, err
	}
	set := func(v float64) {
		tr := components.Transform.Get(e)
		if axis == AxisY {
			tr.ScaleY = v
		} else {
			tr.ScaleX = v
		}
	}
	set(from)
	return start(s, e, axis.channel(), t, h, nil, func(p float64) {
		set(lerp(from, to, p))
	})
}

// Stop cancels the animation of one channel. Values stay where they are.
func Stop(s *tween.Scheduler, e *donburi.Entry, ch Channel) bool {
	if e == nil {
		return false
	}
	return s.Cancel(Key{Entity: e.Entity(), Channel: ch})
}

// StopAll cancels every channel of e and returns how many were running.
func StopAll(s *tween.Scheduler, e *donburi.Entry) int {
	n := 0
	for ch := Channel(0); ch < channelCount; ch++ {
		if Stop(s, e, ch) {
			n++
		}
	}
	return n
}

func IsAnimating(s *tween.Scheduler, e *donburi.Entry, ch Channel) bool {
	if e == nil {
		return false
	}
	return s.IsActive(Key{Entity: e.Entity(), Channel: ch})
}
