package animation

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/automoto/uitween/archetypes"
	"github.com/automoto/uitween/components"
	"github.com/automoto/uitween/config"
	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/tween"
)

var linear = Timing{Duration: 1, Easing: ease.Linear}

func newBar(t *testing.T) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	e := archetypes.Bar.SpawnIn(w)
	components.Element.Get(e).Name = "bar"
	return w, e
}

func TestMoveWritesExactEndValue(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()
	tr := components.Transform.Get(e)
	tr.X, tr.Y = 10, 20

	completed := 0
	_, err := Move(s, e, Vec2{X: 110, Y: 70}, linear, Hooks{OnComplete: func() { completed++ }})
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 60.0, tr.X)
	assert.Equal(t, 45.0, tr.Y)

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 110.0, tr.X)
	assert.Equal(t, 70.0, tr.Y)
	assert.Equal(t, 1, completed)
}

func TestMoveCapturesStartWhenPlaying(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()
	_, err := Move(s, e, Vec2{X: 100}, Timing{Duration: 1, Delay: 1, Easing: ease.Linear}, Hooks{})
	require.NoError(t, err)

	components.Transform.Get(e).X = 50
	require.NoError(t, s.Tick(1))
	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 75.0, components.Transform.Get(e).X)
}

func TestWritersShowTheElement(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()
	require.False(t, components.Element.Get(e).Visible)

	_, err := FadeIn(s, e, linear, Hooks{})
	require.NoError(t, err)
	assert.True(t, components.Element.Get(e).Visible)
}

func TestFadeBothDirections(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()
	tint := color.RGBA{R: 200, G: 10, B: 10, A: 255}

	_, err := Fade(s, e, tint, 1, 0, linear, Hooks{})
	require.NoError(t, err)
	g := components.Graphic.Get(e)
	assert.Equal(t, tint, g.Color)
	assert.Equal(t, 1.0, g.Alpha)

	require.NoError(t, s.Tick(0.25))
	assert.Equal(t, 0.75, g.Alpha)
	require.NoError(t, s.Tick(1))
	assert.Equal(t, 0.0, g.Alpha)

	_, err = FadeIn(s, e, linear, Hooks{})
	require.NoError(t, err)
	require.NoError(t, s.Tick(1))
	assert.Equal(t, 1.0, g.Alpha)
	assert.Equal(t, tint, g.Color, "FadeIn keeps the color")
}

func TestSlideSetsOriginAndAmount(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()

	_, err := Slide(s, e, 0, 1, components.FillRight, linear, Hooks{})
	require.NoError(t, err)
	f := components.Fill.Get(e)
	assert.Equal(t, components.FillRight, f.Origin)
	assert.Equal(t, 0.0, f.Amount)

	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 0.5, f.Amount)
	require.NoError(t, s.Tick(0.5))
	assert.Equal(t, 1.0, f.Amount)
}

func TestScaleAxisLeavesOtherAxis(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()

	_, err := ScaleAxis(s, e, 0, 2, AxisY, linear, Hooks{})
	require.NoError(t, err)
	require.NoError(t, s.Tick(1))

	tr := components.Transform.Get(e)
	assert.Equal(t, 2.0, tr.ScaleY)
	assert.Equal(t, 1.0, tr.ScaleX)
}

func TestChannelsAreIndependent(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()

	_, err := Move(s, e, Vec2{X: 100}, linear, Hooks{})
	require.NoError(t, err)
	_, err = FadeOut(s, e, linear, Hooks{})
	require.NoError(t, err)
	require.NoError(t, s.Tick(0.5))

	// restarting the move must not touch the fade
	_, err = Move(s, e, Vec2{X: 0}, linear, Hooks{})
	require.NoError(t, err)
	assert.True(t, IsAnimating(s, e, ChannelFade))
	assert.True(t, IsAnimating(s, e, ChannelMove))

	require.NoError(t, s.Tick(0.5))
	assert.False(t, IsAnimating(s, e, ChannelFade))
	assert.Equal(t, 0.0, components.Graphic.Get(e).Alpha)
	assert.Equal(t, 25.0, components.Transform.Get(e).X)
}

func TestStopAndStopAll(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()

	_, err := Move(s, e, Vec2{X: 100}, linear, Hooks{})
	require.NoError(t, err)
	_, err = Slide(s, e, 0, 1, components.FillLeft, linear, Hooks{})
	require.NoError(t, err)
	_, err = ScaleAxis(s, e, 1, 2, AxisX, linear, Hooks{})
	require.NoError(t, err)

	assert.True(t, Stop(s, e, ChannelMove))
	assert.False(t, Stop(s, e, ChannelMove))
	assert.Equal(t, 2, StopAll(s, e))
	assert.Zero(t, s.Len())
	assert.False(t, Stop(s, nil, ChannelMove))
}

func TestRemovedEntryIsSkipped(t *testing.T) {
	w, e := newBar(t)
	s := tween.NewScheduler()
	completed := false

	_, err := Move(s, e, Vec2{X: 100}, linear, Hooks{OnComplete: func() { completed = true }})
	require.NoError(t, err)
	w.Remove(e.Entity())

	assert.NotPanics(t, func() {
		require.NoError(t, s.Tick(0.5))
		require.NoError(t, s.Tick(0.5))
	})
	assert.True(t, completed)

	_, err = Move(s, e, Vec2{}, linear, Hooks{})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestMissingComponent(t *testing.T) {
	w := donburi.NewWorld()
	e := archetypes.Element.SpawnIn(w)
	s := tween.NewScheduler()

	_, err := Slide(s, e, 0, 1, components.FillLeft, linear, Hooks{})
	assert.ErrorIs(t, err, ErrMissingComponent)
	assert.Zero(t, s.Len())
}

func TestZeroTimingUsesConfigDefaults(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()

	h, err := FadeIn(s, e, Timing{}, Hooks{})
	require.NoError(t, err)
	assert.Equal(t, config.Tween.Duration, h.Duration())
	assert.Equal(t, config.Tween.Delay, h.Delay())
}

func TestReducedMotionSnaps(t *testing.T) {
	config.Tween.ReducedMotion = true
	t.Cleanup(func() { config.Tween.ReducedMotion = false })

	_, e := newBar(t)
	s := tween.NewScheduler()
	_, err := Move(s, e, Vec2{X: 100}, Timing{Duration: 5, Delay: 2, Easing: ease.Linear}, Hooks{})
	require.NoError(t, err)

	require.NoError(t, s.Tick(0.016))
	assert.Equal(t, 100.0, components.Transform.Get(e).X)
	assert.Zero(t, s.Len())
}

func TestPlayPresets(t *testing.T) {
	_, e := newBar(t)
	s := tween.NewScheduler()

	_, err := PlayNamed(s, e, "fill", Hooks{})
	require.NoError(t, err)
	assert.True(t, IsAnimating(s, e, ChannelFill))

	_, err = Play(s, e, config.Preset{Kind: "scale_y", Duration: 0.5, From: 0, To: 1}, Hooks{})
	require.NoError(t, err)
	require.NoError(t, s.Tick(2))
	assert.Equal(t, 1.0, components.Transform.Get(e).ScaleY)
	assert.Equal(t, 1.0, components.Fill.Get(e).Amount)

	_, err = PlayNamed(s, e, "nope", Hooks{})
	assert.Error(t, err)
	_, err = Play(s, e, config.Preset{Kind: "spin"}, Hooks{})
	assert.Error(t, err)
}
