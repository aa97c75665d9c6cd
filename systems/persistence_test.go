package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/tween"
)

func restoreTween(t *testing.T) {
	saved := cfg.Tween
	t.Cleanup(func() { cfg.Tween = saved })
}

func TestCurrentSettingsCapturesClockAndConfig(t *testing.T) {
	restoreTween(t)
	cfg.Tween.ReducedMotion = true
	cfg.Tween.Easing = "linear"
	cfg.Tween.TimeSource = "scaled"

	clock := tween.NewClock()
	clock.SetTimeScale(0.5)

	got := CurrentSettings(clock)
	assert.Equal(t, &SavedSettings{
		TimeScale:     0.5,
		ReducedMotion: true,
		TimeSource:    "scaled",
		Easing:        "linear",
	}, got)
}

func TestApplySavedSettings(t *testing.T) {
	restoreTween(t)

	ApplySavedSettings(&SavedSettings{
		TimeScale:     2,
		ReducedMotion: true,
		TimeSource:    "unscaled",
		Easing:        "outBounce",
	})

	assert.Equal(t, 2.0, cfg.Tween.TimeScale)
	assert.True(t, cfg.Tween.ReducedMotion)
	assert.Equal(t, "unscaled", cfg.Tween.TimeSource)
	assert.Equal(t, "outBounce", cfg.Tween.Easing)
}

func TestApplySavedSettingsSkipsInvalidValues(t *testing.T) {
	restoreTween(t)
	before := cfg.Tween

	ApplySavedSettings(&SavedSettings{
		TimeScale:  -1,
		TimeSource: "sideways",
		Easing:     "wobble",
	})

	assert.Equal(t, before.TimeScale, cfg.Tween.TimeScale)
	assert.Equal(t, before.TimeSource, cfg.Tween.TimeSource)
	assert.Equal(t, before.Easing, cfg.Tween.Easing)
}

func TestApplySavedSettingsNil(t *testing.T) {
	restoreTween(t)
	before := cfg.Tween

	ApplySavedSettings(nil)
	assert.Equal(t, before, cfg.Tween)
}

func TestLoadSettingsWithoutPersistence(t *testing.T) {
	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}
