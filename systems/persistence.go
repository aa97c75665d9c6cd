package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/tween"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	TimeScale     float64 `json:"timeScale"`
	ReducedMotion bool    `json:"reducedMotion"`
	TimeSource    string  `json:"timeSource"`
	Easing        string  `json:"easing"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var persistLog logx.Logger

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(log logx.Logger) error {
	persistLog = log.With(logx.String("component", "persistence"))
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		persistLog.Warn("could not initialize persistence", logx.Err(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing was saved yet
// or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		persistLog.Warn("could not load settings", logx.Err(err))
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		persistLog.Warn("could not parse saved settings", logx.Err(err))
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		persistLog.Warn("could not save settings", logx.Err(err))
		return err
	}
	return nil
}

// CurrentSettings captures the settings the demo lets the user change.
func CurrentSettings(clock *tween.Clock) *SavedSettings {
	return &SavedSettings{
		TimeScale:     clock.TimeScale(),
		ReducedMotion: cfg.Tween.ReducedMotion,
		TimeSource:    cfg.Tween.TimeSource,
		Easing:        cfg.Tween.Easing,
	}
}

// ApplySavedSettings writes saved values into the config globals. Invalid values are
// skipped so a stale file cannot break startup.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.TimeScale >= 0 {
		cfg.Tween.TimeScale = saved.TimeScale
	}
	cfg.Tween.ReducedMotion = saved.ReducedMotion
	if _, err := tween.ParseTimeSource(saved.TimeSource); err == nil {
		cfg.Tween.TimeSource = saved.TimeSource
	}
	if _, err := ease.Lookup(saved.Easing); saved.Easing != "" && err == nil {
		cfg.Tween.Easing = saved.Easing
	}
}
