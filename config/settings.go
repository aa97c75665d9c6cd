package config

// SettingsConfig contains the options the demo lets the user cycle through
type SettingsConfig struct {
	AppName        string    // gdata namespace for persisted settings
	TimeScaleSteps []float64 // values cycled by the time-scale control
	EasingCycle    []string  // curves cycled by the easing control
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:        "uitween",
		TimeScaleSteps: []float64{0.25, 0.5, 1.0, 2.0},
		EasingCycle: []string{
			"outQuad", "linear", "inOutCubic", "outBack", "outElastic", "outBounce", "inOutSine",
		},
	}
}
