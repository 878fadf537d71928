package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the window size choices and the one in use
type SettingsConfig struct {
	Resolutions            []Resolution
	ResolutionIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func resetSettings() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 720, Label: "960 x 720"},
			{Width: 1280, Height: 960, Label: "1280 x 960"},
			{Width: 1600, Height: 1200, Label: "1600 x 1200"},
		},
		ResolutionIndex: 0,
	}
}
