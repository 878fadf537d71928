package systems

import (
	"encoding/json"

	cfg "github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/logging"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PlayerName      string `json:"playerName"`
	ServerAddress   string `json:"serverAddress"`
	ShakeEnabled    bool   `json:"shakeEnabled"`
	Fullscreen      bool   `json:"fullscreen"`
	ResolutionIndex int    `json:"resolutionIndex"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bombgrid",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log := logging.For("persistence")
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}
	return DecodeSettings(data)
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
	return gdataManager.SaveItem(settingsKey, data)
}

// DecodeSettings parses a stored settings blob.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// CurrentSettings captures the persisted part of the running configuration.
func CurrentSettings(fullscreen bool, resolutionIndex int) *SavedSettings {
	return &SavedSettings{
		PlayerName:      cfg.Network.PlayerName,
		ServerAddress:   cfg.Network.ServerAddress,
		ShakeEnabled:    cfg.Shake.Enabled,
		Fullscreen:      fullscreen,
		ResolutionIndex: resolutionIndex,
	}
}

// ApplySavedSettings copies saved values into the global configuration.
// Empty strings and out of range indexes keep the current values.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.PlayerName != "" {
		cfg.Network.PlayerName = saved.PlayerName
	}
	if saved.ServerAddress != "" {
		cfg.Network.ServerAddress = saved.ServerAddress
	}
	cfg.Shake.Enabled = saved.ShakeEnabled

	if i := saved.ResolutionIndex; i >= 0 && i < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[i]
		cfg.Settings.ResolutionIndex = i
		cfg.C.Width = res.Width
		cfg.C.Height = res.Height
	}
}
