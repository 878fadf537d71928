package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/bombgrid/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_RoundTripThroughConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)

	saved := &SavedSettings{
		PlayerName:      "carol",
		ServerAddress:   "example.org:2406",
		ShakeEnabled:    false,
		ResolutionIndex: 1,
	}
	data, err := json.Marshal(saved)
	require.NoError(t, err)

	decoded, err := DecodeSettings(data)
	require.NoError(t, err)
	ApplySavedSettings(decoded)

	assert.Equal(t, "carol", cfg.Network.PlayerName)
	assert.Equal(t, "example.org:2406", cfg.Network.ServerAddress)
	assert.False(t, cfg.Shake.Enabled)
	assert.Equal(t, cfg.Settings.Resolutions[1].Width, cfg.C.Width)

	assert.Equal(t, saved, CurrentSettings(false, 1))
}

func TestSettings_KeepsDefaultsForEmptyValues(t *testing.T) {
	t.Cleanup(cfg.Reset)

	ApplySavedSettings(&SavedSettings{ShakeEnabled: true, ResolutionIndex: 99})

	assert.Equal(t, "bomber", cfg.Network.PlayerName)
	assert.Equal(t, 960, cfg.C.Width)

	_, err := DecodeSettings([]byte("{"))
	assert.Error(t, err)
}
