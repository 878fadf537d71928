package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	cfg := `
[board]
tileSize = 3.0
tilesX = 21

[box]
grace = "1500ms"

[debug]
assertions = true
logLevel = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bombgrid.toml"), []byte(cfg), 0644))

	require.NoError(t, Load(viper.New(), dir))

	assert.Equal(t, float32(3.0), Board.TileSize)
	assert.Equal(t, 21, Board.TilesX)
	assert.Equal(t, 13, Board.TilesY)
	assert.Equal(t, 1500*time.Millisecond, Box.GraceDuration)
	assert.True(t, Debug.Assertions)
	assert.Equal(t, "debug", Debug.LogLevel)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Load(viper.New(), t.TempDir()))

	assert.Equal(t, float32(2.0), Board.TileSize)
	assert.Equal(t, 1200*time.Millisecond, Box.GraceDuration)
	assert.Equal(t, 200*time.Millisecond, Shake.Duration)
	assert.Equal(t, float32(0.8), Player.Radius)
	assert.Equal(t, "localhost:2406", Network.ServerAddress)
	assert.False(t, Debug.Assertions)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bombgrid.toml"), []byte("[board\ntileSize ="), 0644))

	err := Load(viper.New(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_FlagOverridesWin(t *testing.T) {
	t.Cleanup(Reset)

	v := viper.New()
	v.Set("network.name", "alice")

	require.NoError(t, Load(v, t.TempDir()))
	assert.Equal(t, "alice", Network.PlayerName)
}
