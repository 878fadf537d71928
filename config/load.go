package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ConfigName is the file stem searched for in the config directory.
const ConfigName = "bombgrid"

// Load reads optional overrides from bombgrid.toml in configDir and applies
// them on top of the defaults. A missing file keeps the defaults.
func Load(v *viper.Viper, configDir string) error {
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	apply(v)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", C.Width)
	v.SetDefault("window.height", C.Height)
	v.SetDefault("window.pixelsPerUnit", C.PixelsPerUnit)

	v.SetDefault("board.tileSize", Board.TileSize)
	v.SetDefault("board.tilesX", Board.TilesX)
	v.SetDefault("board.tilesY", Board.TilesY)

	v.SetDefault("player.radius", Player.Radius)
	v.SetDefault("player.floatHeight", Player.FloatHeight)

	v.SetDefault("box.fragments", Box.Fragments)
	v.SetDefault("box.grace", Box.GraceDuration)
	v.SetDefault("box.gravity", Box.Gravity)

	v.SetDefault("shake.enabled", Shake.Enabled)
	v.SetDefault("shake.duration", Shake.Duration)

	v.SetDefault("particles.timeslice", Particles.EmitterTimeslice)

	v.SetDefault("network.server", Network.ServerAddress)
	v.SetDefault("network.name", Network.PlayerName)

	v.SetDefault("sandbox.arena", Sandbox.Arena)
	v.SetDefault("sandbox.moveDuration", Sandbox.MoveDuration)
	v.SetDefault("sandbox.fuse", Sandbox.Fuse)
	v.SetDefault("sandbox.blastRange", Sandbox.BlastRange)
	v.SetDefault("sandbox.damage", Sandbox.Damage)

	v.SetDefault("debug.assertions", Debug.Assertions)
	v.SetDefault("debug.logLevel", Debug.LogLevel)
	v.SetDefault("debug.seed", Debug.Seed)
}

func apply(v *viper.Viper) {
	C.Width = v.GetInt("window.width")
	C.Height = v.GetInt("window.height")
	C.PixelsPerUnit = float32(v.GetFloat64("window.pixelsPerUnit"))

	Board.TileSize = float32(v.GetFloat64("board.tileSize"))
	Board.TilesX = v.GetInt("board.tilesX")
	Board.TilesY = v.GetInt("board.tilesY")

	Player.Radius = float32(v.GetFloat64("player.radius"))
	Player.FloatHeight = float32(v.GetFloat64("player.floatHeight"))

	Box.Fragments = v.GetInt("box.fragments")
	Box.GraceDuration = v.GetDuration("box.grace")
	Box.Gravity = float32(v.GetFloat64("box.gravity"))

	Shake.Enabled = v.GetBool("shake.enabled")
	Shake.Duration = v.GetDuration("shake.duration")

	Particles.EmitterTimeslice = v.GetDuration("particles.timeslice")

	Network.ServerAddress = v.GetString("network.server")
	Network.PlayerName = v.GetString("network.name")

	Sandbox.Arena = v.GetString("sandbox.arena")
	Sandbox.MoveDuration = v.GetDuration("sandbox.moveDuration")
	Sandbox.Fuse = v.GetDuration("sandbox.fuse")
	Sandbox.BlastRange = v.GetInt("sandbox.blastRange")
	Sandbox.Damage = v.GetInt("sandbox.damage")

	Debug.Assertions = v.GetBool("debug.assertions")
	Debug.LogLevel = v.GetString("debug.logLevel")
	Debug.Seed = v.GetUint64("debug.seed")
}
