package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/bombgrid/assets"
	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/fonts"
	"github.com/automoto/bombgrid/logging"
	"github.com/automoto/bombgrid/network"
	"github.com/automoto/bombgrid/replay"
	"github.com/automoto/bombgrid/sandbox"
	"github.com/automoto/bombgrid/scenes"
	"github.com/automoto/bombgrid/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Game struct {
	scene *scenes.ArenaScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flags := pflag.NewFlagSet("bombgrid", pflag.ExitOnError)
	configDir := flags.String("config-dir", ".", "directory searched for bombgrid.toml")
	mode := flags.String("mode", "sandbox", "authority to play against: sandbox, replay or network")
	replayName := flags.String("replay", "demo", "bundled replay script to play in replay mode")
	flags.String("server", config.Network.ServerAddress, "server address in network mode")
	flags.String("name", config.Network.PlayerName, "player name")
	flags.String("arena", config.Sandbox.Arena, "sandbox arena")
	flags.String("log-level", config.Debug.LogLevel, "trace, debug, info, warn or error")
	flags.Bool("assertions", config.Debug.Assertions, "panic on board invariant violations")
	flags.Uint64("seed", config.Debug.Seed, "cosmetic RNG seed, 0 picks one from the clock")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	bind(v, flags, map[string]string{
		"network.server":   "server",
		"network.name":     "name",
		"sandbox.arena":    "arena",
		"debug.logLevel":   "log-level",
		"debug.assertions": "assertions",
		"debug.seed":       "seed",
	})

	// Saved settings become the defaults that the config file and flags override.
	persistErr := systems.InitPersistence()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
		ebiten.SetFullscreen(saved.Fullscreen)
	}

	if err := config.Load(v, *configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(config.Debug.LogLevel, nil)
	log := logging.For("main")
	if persistErr != nil {
		log.Warn().Err(persistErr).Msg("could not initialize persistence")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("could not load fonts")
	}

	clk := clock.SystemClock{}
	source, err := newSource(*mode, *replayName, clk)
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("could not start")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("bombgrid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := &Game{scene: scenes.NewArenaScene(source, clk)}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game stopped")
	}
}

// bind copies explicitly set flags over the config keys they name.
func bind(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if flags.Changed(name) {
			_ = v.BindPFlag(key, flags.Lookup(name))
		}
	}
}

func newSource(mode, replayName string, clk clock.Clock) (scenes.EventSource, error) {
	switch mode {
	case "sandbox":
		arena, err := assets.NewArenaLoader().Arena(config.Sandbox.Arena)
		if err != nil {
			return nil, err
		}
		return sandbox.New(arena, config.Network.PlayerName), nil

	case "replay":
		f, err := assets.OpenReplay(replayName)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		script, err := replay.Parse(f)
		if err != nil {
			return nil, err
		}
		return replay.NewPlayer(script, clk.Now()), nil

	case "network":
		client := network.NewClient(config.Network.QueueLimit)
		client.Connect(config.Network.ServerAddress, config.Network.Version, config.Network.PlayerName)
		return client, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}
