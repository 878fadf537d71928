package scenes

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/components"
	cfg "github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/logging"
	"github.com/automoto/bombgrid/particles"
	"github.com/automoto/bombgrid/systems"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EventSource is whatever plays the authority: a network client, the
// offline sandbox or a scripted replay.
type EventSource interface {
	Drain(now time.Time) []any
	Send(msg any) error
	Err() error
}

// ArenaScene drives one board from an EventSource.
type ArenaScene struct {
	ecs    *ecs.ECS
	source EventSource
	clock  clock.Clock
	large  *particles.Pool
	small  *particles.Pool
	log    zerolog.Logger

	overAt     time.Time
	fullscreen bool
}

// NewArenaScene wires the board systems and renderers around source.
func NewArenaScene(source EventSource, clk clock.Clock) *ArenaScene {
	s := &ArenaScene{
		source: source,
		clock:  clk,
		log:    logging.For("arena"),
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(clk.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32|1))

	s.large = particles.NewPool(cfg.Particles.LargeCapacity, cfg.Particles.Size*2, clk)
	s.small = particles.NewPool(cfg.Particles.SmallCapacity, cfg.Particles.Size, clk)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewInputSystem(source.Send))
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdateBoard)

	ecs.AddRenderer(cfg.Default, systems.DrawBoard)
	ecs.AddRenderer(cfg.Default, systems.DrawBombs)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.NewParticleRenderer(s.large, s.small))
	ecs.AddRenderer(cfg.Default, systems.DrawScoreboard)

	factory.CreateSession(ecs, clk, rng, s.large, s.small)
	factory.CreateBoard(ecs, cfg.Board.TilesX, cfg.Board.TilesY)
	factory.CreateCamera(ecs, cfg.Board.TilesX, cfg.Board.TilesY)

	s.ecs = ecs
	s.fullscreen = ebiten.IsFullscreen()
	s.log.Debug().Uint64("seed", seed).Msg("arena ready")
	return s
}

// Update applies every pending authority event, then advances the systems.
// It returns ebiten.Termination once the game over hold has elapsed.
func (s *ArenaScene) Update() error {
	now := s.clock.Now()

	systems.DispatchMessages(s.ecs, s.source.Drain(now))
	s.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		s.toggleFullscreen()
	}

	// A server may hang up right after announcing the end of the game.
	if !components.SessionOf(s.ecs.World).Over {
		return s.source.Err()
	}
	if s.overAt.IsZero() {
		s.overAt = now
		s.log.Info().Msg("game over")
	}
	if now.Sub(s.overAt) >= cfg.C.GameOverHold {
		return ebiten.Termination
	}
	return nil
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}

// ECS exposes the scene's world for tools that inspect the board.
func (s *ArenaScene) ECS() *ecs.ECS {
	return s.ecs
}

func (s *ArenaScene) toggleFullscreen() {
	s.fullscreen = !s.fullscreen
	ebiten.SetFullscreen(s.fullscreen)

	settings := systems.CurrentSettings(s.fullscreen, cfg.Settings.ResolutionIndex)
	if err := systems.SaveSettings(settings); err != nil {
		s.log.Warn().Err(err).Msg("could not save settings")
	}
}
