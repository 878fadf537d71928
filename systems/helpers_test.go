package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/particles"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type testArena struct {
	ecs   *ecs.ECS
	clock *clock.MockClock
	large *particles.Recorder
	small *particles.Recorder
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	t.Cleanup(config.Reset)

	a := &testArena{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		clock: clock.NewMock(epoch),
		large: &particles.Recorder{},
		small: &particles.Recorder{},
	}
	factory.CreateSession(a.ecs, a.clock, rand.New(rand.NewPCG(7, 11)), a.large, a.small)
	factory.CreateBoard(a.ecs, config.Board.TilesX, config.Board.TilesY)
	factory.CreateCamera(a.ecs, config.Board.TilesX, config.Board.TilesY)
	return a
}

func (a *testArena) resetParticles() {
	a.large.Reset()
	a.small.Reset()
}
