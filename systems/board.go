package systems

import (
	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/automoto/bombgrid/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoard removes spent crates, runs the camera shake and pulses bombs.
func UpdateBoard(ecs *ecs.ECS) {
	sweepCrates(ecs)
	updateCameraShake(ecs)
	pulseBombs(ecs)
}

func sweepCrates(ecs *ecs.ECS) {
	now := components.SessionOf(ecs.World).Clock.Now()
	var toRemove []*donburi.Entry

	tags.Crate.Each(ecs.World, func(e *donburi.Entry) {
		if components.Box.Get(e).ToDestroy(now) {
			toRemove = append(toRemove, e)
		}
	})

	if len(toRemove) == 0 {
		return
	}
	board, ok := factory.BoardOf(ecs.World)
	for _, e := range toRemove {
		if ok {
			board.ClearEntity(e.Entity())
		}
		e.Remove()
	}
}

func pulseBombs(ecs *ecs.ECS) {
	session := components.SessionOf(ecs.World)
	now := session.Clock.Now()
	tile := config.Board.TileSize
	r := func() float32 { return gamemath.RandomFloat(session.Rand) }

	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		bomb := components.Bomb.Get(e)
		pose := components.Pose.Get(e)

		pos := pose.Translation()
		scale := bomb.PulseScale(now)
		pose.Scale = scale
		pose.Model = mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.Scale3D(scale, scale, scale))

		fuse := pos.Add(mgl32.Vec3{0, 0.6 * tile, 0})
		for range config.Bomb.SparksPerTick {
			v := gamemath.SafeNormalize(mgl32.Vec3{r() - 0.5, 0.8*r() + 0.6, r() - 0.5}, mgl32.Vec3{0, 1, 0})
			session.Small.Add(fuse, v.Mul(0.1*tile), gamemath.RandomLifetime(session.Rand, 300, 300))
		}
	})
}
