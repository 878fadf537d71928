package systems

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/automoto/bombgrid/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrBadDirection  = errors.New("direction is not a unit grid step")
)

// UpdatePlayers advances every living player's motion, writes its pose and
// emits its ambient particles.
func UpdatePlayers(ecs *ecs.ECS) {
	session := components.SessionOf(ecs.World)
	now := session.Clock.Now()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Alive() {
			return
		}

		motion := components.Motion.Get(e)
		sample := motion.Advance(now)
		pos := playerWorldPosition(sample)

		pose := components.Pose.Get(e)
		r := config.Player.Radius
		pose.Heading = sample.Heading
		pose.Scale = r
		pose.Model = mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.Scale3D(r, r, r)).
			Mul4(mgl32.HomogRotate3DY(sample.Heading))

		emitter := components.Emitter.Get(e)
		if emitter.Ready(now) {
			emitPlayerParticles(session, pos, motion.Moving)
		}

		if player.ID == session.LocalPlayerID {
			followCamera(ecs, pos)
		}
	})
}

func playerWorldPosition(s components.MotionSample) mgl32.Vec3 {
	tile := config.Board.TileSize
	return mgl32.Vec3{
		s.Position.X() * tile,
		config.Player.FloatHeight + s.Bob,
		s.Position.Z() * tile,
	}
}

func emitPlayerParticles(session *components.SessionData, pos mgl32.Vec3, moving bool) {
	rng := session.Rand
	r := func() float32 { return gamemath.RandomFloat(rng) }
	feet := mgl32.Vec3{pos.X(), 0, pos.Z()}

	dir := gamemath.SafeNormalize(mgl32.Vec3{r(), -3, r()}, mgl32.Vec3{0, -1, 0})
	session.Large.Add(feet, dir, gamemath.RandomLifetime(rng, 1000, 1000))

	if !moving {
		return
	}
	tile := config.Board.TileSize
	for range 3 {
		v := gamemath.SafeNormalize(mgl32.Vec3{r() - 0.5, 0.3 * r(), r() - 0.5}, mgl32.Vec3{0, 1, 0})
		session.Small.Add(feet, v.Mul(0.3*tile), gamemath.RandomLifetime(rng, 300, 300))
	}
}

// StartMoving orders player id to walk one tile along (dx, dy) over duration.
func StartMoving(ecs *ecs.ECS, id, dx, dy int, duration time.Duration) error {
	dir := gamemath.Dir{X: dx, Y: dy}
	if !dir.IsCardinal() {
		return fmt.Errorf("player %d move (%d, %d): %w", id, dx, dy, ErrBadDirection)
	}
	e, ok := factory.FindPlayer(ecs.World, id)
	if !ok {
		return fmt.Errorf("move: player %d: %w", id, ErrUnknownPlayer)
	}
	now := components.SessionOf(ecs.World).Clock.Now()
	components.Motion.Get(e).StartMoving(dir, duration, now)
	return nil
}

// ForcePosition teleports player id to tile (x, y).
func ForcePosition(ecs *ecs.ECS, id, x, y int) error {
	e, ok := factory.FindPlayer(ecs.World, id)
	if !ok {
		return fmt.Errorf("force position: player %d: %w", id, ErrUnknownPlayer)
	}
	components.Motion.Get(e).ForcePosition(x, y)
	return nil
}

// SetPlayerStatus stores the authority's health and frag count for player id.
func SetPlayerStatus(ecs *ecs.ECS, id, health, frags int) error {
	e, ok := factory.FindPlayer(ecs.World, id)
	if !ok {
		return fmt.Errorf("status: player %d: %w", id, ErrUnknownPlayer)
	}
	player := components.Player.Get(e)
	player.SetHealth(health)
	player.Frags = frags
	return nil
}
