package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/blast"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownBomb = errors.New("unknown bomb")

// Tile is a grid coordinate.
type Tile struct {
	X, Y int
}

// BlastResult describes what one explosion touched.
type BlastResult struct {
	Origin    Tile
	Flames    []Tile // tiles that got flame particles, in ray order
	Destroyed []Tile // crates set exploding
	Blocked   []Tile // stones that stopped a ray
}

// Explode resolves the explosion of bomb id with the packed blast code. The
// bomb is removed; crates in reach start exploding and leave the grid, while
// stone stops its ray. An unknown id changes nothing.
func Explode(ecs *ecs.ECS, id int, code uint32) (*BlastResult, error) {
	bombEntry, ok := factory.FindBomb(ecs.World, id)
	if !ok {
		return nil, fmt.Errorf("explosion of bomb %d: %w", id, ErrUnknownBomb)
	}
	board, ok := factory.BoardOf(ecs.World)
	if !ok {
		return nil, factory.ErrNoBoard
	}

	session := components.SessionOf(ecs.World)
	now := session.Clock.Now()
	tile := config.Board.TileSize

	center := components.Pose.Get(bombEntry).Translation()
	bombEntry.Remove()

	origin := Tile{
		X: gamemath.WorldToTile(center.X(), tile),
		Y: gamemath.WorldToTile(center.Z(), tile),
	}
	res := &BlastResult{Origin: origin}

	for _, ray := range blast.Decode(code).Rays() {
		x, y := origin.X, origin.Y
		for step := 0; step < ray.Length; step++ {
			x += ray.Dir.X
			y += ray.Dir.Y
			if !board.InBounds(x, y) {
				break
			}

			if ent := board.At(x, y); ent != donburi.Null {
				if !ecs.World.Valid(ent) {
					board.Clear(x, y)
				} else {
					boxEntry := ecs.World.Entry(ent)
					box := components.Box.Get(boxEntry)
					if box.Material == components.Stone {
						res.Blocked = append(res.Blocked, Tile{x, y})
						break
					}
					box.SetExploding(mgl32.Vec2{float32(ray.Dir.X), float32(ray.Dir.Y)}, session.Rand, now)
					board.Clear(x, y)
					emitDebris(session, box.Center())
					res.Destroyed = append(res.Destroyed, Tile{x, y})
				}
			}

			emitFlames(session, x, y)
			res.Flames = append(res.Flames, Tile{x, y})
		}
	}

	emitBlast(session, center)
	TriggerCameraShake(ecs)

	return res, nil
}

func emitFlames(session *components.SessionData, x, y int) {
	tile := config.Board.TileSize
	pos := mgl32.Vec3{float32(x) * tile, 0.5 * tile, float32(y) * tile}
	r := func() float32 { return gamemath.RandomFloat(session.Rand) }

	for range config.Explosion.FlameParticles {
		dir := gamemath.SafeNormalize(mgl32.Vec3{r() - 0.5, r(), r() - 0.5}, mgl32.Vec3{0, 1, 0})
		session.Large.Add(pos, dir, gamemath.RandomLifetime(session.Rand, 300, 400))
	}
}

func emitDebris(session *components.SessionData, pos mgl32.Vec3) {
	tile := config.Board.TileSize
	r := func() float32 { return gamemath.RandomFloat(session.Rand) }

	for range config.Box.DebrisCount {
		dir := gamemath.SafeNormalize(mgl32.Vec3{r() - 0.5, 0.7 * r(), r() - 0.5}, mgl32.Vec3{0, 1, 0})
		speed := (0.8 + 2*r()) * tile
		session.Small.Add(pos, dir.Mul(speed), gamemath.RandomLifetime(session.Rand, 400, 400))
	}
}

func emitBlast(session *components.SessionData, pos mgl32.Vec3) {
	tile := config.Board.TileSize
	r := func() float32 { return gamemath.RandomFloat(session.Rand) }
	unit := func() mgl32.Vec3 {
		return gamemath.SafeNormalize(mgl32.Vec3{r() - 0.5, r() - 0.5, r() - 0.5}, mgl32.Vec3{0, 1, 0})
	}

	for range config.Explosion.BigBurst {
		session.Large.Add(pos, unit(), gamemath.RandomLifetime(session.Rand, 300, 500))
	}
	for range config.Explosion.SmallBurst {
		speed := (0.5 + 1.8*r()) * tile
		session.Small.Add(pos, unit().Mul(speed), gamemath.RandomLifetime(session.Rand, 600, 600))
	}
}
