package components

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Material selects how a box reacts to flames.
type Material int

const (
	Crate Material = iota // destructible
	Stone                 // indestructible, blocks flames
)

func (m Material) String() string {
	switch m {
	case Crate:
		return "crate"
	case Stone:
		return "stone"
	}
	return fmt.Sprintf("material(%d)", int(m))
}

type BoxState int

const (
	BoxIntact BoxState = iota
	BoxExploding
)

// Fragment is one scatter piece of an exploding crate. Its trajectory is a
// closed-form function of the time since the explosion.
type Fragment struct {
	Axis         mgl32.Vec3
	AngularSpeed float32 // radians per second
	Velocity     mgl32.Vec3
}

type BoxData struct {
	X, Y         int
	Material     Material
	StoneVariant int
	UVOffset     mgl32.Vec2
	State        BoxState
	Fragments    []Fragment
	Model        mgl32.Mat4

	explosion clock.Timer
}

var Box = donburi.NewComponentType[BoxData]()

// NewBox returns an intact box on tile (x, y). Stone picks one of the stone
// variants from rng.
func NewBox(x, y int, mat Material, rng *rand.Rand) BoxData {
	tile := config.Board.TileSize
	b := BoxData{
		X:        x,
		Y:        y,
		Material: mat,
		UVOffset: mgl32.Vec2{gamemath.RandomFloat(rng), gamemath.RandomFloat(rng)},
		Model:    mgl32.Translate3D(float32(x)*tile, 0, float32(y)*tile),
	}
	if mat == Stone && config.Box.StoneVariants > 0 {
		b.StoneVariant = rng.IntN(config.Box.StoneVariants)
	}
	return b
}

// Center returns the world position of the middle of the box.
func (b *BoxData) Center() mgl32.Vec3 {
	tile := config.Board.TileSize
	return mgl32.Vec3{float32(b.X) * tile, 0.5 * tile, float32(b.Y) * tile}
}

// Exploding reports whether the box was hit.
func (b *BoxData) Exploding() bool {
	return b.State == BoxExploding
}

// SetExploding turns an intact crate into scatter fragments flying along
// launch (grid x, grid y). It reports false and changes nothing when the box
// is stone or already exploding.
func (b *BoxData) SetExploding(launch mgl32.Vec2, rng *rand.Rand, now time.Time) bool {
	if b.Material == Stone || b.State == BoxExploding {
		return false
	}

	dir := launchDirection(launch)
	tile := config.Board.TileSize

	b.Fragments = make([]Fragment, config.Box.Fragments)
	for i := range b.Fragments {
		r := func() float32 { return gamemath.RandomFloat(rng) }

		axis := gamemath.SafeNormalize(mgl32.Vec3{r() - 0.5, r() + 0.25, r() - 0.5}, mgl32.Vec3{0, 1, 0})
		speed := 2.5 + 3.5*r()

		jitter := mgl32.Vec3{r() - 0.5, 0.2 * r(), r() - 0.5}.Mul(0.35)
		vel := gamemath.SafeNormalize(dir.Add(jitter), dir).Mul(0.8 * tile * (0.5 + r()))
		vel[1] += (1.0 + 1.4*r()) * tile

		b.Fragments[i] = Fragment{Axis: axis, AngularSpeed: speed, Velocity: vel}
	}

	b.State = BoxExploding
	b.explosion.Begin(now)
	return true
}

func launchDirection(launch mgl32.Vec2) mgl32.Vec3 {
	v := mgl32.Vec3{launch.X(), 0, launch.Y()}
	l := v.Len()
	if l < 0.01 || math.IsNaN(float64(l)) {
		return mgl32.Vec3{1, 0, 0}
	}
	return v.Mul(1 / l)
}

// ToDestroy reports whether an exploding crate has outlived its grace period.
func (b *BoxData) ToDestroy(now time.Time) bool {
	return b.State == BoxExploding && b.explosion.Look(now) >= config.Box.GraceDuration
}

// FragmentTransform returns the model matrix of fragment i at now.
func (b *BoxData) FragmentTransform(i int, now time.Time) mgl32.Mat4 {
	if i < 0 || i >= len(b.Fragments) {
		return b.Model
	}
	f := b.Fragments[i]
	t := float32(b.explosion.Look(now).Seconds())

	offset := f.Velocity.Mul(t)
	offset[1] -= 0.5 * config.Box.Gravity * t * t

	return b.Model.
		Mul4(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z())).
		Mul4(mgl32.HomogRotate3D(f.AngularSpeed*t, f.Axis))
}

// MaterialKey names the render material of the intact box.
func (b *BoxData) MaterialKey() string {
	if b.Material == Stone {
		return fmt.Sprintf("stone-%d", b.StoneVariant)
	}
	return "wood"
}
