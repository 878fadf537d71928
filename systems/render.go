package systems

import (
	"image/color"
	"math"

	"github.com/automoto/bombgrid/assets"
	"github.com/automoto/bombgrid/components"
	cfg "github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/particles"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/automoto/bombgrid/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view projects world X/Z onto the screen, top-down, centered on the camera.
type view struct {
	centerX, centerZ float32
	scale            float32 // pixels per world unit
	halfW, halfH     float32
}

func newView(w donburi.World, screen *ebiten.Image) view {
	v := view{
		scale: cfg.C.PixelsPerUnit,
		halfW: float32(screen.Bounds().Dx()) / 2,
		halfH: float32(screen.Bounds().Dy()) / 2,
	}
	if cameraEntry, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(cameraEntry)
		v.centerX = camera.Position.X()
		v.centerZ = camera.Position.Z() - cfg.Player.CameraOffset[0]
	}
	return v
}

func (v view) project(p mgl32.Vec3) (float32, float32) {
	return (p.X()-v.centerX)*v.scale + v.halfW, (p.Z()-v.centerZ)*v.scale + v.halfH
}

// DrawBoard draws the floor and every box, exploding crates as their fragments.
func DrawBoard(ecs *ecs.ECS, screen *ebiten.Image) {
	board, ok := factory.BoardOf(ecs.World)
	if !ok {
		return
	}
	v := newView(ecs.World, screen)
	tile := cfg.Board.TileSize
	px := tile * v.scale
	now := components.SessionOf(ecs.World).Clock.Now()

	x0, y0 := v.project(mgl32.Vec3{-tile / 2, 0, -tile / 2})
	vector.FillRect(screen, x0, y0, float32(board.TilesX)*px, float32(board.TilesY)*px, assets.Color("floor"), false)

	tags.Box.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Box.Get(e)

		if !box.Exploding() {
			sx, sy := v.project(box.Model.Col(3).Vec3())
			clr := shade(assets.Color(box.MaterialKey()), box.UVOffset.X())
			vector.FillRect(screen, sx-px/2+1, sy-px/2+1, px-2, px-2, clr, false)
			return
		}

		for i := range box.Fragments {
			pos := box.FragmentTransform(i, now).Col(3).Vec3()
			if pos.Y() < -tile {
				continue
			}
			sx, sy := v.project(pos)
			size := px / 4 * (1 + max(pos.Y(), 0)/(4*tile))
			vector.FillRect(screen, sx-size/2, sy-size/2, size, size, assets.Color("wood"), false)
		}
	})
}

// DrawBombs draws every bomb at its pulsing scale.
func DrawBombs(ecs *ecs.ECS, screen *ebiten.Image) {
	v := newView(ecs.World, screen)
	tile := cfg.Board.TileSize

	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		pose := components.Pose.Get(e)
		sx, sy := v.project(pose.Translation())
		vector.FillCircle(screen, sx, sy, pose.Scale*tile/2*v.scale, assets.Color("bomb"), true)
		vector.FillCircle(screen, sx, sy-pose.Scale*tile/2*v.scale, 2, cfg.BrightOrange, true)
	})
}

// DrawPlayers draws living players with a nose pointing along their heading.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	v := newView(ecs.World, screen)
	local := components.SessionOf(ecs.World).LocalPlayerID
	tile := cfg.Board.TileSize

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Alive() {
			return
		}
		pose := components.Pose.Get(e)
		pos := pose.Translation()
		sx, sy := v.project(pos)

		lift := 1 + (pos.Y()-cfg.Player.FloatHeight)/tile
		r := pose.Scale * tile / 2 * v.scale * lift

		clr := color.Color(assets.Color("player"))
		if player.ID == local {
			clr = cfg.Green
		}
		vector.FillCircle(screen, sx, sy, r, clr, true)

		h := float64(pose.Heading)
		nx := sx + float32(math.Sin(h))*r*1.4
		ny := sy + float32(math.Cos(h))*r*1.4
		vector.StrokeLine(screen, sx, sy, nx, ny, 3, cfg.Red, true)
	})
}

// NewParticleRenderer draws the large and small particle pools, ageing them
// first.
func NewParticleRenderer(large, small *particles.Pool) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		now := components.SessionOf(ecs.World).Clock.Now()
		v := newView(ecs.World, screen)

		for _, pool := range []*particles.Pool{large, small} {
			pool.Update(now)
			size := pool.Size() * v.scale
			pool.Each(now, func(pos mgl32.Vec3, life float32) {
				sx, sy := v.project(pos)
				s := size * (0.5 + life)
				base := cfg.Orange
				if life > 0.6 {
					base = cfg.BrightOrange
				}
				clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(255 * life)}
				vector.FillRect(screen, sx-s/2, sy-s/2, s, s, clr, false)
			})
		}
	}
}

// shade darkens c by up to 20% using a per-box offset in [0, 1).
func shade(c color.RGBA, offset float32) color.RGBA {
	k := 1 - 0.2*offset
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
