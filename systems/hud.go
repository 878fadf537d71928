package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bombgrid/components"
	cfg "github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/fonts"
	"github.com/automoto/bombgrid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 14
	hudMargin    = 10
	hudRowHeight = 22
)

// DrawScoreboard renders one health bar per player labeled with name and
// frags, then the game over overlay once the authority ends the match.
func DrawScoreboard(ecs *ecs.ECS, screen *ebiten.Image) {
	session := components.SessionOf(ecs.World)
	face := fonts.HUDSmall.Get()

	row := 0
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		y := float32(hudMargin + row*hudRowHeight)
		row++

		vector.FillRect(screen, hudMargin, y, hudBarWidth, hudBarHeight,
			color.RGBA{40, 40, 40, 255}, false)
		vector.FillRect(screen, hudMargin, y, hudBarWidth*player.HealthRatio(), hudBarHeight,
			healthColor(player.HealthRatio()), false)

		label := fmt.Sprintf("%s (frags: %d)", player.Name, player.Frags)
		clr := cfg.White
		if player.ID == session.LocalPlayerID {
			clr = cfg.BrightOrange
		}
		text.Draw(screen, label, face, hudMargin+hudBarWidth+8, int(y)+hudBarHeight-2, clr)
	})

	if session.Over {
		drawGameOver(screen)
	}
}

func drawGameOver(screen *ebiten.Image) {
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)

	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	title := "GAME OVER"
	titleWidth := len(title) * 24
	text.Draw(screen, title, fonts.Title.Get(), int(width)/2-titleWidth/2, int(height)/2, cfg.BrightOrange)
}

// healthColor fades from red at 0 to green at full health.
func healthColor(ratio float32) color.RGBA {
	ratio = max(0, min(1, ratio))
	return color.RGBA{
		R: uint8(255 * (1 - ratio)),
		G: uint8(220 * ratio),
		B: 40,
		A: 255,
	}
}
