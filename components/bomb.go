package components

import (
	"math"
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/config"
	"github.com/yohamta/donburi"
)

type BombData struct {
	ID      int
	OwnerID int
	X, Y    int

	placed clock.Timer
}

var Bomb = donburi.NewComponentType[BombData]()

// NewBomb returns a bomb placed on tile (x, y) at now.
func NewBomb(id, owner, x, y int, now time.Time) BombData {
	b := BombData{ID: id, OwnerID: owner, X: x, Y: y}
	b.placed.Begin(now)
	return b
}

// PulseScale returns the model scale of the bomb at now.
func (b *BombData) PulseScale(now time.Time) float32 {
	t := b.placed.Look(now).Seconds()
	pulse := config.Bomb.PulseAmp * float32(math.Sin(float64(config.Bomb.PulseSpeed)*t))
	return config.Player.Radius * (config.Bomb.ScaleFactor + pulse)
}

// Age returns how long the bomb has been on the board.
func (b *BombData) Age(now time.Time) time.Duration {
	return b.placed.Look(now)
}
