package components

import (
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BoardData is the tile grid. Each cell holds the entity of the box resting
// on it, or donburi.Null.
type BoardData struct {
	TilesX, TilesY int
	cells          []donburi.Entity
}

var Board = donburi.NewComponentType[BoardData]()

// NewBoard returns an empty w × h grid.
func NewBoard(w, h int) BoardData {
	cells := make([]donburi.Entity, w*h)
	for i := range cells {
		cells[i] = donburi.Null
	}
	return BoardData{TilesX: w, TilesY: h, cells: cells}
}

func (b *BoardData) InBounds(x, y int) bool {
	return gamemath.InBounds(x, y, b.TilesX, b.TilesY)
}

// At returns the box entity on (x, y). Out of bounds reads as empty.
func (b *BoardData) At(x, y int) donburi.Entity {
	if !b.InBounds(x, y) {
		return donburi.Null
	}
	return b.cells[y*b.TilesX+x]
}

// Occupied reports whether a box rests on (x, y).
func (b *BoardData) Occupied(x, y int) bool {
	return b.At(x, y) != donburi.Null
}

// Put stores e on (x, y). Callers check bounds and occupancy first.
func (b *BoardData) Put(x, y int, e donburi.Entity) {
	if b.InBounds(x, y) {
		b.cells[y*b.TilesX+x] = e
	}
}

// Clear empties (x, y).
func (b *BoardData) Clear(x, y int) {
	b.Put(x, y, donburi.Null)
}

// ClearEntity empties the cell holding e, if any.
func (b *BoardData) ClearEntity(e donburi.Entity) {
	for i, c := range b.cells {
		if c == e {
			b.cells[i] = donburi.Null
			return
		}
	}
}
