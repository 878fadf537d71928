package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/bombgrid/archetypes"
	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoBoard       = errors.New("board not created")
	ErrOutOfBounds   = errors.New("tile out of bounds")
	ErrCellOccupied  = errors.New("cell already holds a box")
	ErrDuplicateBomb = errors.New("bomb id already live")
)

// CreateBoard spawns the empty w × h grid singleton.
func CreateBoard(ecs *ecs.ECS, w, h int) *donburi.Entry {
	board := archetypes.Board.Spawn(ecs)
	components.Board.SetValue(board, components.NewBoard(w, h))
	return board
}

// BoardOf returns the grid of w.
func BoardOf(w donburi.World) (*components.BoardData, bool) {
	e, ok := components.Board.First(w)
	if !ok {
		return nil, false
	}
	return components.Board.Get(e), true
}

// AddBox places a new box on (x, y). A cell must be cleared before it can
// hold another box.
func AddBox(ecs *ecs.ECS, x, y int, mat components.Material) (*donburi.Entry, error) {
	board, ok := BoardOf(ecs.World)
	if !ok {
		return nil, ErrNoBoard
	}
	if !board.InBounds(x, y) {
		return nil, fmt.Errorf("box at (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	if board.Occupied(x, y) {
		return nil, fmt.Errorf("box at (%d, %d): %w", x, y, ErrCellOccupied)
	}

	arch := archetypes.Crate
	if mat == components.Stone {
		arch = archetypes.Stone
	}
	box := arch.Spawn(ecs)

	session := components.SessionOf(ecs.World)
	components.Box.SetValue(box, components.NewBox(x, y, mat, session.Rand))
	board.Put(x, y, box.Entity())

	return box, nil
}

// AddBomb places bomb id of owner on (x, y).
func AddBomb(ecs *ecs.ECS, x, y, id, owner int) (*donburi.Entry, error) {
	board, ok := BoardOf(ecs.World)
	if !ok {
		return nil, ErrNoBoard
	}
	if !board.InBounds(x, y) {
		return nil, fmt.Errorf("bomb %d at (%d, %d): %w", id, x, y, ErrOutOfBounds)
	}
	if _, ok := FindBomb(ecs.World, id); ok {
		return nil, fmt.Errorf("bomb %d: %w", id, ErrDuplicateBomb)
	}

	bomb := archetypes.Bomb.Spawn(ecs)
	now := components.SessionOf(ecs.World).Clock.Now()
	components.Bomb.SetValue(bomb, components.NewBomb(id, owner, x, y, now))

	tile := config.Board.TileSize
	scale := config.Player.Radius * config.Bomb.ScaleFactor
	components.Pose.SetValue(bomb, components.PoseData{
		Model: mgl32.Translate3D(float32(x)*tile, 0, float32(y)*tile).Mul4(mgl32.Scale3D(scale, scale, scale)),
		Scale: scale,
	})

	return bomb, nil
}

// FindBomb returns the live bomb with the given id.
func FindBomb(w donburi.World, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Bomb.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Bomb.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}
