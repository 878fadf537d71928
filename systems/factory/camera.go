package factory

import (
	"github.com/automoto/bombgrid/archetypes"
	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the arena camera looking at the middle of a w × h board.
func CreateCamera(ecs *ecs.ECS, w, h int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	tile := config.Board.TileSize
	center := mgl32.Vec3{float32(w-1) * tile / 2, 0, float32(h-1) * tile / 2}
	components.Camera.SetValue(camera, components.CameraData{
		Position: center.Add(mgl32.Vec3{0, config.Player.CameraOffset[1], config.Player.CameraOffset[0]}),
		Target:   center,
	})
	return camera
}
