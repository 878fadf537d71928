package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// CameraData is the eye and look-at point of the arena camera, in world units.
type CameraData struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
