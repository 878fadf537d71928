package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// PoseData is what the renderer reads: a model matrix in world space.
type PoseData struct {
	Model   mgl32.Mat4
	Heading float32
	Scale   float32
}

var Pose = donburi.NewComponentType[PoseData]()

// Translation returns the world position encoded in the model matrix.
func (p *PoseData) Translation() mgl32.Vec3 {
	return p.Model.Col(3).Vec3()
}
