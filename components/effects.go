package components

import (
	"github.com/automoto/bombgrid/clock"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks an active camera shake. Original is the camera
// position saved when the shake started and restored when it ends.
type ScreenShakeData struct {
	Active   bool
	Timer    clock.Timer
	Original mgl32.Vec3
	Decay    *gween.Tween // strength factor over elapsed seconds
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
