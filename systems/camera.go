package systems

import (
	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// TriggerCameraShake starts a shake around the current camera position. A
// shake already running restarts its timer but keeps the position it saved.
func TriggerCameraShake(ecs *ecs.ECS) {
	if !config.Shake.Enabled {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	shake := components.ScreenShake.Get(cameraEntry)
	now := components.SessionOf(ecs.World).Clock.Now()

	if !shake.Active {
		shake.Original = camera.Position
		shake.Active = true
	}
	shake.Timer.Begin(now)
	shake.Decay = gween.New(
		config.Shake.Bias,
		config.Shake.Bias-1,
		float32(config.Shake.Duration.Seconds()),
		ease.Linear,
	)
}

// updateCameraShake jitters the camera around the saved position with a
// linearly decaying strength, then puts it back exactly.
func updateCameraShake(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if !shake.Active {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	session := components.SessionOf(ecs.World)

	elapsed := shake.Timer.Look(session.Clock.Now())
	if elapsed > config.Shake.Duration || shake.Decay == nil {
		shake.Active = false
		shake.Decay = nil
		camera.Position = shake.Original
		return
	}

	decay, _ := shake.Decay.Set(float32(elapsed.Seconds()))
	strength := decay * config.Shake.Strength * config.Board.TileSize

	r := func() float32 { return gamemath.RandomFloat(session.Rand) - 0.5 }
	camera.Position = shake.Original.Add(mgl32.Vec3{r() * strength, 0, r() * strength})
}

// followCamera keeps the camera above and behind the local player.
func followCamera(ecs *ecs.ECS, pos mgl32.Vec3) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position = mgl32.Vec3{pos.X(), config.Player.CameraOffset[1], pos.Z() + config.Player.CameraOffset[0]}
	camera.Target = mgl32.Vec3{pos.X(), 0, pos.Z()}

	if cameraEntry.HasComponent(components.ScreenShake) {
		if shake := components.ScreenShake.Get(cameraEntry); shake.Active {
			shake.Original = camera.Position
		}
	}
}
