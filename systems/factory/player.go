package factory

import (
	"github.com/automoto/bombgrid/archetypes"
	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns player id at full health on tile (0, 0). The authority
// places it with a ForcePosition right after the join.
func CreatePlayer(ecs *ecs.ECS, id int, name string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	now := components.SessionOf(ecs.World).Clock.Now()

	components.Player.SetValue(player, components.PlayerData{
		ID:     id,
		Name:   name,
		Health: config.Player.MaxHealth,
	})
	components.Motion.SetValue(player, components.NewMotion(now))
	components.Pose.SetValue(player, components.PoseData{
		Model: mgl32.Ident4(),
		Scale: config.Player.Radius,
	})
	components.Emitter.SetValue(player, components.NewEmitter(config.Particles.EmitterTimeslice))

	return player
}

// FindPlayer returns the entry of player id.
func FindPlayer(w donburi.World, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Player.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}
