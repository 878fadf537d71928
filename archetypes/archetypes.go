package archetypes

import (
	"github.com/automoto/bombgrid/components"
	cfg "github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Board = newArchetype(
		components.Board,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Motion,
		components.Pose,
		components.Emitter,
	)
	Crate = newArchetype(
		tags.Box,
		tags.Crate,
		components.Box,
	)
	Stone = newArchetype(
		tags.Box,
		tags.Stone,
		components.Box,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.Pose,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
