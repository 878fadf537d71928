package factory

import (
	"math/rand/v2"

	"github.com/automoto/bombgrid/archetypes"
	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/particles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton. Nil sinks discard their spawns.
func CreateSession(ecs *ecs.ECS, clk clock.Clock, rng *rand.Rand, large, small particles.Sink) *donburi.Entry {
	if large == nil {
		large = particles.Discard
	}
	if small == nil {
		small = particles.Discard
	}

	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Clock:         clk,
		Rand:          rng,
		LocalPlayerID: -1,
		Large:         large,
		Small:         small,
	})
	return session
}
