package systems

import (
	"testing"
	"time"

	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePlayers_WritesPose(t *testing.T) {
	a := newTestArena(t)
	player := factory.CreatePlayer(a.ecs, 1, "alice")
	require.NoError(t, ForcePosition(a.ecs, 1, 2, 3))
	require.NoError(t, StartMoving(a.ecs, 1, 1, 0, 200*time.Millisecond))

	a.clock.Advance(100 * time.Millisecond)
	UpdatePlayers(a.ecs)

	tile := config.Board.TileSize
	pos := components.Pose.Get(player).Translation()
	assert.InDelta(t, 2.5*tile, pos.X(), 1e-4)
	assert.InDelta(t, config.Player.FloatHeight, pos.Y(), 1e-4)
	assert.InDelta(t, 3*tile, pos.Z(), 1e-4)

	a.clock.Advance(100 * time.Millisecond)
	UpdatePlayers(a.ecs)
	pos = components.Pose.Get(player).Translation()
	assert.InDelta(t, 3*tile, pos.X(), 1e-4)
	assert.False(t, components.Motion.Get(player).Moving)
}

func TestUpdatePlayers_Particles(t *testing.T) {
	a := newTestArena(t)
	factory.CreatePlayer(a.ecs, 1, "alice")

	UpdatePlayers(a.ecs)
	assert.Equal(t, 1, a.large.Len())
	assert.Zero(t, a.small.Len())

	// same timeslice, nothing new
	a.clock.Advance(10 * time.Millisecond)
	UpdatePlayers(a.ecs)
	assert.Equal(t, 1, a.large.Len())

	require.NoError(t, StartMoving(a.ecs, 1, 0, 1, time.Second))
	a.clock.Advance(config.Particles.EmitterTimeslice)
	UpdatePlayers(a.ecs)
	assert.Equal(t, 2, a.large.Len())
	assert.Equal(t, 3, a.small.Len())

	for _, s := range a.large.Spawns {
		assert.GreaterOrEqual(t, s.Lifetime, time.Second)
		assert.Less(t, s.Lifetime, 2*time.Second)
	}
}

func TestUpdatePlayers_SkipsDead(t *testing.T) {
	a := newTestArena(t)
	player := factory.CreatePlayer(a.ecs, 1, "alice")
	require.NoError(t, SetPlayerStatus(a.ecs, 1, 0, 0))

	UpdatePlayers(a.ecs)
	assert.Zero(t, a.large.Len())
	assert.Equal(t, mgl32.Ident4(), components.Pose.Get(player).Model)
}

func TestUpdatePlayers_CameraFollowsLocalPlayer(t *testing.T) {
	a := newTestArena(t)
	factory.CreatePlayer(a.ecs, 1, "alice")
	components.SessionOf(a.ecs.World).LocalPlayerID = 1
	require.NoError(t, ForcePosition(a.ecs, 1, 4, 6))

	UpdatePlayers(a.ecs)

	cameraEntry, _ := components.Camera.First(a.ecs.World)
	camera := components.Camera.Get(cameraEntry)
	tile := config.Board.TileSize
	assert.Equal(t, mgl32.Vec3{4 * tile, 0, 6 * tile}, camera.Target)
	assert.Equal(t, mgl32.Vec3{4 * tile, config.Player.CameraOffset[1], 6*tile + config.Player.CameraOffset[0]}, camera.Position)
}

func TestStartMoving_RejectsDiagonal(t *testing.T) {
	a := newTestArena(t)
	factory.CreatePlayer(a.ecs, 1, "alice")

	assert.ErrorIs(t, StartMoving(a.ecs, 1, 1, 1, time.Second), ErrBadDirection)
}
