package systems

import (
	"testing"

	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/blast"
	"github.com/automoto/bombgrid/shared/messages"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMessage_Session(t *testing.T) {
	a := newTestArena(t)

	require.NoError(t, ApplyMessage(a.ecs, messages.Welcome{PlayerID: 2, TilesX: 9, TilesY: 7}))
	require.NoError(t, ApplyMessage(a.ecs, messages.PlayerJoined{ID: 2, Name: "alice"}))
	require.NoError(t, ApplyMessage(a.ecs, messages.ForcePosition{PlayerID: 2, X: 1, Y: 1}))
	require.NoError(t, ApplyMessage(a.ecs, messages.BoxAdded{X: 8, Y: 6, Type: messages.BoxStone}))

	board, ok := factory.BoardOf(a.ecs.World)
	require.True(t, ok)
	assert.Equal(t, 9, board.TilesX)
	assert.Equal(t, 7, board.TilesY)
	assert.True(t, board.Occupied(8, 6))

	assert.Equal(t, 2, components.SessionOf(a.ecs.World).LocalPlayerID)

	player, ok := factory.FindPlayer(a.ecs.World, 2)
	require.True(t, ok)
	assert.Equal(t, "alice", components.Player.Get(player).Name)
	x, y := components.Motion.Get(player).Tile()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	err := ApplyMessage(a.ecs, messages.BoxAdded{X: 9, Y: 0})
	assert.ErrorIs(t, err, factory.ErrOutOfBounds)
}

func TestApplyMessage_DuplicatesAreErrors(t *testing.T) {
	a := newTestArena(t)

	require.NoError(t, ApplyMessage(a.ecs, messages.BoxAdded{X: 2, Y: 2}))
	assert.ErrorIs(t, ApplyMessage(a.ecs, messages.BoxAdded{X: 2, Y: 2, Type: messages.BoxStone}), factory.ErrCellOccupied)

	require.NoError(t, ApplyMessage(a.ecs, messages.BombAdded{X: 1, Y: 1, BombID: 4}))
	assert.ErrorIs(t, ApplyMessage(a.ecs, messages.BombAdded{X: 3, Y: 1, BombID: 4}), factory.ErrDuplicateBomb)
}

func TestApplyMessage_UnknownReferences(t *testing.T) {
	a := newTestArena(t)

	assert.ErrorIs(t, ApplyMessage(a.ecs, messages.MoveStart{PlayerID: 5, DX: 1, DurationMs: 100}), ErrUnknownPlayer)
	assert.ErrorIs(t, ApplyMessage(a.ecs, messages.ForcePosition{PlayerID: 5}), ErrUnknownPlayer)
	assert.ErrorIs(t, ApplyMessage(a.ecs, messages.PlayerStatus{PlayerID: 5}), ErrUnknownPlayer)
	assert.ErrorIs(t, ApplyMessage(a.ecs, messages.BombExploded{BombID: 5}), ErrUnknownBomb)
	assert.ErrorIs(t, ApplyMessage(a.ecs, "hello"), ErrUnknownMessage)
}

func TestApplyMessage_Explosion(t *testing.T) {
	a := newTestArena(t)
	code, err := blast.Encode(blast.Lengths{PosX: 2})
	require.NoError(t, err)

	require.NoError(t, ApplyMessage(a.ecs, messages.BoxAdded{X: 6, Y: 5, Type: messages.BoxCrate}))
	require.NoError(t, ApplyMessage(a.ecs, messages.BoxAdded{X: 7, Y: 5, Type: messages.BoxStone}))
	require.NoError(t, ApplyMessage(a.ecs, messages.BombAdded{X: 5, Y: 5, BombID: 1}))
	require.NoError(t, ApplyMessage(a.ecs, messages.BombExploded{BombID: 1, Code: uint32(code)}))

	board, _ := factory.BoardOf(a.ecs.World)
	assert.False(t, board.Occupied(6, 5))
	assert.True(t, board.Occupied(7, 5))
}

func TestApplyMessage_StatusAndGameOver(t *testing.T) {
	a := newTestArena(t)
	require.NoError(t, ApplyMessage(a.ecs, messages.PlayerJoined{ID: 1, Name: "bob"}))
	require.NoError(t, ApplyMessage(a.ecs, messages.PlayerStatus{PlayerID: 1, Health: 250, Frags: 3}))

	player, _ := factory.FindPlayer(a.ecs.World, 1)
	data := components.Player.Get(player)
	assert.Equal(t, config.Player.MaxHealth, data.Health)
	assert.Equal(t, 3, data.Frags)

	require.NoError(t, ApplyMessage(a.ecs, messages.GameOver{}))
	assert.True(t, components.SessionOf(a.ecs.World).Over)
}

func TestDispatchMessages_KeepsGoingAfterErrors(t *testing.T) {
	a := newTestArena(t)

	DispatchMessages(a.ecs, []any{
		messages.BombExploded{BombID: 42},
		messages.BoxAdded{X: 1, Y: 1},
		messages.BoxAdded{X: 1, Y: 1},
		messages.BoxAdded{X: 2, Y: 1},
	})

	board, _ := factory.BoardOf(a.ecs.World)
	assert.True(t, board.Occupied(1, 1))
	assert.True(t, board.Occupied(2, 1))
}

func TestDispatchMessages_AssertionsPanic(t *testing.T) {
	a := newTestArena(t)
	config.Debug.Assertions = true

	assert.Panics(t, func() {
		DispatchMessages(a.ecs, []any{
			messages.BoxAdded{X: 1, Y: 1},
			messages.BoxAdded{X: 1, Y: 1},
		})
	})

	// protocol errors are still only logged
	assert.NotPanics(t, func() {
		DispatchMessages(a.ecs, []any{messages.BombExploded{BombID: 42}})
	})
}
