package assets

import (
	"testing"

	"github.com/automoto/bombgrid/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicArena(t *testing.T) {
	loader := NewArenaLoader()
	assert.Contains(t, loader.ListArenaNames(), "classic")

	arena, err := loader.Arena("classic")
	require.NoError(t, err)
	assert.Equal(t, 15, arena.TilesX)
	assert.Equal(t, 13, arena.TilesY)
	assert.Len(t, arena.SpawnPoints, 4)
	assert.NotEmpty(t, arena.Boxes)

	for _, sp := range arena.SpawnPoints {
		for _, b := range arena.Boxes {
			assert.False(t, b.X == sp.X && b.Y == sp.Y, "box on spawn %v", sp)
		}
	}

	_, err = loader.Arena("missing")
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, config.Wood, Color("wood"))
	assert.Equal(t, config.StoneShades[2], Color("stone-2"))
	assert.Equal(t, uint8(255), Color("nonsense").B)
}
