package replay

import (
	"strings"
	"testing"
	"time"

	"github.com/automoto/bombgrid/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `
name = "test"

[[event]]
at = "500ms"
type = "explode"
bomb = 3
blast = [2, 0, 0, 1]

[[event]]
at = "0s"
type = "welcome"
player = 1
tilesX = 9
tilesY = 7

[[event]]
at = "0s"
type = "box"
x = 2
y = 3
box = "stone"

[[event]]
at = "250ms"
type = "move"
player = 1
dx = -1
durationMs = 200
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	assert.Equal(t, "test", s.Name)
	assert.Equal(t, 500*time.Millisecond, s.Length())
	require.Len(t, s.Events, 4)

	assert.Equal(t, messages.Welcome{PlayerID: 1, TilesX: 9, TilesY: 7}, s.Events[0].Message)
	assert.Equal(t, messages.BoxAdded{X: 2, Y: 3, Type: messages.BoxStone}, s.Events[1].Message)
	assert.Equal(t, messages.MoveStart{PlayerID: 1, DX: -1, DurationMs: 200}, s.Events[2].Message)
	assert.Equal(t, messages.BombExploded{BombID: 3, Code: 2 | 1<<6}, s.Events[3].Message)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"bad time":     "[[event]]\nat = \"soon\"\ntype = \"gameover\"\n",
		"unknown type": "[[event]]\nat = \"1s\"\ntype = \"teleport\"\n",
		"bad blast":    "[[event]]\nat = \"1s\"\ntype = \"explode\"\nblast = [4, 0, 0, 0]\n",
		"short blast":  "[[event]]\nat = \"1s\"\ntype = \"explode\"\nblast = [1]\n",
		"bad box":      "[[event]]\nat = \"1s\"\ntype = \"box\"\nbox = \"glass\"\n",
		"unknown key":  "[[event]]\nat = \"1s\"\ntype = \"gameover\"\ncolor = 3\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestPlayer_DrainReleasesDueEvents(t *testing.T) {
	s, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer(s, start)

	assert.Len(t, p.Drain(start), 2)
	assert.Empty(t, p.Drain(start.Add(100*time.Millisecond)))
	assert.Len(t, p.Drain(start.Add(250*time.Millisecond)), 1)
	assert.False(t, p.Done())

	// fast-forward past the end
	got := p.Drain(start.Add(time.Hour))
	assert.Equal(t, []any{messages.BombExploded{BombID: 3, Code: 2 | 1<<6}}, got)
	assert.True(t, p.Done())
	assert.NoError(t, p.Err())
}
