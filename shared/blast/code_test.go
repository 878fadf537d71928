package blast

import (
	"testing"

	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFieldOrder(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		want Lengths
	}{
		{"zero", 0x00, Lengths{}},
		{"posx only", 0x02, Lengths{PosX: 2}},
		{"negx only", 0x0C, Lengths{NegX: 3}},
		{"posy only", 0x10, Lengths{PosY: 1}},
		{"negy only", 0x80, Lengths{NegY: 2}},
		{"all max", 0xFF, Lengths{3, 3, 3, 3}},
		{"mixed", 0b01_10_11_00, Lengths{PosX: 0, NegX: 3, PosY: 2, NegY: 1}},
		{"high bits ignored", 0x1_00 | 0x01, Lengths{PosX: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.code))
		})
	}
}

func TestEncodeMatchesDecodeForEveryCode(t *testing.T) {
	for c := 0; c < 256; c++ {
		l := Decode(uint32(c))
		got, err := Encode(l)
		require.NoError(t, err)
		assert.Equal(t, Code(c), got)
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	_, err := Encode(Lengths{PosY: 4})
	require.Error(t, err)

	_, err = Encode(Lengths{NegX: -1})
	require.Error(t, err)
}

func TestRaysOrder(t *testing.T) {
	rays := Lengths{PosX: 1, NegX: 2, PosY: 3, NegY: 0}.Rays()
	assert.Equal(t, gamemath.PosX, rays[0].Dir)
	assert.Equal(t, 1, rays[0].Length)
	assert.Equal(t, gamemath.NegX, rays[1].Dir)
	assert.Equal(t, 2, rays[1].Length)
	assert.Equal(t, gamemath.PosY, rays[2].Dir)
	assert.Equal(t, 3, rays[2].Length)
	assert.Equal(t, gamemath.NegY, rays[3].Dir)
	assert.Equal(t, 0, rays[3].Length)
}

func TestSet(t *testing.T) {
	var l Lengths
	for i, d := range gamemath.Cardinal {
		l.Set(d, i)
	}
	assert.Equal(t, Lengths{PosX: 0, NegX: 1, PosY: 2, NegY: 3}, l)
	assert.Equal(t, Code(0b11_10_01_00), mustEncode(t, l))
}

func mustEncode(t *testing.T, l Lengths) Code {
	t.Helper()
	c, err := Encode(l)
	require.NoError(t, err)
	return c
}
