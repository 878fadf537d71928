package particles

import (
	"testing"
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPoolExpiresByLifetime(t *testing.T) {
	clk := clock.NewMock(epoch)
	p := NewPool(10, 0.1, clk)

	p.Add(mgl32.Vec3{}, mgl32.Vec3{}, 100*time.Millisecond)
	p.Add(mgl32.Vec3{}, mgl32.Vec3{}, 300*time.Millisecond)
	assert.Equal(t, 2, p.Len())

	clk.Advance(200 * time.Millisecond)
	p.Update(clk.Now())
	assert.Equal(t, 1, p.Len())

	clk.Advance(100 * time.Millisecond)
	p.Update(clk.Now())
	assert.Zero(t, p.Len())
}

func TestPoolOverwritesOldestWhenFull(t *testing.T) {
	clk := clock.NewMock(epoch)
	p := NewPool(2, 0.1, clk)

	p.Add(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, time.Second)
	p.Add(mgl32.Vec3{2, 0, 0}, mgl32.Vec3{}, time.Second)
	p.Add(mgl32.Vec3{3, 0, 0}, mgl32.Vec3{}, time.Second)
	assert.Equal(t, 2, p.Len())

	var xs []float32
	p.Each(clk.Now(), func(pos mgl32.Vec3, _ float32) { xs = append(xs, pos.X()) })
	assert.ElementsMatch(t, []float32{2, 3}, xs)
}

func TestPoolEachMovesAlongVelocity(t *testing.T) {
	clk := clock.NewMock(epoch)
	p := NewPool(4, 0.1, clk)
	p.Add(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2, 0, 0}, time.Second)

	var got mgl32.Vec3
	var life float32
	p.Each(epoch.Add(500*time.Millisecond), func(pos mgl32.Vec3, l float32) {
		got, life = pos, l
	})
	assert.True(t, got.ApproxEqual(mgl32.Vec3{1, 1, 0}), "%v", got)
	assert.InDelta(t, 0.5, life, 1e-6)
}

func TestZeroCapacityPoolIgnoresSpawns(t *testing.T) {
	p := NewPool(0, 0.1, clock.NewMock(epoch))
	p.Add(mgl32.Vec3{}, mgl32.Vec3{}, time.Second)
	assert.Zero(t, p.Len())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Add(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, time.Second)
	r.Add(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, time.Second)
	r.Add(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{}, time.Second)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, r.CountAt(mgl32.Vec3{1, 2, 3}))
	r.Reset()
	assert.Zero(t, r.Len())
}
