// Package particles is the sink side of the effect pipeline. Simulation code
// only issues spawn requests; pools age and expire them for the renderer.
package particles

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Sink accepts particle spawn requests.
type Sink interface {
	Add(pos, vel mgl32.Vec3, lifetime time.Duration)
}

// Spawn is one recorded spawn request.
type Spawn struct {
	Pos      mgl32.Vec3
	Vel      mgl32.Vec3
	Lifetime time.Duration
}

// Discard drops every request.
var Discard Sink = discard{}

type discard struct{}

func (discard) Add(mgl32.Vec3, mgl32.Vec3, time.Duration) {}

// Recorder keeps every request, for tests and debugging overlays.
type Recorder struct {
	Spawns []Spawn
}

// Add records a spawn request.
func (r *Recorder) Add(pos, vel mgl32.Vec3, lifetime time.Duration) {
	r.Spawns = append(r.Spawns, Spawn{Pos: pos, Vel: vel, Lifetime: lifetime})
}

// Len returns the number of recorded spawns.
func (r *Recorder) Len() int {
	return len(r.Spawns)
}

// Reset forgets all recorded spawns.
func (r *Recorder) Reset() {
	r.Spawns = r.Spawns[:0]
}

// CountAt returns how many spawns originated at pos.
func (r *Recorder) CountAt(pos mgl32.Vec3) int {
	n := 0
	for _, s := range r.Spawns {
		if s.Pos.ApproxEqual(pos) {
			n++
		}
	}
	return n
}
