package particles

import (
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/go-gl/mathgl/mgl32"
)

type particle struct {
	pos      mgl32.Vec3
	vel      mgl32.Vec3
	born     time.Time
	lifetime time.Duration
}

// Pool is a fixed capacity ring of live particles. When full, the oldest
// particle is overwritten.
type Pool struct {
	clock    clock.Clock
	size     float32
	items    []particle
	next     int
	capacity int
}

// NewPool creates a pool holding at most capacity particles of the given
// render size, stamping spawns with clk.
func NewPool(capacity int, size float32, clk clock.Clock) *Pool {
	return &Pool{
		clock:    clk,
		size:     size,
		items:    make([]particle, 0, capacity),
		capacity: capacity,
	}
}

// Add spawns a particle at pos moving with vel (world units per second).
func (p *Pool) Add(pos, vel mgl32.Vec3, lifetime time.Duration) {
	if p.capacity == 0 {
		return
	}
	pt := particle{pos: pos, vel: vel, born: p.clock.Now(), lifetime: lifetime}
	if len(p.items) < p.capacity {
		p.items = append(p.items, pt)
		return
	}
	p.items[p.next] = pt
	p.next = (p.next + 1) % p.capacity
}

// Update drops particles whose lifetime elapsed by now.
func (p *Pool) Update(now time.Time) {
	if len(p.items) == 0 {
		return
	}
	alive := p.items[:0]
	for _, pt := range p.items {
		if now.Sub(pt.born) < pt.lifetime {
			alive = append(alive, pt)
		}
	}
	// clear the tail so the ring restarts compactly
	for i := len(alive); i < len(p.items); i++ {
		p.items[i] = particle{}
	}
	p.items = alive
	p.next = 0
}

// Len returns the number of live particles.
func (p *Pool) Len() int {
	return len(p.items)
}

// Size returns the render size of this pool's particles.
func (p *Pool) Size() float32 {
	return p.size
}

// Each calls fn with every live particle's position at now and its remaining
// life fraction in (0, 1].
func (p *Pool) Each(now time.Time, fn func(pos mgl32.Vec3, life float32)) {
	for _, pt := range p.items {
		age := now.Sub(pt.born)
		if age >= pt.lifetime {
			continue
		}
		t := float32(age.Seconds())
		fn(pt.pos.Add(pt.vel.Mul(t)), 1-float32(age)/float32(pt.lifetime))
	}
}
