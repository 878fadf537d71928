package gamemath

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// RandomFloat returns a uniform value in [0, 1).
func RandomFloat(r *rand.Rand) float32 {
	return r.Float32()
}

// RandomLifetime returns base plus a uniform [0, spread) milliseconds.
func RandomLifetime(r *rand.Rand, baseMs, spreadMs int) time.Duration {
	ms := baseMs
	if spreadMs > 0 {
		ms += r.IntN(spreadMs)
	}
	return time.Duration(ms) * time.Millisecond
}

// SafeNormalize normalizes v, returning fallback when v has no usable length.
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 1e-6 {
		return fallback
	}
	return v.Normalize()
}
