package components

import (
	"time"

	"github.com/yohamta/donburi"
	"golang.org/x/time/rate"
)

// EmitterData gates a continuous particle effect to one burst per timeslice.
type EmitterData struct {
	limiter *rate.Limiter
}

var Emitter = donburi.NewComponentType[EmitterData]()

// NewEmitter returns an emitter that fires at most once every timeslice.
// The first call to Ready succeeds.
func NewEmitter(timeslice time.Duration) EmitterData {
	return EmitterData{limiter: rate.NewLimiter(rate.Every(timeslice), 1)}
}

// Ready reports whether a burst is due at now and consumes it.
func (e *EmitterData) Ready(now time.Time) bool {
	if e.limiter == nil {
		return false
	}
	return e.limiter.AllowN(now, 1)
}
