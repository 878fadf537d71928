package components

import (
	"math/rand/v2"

	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/particles"
	"github.com/yohamta/donburi"
)

// SessionData is the per-world singleton holding the collaborators every
// system shares: the time source, the random source and the particle sinks.
type SessionData struct {
	Clock         clock.Clock
	Rand          *rand.Rand
	LocalPlayerID int
	Large         particles.Sink
	Small         particles.Sink
	Over          bool
}

var Session = donburi.NewComponentType[SessionData]()

// SessionOf returns the session of w. Every world is created with one, so a
// missing session is a programming error.
func SessionOf(w donburi.World) *SessionData {
	e, ok := Session.First(w)
	if !ok {
		panic("bombgrid: world has no session")
	}
	return Session.Get(e)
}
