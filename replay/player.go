package replay

import (
	"time"

	"github.com/automoto/bombgrid/logging"
	"github.com/hako/durafmt"
)

// Player releases a script's messages as their time comes. Time is read
// from the caller, so a mock clock can fast-forward a replay.
type Player struct {
	script *Script
	start  time.Time
	next   int
}

// NewPlayer starts playing s at start.
func NewPlayer(s *Script, start time.Time) *Player {
	log := logging.For("replay")
	log.Info().
		Str("name", s.Name).
		Int("events", len(s.Events)).
		Str("length", durafmt.Parse(s.Length()).LimitFirstN(2).String()).
		Msg("replay loaded")

	return &Player{script: s, start: start}
}

// Drain returns every message due at now, in script order.
func (p *Player) Drain(now time.Time) []any {
	elapsed := now.Sub(p.start)

	var out []any
	for p.next < len(p.script.Events) && p.script.Events[p.next].At <= elapsed {
		out = append(out, p.script.Events[p.next].Message)
		p.next++
	}

	if len(out) > 0 && p.Done() {
		log := logging.For("replay")
		log.Info().Str("elapsed", durafmt.Parse(elapsed).LimitFirstN(2).String()).Msg("replay finished")
	}
	return out
}

// Done reports whether every message was released.
func (p *Player) Done() bool {
	return p.next >= len(p.script.Events)
}

// Send drops input; a replay does not react to the local player.
func (p *Player) Send(any) error {
	return nil
}

// Err is always nil; a finished replay simply stops producing messages.
func (p *Player) Err() error {
	return nil
}
