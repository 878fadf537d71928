// Package sandbox is an offline stand-in for the game server. It owns its own
// copy of the grid, turns local input into the same messages a server would
// send and resolves bombs, damage and respawns.
package sandbox

import (
	"fmt"
	"slices"
	"time"

	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/logging"
	"github.com/automoto/bombgrid/shared/blast"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/automoto/bombgrid/shared/leveldata"
	"github.com/automoto/bombgrid/shared/messages"
	"github.com/rs/zerolog"
)

type cell int

const (
	empty cell = iota
	crate
	stone
)

type player struct {
	id        int
	name      string
	x, y      int
	health    int
	frags     int
	spawn     leveldata.SpawnPoint
	busyUntil time.Time
	respawnAt time.Time
	held      []messages.Key
	drop      bool
}

func (p *player) alive() bool {
	return p.health > 0
}

type bomb struct {
	id        int
	owner     int
	x, y      int
	explodeAt time.Time
}

// Authority simulates a one-player round on an arena.
type Authority struct {
	tilesX, tilesY int
	cells          []cell
	players        []*player
	bombs          []*bomb
	local          *player
	nextBomb       int
	out            []any
	log            zerolog.Logger
}

// New prepares a round on arena for a local player called name. The opening
// messages (welcome, join, spawn and boxes) are returned by the first Drain.
func New(arena *leveldata.Arena, name string) *Authority {
	a := &Authority{
		tilesX:   arena.TilesX,
		tilesY:   arena.TilesY,
		cells:    make([]cell, arena.TilesX*arena.TilesY),
		nextBomb: 1,
		log:      logging.For("sandbox"),
	}

	for _, b := range arena.Boxes {
		if !a.inBounds(b.X, b.Y) {
			continue
		}
		c := crate
		if b.Type == messages.BoxStone {
			c = stone
		}
		a.cells[b.Y*a.tilesX+b.X] = c
	}

	spawn := arena.Spawn(0)
	a.local = &player{
		id:     1,
		name:   name,
		x:      spawn.X,
		y:      spawn.Y,
		health: config.Player.MaxHealth,
		spawn:  spawn,
	}
	a.players = append(a.players, a.local)

	a.emit(messages.Welcome{PlayerID: a.local.id, TilesX: a.tilesX, TilesY: a.tilesY})
	a.emit(messages.PlayerJoined{ID: a.local.id, Name: name})
	a.emit(messages.ForcePosition{PlayerID: a.local.id, X: spawn.X, Y: spawn.Y})
	a.emit(messages.PlayerStatus{PlayerID: a.local.id, Health: a.local.health})
	for _, b := range arena.Boxes {
		if a.inBounds(b.X, b.Y) {
			a.emit(messages.BoxAdded{X: b.X, Y: b.Y, Type: b.Type})
		}
	}

	a.log.Info().
		Str("arena", arena.Name).
		Int("boxes", len(arena.Boxes)).
		Msg("sandbox round started")
	return a
}

// Send accepts local input: KeyUpDown and KeyDrop.
func (a *Authority) Send(msg any) error {
	switch m := msg.(type) {
	case messages.KeyUpDown:
		a.local.held = slices.DeleteFunc(a.local.held, func(k messages.Key) bool { return k == m.Key })
		if m.Down {
			a.local.held = append(a.local.held, m.Key)
		}
	case messages.KeyDrop:
		a.local.drop = true
	default:
		return fmt.Errorf("sandbox cannot handle %T", msg)
	}
	return nil
}

// Err is always nil; the sandbox never disconnects.
func (a *Authority) Err() error {
	return nil
}

// Drain advances the round to now and returns the messages it produced.
func (a *Authority) Drain(now time.Time) []any {
	for _, p := range a.players {
		if p.drop {
			p.drop = false
			a.dropBomb(p, now)
		}
	}

	a.explodeDue(now)
	a.respawnDue(now)

	for _, p := range a.players {
		a.walk(p, now)
	}

	out := a.out
	a.out = nil
	return out
}

func (a *Authority) emit(msg any) {
	a.out = append(a.out, msg)
}

func (a *Authority) inBounds(x, y int) bool {
	return gamemath.InBounds(x, y, a.tilesX, a.tilesY)
}

func (a *Authority) at(x, y int) cell {
	if !a.inBounds(x, y) {
		return stone
	}
	return a.cells[y*a.tilesX+x]
}

func (a *Authority) bombAt(x, y int) bool {
	return slices.ContainsFunc(a.bombs, func(b *bomb) bool { return b.x == x && b.y == y })
}

func keyDir(k messages.Key) gamemath.Dir {
	switch k {
	case messages.KeyUp:
		return gamemath.NegY
	case messages.KeyDown:
		return gamemath.PosY
	case messages.KeyLeft:
		return gamemath.NegX
	default:
		return gamemath.PosX
	}
}

// walk starts the next step of p toward its most recently pressed key once
// the previous step finished.
func (a *Authority) walk(p *player, now time.Time) {
	if !p.alive() || len(p.held) == 0 || now.Before(p.busyUntil) {
		return
	}
	dir := keyDir(p.held[len(p.held)-1])
	x, y := p.x+dir.X, p.y+dir.Y
	if a.at(x, y) != empty || a.bombAt(x, y) {
		return
	}

	p.x, p.y = x, y
	p.busyUntil = now.Add(config.Sandbox.MoveDuration)
	a.emit(messages.MoveStart{
		PlayerID:   p.id,
		DX:         dir.X,
		DY:         dir.Y,
		DurationMs: int(config.Sandbox.MoveDuration / time.Millisecond),
	})
}

func (a *Authority) dropBomb(p *player, now time.Time) {
	if !p.alive() || a.bombAt(p.x, p.y) {
		return
	}
	b := &bomb{
		id:        a.nextBomb,
		owner:     p.id,
		x:         p.x,
		y:         p.y,
		explodeAt: now.Add(config.Sandbox.Fuse),
	}
	a.nextBomb++
	a.bombs = append(a.bombs, b)
	a.emit(messages.BombAdded{X: b.x, Y: b.y, BombID: b.id, OwnerID: b.owner})
}

func (a *Authority) explodeDue(now time.Time) {
	for {
		i := slices.IndexFunc(a.bombs, func(b *bomb) bool { return !now.Before(b.explodeAt) })
		if i < 0 {
			return
		}
		b := a.bombs[i]
		a.bombs = slices.Delete(a.bombs, i, i+1)
		a.explode(b, now)
	}
}

// explode computes the blast code of b the way the client resolves it: a ray
// stops before stone and on the first crate it destroys.
func (a *Authority) explode(b *bomb, now time.Time) {
	reach := min(config.Sandbox.BlastRange, blast.MaxLength)
	flames := []blast.Ray{{Dir: gamemath.Dir{}, Length: 0}}
	var lengths blast.Lengths

	for _, dir := range gamemath.Cardinal {
		n := 0
		for step := 1; step <= reach; step++ {
			x, y := b.x+dir.X*step, b.y+dir.Y*step
			c := a.at(x, y)
			if c == stone {
				break
			}
			n = step
			if c == crate {
				a.cells[y*a.tilesX+x] = empty
				break
			}
		}
		lengths.Set(dir, n)
		flames = append(flames, blast.Ray{Dir: dir, Length: n})
	}

	code, err := blast.Encode(lengths)
	if err != nil {
		a.log.Error().Err(err).Int("bomb", b.id).Msg("blast code")
		return
	}
	a.emit(messages.BombExploded{BombID: b.id, Code: uint32(code)})

	for _, p := range a.players {
		if p.alive() && inFlames(b, flames, p.x, p.y) {
			a.damage(p, b.owner, now)
		}
	}
}

func inFlames(b *bomb, rays []blast.Ray, x, y int) bool {
	for _, r := range rays {
		for step := 0; step <= r.Length; step++ {
			if b.x+r.Dir.X*step == x && b.y+r.Dir.Y*step == y {
				return true
			}
		}
	}
	return false
}

func (a *Authority) damage(p *player, ownerID int, now time.Time) {
	p.health = max(0, p.health-config.Sandbox.Damage)
	if !p.alive() {
		p.respawnAt = now.Add(config.Sandbox.RespawnDelay)
		p.held = nil
		if owner := a.player(ownerID); owner != nil && owner != p {
			owner.frags++
			a.emit(messages.PlayerStatus{PlayerID: owner.id, Health: owner.health, Frags: owner.frags})
		}
		a.log.Info().Int("player", p.id).Int("by", ownerID).Msg("player killed")
	}
	a.emit(messages.PlayerStatus{PlayerID: p.id, Health: p.health, Frags: p.frags})
}

func (a *Authority) respawnDue(now time.Time) {
	for _, p := range a.players {
		if p.alive() || p.respawnAt.IsZero() || now.Before(p.respawnAt) {
			continue
		}
		p.respawnAt = time.Time{}
		p.health = config.Player.MaxHealth
		p.x, p.y = p.spawn.X, p.spawn.Y
		p.busyUntil = now
		a.emit(messages.ForcePosition{PlayerID: p.id, X: p.x, Y: p.y})
		a.emit(messages.PlayerStatus{PlayerID: p.id, Health: p.health, Frags: p.frags})
	}
}

func (a *Authority) player(id int) *player {
	for _, p := range a.players {
		if p.id == id {
			return p
		}
	}
	return nil
}
