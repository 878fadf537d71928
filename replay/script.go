// Package replay plays a scripted sequence of authority messages against the
// arena, for demos and for exercising the client without a server.
package replay

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/automoto/bombgrid/shared/blast"
	"github.com/automoto/bombgrid/shared/messages"
	"github.com/pelletier/go-toml/v2"
)

var ErrUnknownEvent = errors.New("unknown replay event type")

// Script is a decoded replay file.
type Script struct {
	Name   string
	Events []Event
}

// Event is one timed authority message.
type Event struct {
	At      time.Duration
	Message any
}

type scriptFile struct {
	Name   string       `toml:"name"`
	Events []eventEntry `toml:"event"`
}

type eventEntry struct {
	At   string `toml:"at"`
	Type string `toml:"type"`

	Player     int    `toml:"player"`
	Name       string `toml:"name"`
	X          int    `toml:"x"`
	Y          int    `toml:"y"`
	DX         int    `toml:"dx"`
	DY         int    `toml:"dy"`
	DurationMs int    `toml:"durationMs"`
	Box        string `toml:"box"`
	Bomb       int    `toml:"bomb"`
	Owner      int    `toml:"owner"`
	Code       uint32 `toml:"code"`
	Blast      []int  `toml:"blast"` // +X, -X, +Y, -Y; overrides code
	Health     int    `toml:"health"`
	Frags      int    `toml:"frags"`
	TilesX     int    `toml:"tilesX"`
	TilesY     int    `toml:"tilesY"`
}

// Parse decodes a TOML replay script. Events are ordered by time, keeping
// file order for events at the same instant.
func Parse(r io.Reader) (*Script, error) {
	var f scriptFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}

	s := &Script{Name: f.Name, Events: make([]Event, 0, len(f.Events))}
	for i, e := range f.Events {
		at, err := time.ParseDuration(e.At)
		if err != nil {
			return nil, fmt.Errorf("event %d: bad time %q: %w", i, e.At, err)
		}
		msg, err := e.message()
		if err != nil {
			return nil, fmt.Errorf("event %d at %s: %w", i, e.At, err)
		}
		s.Events = append(s.Events, Event{At: at, Message: msg})
	}

	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].At < s.Events[j].At
	})
	return s, nil
}

// Length returns the time of the last event.
func (s *Script) Length() time.Duration {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[len(s.Events)-1].At
}

func (e eventEntry) message() (any, error) {
	switch strings.ToLower(e.Type) {
	case "welcome":
		return messages.Welcome{PlayerID: e.Player, TilesX: e.TilesX, TilesY: e.TilesY}, nil
	case "join":
		return messages.PlayerJoined{ID: e.Player, Name: e.Name}, nil
	case "move":
		return messages.MoveStart{PlayerID: e.Player, DX: e.DX, DY: e.DY, DurationMs: e.DurationMs}, nil
	case "force":
		return messages.ForcePosition{PlayerID: e.Player, X: e.X, Y: e.Y}, nil
	case "box":
		t := messages.BoxCrate
		switch e.Box {
		case "", "crate":
		case "stone":
			t = messages.BoxStone
		default:
			return nil, fmt.Errorf("box material %q", e.Box)
		}
		return messages.BoxAdded{X: e.X, Y: e.Y, Type: t}, nil
	case "bomb":
		return messages.BombAdded{X: e.X, Y: e.Y, BombID: e.Bomb, OwnerID: e.Owner}, nil
	case "explode":
		code := e.Code
		if len(e.Blast) > 0 {
			c, err := encodeBlast(e.Blast)
			if err != nil {
				return nil, err
			}
			code = uint32(c)
		}
		return messages.BombExploded{BombID: e.Bomb, Code: code}, nil
	case "status":
		return messages.PlayerStatus{PlayerID: e.Player, Health: e.Health, Frags: e.Frags}, nil
	case "gameover":
		return messages.GameOver{}, nil
	}
	return nil, fmt.Errorf("%q: %w", e.Type, ErrUnknownEvent)
}

func encodeBlast(lengths []int) (blast.Code, error) {
	if len(lengths) != 4 {
		return 0, fmt.Errorf("blast needs 4 lengths (+X, -X, +Y, -Y), got %d", len(lengths))
	}
	return blast.Encode(blast.Lengths{
		PosX: lengths[0],
		NegX: lengths[1],
		PosY: lengths[2],
		NegY: lengths[3],
	})
}
