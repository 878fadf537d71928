package systems

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/bombgrid/components"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/logging"
	"github.com/automoto/bombgrid/shared/messages"
	"github.com/automoto/bombgrid/systems/factory"
	"github.com/automoto/bombgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownMessage = errors.New("unknown message type")

// ApplyMessage performs the board mutation an authority message asks for.
func ApplyMessage(ecs *ecs.ECS, msg any) error {
	switch m := msg.(type) {
	case messages.Welcome:
		resetBoard(ecs, m.TilesX, m.TilesY)
		components.SessionOf(ecs.World).LocalPlayerID = m.PlayerID
		return nil

	case messages.PlayerJoined:
		if e, ok := factory.FindPlayer(ecs.World, m.ID); ok {
			components.Player.Get(e).Name = m.Name
			return nil
		}
		factory.CreatePlayer(ecs, m.ID, m.Name)
		return nil

	case messages.MoveStart:
		return StartMoving(ecs, m.PlayerID, m.DX, m.DY, time.Duration(m.DurationMs)*time.Millisecond)

	case messages.ForcePosition:
		return ForcePosition(ecs, m.PlayerID, m.X, m.Y)

	case messages.BoxAdded:
		mat := components.Crate
		if m.Type == messages.BoxStone {
			mat = components.Stone
		}
		_, err := factory.AddBox(ecs, m.X, m.Y, mat)
		return err

	case messages.BombAdded:
		_, err := factory.AddBomb(ecs, m.X, m.Y, m.BombID, m.OwnerID)
		return err

	case messages.BombExploded:
		_, err := Explode(ecs, m.BombID, m.Code)
		return err

	case messages.PlayerStatus:
		return SetPlayerStatus(ecs, m.PlayerID, m.Health, m.Frags)

	case messages.GameOver:
		components.SessionOf(ecs.World).Over = true
		return nil
	}
	return fmt.Errorf("%T: %w", msg, ErrUnknownMessage)
}

// DispatchMessages applies msgs in order. Failures are logged and skipped so
// one bad message never stalls the frame. With assertions enabled a grid
// invariant violation panics instead.
func DispatchMessages(ecs *ecs.ECS, msgs []any) {
	if len(msgs) == 0 {
		return
	}
	log := logging.For("events")

	for _, msg := range msgs {
		err := ApplyMessage(ecs, msg)
		if err == nil {
			continue
		}
		if config.Debug.Assertions && isInvariantViolation(err) {
			panic(err)
		}
		log.Warn().Err(err).Str("message", fmt.Sprintf("%T", msg)).Msg("message dropped")
	}
}

func isInvariantViolation(err error) bool {
	return errors.Is(err, factory.ErrOutOfBounds) ||
		errors.Is(err, factory.ErrCellOccupied) ||
		errors.Is(err, factory.ErrDuplicateBomb)
}

// resetBoard replaces the grid with an empty w × h one and drops every box
// and bomb of the previous board.
func resetBoard(ecs *ecs.ECS, w, h int) {
	if w <= 0 || h <= 0 {
		w, h = config.Board.TilesX, config.Board.TilesY
	}

	var stale []*donburi.Entry
	tags.Box.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	for _, e := range stale {
		e.Remove()
	}

	if e, ok := components.Board.First(ecs.World); ok {
		components.Board.SetValue(e, components.NewBoard(w, h))
		return
	}
	factory.CreateBoard(ecs, w, h)
}
