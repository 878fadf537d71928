package systems

import (
	"github.com/automoto/bombgrid/components"
	cfg "github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/logging"
	"github.com/automoto/bombgrid/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var moveKeys = []struct {
	action cfg.ActionID
	key    messages.Key
}{
	{cfg.ActionMoveUp, messages.KeyUp},
	{cfg.ActionMoveDown, messages.KeyDown},
	{cfg.ActionMoveLeft, messages.KeyLeft},
	{cfg.ActionMoveRight, messages.KeyRight},
}

// NewInputSystem returns a system that polls the local devices and sends
// one message per key transition through send.
func NewInputSystem(send func(any) error) func(*ecs.ECS) {
	log := logging.For("input")
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		pollInput(input)

		for _, msg := range InputMessages(input) {
			if err := send(msg); err != nil {
				log.Warn().Err(err).Msgf("send %T", msg)
			}
		}
	}
}

// InputMessages turns the frame's action edges into authority input: a
// KeyUpDown per movement press or release and a KeyDrop per bomb press.
func InputMessages(input *components.InputData) []any {
	var out []any
	for _, mk := range moveKeys {
		state := input.Action(mk.action)
		switch {
		case state.JustPressed:
			out = append(out, messages.KeyUpDown{Key: mk.key, Down: true})
		case state.JustReleased:
			out = append(out, messages.KeyUpDown{Key: mk.key, Down: false})
		}
	}
	if input.Action(cfg.ActionDropBomb).JustPressed {
		out = append(out, messages.KeyDrop{})
	}
	return out
}

// pollInput swaps the frame buffers and reads keyboard, gamepad buttons and
// the left stick into Current.
func pollInput(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
