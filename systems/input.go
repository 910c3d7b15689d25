package systems

import (
	"strings"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run before every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var raw [cfg.ActionCount]bool

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		raw[cfg.ActionMoveLeft] = true
		raw[cfg.ActionMenuLeft] = true
	}
	if analogRight {
		raw[cfg.ActionMoveRight] = true
		raw[cfg.ActionMenuRight] = true
	}
	if analogUp {
		raw[cfg.ActionMenuUp] = true
	}
	if analogDown {
		raw[cfg.ActionMenuDown] = true
	}
	if analogLeft || analogRight || analogUp || analogDown {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	advanceInput(input, raw)

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// advanceInput swaps buffers and applies suppression. A suppressed action
// reads as released until the device actually releases it.
func advanceInput(input *components.InputData, raw [cfg.ActionCount]bool) {
	input.Previous = input.Current
	for id := range raw {
		if input.Suppressed[id] {
			if !raw[id] {
				input.Suppressed[id] = false
			}
			raw[id] = false
		}
	}
	input.Current = raw
}

// ReleaseActions marks actions as not pressed for the rest of this frame and
// until they are physically released, so a press consumed by the overlay
// never reaches the host's own handling.
func ReleaseActions(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	for _, id := range ids {
		for _, shared := range actionsSharingBinding(id) {
			input.Current[shared] = false
			input.Suppressed[shared] = true
		}
	}
}

// actionsSharingBinding returns id plus every action bound to one of the
// same keys or buttons, since releasing a button releases all of them.
func actionsSharingBinding(id cfg.ActionID) []cfg.ActionID {
	out := []cfg.ActionID{id}
	own, ok := cfg.Input.Bindings[id]
	if !ok {
		return out
	}
	for other, binding := range cfg.Input.Bindings {
		if other == id {
			continue
		}
		if sharesKey(own.Keys, binding.Keys) || sharesButton(own.StandardGamepadButtons, binding.StandardGamepadButtons) {
			out = append(out, other)
		}
	}
	return out
}

func sharesKey(a, b []ebiten.Key) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func sharesButton(a, b []ebiten.StandardGamepadButton) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
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

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IsChordPressed reports whether every action of the chord is held and at
// least one of them went down this frame.
func IsChordPressed(input *components.InputData, chord []cfg.ActionID) bool {
	if len(chord) == 0 {
		return false
	}
	newly := false
	for _, id := range chord {
		state := GetAction(input, id)
		if !state.Pressed {
			return false
		}
		newly = newly || state.JustPressed
	}
	return newly
}
