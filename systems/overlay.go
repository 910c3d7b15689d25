package systems

import (
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateOverlay returns the singleton overlay dispatcher state.
func GetOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overlay))
		components.Overlay.SetValue(entry, components.OverlayData{State: components.MenuOff})
	}
	return components.Overlay.Get(entry)
}

// IsOverlayActive reports whether the overlay currently holds input focus.
func IsOverlayActive(e *ecs.ECS) bool {
	return GetOrCreateOverlay(e).State != components.MenuOff
}

// WithOverlayFocus wraps a host control system so that it sees no input
// while the overlay is active. The system still runs and drops whatever it
// derived from the last held buttons. Host simulation should not be wrapped.
func WithOverlayFocus(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsOverlayActive(e) {
			system(e)
			return
		}
		input := getOrCreateInput(e)
		held := *input
		*input = components.InputData{LastInputMethod: held.LastInputMethod}
		system(e)
		*input = held
	}
}

// ActivateOverlay opens the selection list when the open chord goes down.
// Runs after UpdatePause so the pause menu wins a same-frame conflict.
func ActivateOverlay(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	if overlay.State != components.MenuOff {
		return
	}
	if GetOrCreatePause(e).IsPaused {
		return
	}

	input := getOrCreateInput(e)
	if IsChordPressed(input, cfg.Input.OverlayChord) {
		overlay.State = components.MenuSelect
	}
}

// ForceCloseOverlay asks the overlay to close at the end of the next render
// pass. Repeated requests before then collapse into one.
func ForceCloseOverlay(e *ecs.ECS) {
	GetOrCreateOverlay(e).ForceClose = true
	ReleaseActions(e, cfg.ActionMenuSelect, cfg.ActionMenuBack)
}

// OpenOverlayAt activates the overlay directly on the submenu at index.
// An unknown index leaves the selection list showing.
func OpenOverlayAt(e *ecs.ECS, index int) {
	overlay := GetOrCreateOverlay(e)
	overlay.Cursor = clampIndex(index, components.NumSubmenus)
	overlay.State = components.MenuStateFromIndex(index)
	if sm, ok := submenuFor(overlay.State); ok {
		sm.Open(e)
	}
}

// UpdateOverlay routes this frame's input to the selection list or to the
// active submenu.
func UpdateOverlay(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	input := getOrCreateInput(e)

	// A pending close takes no more input
	if overlay.ForceClose {
		return
	}

	switch overlay.State {
	case components.MenuOff:
		return

	case components.MenuSelect:
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			overlay.State = components.MenuOff
			// The host reads input later this frame
			ReleaseActions(e, cfg.ActionMenuBack)
			return
		}
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			next := components.MenuStateFromIndex(overlay.Cursor)
			overlay.State = next
			if sm, ok := submenuFor(next); ok {
				sm.Open(e)
			}
		}

	default:
		sm, ok := submenuFor(overlay.State)
		if !ok {
			overlay.State = components.MenuSelect
			return
		}
		if sm.IsOpen(e) {
			sm.HandleInput(e)
		}
	}
}

// RenderOverlay draws the overlay and finishes the frame's state changes:
// cursor movement, return to the selection list, forced close.
func RenderOverlay(e *ecs.ECS, c Canvas) {
	overlay := GetOrCreateOverlay(e)
	o := cfg.Overlay

	if overlay.State != components.MenuOff {
		c.FillRect(o.DimX, o.DimY, o.DimW, o.DimH, o.DimColor)
		c.DrawText(o.GuideText, o.GuideX, o.GuideY, o.GuideColor, o.TextBackground)
	}

	switch overlay.State {
	case components.MenuOff:

	case components.MenuSelect:
		menu := listMenu{Heading: o.Heading, Cursor: overlay.Cursor}
		for i := 0; i < components.NumSubmenus; i++ {
			menu.add(SubmenuLabel(i))
		}
		menu.draw(c, updateCursorBlink(e))
		overlay.Cursor = moveCursor(getOrCreateInput(e), overlay.Cursor, len(menu.Entries))

	default:
		sm, ok := submenuFor(overlay.State)
		if !ok {
			overlay.State = components.MenuSelect
			break
		}
		if sm.IsOpen(e) {
			sm.Render(e, c)
		}
		if !sm.IsOpen(e) {
			overlay.State = components.MenuSelect
		}
	}

	if overlay.ForceClose {
		if sm, ok := submenuFor(overlay.State); ok && sm.IsOpen(e) {
			sm.Close(e)
		}
		overlay.State = components.MenuOff
		overlay.ForceClose = false
	}
}

// DrawOverlay renders the overlay onto the ebiten frame.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	RenderOverlay(e, NewScreenCanvas(screen))
}
