package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuState identifies what the practice overlay shows and routes input to.
type MenuState int

const (
	MenuOff MenuState = iota
	MenuSelect
	MenuDisplay
	MenuWarp
	MenuAction
	MenuCheats
	MenuPracticeSaves
	MenuFlags
)

// NumSubmenus is the number of selectable submenus. It must match the
// selection labels in config.Submenus.
const NumSubmenus = int(MenuFlags-MenuDisplay) + 1

// MenuStateFromIndex maps a selection index to its submenu state. Indices
// outside the known range map to MenuSelect, i.e. no transition.
func MenuStateFromIndex(i int) MenuState {
	if i < 0 || i >= NumSubmenus {
		return MenuSelect
	}
	return MenuDisplay + MenuState(i)
}

// SubmenuIndex returns the selection index of a submenu state.
func (s MenuState) SubmenuIndex() (int, bool) {
	if s < MenuDisplay || s > MenuFlags {
		return 0, false
	}
	return int(s - MenuDisplay), true
}

func (s MenuState) String() string {
	switch s {
	case MenuOff:
		return "Off"
	case MenuSelect:
		return "MenuSelect"
	case MenuDisplay:
		return "Display"
	case MenuWarp:
		return "Warp"
	case MenuAction:
		return "Action"
	case MenuCheats:
		return "Cheats"
	case MenuPracticeSaves:
		return "PracticeSaves"
	case MenuFlags:
		return "Flags"
	}
	return "Unknown"
}

// OverlayData is the practice overlay dispatcher state. There is exactly one
// per world and it is only written from the frame systems.
type OverlayData struct {
	State      MenuState
	Cursor     int  // Selection index into the submenu list
	ForceClose bool // Consumed by the next render pass
}

var Overlay = donburi.NewComponentType[OverlayData]()

// CursorBlinkData is the cosmetic state of the selection highlight.
type CursorBlinkData struct {
	Tween  *gween.Tween
	Fading bool
	Value  float32
}

var CursorBlink = donburi.NewComponentType[CursorBlinkData]()
