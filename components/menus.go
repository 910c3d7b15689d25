package components

import (
	"github.com/automoto/doomerang-practice/actor"
	"github.com/yohamta/donburi"
)

// DisplayOption represents toggles in the display menu
type DisplayOption int

const (
	DisplayOptInputViewer DisplayOption = iota
	DisplayOptPosition
	DisplayOptSpeed
	DisplayOptStamina
	DisplayOptChecksum
	DisplayOptCollision
	DisplayOptCount
)

// DisplayMenuData stores the display menu state and the HUD toggles it
// edits. The HUD reads the toggles every frame, open or not.
type DisplayMenuData struct {
	IsOpen   bool
	Cursor   int
	Enabled  [DisplayOptCount]bool
	Modified bool
}

var DisplayMenu = donburi.NewComponentType[DisplayMenuData]()

// WarpMenuData stores the warp menu state
type WarpMenuData struct {
	IsOpen bool
	Cursor int
	Scroll int
	Status string // last action feedback, e.g. "Copied"
}

var WarpMenu = donburi.NewComponentType[WarpMenuData]()

// ActionOption represents one-shot actions in the action menu
type ActionOption int

const (
	ActionOptStorePosition ActionOption = iota
	ActionOptRestorePosition
	ActionOptRefillStamina
	ActionOptZeroVelocity
	ActionOptToggleActor
	ActionOptCount
)

// ActionMenuData stores the action menu state
type ActionMenuData struct {
	IsOpen   bool
	Cursor   int
	Stored   actor.Snapshot
	HasStore bool
	Detached []byte // actor block held while the player is unloaded
}

var ActionMenu = donburi.NewComponentType[ActionMenuData]()

// CheatOption represents toggles in the cheats menu
type CheatOption int

const (
	CheatInfiniteStamina CheatOption = iota
	CheatMoonJump
	CheatFastRun
	CheatCount
)

// CheatsMenuData stores the cheats menu state
type CheatsMenuData struct {
	IsOpen bool
	Cursor int
}

var CheatsMenu = donburi.NewComponentType[CheatsMenuData]()

// CheatsData holds the active cheats. UpdateCheats applies them each frame.
type CheatsData struct {
	Enabled [CheatCount]bool
	// FastRunActive is set while fast run owns the actor's max speed.
	// BaseMaxSpeed is the value it stands in for.
	FastRunActive bool
	BaseMaxSpeed  float32
}

var Cheats = donburi.NewComponentType[CheatsData]()

// PracticeSlot is one practice save slot
type PracticeSlot struct {
	Used     bool
	Snapshot actor.Snapshot
}

// PracticeSavesMenuData stores the practice saves menu state
type PracticeSavesMenuData struct {
	IsOpen bool
	Cursor int
	Slots  []PracticeSlot
	Loaded bool // slots read from persistence
	Status string
}

var PracticeSavesMenu = donburi.NewComponentType[PracticeSavesMenuData]()

// FlagMenuData stores the flag editor state
type FlagMenuData struct {
	IsOpen bool
	Byte   int
	Bit    int
}

var FlagMenu = donburi.NewComponentType[FlagMenuData]()
