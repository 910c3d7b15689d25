package systems

import (
	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi/ecs"
)

var cheatLabels = [components.CheatCount]string{
	components.CheatInfiniteStamina: "Infinite Stamina",
	components.CheatMoonJump:        "Moon Jump",
	components.CheatFastRun:         "Fast Run",
}

// CheatsMenu toggles cheats. UpdateCheats applies them every frame.
type CheatsMenu struct{}

func (CheatsMenu) Open(e *ecs.ECS) {
	GetOrCreateCheatsMenu(e).IsOpen = true
}

// Close releases Jump: it shares a button with Select, and moon jump reads
// it as soon as the overlay lets go of input.
func (CheatsMenu) Close(e *ecs.ECS) {
	m := GetOrCreateCheatsMenu(e)
	if !m.IsOpen {
		return
	}
	m.IsOpen = false
	ReleaseActions(e, cfg.ActionJump)
}

func (CheatsMenu) IsOpen(e *ecs.ECS) bool {
	return GetOrCreateCheatsMenu(e).IsOpen
}

func (m CheatsMenu) HandleInput(e *ecs.ECS) {
	menu := GetOrCreateCheatsMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		m.Close(e)
		return
	}

	menu.Cursor = moveCursor(input, menu.Cursor, int(components.CheatCount))
	if stepValue(input) != 0 || GetAction(input, cfg.ActionMenuSelect).JustPressed {
		cheats := GetOrCreateCheats(e)
		cheats.Enabled[menu.Cursor] = !cheats.Enabled[menu.Cursor]
	}
}

func (CheatsMenu) Render(e *ecs.ECS, c Canvas) {
	menu := GetOrCreateCheatsMenu(e)
	cheats := GetOrCreateCheats(e)

	list := listMenu{Heading: SubmenuLabel(3), Cursor: menu.Cursor}
	for i, label := range cheatLabels {
		list.addValue(label, onOff(cheats.Enabled[i]))
	}
	if _, ok := AcquireActor(e); !ok {
		list.Footer = noPlayerLoaded
	}
	list.draw(c, updateCursorBlink(e))
}

// UpdateCheats applies the enabled cheats to the player actor.
func UpdateCheats(e *ecs.ECS) {
	cheats := GetOrCreateCheats(e)
	view, ok := AcquireActor(e)
	if !ok {
		return
	}

	if cheats.Enabled[components.CheatInfiniteStamina] {
		view.SetStamina(cfg.Host.StaminaMax)
	}

	if cheats.Enabled[components.CheatMoonJump] && !IsOverlayActive(e) {
		if GetAction(getOrCreateInput(e), cfg.ActionJump).Pressed {
			vel := view.Velocity()
			vel.Y = cfg.Cheats.MoonJumpSpeed
			view.SetVelocity(vel)
		}
	}

	// Fast run holds max speed every frame and puts the base value back when
	// turned off.
	switch fast := cheats.Enabled[components.CheatFastRun]; {
	case fast:
		if !cheats.FastRunActive {
			cheats.BaseMaxSpeed = view.ForwardMaxSpeed()
			cheats.FastRunActive = true
		}
		view.SetForwardMaxSpeed(cfg.Cheats.FastRunMaxSpeed)
	case cheats.FastRunActive:
		view.SetForwardMaxSpeed(cheats.BaseMaxSpeed)
		cheats.FastRunActive = false
	}
}

// snapshotActor captures the actor without the fast run override: the
// stored max speed is the one the actor has with cheats off.
func snapshotActor(e *ecs.ECS, view actor.View) actor.Snapshot {
	snap := view.Snapshot()
	if cheats := GetOrCreateCheats(e); cheats.FastRunActive {
		snap.ForwardMaxSpeed = cheats.BaseMaxSpeed
	}
	return snap
}

// restoreActor writes snap back. While fast run is active the snapshot's
// max speed becomes the new base and the override stays in place.
func restoreActor(e *ecs.ECS, view actor.View, snap actor.Snapshot) {
	view.Restore(snap)
	if cheats := GetOrCreateCheats(e); cheats.FastRunActive {
		cheats.BaseMaxSpeed = snap.ForwardMaxSpeed
		view.SetForwardMaxSpeed(cfg.Cheats.FastRunMaxSpeed)
	}
}

// GetOrCreateCheatsMenu returns the singleton cheats menu state.
func GetOrCreateCheatsMenu(e *ecs.ECS) *components.CheatsMenuData {
	entry, ok := components.CheatsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.CheatsMenu))
	}
	return components.CheatsMenu.Get(entry)
}

// GetOrCreateCheats returns the active cheats.
func GetOrCreateCheats(e *ecs.ECS) *components.CheatsData {
	entry, ok := components.Cheats.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Cheats))
	}
	return components.Cheats.Get(entry)
}
