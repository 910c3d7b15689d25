package systems

import (
	"log"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// ActionMenu runs one-shot actions on the player actor.
type ActionMenu struct{}

func (ActionMenu) Open(e *ecs.ECS) {
	GetOrCreateActionMenu(e).IsOpen = true
}

func (ActionMenu) Close(e *ecs.ECS) {
	GetOrCreateActionMenu(e).IsOpen = false
}

func (ActionMenu) IsOpen(e *ecs.ECS) bool {
	return GetOrCreateActionMenu(e).IsOpen
}

func (m ActionMenu) HandleInput(e *ecs.ECS) {
	a := GetOrCreateActionMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		m.Close(e)
		return
	}

	a.Cursor = moveCursor(input, a.Cursor, int(components.ActionOptCount))
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		runAction(e, a, components.ActionOption(a.Cursor))
	}
}

func runAction(e *ecs.ECS, a *components.ActionMenuData, opt components.ActionOption) {
	if opt == components.ActionOptToggleActor {
		toggleActor(e, a)
		return
	}

	view, ok := AcquireActor(e)
	if !ok {
		return
	}

	switch opt {
	case components.ActionOptStorePosition:
		a.Stored = snapshotActor(e, view)
		a.HasStore = true
	case components.ActionOptRestorePosition:
		if !a.HasStore {
			return
		}
		view.SetPos(a.Stored.Pos)
		view.SetAngle(a.Stored.Angle)
		view.SetVelocity(gamemath.Vec3f{})
		view.SetForwardSpeed(0)
	case components.ActionOptRefillStamina:
		view.SetStamina(cfg.Host.StaminaMax)
	case components.ActionOptZeroVelocity:
		view.SetVelocity(gamemath.Vec3f{})
		view.SetForwardSpeed(0)
	}
}

// toggleActor unloads the player by clearing the host's actor pointer, or
// loads it back.
func toggleActor(e *ecs.ECS, a *components.ActionMenuData) {
	slot := GetOrCreateActorSlot(e)
	if view, ok := slot.Acquire(); ok {
		a.Detached = view.Bytes()
		slot.Unbind()
		return
	}
	if a.Detached == nil {
		return
	}
	if err := slot.Bind(a.Detached); err != nil {
		log.Printf("Warning: Could not reload player: %v", err)
		return
	}
	a.Detached = nil
}

func (ActionMenu) Render(e *ecs.ECS, c Canvas) {
	a := GetOrCreateActionMenu(e)
	_, hasActor := AcquireActor(e)

	menu := listMenu{Heading: SubmenuLabel(2), Cursor: a.Cursor}
	addActorAction := func(label string, enabled bool) {
		if enabled {
			menu.add(label)
		} else {
			menu.addDisabled(label)
		}
	}
	addActorAction("Store Position", hasActor)
	addActorAction("Restore Position", hasActor && a.HasStore)
	addActorAction("Refill Stamina", hasActor)
	addActorAction("Zero Velocity", hasActor)
	switch {
	case hasActor:
		menu.add("Unload Player")
	case a.Detached != nil:
		menu.add("Load Player")
	default:
		menu.addDisabled("Load Player")
	}

	if !hasActor {
		menu.Footer = noPlayerLoaded
	} else if a.HasStore {
		p := a.Stored.Pos
		menu.Footer = "Stored " + formatVec(p)
	}
	menu.draw(c, updateCursorBlink(e))
}

// GetOrCreateActionMenu returns the singleton action menu state.
func GetOrCreateActionMenu(e *ecs.ECS) *components.ActionMenuData {
	entry, ok := components.ActionMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.ActionMenu))
	}
	return components.ActionMenu.Get(entry)
}
