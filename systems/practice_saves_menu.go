package systems

import (
	"fmt"
	"log"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// PracticeSavesMenu stores actor snapshots in persistent slots.
type PracticeSavesMenu struct{}

func (PracticeSavesMenu) Open(e *ecs.ECS) {
	p := GetOrCreatePracticeSavesMenu(e)
	if p.IsOpen {
		return
	}
	p.IsOpen = true
	p.Status = ""
	if !p.Loaded {
		loadPracticeSlots(p)
	}
}

func (PracticeSavesMenu) Close(e *ecs.ECS) {
	GetOrCreatePracticeSavesMenu(e).IsOpen = false
}

func (PracticeSavesMenu) IsOpen(e *ecs.ECS) bool {
	return GetOrCreatePracticeSavesMenu(e).IsOpen
}

func (m PracticeSavesMenu) HandleInput(e *ecs.ECS) {
	p := GetOrCreatePracticeSavesMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		m.Close(e)
		return
	}

	p.Cursor = moveCursor(input, p.Cursor, len(p.Slots))
	if len(p.Slots) == 0 {
		return
	}
	slot := &p.Slots[p.Cursor]

	switch {
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		if !slot.Used {
			p.Status = "Slot is empty"
			return
		}
		view, ok := AcquireActor(e)
		if !ok {
			p.Status = noPlayerLoaded
			return
		}
		restoreActor(e, view, slot.Snapshot)
		p.Status = fmt.Sprintf("Loaded slot %d", p.Cursor+1)

	case GetAction(input, cfg.ActionMenuRight).JustPressed:
		view, ok := AcquireActor(e)
		if !ok {
			p.Status = noPlayerLoaded
			return
		}
		snap := snapshotActor(e, view)
		if err := SavePracticeSlot(p.Cursor, &snap); err != nil {
			log.Printf("Warning: %v", err)
			p.Status = "Save failed"
			return
		}
		slot.Used = true
		slot.Snapshot = snap
		p.Status = fmt.Sprintf("Saved slot %d", p.Cursor+1)

	case GetAction(input, cfg.ActionMenuLeft).JustPressed:
		if err := SavePracticeSlot(p.Cursor, nil); err != nil {
			log.Printf("Warning: %v", err)
		}
		*slot = components.PracticeSlot{}
		p.Status = fmt.Sprintf("Cleared slot %d", p.Cursor+1)
	}
}

func (PracticeSavesMenu) Render(e *ecs.ECS, c Canvas) {
	p := GetOrCreatePracticeSavesMenu(e)

	menu := listMenu{Heading: SubmenuLabel(4), Cursor: p.Cursor}
	for i, slot := range p.Slots {
		value := "empty"
		if slot.Used {
			value = formatVec(slot.Snapshot.Pos)
		}
		menu.addValue(fmt.Sprintf("Slot %d", i+1), value)
	}

	menu.Footer = p.Status
	if _, ok := AcquireActor(e); !ok {
		menu.Footer = noPlayerLoaded
	}
	menu.draw(c, updateCursorBlink(e))
}

// GetOrCreatePracticeSavesMenu returns the singleton practice saves state.
func GetOrCreatePracticeSavesMenu(e *ecs.ECS) *components.PracticeSavesMenuData {
	entry, ok := components.PracticeSavesMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.PracticeSavesMenu))
	}
	return components.PracticeSavesMenu.Get(entry)
}

func loadPracticeSlots(p *components.PracticeSavesMenuData) {
	p.Slots = make([]components.PracticeSlot, cfg.PracticeSaves.Slots)
	for i := range p.Slots {
		snap, err := LoadPracticeSlot(i)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		if snap != nil {
			p.Slots[i] = components.PracticeSlot{Used: true, Snapshot: *snap}
		}
	}
	p.Loaded = true
}

func formatVec(v gamemath.Vec3f) string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", v.X, v.Y, v.Z)
}
