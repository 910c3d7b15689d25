package systems

import (
	"log"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi/ecs"
)

var displayLabels = [components.DisplayOptCount]string{
	components.DisplayOptInputViewer: "Input Viewer",
	components.DisplayOptPosition:    "Position",
	components.DisplayOptSpeed:       "Speed",
	components.DisplayOptStamina:     "Stamina",
	components.DisplayOptChecksum:    "Actor Checksum",
	components.DisplayOptCollision:   "Collision Boxes",
}

// DisplayMenu toggles the HUD readouts. Changes are saved when it closes.
type DisplayMenu struct{}

func (DisplayMenu) Open(e *ecs.ECS) {
	d := GetOrCreateDisplayMenu(e)
	if d.IsOpen {
		return
	}
	d.IsOpen = true
	d.Modified = false
}

func (DisplayMenu) Close(e *ecs.ECS) {
	d := GetOrCreateDisplayMenu(e)
	if !d.IsOpen {
		return
	}
	d.IsOpen = false
	if d.Modified {
		if err := SaveDisplaySettings(d); err != nil {
			log.Printf("Warning: %v", err)
		}
		d.Modified = false
	}
}

func (DisplayMenu) IsOpen(e *ecs.ECS) bool {
	return GetOrCreateDisplayMenu(e).IsOpen
}

func (m DisplayMenu) HandleInput(e *ecs.ECS) {
	d := GetOrCreateDisplayMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		m.Close(e)
		return
	}

	d.Cursor = moveCursor(input, d.Cursor, int(components.DisplayOptCount))
	if stepValue(input) != 0 || GetAction(input, cfg.ActionMenuSelect).JustPressed {
		d.Enabled[d.Cursor] = !d.Enabled[d.Cursor]
		d.Modified = true
	}
}

func (DisplayMenu) Render(e *ecs.ECS, c Canvas) {
	d := GetOrCreateDisplayMenu(e)
	menu := listMenu{Heading: SubmenuLabel(0), Cursor: d.Cursor}
	for i, label := range displayLabels {
		menu.addValue(label, onOff(d.Enabled[i]))
	}
	menu.draw(c, updateCursorBlink(e))
}

// GetOrCreateDisplayMenu returns the singleton display menu state.
func GetOrCreateDisplayMenu(e *ecs.ECS) *components.DisplayMenuData {
	entry, ok := components.DisplayMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.DisplayMenu))
	}
	return components.DisplayMenu.Get(entry)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
