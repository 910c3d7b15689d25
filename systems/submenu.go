package systems

import (
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi/ecs"
)

// Submenu is one page of the practice overlay. Each implementation keeps its
// own state in a singleton component.
//
// Open must be idempotent. Close must release any press it simulated.
// HandleInput and Render are only called while IsOpen reports true.
type Submenu interface {
	Open(e *ecs.ECS)
	Close(e *ecs.ECS)
	HandleInput(e *ecs.ECS)
	Render(e *ecs.ECS, c Canvas)
	IsOpen(e *ecs.ECS) bool
}

// submenus is indexed by selection index, in the order of
// components.MenuState and cfg.Submenus.
var submenus = [components.NumSubmenus]Submenu{
	DisplayMenu{},
	WarpMenu{},
	ActionMenu{},
	CheatsMenu{},
	PracticeSavesMenu{},
	FlagMenu{},
}

// submenuFor returns the submenu shown in state, if any.
func submenuFor(state components.MenuState) (Submenu, bool) {
	i, ok := state.SubmenuIndex()
	if !ok || submenus[i] == nil {
		return nil, false
	}
	return submenus[i], true
}

// SubmenuLabel returns the selection list label for index i.
func SubmenuLabel(i int) string {
	if i < 0 || i >= len(cfg.Submenus) {
		return "???"
	}
	return cfg.Submenus[i].Label
}

// SubmenuIndexByName returns the selection index of the submenu with the
// given short name.
func SubmenuIndexByName(name string) (int, bool) {
	for i, entry := range cfg.Submenus {
		if entry.Name == name {
			return i, true
		}
	}
	return 0, false
}
