package systems

import (
	"fmt"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/assets"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

const noPlayerLoaded = "No player loaded"

// WarpMenu moves the player to one of the level's warp destinations.
type WarpMenu struct{}

func (WarpMenu) Open(e *ecs.ECS) {
	w := GetOrCreateWarpMenu(e)
	if w.IsOpen {
		return
	}
	w.IsOpen = true
	w.Status = ""
}

func (WarpMenu) Close(e *ecs.ECS) {
	GetOrCreateWarpMenu(e).IsOpen = false
}

func (WarpMenu) IsOpen(e *ecs.ECS) bool {
	return GetOrCreateWarpMenu(e).IsOpen
}

func (m WarpMenu) HandleInput(e *ecs.ECS) {
	w := GetOrCreateWarpMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		m.Close(e)
		return
	}

	warps := levelWarps(e)
	w.Cursor = moveCursor(input, w.Cursor, len(warps))
	w.Scroll = scrollToCursor(w.Scroll, w.Cursor, cfg.Warp.VisibleRows, len(warps))

	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		w.Status = copyActorPosition(e)
		return
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed && len(warps) > 0 {
		view, ok := AcquireActor(e)
		if !ok {
			w.Status = noPlayerLoaded
			return
		}
		dest := warps[w.Cursor]
		warpActor(view, dest)
		w.Status = "Warped to " + dest.Name
	}
}

func (WarpMenu) Render(e *ecs.ECS, c Canvas) {
	w := GetOrCreateWarpMenu(e)
	warps := levelWarps(e)
	view, hasActor := AcquireActor(e)

	menu := listMenu{Heading: SubmenuLabel(1), Cursor: w.Cursor - w.Scroll}
	end := w.Scroll + cfg.Warp.VisibleRows
	if end > len(warps) {
		end = len(warps)
	}
	for i := w.Scroll; i < end; i++ {
		dest := warps[i]
		label := dest.Name
		if dest.Area != "" {
			label = dest.Area + ": " + dest.Name
		}
		value := ""
		if hasActor && view.WithinXZDistance(warpPosition(dest), cfg.Warp.HereRadius) {
			value = "(here)"
		}
		if hasActor {
			menu.addValue(label, value)
		} else {
			menu.addDisabled(label)
		}
	}
	if len(warps) == 0 {
		menu.addDisabled("No warps in this level")
	}

	switch {
	case !hasActor:
		menu.Footer = noPlayerLoaded
	case w.Status != "":
		menu.Footer = w.Status
	}
	menu.draw(c, updateCursorBlink(e))
}

// GetOrCreateWarpMenu returns the singleton warp menu state.
func GetOrCreateWarpMenu(e *ecs.ECS) *components.WarpMenuData {
	entry, ok := components.WarpMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.WarpMenu))
	}
	return components.WarpMenu.Get(entry)
}

func levelWarps(e *ecs.ECS) []assets.WarpPoint {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(entry).CurrentLevel
	if level == nil {
		return nil
	}
	return level.Warps
}

// warpPosition converts a destination's feet position into the actor's
// top-left position.
func warpPosition(dest assets.WarpPoint) gamemath.Vec3f {
	return gamemath.Vec3f{
		X: float32(dest.X - cfg.Host.CollisionWidth/2),
		Y: float32(dest.Y - cfg.Host.CollisionHeight),
	}
}

// warpActor places the actor at dest, facing dest's angle and at rest.
func warpActor(view actor.View, dest assets.WarpPoint) {
	view.SetPos(warpPosition(dest))
	angle := view.Angle()
	angle.Y = dest.Facing
	view.SetAngle(angle)
	view.SetVelocity(gamemath.Vec3f{})
	view.SetForwardSpeed(0)
}

func copyActorPosition(e *ecs.ECS) string {
	view, ok := AcquireActor(e)
	if !ok {
		return noPlayerLoaded
	}
	p := view.Pos()
	if !copyText(fmt.Sprintf("%.3f, %.3f, %.3f", p.X, p.Y, p.Z)) {
		return "Clipboard unavailable"
	}
	return "Position copied"
}

// scrollToCursor returns the first visible row so that cursor is on screen.
func scrollToCursor(scroll, cursor, rows, n int) int {
	if rows <= 0 || n <= rows {
		return 0
	}
	if cursor < scroll {
		scroll = cursor
	}
	if cursor >= scroll+rows {
		scroll = cursor - rows + 1
	}
	if scroll > n-rows {
		scroll = n - rows
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
