package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// inputViewerActions are shown by the input viewer, in order.
var inputViewerActions = []struct {
	id    cfg.ActionID
	label string
}{
	{cfg.ActionMoveLeft, "<"},
	{cfg.ActionMoveRight, ">"},
	{cfg.ActionJump, "Jump"},
	{cfg.ActionRun, "Run"},
	{cfg.ActionOverlayZ, "Z"},
	{cfg.ActionOverlayC, "C"},
}

// DrawHUD renders the readouts enabled in the display menu.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	RenderHUD(ecs, NewScreenCanvas(screen))
}

// RenderHUD draws the enabled readouts top-left. It runs whether or not the
// overlay is open.
func RenderHUD(e *ecs.ECS, c Canvas) {
	display := GetOrCreateDisplayMenu(e)
	lines := hudLines(e, display)

	y := cfg.HUD.Y
	for _, line := range lines {
		c.DrawText(line, cfg.HUD.X, y, cfg.HUD.TextColor, cfg.HUD.Background)
		y += cfg.HUD.LineHeight
	}
}

func hudLines(e *ecs.ECS, display *components.DisplayMenuData) []string {
	var lines []string

	if display.Enabled[components.DisplayOptInputViewer] {
		lines = append(lines, inputViewerLine(getOrCreateInput(e)))
	}

	view, ok := AcquireActor(e)
	needsActor := display.Enabled[components.DisplayOptPosition] ||
		display.Enabled[components.DisplayOptSpeed] ||
		display.Enabled[components.DisplayOptStamina] ||
		display.Enabled[components.DisplayOptChecksum]
	if !needsActor {
		return lines
	}
	if !ok {
		return append(lines, "No player loaded")
	}

	if display.Enabled[components.DisplayOptPosition] {
		p := view.Pos()
		lines = append(lines, fmt.Sprintf("Pos %.2f %.2f %.2f", p.X, p.Y, p.Z))
	}
	if display.Enabled[components.DisplayOptSpeed] {
		v := view.Velocity()
		lines = append(lines, fmt.Sprintf("Fwd %.2f/%.2f  Vel %.2f %.2f", view.ForwardSpeed(), view.ForwardMaxSpeed(), v.X, v.Y))
	}
	if display.Enabled[components.DisplayOptStamina] {
		lines = append(lines, fmt.Sprintf("Stamina %d", view.Stamina()))
	}
	if display.Enabled[components.DisplayOptChecksum] {
		lines = append(lines, checksumLine(view))
	}
	return lines
}

func inputViewerLine(input *components.InputData) string {
	parts := make([]string, 0, len(inputViewerActions))
	for _, a := range inputViewerActions {
		if input.Current[a.id] {
			parts = append(parts, a.label)
		} else {
			parts = append(parts, strings.Repeat(".", len(a.label)))
		}
	}
	return strings.Join(parts, " ")
}

func checksumLine(view actor.View) string {
	return fmt.Sprintf("Opaque %08X  vt %08X", view.OpaqueChecksum(), view.Vtable())
}
