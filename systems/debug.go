package systems

import (
	"image/color"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when the display menu's
// collision toggle is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	renderCollisionDebug(ecs, NewScreenCanvas(screen))
}

// renderCollisionDebug draws the outlines. Solids the player is standing on
// or pushing against this frame are highlighted.
func renderCollisionDebug(e *ecs.ECS, c Canvas) {
	if !GetOrCreateDisplayMenu(e).Enabled[components.DisplayOptCollision] {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	var ground, wall *resolv.Object
	if entry, ok := components.Player.First(e.World); ok {
		physics := components.Physics.Get(entry)
		ground, wall = physics.OnGround, physics.TouchedWall
	}

	for _, obj := range space.Objects() {
		col := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj == ground || obj == wall:
			col = cfg.Yellow
		case obj.HasTags(tags.ResolvSolid):
			col = color.RGBA{100, 100, 100, 255} // Grey
		case obj.HasTags(tags.ResolvPlayer):
			col = color.RGBA{0, 0, 255, 255} // Blue
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		c.FillRect(x, y, w, 1, col)     // Top
		c.FillRect(x, y+h-1, w, 1, col) // Bottom
		c.FillRect(x, y, 1, h, col)     // Left
		c.FillRect(x+w-1, y, 1, h, col) // Right
	}
}
