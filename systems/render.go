package systems

import (
	"math"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer draws the player actor as a box with a facing marker. Nothing
// is drawn while no player is loaded.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := AcquireActor(ecs)
	if !ok {
		return
	}
	pos := view.Pos()
	if !pos.IsFinite() {
		return
	}

	w, h := float32(cfg.Host.CollisionWidth), float32(cfg.Host.CollisionHeight)
	col := cfg.PlayerColor
	if entry, ok := components.Player.First(ecs.World); ok && components.Player.Get(entry).Running {
		col = cfg.PlayerRunColor
	}
	vector.FillRect(screen, pos.X, pos.Y, w, h, col, false)

	// Facing marker on the leading edge
	facing := float32(math.Cos(gamemath.AngleToRadians(view.Angle().Y)))
	cx := pos.X + w/2 + facing*w/2
	vector.FillRect(screen, cx-2, pos.Y+4, 4, 4, cfg.White, false)
}
