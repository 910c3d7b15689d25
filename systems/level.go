package systems

import (
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the level's solids. The practice level fits on one screen,
// so world and screen coordinates coincide.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}

	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	for _, s := range levelData.CurrentLevel.Solids {
		vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), cfg.SolidColor, false)
	}
}
