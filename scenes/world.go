package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/systems"
	"github.com/automoto/doomerang-practice/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PracticeScene is the host game with the practice overlay on top.
type PracticeScene struct {
	ecs *ecs.ECS
}

// Options configures a new practice scene.
type Options struct {
	// OpenMenu is the selection index of a submenu to open on the first
	// frame, or -1.
	OpenMenu int
}

// NewPracticeScene builds the world: level, collision space, player actor
// and the fixed system order.
func NewPracticeScene(opts Options) (*PracticeScene, error) {
	e := ecs.NewECS(donburi.NewWorld())
	addSystems(e)

	if err := populate(e); err != nil {
		return nil, err
	}

	if saved, err := systems.LoadDisplaySettings(); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		systems.ApplySavedDisplay(systems.GetOrCreateDisplayMenu(e), saved)
	}

	if opts.OpenMenu >= 0 {
		systems.OpenOverlayAt(e, opts.OpenMenu)
	}

	return &PracticeScene{ecs: e}, nil
}

func addSystems(e *ecs.ECS) {
	// Systems that always run
	e.AddSystem(systems.UpdateConfigReload)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Practice overlay, after pause so the pause menu takes priority
	e.AddSystem(systems.ActivateOverlay)
	e.AddSystem(systems.UpdateOverlay)

	// Host control yields input focus to the overlay; simulation does not
	e.AddSystem(systems.WithPauseCheck(systems.WithOverlayFocus(systems.UpdateHostControl)))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCheats))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateActor))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawOverlay)
	e.AddRenderer(cfg.Default, systems.DrawPause)
}

func populate(e *ecs.ECS) error {
	level, err := factory.CreateLevel(e)
	if err != nil {
		return err
	}
	levelData := components.Level.Get(level).CurrentLevel

	// The space must exist before anything collidable is created
	factory.CreateSpace(e, levelData.Width, levelData.Height, 16, 16)

	for _, s := range levelData.Solids {
		factory.CreateWall(e, s.X, s.Y, s.Width, s.Height)
	}

	factory.CreateGameFlags(e, cfg.Host.FlagBytes)

	spawn := levelData.PlayerSpawn
	slot := systems.GetOrCreateActorSlot(e)
	if _, err := factory.CreatePlayer(e, slot, spawn.X-cfg.Host.CollisionWidth/2, spawn.Y-cfg.Host.CollisionHeight); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	return nil
}

func (ps *PracticeScene) Update() {
	ps.ecs.Update()
}

func (ps *PracticeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}
