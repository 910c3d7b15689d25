package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/fonts"
	"github.com/automoto/doomerang-practice/scenes"
	"github.com/automoto/doomerang-practice/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(openMenu int) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	scene, err := scenes.NewPracticeScene(scenes.Options{OpenMenu: openMenu})
	if err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// resolveOpenMenu maps the -open flag to a selection index, suggesting the
// closest submenu name on a typo.
func resolveOpenMenu(name string) int {
	if name == "" {
		return -1
	}
	if i, ok := systems.SubmenuIndexByName(strings.ToLower(name)); ok {
		return i
	}

	best, bestDist := "", -1
	for _, entry := range config.Submenus {
		d := levenshtein.ComputeDistance(strings.ToLower(name), entry.Name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = entry.Name, d
		}
	}
	if bestDist >= 0 && bestDist <= 3 {
		log.Printf("Warning: unknown submenu %q, did you mean %q?", name, best)
	} else {
		log.Printf("Warning: unknown submenu %q", name)
	}
	return -1
}

func main() {
	flag.StringVar(&config.Debug.ConfigPath, "config", "", "YAML override file, reloaded on change")
	flag.StringVar(&config.Debug.OpenMenu, "open", "", "submenu to open at startup (display, warp, action, cheats, saves, flags)")
	flag.Parse()

	if path := config.Debug.ConfigPath; path != "" {
		if err := config.ApplyFile(path); err != nil {
			log.Printf("Warning: Could not apply config: %v", err)
		}
		if err := systems.WatchConfig(path); err != nil {
			log.Printf("Warning: Config will not reload: %v", err)
		}
		defer systems.StopConfigWatch()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("doomerang practice")
	ebiten.SetTPS(config.C.TPS)

	// Persistence and clipboard are optional
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if err := systems.InitClipboard(); err != nil {
		log.Printf("Warning: Clipboard unavailable: %v", err)
	}

	game, err := NewGame(resolveOpenMenu(config.Debug.OpenMenu))
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
