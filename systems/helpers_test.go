package systems

import (
	"image/color"
	"strings"
	"testing"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/assets"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type rectCall struct {
	X, Y, W, H float32
	C          color.RGBA
}

type textCall struct {
	S    string
	X, Y float32
}

// recordingCanvas records draw calls instead of drawing.
type recordingCanvas struct {
	rects []rectCall
	texts []textCall
}

func (c *recordingCanvas) FillRect(x, y, w, h float32, col color.RGBA) {
	c.rects = append(c.rects, rectCall{x, y, w, h, col})
}

func (c *recordingCanvas) DrawText(s string, x, y float32, fg, bg color.RGBA) {
	c.texts = append(c.texts, textCall{s, x, y})
}

func (c *recordingCanvas) hasText(substr string) bool {
	for _, t := range c.texts {
		if strings.Contains(t.S, substr) {
			return true
		}
	}
	return false
}

func (c *recordingCanvas) reset() {
	c.rects = nil
	c.texts = nil
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// step advances input by one frame with exactly the given actions held.
func step(e *ecs.ECS, held ...cfg.ActionID) {
	var raw [cfg.ActionCount]bool
	for _, id := range held {
		raw[id] = true
	}
	advanceInput(getOrCreateInput(e), raw)
}

// runFrame runs the overlay's systems for one frame.
func runFrame(e *ecs.ECS, c Canvas, held ...cfg.ActionID) {
	step(e, held...)
	ActivateOverlay(e)
	UpdateOverlay(e)
	RenderOverlay(e, c)
}

// openOverlay runs frames until the chord has opened the selection list.
func openOverlay(t *testing.T, e *ecs.ECS, c Canvas) {
	t.Helper()
	runFrame(e, c)
	runFrame(e, c, cfg.ActionOverlayZ, cfg.ActionOverlayC)
	runFrame(e, c)
	if got := GetOrCreateOverlay(e).State; got != components.MenuSelect {
		t.Fatalf("state after chord = %v, want MenuSelect", got)
	}
}

// fakeSubmenu counts calls and keeps its own open flag.
type fakeSubmenu struct {
	open                           bool
	opens, closes, inputs, renders int
	closeOnBack                    bool
}

func (f *fakeSubmenu) Open(e *ecs.ECS) {
	f.opens++
	f.open = true
}

func (f *fakeSubmenu) Close(e *ecs.ECS) {
	f.closes++
	f.open = false
}

func (f *fakeSubmenu) HandleInput(e *ecs.ECS) {
	f.inputs++
	if f.closeOnBack && GetAction(getOrCreateInput(e), cfg.ActionMenuBack).JustPressed {
		f.Close(e)
	}
}

func (f *fakeSubmenu) Render(e *ecs.ECS, c Canvas) {
	f.renders++
}

func (f *fakeSubmenu) IsOpen(e *ecs.ECS) bool {
	return f.open
}

// withFakeSubmenus replaces the registry for the duration of the test.
func withFakeSubmenus(t *testing.T) []*fakeSubmenu {
	t.Helper()
	saved := submenus
	t.Cleanup(func() { submenus = saved })

	fakes := make([]*fakeSubmenu, components.NumSubmenus)
	for i := range fakes {
		fakes[i] = &fakeSubmenu{closeOnBack: true}
		submenus[i] = fakes[i]
	}
	return fakes
}

// bindActor publishes a fresh actor block standing at (x, y).
func bindActor(t *testing.T, e *ecs.ECS, x, y float32) actor.View {
	t.Helper()
	mem := factory.NewActorBlock(x, y)
	if err := GetOrCreateActorSlot(e).Bind(mem); err != nil {
		t.Fatalf("bind: %v", err)
	}
	view, ok := AcquireActor(e)
	if !ok {
		t.Fatal("actor unavailable after bind")
	}
	return view
}

func testLevel(e *ecs.ECS, warps ...assets.WarpPoint) {
	factory.CreateLevelFrom(e, &assets.Level{Name: "test", Width: 640, Height: 480, Warps: warps})
}
