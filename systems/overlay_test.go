package systems

import (
	"testing"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi/ecs"
)

func TestChordOpensSelectionList(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}

	runFrame(e, c, cfg.ActionOverlayZ)
	if IsOverlayActive(e) {
		t.Fatal("half the chord opened the overlay")
	}

	runFrame(e, c, cfg.ActionOverlayZ, cfg.ActionOverlayC)
	if got := GetOrCreateOverlay(e).State; got != components.MenuSelect {
		t.Fatalf("state = %v, want MenuSelect", got)
	}
}

func TestActivationIsIdempotent(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	runFrame(e, c, cfg.ActionMenuDown)
	runFrame(e, c)
	before := *GetOrCreateOverlay(e)

	// Holding and re-pressing the chord while active changes nothing
	for i := 0; i < 3; i++ {
		runFrame(e, c, cfg.ActionOverlayZ, cfg.ActionOverlayC)
		runFrame(e, c)
	}
	if got := *GetOrCreateOverlay(e); got != before {
		t.Fatalf("overlay = %+v, want %+v", got, before)
	}
}

func TestActivationBlockedWhilePaused(t *testing.T) {
	e := newTestECS()
	GetOrCreatePause(e).IsPaused = true

	runFrame(e, &recordingCanvas{}, cfg.ActionOverlayZ, cfg.ActionOverlayC)
	if IsOverlayActive(e) {
		t.Fatal("overlay opened over the pause menu")
	}
}

func TestCursorSelectAndReturn(t *testing.T) {
	fakes := withFakeSubmenus(t)
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	for i := 0; i < 3; i++ {
		runFrame(e, c, cfg.ActionMenuDown)
		runFrame(e, c)
	}
	if got := GetOrCreateOverlay(e).Cursor; got != 3 {
		t.Fatalf("cursor = %d, want 3", got)
	}

	runFrame(e, c, cfg.ActionMenuSelect)
	if got := GetOrCreateOverlay(e).State; got != components.MenuCheats {
		t.Fatalf("state = %v, want MenuCheats", got)
	}
	for i, f := range fakes {
		want := 0
		if i == 3 {
			want = 1
		}
		if f.opens != want {
			t.Errorf("submenu %d opened %d times, want %d", i, f.opens, want)
		}
	}

	runFrame(e, c)
	if fakes[3].inputs == 0 || fakes[3].renders == 0 {
		t.Fatalf("active submenu not driven: %+v", fakes[3])
	}

	runFrame(e, c, cfg.ActionMenuBack)
	overlay := GetOrCreateOverlay(e)
	if overlay.State != components.MenuSelect {
		t.Fatalf("state after submenu closed = %v, want MenuSelect", overlay.State)
	}
	if overlay.Cursor != 3 {
		t.Fatalf("cursor after return = %d, want 3", overlay.Cursor)
	}
	if fakes[3].opens != 1 {
		t.Fatalf("submenu opened %d times", fakes[3].opens)
	}
}

func TestCursorWraps(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	runFrame(e, c, cfg.ActionMenuUp)
	if got := GetOrCreateOverlay(e).Cursor; got != components.NumSubmenus-1 {
		t.Fatalf("cursor = %d, want %d", got, components.NumSubmenus-1)
	}
	runFrame(e, c)
	runFrame(e, c, cfg.ActionMenuDown)
	if got := GetOrCreateOverlay(e).Cursor; got != 0 {
		t.Fatalf("cursor = %d, want 0", got)
	}
}

func TestBackFromSelectionReleasesButton(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	step(e, cfg.ActionMenuBack, cfg.ActionRun)
	UpdateOverlay(e)
	if IsOverlayActive(e) {
		t.Fatal("Back did not close the overlay")
	}

	// The host runs later in the same frame and on following frames
	input := getOrCreateInput(e)
	for frame := 0; frame < 3; frame++ {
		for _, id := range []cfg.ActionID{cfg.ActionMenuBack, cfg.ActionRun} {
			if s := GetAction(input, id); s.Pressed || s.JustPressed {
				t.Fatalf("frame %d: action %d reads %+v after release", frame, id, s)
			}
		}
		step(e, cfg.ActionMenuBack, cfg.ActionRun)
	}

	// A fresh press after letting go is seen again
	step(e)
	step(e, cfg.ActionRun)
	if !GetAction(input, cfg.ActionRun).JustPressed {
		t.Fatal("new press after release not seen")
	}
}

func TestInvalidIndexDoesNotTransition(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	GetOrCreateOverlay(e).Cursor = components.NumSubmenus + 4
	step(e, cfg.ActionMenuSelect)
	UpdateOverlay(e)
	if got := GetOrCreateOverlay(e).State; got != components.MenuSelect {
		t.Fatalf("state = %v, want MenuSelect", got)
	}
}

func TestForceCloseCollapsesToClosed(t *testing.T) {
	fakes := withFakeSubmenus(t)
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)
	runFrame(e, c, cfg.ActionMenuSelect)
	if !fakes[0].open {
		t.Fatal("submenu 0 not open")
	}

	ForceCloseOverlay(e)
	ForceCloseOverlay(e)
	step(e)
	UpdateOverlay(e)
	RenderOverlay(e, c)

	overlay := GetOrCreateOverlay(e)
	if overlay.State != components.MenuOff || overlay.ForceClose {
		t.Fatalf("overlay = %+v, want closed with no pending request", overlay)
	}
	if fakes[0].closes != 1 {
		t.Fatalf("submenu closed %d times, want 1", fakes[0].closes)
	}

	// Closed overlay ignores further render passes
	c.reset()
	RenderOverlay(e, c)
	if len(c.rects)+len(c.texts) != 0 {
		t.Fatal("closed overlay drew something")
	}
}

func TestForceCloseFromSelectionList(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	ForceCloseOverlay(e)
	RenderOverlay(e, c)
	if IsOverlayActive(e) {
		t.Fatal("overlay still active")
	}
}

func TestSubmenuClosedExternallyIsNotDriven(t *testing.T) {
	fakes := withFakeSubmenus(t)
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)
	runFrame(e, c, cfg.ActionMenuSelect)

	fakes[0].open = false
	inputs, renders := fakes[0].inputs, fakes[0].renders
	runFrame(e, c)

	if fakes[0].inputs != inputs || fakes[0].renders != renders {
		t.Fatal("closed submenu received calls")
	}
	if got := GetOrCreateOverlay(e).State; got != components.MenuSelect {
		t.Fatalf("state = %v, want MenuSelect", got)
	}
}

func TestRenderDrawsDimGuideAndList(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}

	RenderOverlay(e, c)
	if len(c.rects)+len(c.texts) != 0 {
		t.Fatal("closed overlay drew something")
	}

	openOverlay(t, e, c)
	c.reset()
	RenderOverlay(e, c)

	o := cfg.Overlay
	if len(c.rects) == 0 {
		t.Fatal("no dim rectangle")
	}
	dim := c.rects[0]
	if dim.X != o.DimX || dim.Y != o.DimY || dim.W != o.DimW || dim.H != o.DimH || dim.C != o.DimColor {
		t.Fatalf("dim = %+v", dim)
	}
	if len(c.texts) == 0 || c.texts[0].S != o.GuideText || c.texts[0].X != o.GuideX || c.texts[0].Y != o.GuideY {
		t.Fatalf("guide = %+v", c.texts)
	}
	if !c.hasText(o.Heading) {
		t.Fatal("heading missing")
	}
	for i := 0; i < components.NumSubmenus; i++ {
		if !c.hasText(SubmenuLabel(i)) {
			t.Errorf("label %q missing", SubmenuLabel(i))
		}
	}
}

func TestOpenOverlayAt(t *testing.T) {
	fakes := withFakeSubmenus(t)
	e := newTestECS()

	OpenOverlayAt(e, 2)
	if got := GetOrCreateOverlay(e).State; got != components.MenuAction {
		t.Fatalf("state = %v, want MenuAction", got)
	}
	if fakes[2].opens != 1 {
		t.Fatalf("opens = %d", fakes[2].opens)
	}
}

func TestWithOverlayFocus(t *testing.T) {
	e := newTestECS()
	var seen []bool
	system := WithOverlayFocus(func(e *ecs.ECS) {
		seen = append(seen, GetAction(getOrCreateInput(e), cfg.ActionMoveRight).Pressed)
	})

	step(e, cfg.ActionMoveRight)
	system(e)
	GetOrCreateOverlay(e).State = components.MenuSelect
	system(e)

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("seen = %v, want [true false]", seen)
	}
	if !GetAction(getOrCreateInput(e), cfg.ActionMoveRight).Pressed {
		t.Fatal("input not restored for the overlay")
	}
}

func TestPauseForcesOverlayClosed(t *testing.T) {
	e := newTestECS()
	c := &recordingCanvas{}
	openOverlay(t, e, c)

	step(e, cfg.ActionPause)
	UpdatePause(e)
	ActivateOverlay(e)
	UpdateOverlay(e)
	RenderOverlay(e, c)

	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("not paused")
	}
	if IsOverlayActive(e) {
		t.Fatal("overlay still active under pause")
	}
}

func TestSubmenuRegistryMatchesLabels(t *testing.T) {
	if len(cfg.Submenus) != components.NumSubmenus {
		t.Fatalf("%d labels for %d submenus", len(cfg.Submenus), components.NumSubmenus)
	}
	for i := 0; i < components.NumSubmenus; i++ {
		if _, ok := submenuFor(components.MenuStateFromIndex(i)); !ok {
			t.Errorf("no submenu at index %d", i)
		}
	}
	if _, ok := SubmenuIndexByName("cheats"); !ok {
		t.Error("cheats not found by name")
	}
}
