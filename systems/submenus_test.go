package systems

import (
	"testing"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/assets"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// press runs one HandleInput with the given actions newly pressed.
func press(e *ecs.ECS, m Submenu, held ...cfg.ActionID) {
	step(e)
	step(e, held...)
	m.HandleInput(e)
}

func TestSubmenusOpenIdempotentAndClose(t *testing.T) {
	for i, m := range submenus {
		e := newTestECS()
		m.Open(e)
		m.Open(e)
		if !m.IsOpen(e) {
			t.Errorf("submenu %d not open", i)
		}
		m.Close(e)
		if m.IsOpen(e) {
			t.Errorf("submenu %d still open after Close", i)
		}
	}
}

func TestSubmenusCloseOnBack(t *testing.T) {
	for i, m := range submenus {
		e := newTestECS()
		m.Open(e)
		press(e, m, cfg.ActionMenuBack)
		if m.IsOpen(e) {
			t.Errorf("submenu %d ignored Back", i)
		}
	}
}

func TestSubmenusWithoutActor(t *testing.T) {
	// Every submenu must render and take input with no player loaded
	for i, m := range submenus {
		e := newTestECS()
		testLevel(e, assets.WarpPoint{Name: "A", X: 10, Y: 10})
		m.Open(e)
		for _, id := range []cfg.ActionID{cfg.ActionMenuSelect, cfg.ActionMenuLeft, cfg.ActionMenuRight, cfg.ActionMenuDown} {
			press(e, m, id)
		}
		m.Render(e, &recordingCanvas{})
		if _, ok := AcquireActor(e); ok {
			t.Errorf("submenu %d loaded an actor", i)
		}
	}
}

func TestWarpWritesDestination(t *testing.T) {
	e := newTestECS()
	dest := assets.WarpPoint{Name: "Ledge", Area: "Ledges", X: 300, Y: 280, Facing: -16384}
	testLevel(e, assets.WarpPoint{Name: "Spawn", X: 48, Y: 424}, dest)
	view := bindActor(t, e, 40, 400)
	view.SetVelocity(gamemath.Vec3f{X: 3, Y: -2})
	view.SetForwardSpeed(3)
	opaque := view.OpaqueChecksum()

	m := WarpMenu{}
	m.Open(e)
	press(e, m, cfg.ActionMenuDown)
	press(e, m, cfg.ActionMenuSelect)

	if got, want := view.Pos(), warpPosition(dest); got != want {
		t.Fatalf("pos = %+v, want %+v", got, want)
	}
	if view.Velocity() != (gamemath.Vec3f{}) || view.ForwardSpeed() != 0 {
		t.Fatal("warp left the actor moving")
	}
	if view.Angle().Y != dest.Facing {
		t.Fatalf("facing = %d, want %d", view.Angle().Y, dest.Facing)
	}
	if view.OpaqueChecksum() != opaque {
		t.Fatal("warp touched opaque bytes")
	}
}

func TestWarpMarksHereAndMissingPlayer(t *testing.T) {
	e := newTestECS()
	here := assets.WarpPoint{Name: "Here", X: 100, Y: 400}
	far := assets.WarpPoint{Name: "Far", X: 500, Y: 400}
	testLevel(e, here, far)

	m := WarpMenu{}
	m.Open(e)

	c := &recordingCanvas{}
	m.Render(e, c)
	if !c.hasText(noPlayerLoaded) || c.hasText("(here)") {
		t.Fatal("without a player the menu must say so and mark nothing")
	}

	pos := warpPosition(here)
	bindActor(t, e, pos.X+5, pos.Y-100)
	c.reset()
	m.Render(e, c)
	hereCount := 0
	for _, txt := range c.texts {
		if txt.S == "(here)" {
			hereCount++
		}
	}
	if hereCount != 1 {
		t.Fatalf("(here) drawn %d times, want 1", hereCount)
	}
}

func TestWarpCopiesPosition(t *testing.T) {
	e := newTestECS()
	testLevel(e)
	bindActor(t, e, 1.5, 2)

	var copied string
	saved := copyText
	copyText = func(s string) bool { copied = s; return true }
	t.Cleanup(func() { copyText = saved })

	m := WarpMenu{}
	m.Open(e)
	press(e, m, cfg.ActionMenuRight)
	if copied != "1.500, 2.000, 0.000" {
		t.Fatalf("copied %q", copied)
	}
}

func TestScrollToCursor(t *testing.T) {
	tests := []struct {
		scroll, cursor, rows, n, want int
	}{
		{0, 0, 5, 3, 0},
		{0, 4, 5, 10, 0},
		{0, 5, 5, 10, 1},
		{3, 1, 5, 10, 1},
		{0, 9, 5, 10, 5},
	}
	for _, tt := range tests {
		if got := scrollToCursor(tt.scroll, tt.cursor, tt.rows, tt.n); got != tt.want {
			t.Errorf("scrollToCursor(%d, %d, %d, %d) = %d, want %d", tt.scroll, tt.cursor, tt.rows, tt.n, got, tt.want)
		}
	}
}

func TestActionStoreRestoreAndToggle(t *testing.T) {
	e := newTestECS()
	view := bindActor(t, e, 50, 60)
	m := ActionMenu{}
	m.Open(e)

	press(e, m, cfg.ActionMenuSelect) // store
	view.SetPos(gamemath.Vec3f{X: 300, Y: 10})
	view.SetVelocity(gamemath.Vec3f{X: 1, Y: 1})

	press(e, m, cfg.ActionMenuDown)
	press(e, m, cfg.ActionMenuSelect) // restore
	if got := view.Pos(); got != (gamemath.Vec3f{X: 50, Y: 60}) {
		t.Fatalf("restored pos = %+v", got)
	}
	if view.Velocity() != (gamemath.Vec3f{}) {
		t.Fatal("restore left velocity")
	}

	view.SetStamina(0)
	press(e, m, cfg.ActionMenuDown)
	press(e, m, cfg.ActionMenuSelect) // refill
	if view.Stamina() != cfg.Host.StaminaMax {
		t.Fatalf("stamina = %d", view.Stamina())
	}

	mem := view.Bytes()
	GetOrCreateActionMenu(e).Cursor = int(components.ActionOptToggleActor)
	press(e, m, cfg.ActionMenuSelect)
	if _, ok := AcquireActor(e); ok {
		t.Fatal("player still loaded")
	}
	press(e, m, cfg.ActionMenuSelect)
	reloaded, ok := AcquireActor(e)
	if !ok || &reloaded.Bytes()[0] != &mem[0] {
		t.Fatal("player not reloaded with the same block")
	}
}

func TestCheatsApplyAndRestore(t *testing.T) {
	e := newTestECS()
	view := bindActor(t, e, 0, 0)
	base := view.ForwardMaxSpeed()

	cheats := GetOrCreateCheats(e)
	cheats.Enabled[components.CheatInfiniteStamina] = true
	cheats.Enabled[components.CheatFastRun] = true
	view.SetStamina(5)
	UpdateCheats(e)

	if view.Stamina() != cfg.Host.StaminaMax {
		t.Fatal("infinite stamina not applied")
	}
	if view.ForwardMaxSpeed() != cfg.Cheats.FastRunMaxSpeed {
		t.Fatal("fast run not applied")
	}

	cheats.Enabled[components.CheatFastRun] = false
	UpdateCheats(e)
	if view.ForwardMaxSpeed() != base {
		t.Fatalf("max speed = %v, want %v", view.ForwardMaxSpeed(), base)
	}
}

func TestFastRunAcrossPracticeSlots(t *testing.T) {
	e := newTestECS()
	view := bindActor(t, e, 0, 0)
	base := view.ForwardMaxSpeed()
	cheats := GetOrCreateCheats(e)
	m := PracticeSavesMenu{}
	m.Open(e)
	p := GetOrCreatePracticeSavesMenu(e)

	// Save while fast run is on, then load it with fast run off.
	cheats.Enabled[components.CheatFastRun] = true
	UpdateCheats(e)
	press(e, m, cfg.ActionMenuRight)
	if got := p.Slots[0].Snapshot.ForwardMaxSpeed; got != base {
		t.Fatalf("saved max speed = %v, want base %v", got, base)
	}

	cheats.Enabled[components.CheatFastRun] = false
	UpdateCheats(e)
	press(e, m, cfg.ActionMenuSelect)
	UpdateCheats(e)
	if view.ForwardMaxSpeed() != base {
		t.Fatalf("max speed after load = %v, want %v", view.ForwardMaxSpeed(), base)
	}

	// A slow slot loaded under fast run keeps the override and becomes the
	// value restored when fast run goes off.
	view.SetForwardMaxSpeed(2)
	press(e, m, cfg.ActionMenuRight)
	view.SetForwardMaxSpeed(base)

	cheats.Enabled[components.CheatFastRun] = true
	UpdateCheats(e)
	press(e, m, cfg.ActionMenuSelect)
	UpdateCheats(e)
	if view.ForwardMaxSpeed() != cfg.Cheats.FastRunMaxSpeed {
		t.Fatalf("max speed = %v with fast run on", view.ForwardMaxSpeed())
	}

	cheats.Enabled[components.CheatFastRun] = false
	UpdateCheats(e)
	if view.ForwardMaxSpeed() != 2 {
		t.Fatalf("max speed = %v, want the loaded slot's 2", view.ForwardMaxSpeed())
	}
}

func TestCheatsMoonJumpOnlyOutsideOverlay(t *testing.T) {
	e := newTestECS()
	view := bindActor(t, e, 0, 0)
	GetOrCreateCheats(e).Enabled[components.CheatMoonJump] = true

	GetOrCreateOverlay(e).State = components.MenuCheats
	step(e, cfg.ActionJump)
	UpdateCheats(e)
	if view.Velocity().Y != 0 {
		t.Fatal("moon jump applied while overlay active")
	}

	GetOrCreateOverlay(e).State = components.MenuOff
	UpdateCheats(e)
	if view.Velocity().Y != cfg.Cheats.MoonJumpSpeed {
		t.Fatalf("vel.Y = %v", view.Velocity().Y)
	}
}

func TestCheatsCloseReleasesJump(t *testing.T) {
	e := newTestECS()
	m := CheatsMenu{}
	m.Open(e)
	step(e, cfg.ActionJump)
	m.Close(e)
	if GetAction(getOrCreateInput(e), cfg.ActionJump).Pressed {
		t.Fatal("Jump still pressed after close")
	}
	step(e, cfg.ActionJump)
	if GetAction(getOrCreateInput(e), cfg.ActionJump).Pressed {
		t.Fatal("held Jump leaked after close")
	}
}

func TestCheatsToggle(t *testing.T) {
	e := newTestECS()
	m := CheatsMenu{}
	m.Open(e)
	press(e, m, cfg.ActionMenuDown)
	press(e, m, cfg.ActionMenuRight)
	if !GetOrCreateCheats(e).Enabled[components.CheatMoonJump] {
		t.Fatal("moon jump not toggled")
	}
}

func TestPracticeSavesInMemory(t *testing.T) {
	e := newTestECS()
	view := bindActor(t, e, 10, 20)
	m := PracticeSavesMenu{}
	m.Open(e)

	p := GetOrCreatePracticeSavesMenu(e)
	if len(p.Slots) != cfg.PracticeSaves.Slots {
		t.Fatalf("slots = %d", len(p.Slots))
	}

	press(e, m, cfg.ActionMenuRight)
	if !p.Slots[0].Used {
		t.Fatal("slot not saved")
	}

	view.SetPos(gamemath.Vec3f{X: 99})
	press(e, m, cfg.ActionMenuSelect)
	if view.Pos() != (gamemath.Vec3f{X: 10, Y: 20}) {
		t.Fatalf("loaded pos = %+v", view.Pos())
	}

	press(e, m, cfg.ActionMenuLeft)
	if p.Slots[0].Used {
		t.Fatal("slot not cleared")
	}
	press(e, m, cfg.ActionMenuSelect)
	if p.Status != "Slot is empty" {
		t.Fatalf("status = %q", p.Status)
	}
}

func TestFlagEditorTogglesBit(t *testing.T) {
	e := newTestECS()
	flags := make([]byte, 4)
	entry := e.World.Entry(e.World.Create(components.GameFlags))
	components.GameFlags.SetValue(entry, components.GameFlagsData{Bytes: flags})

	m := FlagMenu{}
	m.Open(e)
	press(e, m, cfg.ActionMenuDown)
	press(e, m, cfg.ActionMenuRight)
	press(e, m, cfg.ActionMenuRight)
	press(e, m, cfg.ActionMenuSelect)

	if flags[1] != 0x20 {
		t.Fatalf("flags = % X", flags)
	}

	c := &recordingCanvas{}
	m.Render(e, c)
	if !c.hasText("Flag 10: ON") {
		t.Fatalf("footer missing: %+v", c.texts)
	}

	press(e, m, cfg.ActionMenuLeft)
	press(e, m, cfg.ActionMenuLeft)
	press(e, m, cfg.ActionMenuLeft)
	if got := GetOrCreateFlagMenu(e).Bit; got != 7 {
		t.Fatalf("bit = %d, want 7 after wrapping", got)
	}
}

func TestFormatFlagBits(t *testing.T) {
	if got := formatFlagBits(0xA1, 2); got != "10[1]00001" {
		t.Fatalf("got %q", got)
	}
	if got := formatFlagBits(0x01, -1); got != "00000001" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayTogglesDriveHUD(t *testing.T) {
	e := newTestECS()
	m := DisplayMenu{}
	m.Open(e)
	press(e, m, cfg.ActionMenuDown)
	press(e, m, cfg.ActionMenuSelect)
	if !GetOrCreateDisplayMenu(e).Enabled[components.DisplayOptPosition] {
		t.Fatal("position toggle not set")
	}
	m.Close(e)

	c := &recordingCanvas{}
	RenderHUD(e, c)
	if !c.hasText(noPlayerLoaded) {
		t.Fatal("HUD must report a missing player")
	}

	bindActor(t, e, 1, 2)
	c.reset()
	RenderHUD(e, c)
	if !c.hasText("Pos 1.00 2.00 0.00") {
		t.Fatalf("HUD = %+v", c.texts)
	}
}

func TestApplySavedDisplay(t *testing.T) {
	var d components.DisplayMenuData
	ApplySavedDisplay(&d, &SavedDisplay{Enabled: []bool{true, false, true, false, false, false, true, true}})
	if !d.Enabled[0] || !d.Enabled[2] || d.Enabled[1] {
		t.Fatalf("enabled = %v", d.Enabled)
	}
	ApplySavedDisplay(&d, nil)
}

func TestChecksumLineUsesOpaqueBytes(t *testing.T) {
	mem := make([]byte, actor.Size)
	var slot actor.Slot
	if err := slot.Bind(mem); err != nil {
		t.Fatal(err)
	}
	view, _ := slot.Acquire()
	before := checksumLine(view)
	view.SetPos(gamemath.Vec3f{X: 1})
	if checksumLine(view) != before {
		t.Fatal("field write changed the opaque checksum")
	}
}
