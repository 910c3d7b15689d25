package systems

import (
	"image/color"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// listEntry is one row of a list menu
type listEntry struct {
	Label    string
	Value    string
	Disabled bool
}

// listMenu is a vertical list with a heading and a cursor. It is rebuilt
// every frame from the owner's state; only the cursor is persisted by the
// owner.
type listMenu struct {
	Heading string
	Entries []listEntry
	Cursor  int
	Footer  string
}

func (m *listMenu) add(label string) {
	m.Entries = append(m.Entries, listEntry{Label: label})
}

func (m *listMenu) addValue(label, value string) {
	m.Entries = append(m.Entries, listEntry{Label: label, Value: value})
}

func (m *listMenu) addDisabled(label string) {
	m.Entries = append(m.Entries, listEntry{Label: label, Disabled: true})
}

// draw renders the list. blink scales the selected row's alpha.
func (m *listMenu) draw(c Canvas, blink float32) {
	o := cfg.Overlay
	y := o.ListY
	if m.Heading != "" {
		c.DrawText(m.Heading, o.ListX, y, o.HeadingColor, o.TextBackground)
		y += o.LineHeight * 1.5
	}

	for i, entry := range m.Entries {
		col := o.TextColorNormal
		prefix := "  "
		switch {
		case entry.Disabled:
			col = o.TextColorDisabled
		case i == m.Cursor:
			col = scaleAlpha(o.TextColorSelected, blink)
			prefix = "> "
		}
		c.DrawText(prefix+entry.Label, o.ListX, y, col, o.TextBackground)
		if entry.Value != "" {
			c.DrawText(entry.Value, o.ListX+260, y, col, o.TextBackground)
		}
		y += o.LineHeight
	}

	if m.Footer != "" {
		c.DrawText(m.Footer, o.ListX, y+o.LineHeight/2, o.HeadingColor, o.TextBackground)
	}
}

// moveCursor returns the cursor after this frame's Up/Down input, wrapping
// around in [0, n).
func moveCursor(input *components.InputData, cursor, n int) int {
	if n <= 0 {
		return 0
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		cursor = (cursor - 1 + n) % n
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		cursor = (cursor + 1) % n
	}
	return clampIndex(cursor, n)
}

// stepValue returns -1, 0 or +1 from this frame's Left/Right input.
func stepValue(input *components.InputData) int {
	step := 0
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		step--
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		step++
	}
	return step
}

func clampIndex(i, n int) int {
	if i < 0 || n <= 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func scaleAlpha(c color.RGBA, f float32) color.RGBA {
	if f >= 1 {
		return c
	}
	if f < 0 {
		f = 0
	}
	// Premultiplied: scale every channel
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: uint8(float32(c.A) * f),
	}
}

// updateCursorBlink advances the highlight pulse by one frame and returns
// the current alpha factor. Only ever called from render passes.
func updateCursorBlink(e *ecs.ECS) float32 {
	entry, ok := components.CursorBlink.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.CursorBlink))
		components.CursorBlink.SetValue(entry, components.CursorBlinkData{Value: 1})
	}
	blink := components.CursorBlink.Get(entry)

	if cfg.Overlay.BlinkPeriod <= 0 {
		blink.Value = 1
		return 1
	}
	if blink.Tween == nil {
		blink.Tween = newBlinkTween(blink.Fading)
	}

	value, finished := blink.Tween.Update(1 / float32(cfg.C.TPS))
	blink.Value = value
	if finished {
		blink.Fading = !blink.Fading
		blink.Tween = newBlinkTween(blink.Fading)
	}
	return blink.Value
}

func newBlinkTween(fading bool) *gween.Tween {
	lo, hi := cfg.Overlay.BlinkMin, float32(1)
	if fading {
		return gween.New(hi, lo, cfg.Overlay.BlinkPeriod, ease.InOutSine)
	}
	return gween.New(lo, hi, cfg.Overlay.BlinkPeriod, ease.InOutSine)
}
