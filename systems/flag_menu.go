package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi/ecs"
)

// FlagMenu edits the host's game flag bits. Bit 0 of a byte is its most
// significant bit, so flag n is bit n%8 of byte n/8.
type FlagMenu struct{}

func (FlagMenu) Open(e *ecs.ECS) {
	GetOrCreateFlagMenu(e).IsOpen = true
}

func (FlagMenu) Close(e *ecs.ECS) {
	GetOrCreateFlagMenu(e).IsOpen = false
}

func (FlagMenu) IsOpen(e *ecs.ECS) bool {
	return GetOrCreateFlagMenu(e).IsOpen
}

func (m FlagMenu) HandleInput(e *ecs.ECS) {
	f := GetOrCreateFlagMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		m.Close(e)
		return
	}

	flags := GetGameFlags(e)
	if len(flags) == 0 {
		return
	}

	f.Byte = moveCursor(input, f.Byte, len(flags))
	if step := stepValue(input); step != 0 {
		f.Bit = (f.Bit + step + 8) % 8
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		flags[f.Byte] ^= flagMask(f.Bit)
	}
}

func (FlagMenu) Render(e *ecs.ECS, c Canvas) {
	f := GetOrCreateFlagMenu(e)
	flags := GetGameFlags(e)

	menu := listMenu{Heading: SubmenuLabel(5), Cursor: f.Byte}
	if len(flags) == 0 {
		menu.addDisabled("No game flags")
		menu.draw(c, updateCursorBlink(e))
		return
	}

	for i, b := range flags {
		bit := -1
		if i == f.Byte {
			bit = f.Bit
		}
		menu.addValue(fmt.Sprintf("Byte %02X", i), formatFlagBits(b, bit))
	}
	flag := f.Byte*8 + f.Bit
	menu.Footer = fmt.Sprintf("Flag %d: %s", flag, onOff(flags[f.Byte]&flagMask(f.Bit) != 0))
	menu.draw(c, updateCursorBlink(e))
}

// GetOrCreateFlagMenu returns the singleton flag editor state.
func GetOrCreateFlagMenu(e *ecs.ECS) *components.FlagMenuData {
	entry, ok := components.FlagMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.FlagMenu))
	}
	return components.FlagMenu.Get(entry)
}

func flagMask(bit int) byte {
	return 0x80 >> uint(bit)
}

// formatFlagBits renders b as bits, bracketing the selected bit if any.
func formatFlagBits(b byte, selected int) string {
	var sb strings.Builder
	for bit := 0; bit < 8; bit++ {
		ch := byte('0')
		if b&flagMask(bit) != 0 {
			ch = '1'
		}
		if bit == selected {
			sb.WriteByte('[')
			sb.WriteByte(ch)
			sb.WriteByte(']')
		} else {
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
