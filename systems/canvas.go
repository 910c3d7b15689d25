package systems

import (
	"image/color"

	"github.com/automoto/doomerang-practice/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the render boundary the overlay draws through. Coordinates are
// screen pixels; DrawText positions the top-left corner of the line.
type Canvas interface {
	FillRect(x, y, w, h float32, c color.RGBA)
	DrawText(s string, x, y float32, fg, bg color.RGBA)
}

type screenCanvas struct {
	screen *ebiten.Image
	font   fonts.FontName
}

// NewScreenCanvas draws onto an ebiten frame with the regular overlay font.
func NewScreenCanvas(screen *ebiten.Image) Canvas {
	return &screenCanvas{screen: screen, font: fonts.Regular}
}

func (c *screenCanvas) FillRect(x, y, w, h float32, col color.RGBA) {
	vector.FillRect(c.screen, x, y, w, h, col, false)
}

func (c *screenCanvas) DrawText(s string, x, y float32, fg, bg color.RGBA) {
	face := c.font.Get()
	ascent := face.Metrics().Ascent.Ceil()
	if bg.A > 0 {
		bounds := text.BoundString(face, s)
		c.FillRect(x-2, y, float32(bounds.Dx())+4, float32(face.Metrics().Height.Ceil()), bg)
	}
	text.Draw(c.screen, s, face, int(x), int(y)+ascent, fg)
}
