package pattern

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// gradImage adapts a slice of colorful pixels to image.Image so the
// frame encoder can pack it like any extracted video frame.
type gradImage struct {
	width  int
	height int
	pixels []colorful.Color
}

func (g *gradImage) ColorModel() color.Model { return color.RGBAModel }

func (g *gradImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

func (g *gradImage) At(x, y int) color.Color {
	r, gr, b := g.pixels[y*g.width+x].Clamped().RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: 0xff}
}
