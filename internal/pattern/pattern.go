// Procedural test assets for exercising the player without real video.
package pattern

import (
	"math"
	"os"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
	"github.com/1F47E/go-pixelreel/internal/encoder"
	"github.com/1F47E/go-pixelreel/internal/logger"
	"github.com/1F47E/go-pixelreel/internal/manifest"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}
	return colorful.Hcl(g[len(g)-1].Hue, 1.0, 0.05)
}

// rainbow covers the full hue circle.
var rainbow = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},
	{87.0, 0.14},
	{88.0, 0.28},
	{98.0, 0.42},
	{180.0, 0.56},
	{190.0, 0.70},
	{320.0, 0.84},
	{328.0, 0.91},
	{360.0, 1.0},
}

// scrollLut eases the per-frame scroll offset so the animation
// accelerates out of and into the loop point instead of jumping.
func scrollLut(frames int) []float64 {
	lut := make([]float64, frames)
	for i := range lut {
		lut[i] = ease.InOutQuad(float64(i) / float64(frames))
	}
	return lut
}

// Generate writes a scrolling-gradient asset plus its manifest. The
// animation wraps seamlessly at the loop point.
func Generate(path string, width, height, fps, frames int) error {
	log := logger.Log.WithField("scope", "pattern")

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := encoder.NewFrameEncoder(width, height)
	lut := scrollLut(frames)
	for i := 0; i < frames; i++ {
		data, err := enc.EncodeFrame(gradientFrame(width, height, lut[i]))
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}

	conf := manifest.Config{Width: width, Height: height, FPS: fps, Frames: frames, Loop: true}
	if err := manifest.Write(path, conf); err != nil {
		return err
	}

	log.Infof("generated %s: %d frames, %dx%d@%d, %d bytes/frame",
		path, frames, width, height, fps, width*height*cfg.SizePixel)
	return nil
}

// gradientFrame renders the rainbow scrolled vertically by offset 0..1.
func gradientFrame(width, height int, offset float64) *gradImage {
	img := &gradImage{width: width, height: height, pixels: make([]colorful.Color, width*height)}
	for y := 0; y < height; y++ {
		t := math.Mod(float64(y)/float64(height)+offset, 1.0)
		c := rainbow.GetColor(t, 1.0, 0.3)
		for x := 0; x < width; x++ {
			img.pixels[y*width+x] = c
		}
	}
	return img
}
