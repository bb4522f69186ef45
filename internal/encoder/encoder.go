package encoder

import (
	"fmt"
	"image"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
)

// FrameEncoder packs image frames into the raw RGB565 asset format:
// little endian, left to right, top to bottom, no headers.
type FrameEncoder struct {
	width  int
	height int
}

func NewFrameEncoder(width, height int) *FrameEncoder {
	return &FrameEncoder{width: width, height: height}
}

// EncodeFrame converts one frame. The frame must already be scaled to
// the encoder geometry, ffmpeg takes care of that during extraction.
func (e *FrameEncoder) EncodeFrame(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() != e.width || bounds.Dy() != e.height {
		return nil, fmt.Errorf("frame is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), e.width, e.height)
	}

	out := make([]byte, 0, e.width*e.height*cfg.SizePixel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lo, hi := PackPixel(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			out = append(out, lo, hi)
		}
	}
	return out, nil
}

// PackPixel converts 8-bit RGB to RGB565, returned low byte first.
// Layout: RRRRRGGG GGGBBBBB.
func PackPixel(r, g, b uint8) (lo, hi byte) {
	v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	return byte(v), byte(v >> 8)
}
