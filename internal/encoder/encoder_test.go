package encoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPackPixel(t *testing.T) {
	testCases := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0x00, 0x00, 0x00, 0x0000},
		{"white", 0xff, 0xff, 0xff, 0xffff},
		{"red", 0xff, 0x00, 0x00, 0xf800},
		{"green", 0x00, 0xff, 0x00, 0x07e0},
		{"blue", 0x00, 0x00, 0xff, 0x001f},
		{"mid gray", 0x80, 0x80, 0x80, 0x8410},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := PackPixel(tc.r, tc.g, tc.b)
			got := uint16(hi)<<8 | uint16(lo)
			if got != tc.want {
				t.Errorf("got %04x, want %04x", got, tc.want)
			}
		})
	}
}

func TestEncodeFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff}) // red
	img.Set(1, 0, color.RGBA{B: 0xff, A: 0xff}) // blue

	got, err := NewFrameEncoder(2, 1).EncodeFrame(img)
	if err != nil {
		t.Fatal(err)
	}
	// little endian, red then blue
	want := []byte{0x00, 0xf8, 0x1f, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestEncodeFrameWrongGeometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	if _, err := NewFrameEncoder(2, 2).EncodeFrame(img); err == nil {
		t.Fatal("expected geometry mismatch error")
	}
}
