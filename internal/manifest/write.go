package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
)

// SidecarPath derives the manifest path for an asset,
// eg. burger.bin -> burger_manifest.txt.
func SidecarPath(assetPath string) string {
	ext := filepath.Ext(assetPath)
	return strings.TrimSuffix(assetPath, ext) + cfg.ManifestSuffix
}

// Write saves a sidecar manifest next to an asset.
func Write(assetPath string, c Config) error {
	f, err := os.Create(SidecarPath(assetPath))
	if err != nil {
		return err
	}
	defer f.Close()

	loop := 0
	if c.Loop {
		loop = 1
	}
	_, err = fmt.Fprintf(f, "# Manifest for %s\nwidth=%d\nheight=%d\nfps=%d\nframes=%d\nloop=%d\n",
		filepath.Base(assetPath), c.Width, c.Height, c.FPS, c.Frames, loop)
	return err
}
