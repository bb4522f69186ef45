package manifest

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
	"github.com/1F47E/go-pixelreel/internal/logger"
	"github.com/1F47E/go-pixelreel/internal/storage"
)

// Config is the resolved playback metadata for one asset.
type Config struct {
	Width  int
	Height int
	FPS    int
	Frames int // 0 means unknown, player falls back to physical EOF
	Loop   bool
}

// Defaults returns the config assumed when nothing else is known.
func Defaults() Config {
	return Config{
		Width:  cfg.DefaultWidth,
		Height: cfg.DefaultHeight,
		FPS:    cfg.DefaultFPS,
		Loop:   true,
	}
}

// FrameSize is the byte size of a single raw frame.
func (c Config) FrameSize() int64 {
	return int64(c.Width) * int64(c.Height) * cfg.SizePixel
}

// Resolve finds and parses the manifest next to an asset.
// Lookup order: <name>_manifest.txt, then manifest.txt in the same dir.
// Never fails - a missing or broken manifest must not block playback,
// so the worst case is defaults with the frame count estimated from
// the asset file size.
func Resolve(assetPath string) Config {
	log := logger.Log.WithField("scope", "manifest")
	c := Defaults()

	for _, path := range candidates(assetPath) {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		log.Debugf("reading manifest %s", path)
		parse(f, &c)
		_ = f.Close()
		return c
	}

	// no manifest, estimate the frame count from the asset size
	log.Debug("no manifest found, using defaults")
	size, err := storage.FileSize(assetPath)
	if err != nil {
		log.Debugf("cannot probe asset size: %v", err)
		return c
	}
	c.Frames = int(size / c.FrameSize())
	log.Debugf("estimated %d frames from file size", c.Frames)
	return c
}

func candidates(assetPath string) []string {
	ext := filepath.Ext(assetPath)
	sidecar := strings.TrimSuffix(assetPath, ext) + cfg.ManifestSuffix
	generic := filepath.Join(filepath.Dir(assetPath), cfg.ManifestGenericName)
	return []string{sidecar, generic}
}

// parse reads key=value lines into c. Blank lines, comments and lines
// without a single '=' are skipped. Unknown keys are ignored so newer
// converters can add fields without breaking old players. Values that
// fail to parse as integers coerce to 0 on purpose.
func parse(f *os.File, c *Config) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		switch key {
		case "width":
			c.Width = val
		case "height":
			c.Height = val
		case "fps":
			c.FPS = val
		case "frames":
			c.Frames = val
		case "loop":
			c.Loop = val != 0
		}
	}
}
