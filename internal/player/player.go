package player

import (
	"errors"
	"fmt"
	"io"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
	"github.com/1F47E/go-pixelreel/internal/display"
	"github.com/1F47E/go-pixelreel/internal/logger"
	"github.com/1F47E/go-pixelreel/internal/manifest"
	"github.com/1F47E/go-pixelreel/internal/storage"
)

// ErrFinished signals normal end of a non-looping asset.
// Anything else returned by PlayFrame is a real stream fault.
var ErrFinished = errors.New("playback finished")

// Player streams raw RGB565 frames from an asset file to a display
// sink, one frame per PlayFrame call. Frames never fit in memory whole,
// so each one goes out in bands of ChunkRows rows through a single
// scratch buffer allocated once for the player's lifetime.
//
// Not safe for concurrent use. The caller paces PlayFrame at
// FrameIntervalMs, the player itself never sleeps.
type Player struct {
	sink display.Sink
	open func(string) (storage.Asset, error)

	conf     manifest.Config
	asset    storage.Asset
	playing  bool
	current  int
	chunkBuf []byte
}

func New(sink display.Sink) *Player {
	return &Player{
		sink:     sink,
		open:     storage.Open,
		chunkBuf: make([]byte, cfg.SizeChunkBuf),
	}
}

// Load binds the player to an asset and starts it playing. Any
// previously loaded asset is unloaded first. Manifest problems never
// block a load, only an unopenable or absurdly shaped asset does.
func (p *Player) Load(path string) error {
	log := logger.Log.WithField("scope", "player")
	p.Unload()

	conf := manifest.Resolve(path)
	if conf.Width <= 0 || conf.Height <= 0 || conf.FPS <= 0 {
		return fmt.Errorf("bad geometry %dx%d@%d in %s", conf.Width, conf.Height, conf.FPS, path)
	}
	// anything above 1000 fps truncates to a zero polling interval
	if 1000/conf.FPS == 0 {
		return fmt.Errorf("fps %d in %s leaves no frame interval", conf.FPS, path)
	}
	if conf.Width*cfg.ChunkRows*cfg.SizePixel > len(p.chunkBuf) {
		return fmt.Errorf("frame width %d exceeds chunk buffer (max %d)", conf.Width, cfg.MaxFrameWidth)
	}

	asset, err := p.open(path)
	if err != nil {
		return fmt.Errorf("error opening asset: %w", err)
	}

	p.conf = conf
	p.asset = asset
	p.current = 0
	p.playing = true
	log.Debugf("loaded %s: %dx%d@%d, %d frames, loop=%v",
		path, conf.Width, conf.Height, conf.FPS, conf.Frames, conf.Loop)
	return nil
}

// Unload releases the asset and resets the session. Safe to call in
// any state, any number of times.
func (p *Player) Unload() {
	if p.asset != nil {
		_ = p.asset.Close()
		p.asset = nil
	}
	p.playing = false
	p.current = 0
}

// PlayFrame streams exactly one frame to the sink. Returns ErrFinished
// when a non-looping asset runs out, which is not a fault. A looping
// asset wraps and serves the first frame of the next pass in the same
// call, so the loop point never drops a frame.
func (p *Player) PlayFrame() error {
	if p.asset == nil || !p.playing {
		return errors.New("nothing playing")
	}

	// End of stream fires on the declared frame count or on physical
	// EOF, whichever comes first. The count carries the intent, the
	// file position guards against a stale or wrong manifest.
	declared := p.conf.Frames > 0 && p.current >= p.conf.Frames
	physical := p.asset.Position() >= p.asset.Size()
	if declared || physical {
		if !p.conf.Loop {
			p.playing = false
			return ErrFinished
		}
		if err := p.asset.Rewind(); err != nil {
			return fmt.Errorf("error rewinding asset: %w", err)
		}
		p.current = 0
	}

	rowBytes := p.conf.Width * cfg.SizePixel
	for y := 0; y < p.conf.Height; y += cfg.ChunkRows {
		rows := cfg.ChunkRows
		if left := p.conf.Height - y; rows > left {
			rows = left
		}
		band := p.chunkBuf[:rows*rowBytes]
		if _, err := io.ReadFull(p.asset, band); err != nil {
			return fmt.Errorf("short read at frame %d row %d: %w", p.current, y, err)
		}
		if err := p.sink.Blit(0, y, p.conf.Width, rows, band); err != nil {
			return fmt.Errorf("blit at frame %d row %d: %w", p.current, y, err)
		}
	}

	p.current++
	return nil
}

func (p *Player) IsPlaying() bool { return p.playing }
func (p *Player) Width() int { return p.conf.Width }
func (p *Player) Height() int { return p.conf.Height }
func (p *Player) FPS() int { return p.conf.FPS }
func (p *Player) TotalFrames() int { return p.conf.Frames }
func (p *Player) CurrentFrame() int { return p.current }
func (p *Player) Loop() bool { return p.conf.Loop }
func (p *Player) SetLoop(loop bool) { p.conf.Loop = loop }

// FrameIntervalMs is the caller's polling interval. Integer division
// truncates, so rates that don't divide 1000 drift over long runs.
// The device ecosystem expects exactly this behavior, no compensation.
func (p *Player) FrameIntervalMs() int {
	return 1000 / p.conf.FPS
}
