package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
	"github.com/1F47E/go-pixelreel/internal/convert"
	"github.com/1F47E/go-pixelreel/internal/display"
	"github.com/1F47E/go-pixelreel/internal/logger"
	"github.com/1F47E/go-pixelreel/internal/manifest"
	"github.com/1F47E/go-pixelreel/internal/pattern"
	"github.com/1F47E/go-pixelreel/internal/player"
	"github.com/1F47E/go-pixelreel/internal/storage"
)

var app = cli.NewApp()
var log = logger.Log

var geometryFlags = []cli.Flag{
	cli.IntFlag{Name: "width, w", Value: cfg.DefaultWidth, Usage: "frame width"},
	cli.IntFlag{Name: "height", Value: cfg.DefaultHeight, Usage: "frame height"},
	cli.IntFlag{Name: "fps, f", Value: cfg.DefaultFPS, Usage: "frame rate"},
}

func init() {
	app.Name = "pixelreel"
	app.Usage = "A raw RGB565 animation player"
	app.UsageText = "pixelreel [command] filename"
	app.HideHelp = true
	app.HideVersion = true
	app.ArgsUsage = ""
	app.Commands = []cli.Command{
		{
			Name:    "play",
			Aliases: []string{"p"},
			Usage:   "Play an asset file, or every asset under a dir",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config, c", Value: "config.yaml", Usage: "YAML settings file"},
				cli.StringFlag{Name: "sink, s", Value: "none", Usage: "display sink: mqtt, tft or none"},
				cli.BoolFlag{Name: "once", Usage: "force loop off, stop after one pass"},
			},
			Action: cmdPlay,
		},
		{
			Name:    "convert",
			Aliases: []string{"c"},
			Usage:   "Convert a video into a .bin asset with manifest",
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "out, o", Usage: "output asset path"},
			}, geometryFlags...),
			Action: cmdConvert,
		},
		{
			Name:  "pattern",
			Usage: "Generate a scrolling gradient test asset",
			Flags: append([]cli.Flag{
				cli.IntFlag{Name: "frames", Value: 60, Usage: "frame count"},
			}, geometryFlags...),
			Action: cmdPattern,
		},
		{
			Name:    "info",
			Aliases: []string{"i"},
			Usage:   "Print the resolved manifest of an asset",
			Action:  cmdInfo,
		},
	}
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

func cmdPlay(c *cli.Context) error {
	path, err := getFilename(c)
	if err != nil {
		return err
	}

	assets := []string{path}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		assets, err = storage.ScanAssets(path)
		if err != nil {
			return err
		}
		log.Infof("found %d assets", len(assets))
	}

	sink, err := newSink(c, assets)
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := player.New(sink)
	defer p.Unload()
	for _, asset := range assets {
		if err := playOne(ctx, p, asset, c.Bool("once")); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

// playOne drives the player at its frame interval until the asset
// finishes or the context is cancelled. Looping assets only end on
// interrupt.
func playOne(ctx context.Context, p *player.Player, path string, once bool) error {
	if err := p.Load(path); err != nil {
		return err
	}
	if once {
		p.SetLoop(false)
	}
	log.Infof("playing %s (%dx%d@%d, %d frames)", path, p.Width(), p.Height(), p.FPS(), p.TotalFrames())

	ticker := time.NewTicker(time.Duration(p.FrameIntervalMs()) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.Unload()
			return nil
		case <-ticker.C:
			err := p.PlayFrame()
			if errors.Is(err, player.ErrFinished) {
				log.Debugf("finished %s", path)
				return nil
			}
			if err != nil {
				p.Unload()
				return fmt.Errorf("playback failed: %w", err)
			}
		}
	}
}

func newSink(c *cli.Context, assets []string) (display.Sink, error) {
	name := c.String("sink")
	if name == "none" {
		return display.NopSink{}, nil
	}
	settings, err := cfg.LoadSettings(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("cannot read settings: %w", err)
	}
	switch name {
	case "mqtt":
		return display.NewMQTTSink(settings)
	case "tft":
		// the panel is configured once, so every asset in the batch
		// has to agree on geometry
		width, height, err := commonGeometry(assets)
		if err != nil {
			return nil, err
		}
		return display.NewTFTSink(settings, width, height)
	default:
		return nil, fmt.Errorf("unknown sink %q", name)
	}
}

// commonGeometry resolves every asset and returns the shared frame
// size, or an error when the batch mixes geometries.
func commonGeometry(assets []string) (int, int, error) {
	first := manifest.Resolve(assets[0])
	for _, asset := range assets[1:] {
		conf := manifest.Resolve(asset)
		if conf.Width != first.Width || conf.Height != first.Height {
			return 0, 0, fmt.Errorf("mixed geometry: %s is %dx%d, %s is %dx%d",
				assets[0], first.Width, first.Height, asset, conf.Width, conf.Height)
		}
	}
	return first.Width, first.Height, nil
}

func cmdConvert(c *cli.Context) error {
	filename, err := getFilename(c)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		ext := filepath.Ext(filename)
		out = strings.TrimSuffix(filename, ext) + cfg.AssetExt
	}
	return convert.Convert(context.Background(), filename, out,
		c.Int("width"), c.Int("height"), c.Int("fps"))
}

func cmdPattern(c *cli.Context) error {
	filename, err := getFilename(c)
	if err != nil {
		return err
	}
	return pattern.Generate(filename,
		c.Int("width"), c.Int("height"), c.Int("fps"), c.Int("frames"))
}

func cmdInfo(c *cli.Context) error {
	filename, err := getFilename(c)
	if err != nil {
		return err
	}
	conf := manifest.Resolve(filename)
	interval := 0
	if conf.FPS > 0 {
		interval = 1000 / conf.FPS
	}
	log.Infof("%s: %dx%d@%d, %d frames, loop=%v, %d bytes/frame, interval %dms",
		filename, conf.Width, conf.Height, conf.FPS, conf.Frames, conf.Loop,
		conf.FrameSize(), interval)
	return nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
