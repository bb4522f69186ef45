// Video to raw RGB565 asset conversion.
package convert

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/1F47E/go-pixelreel/internal/encoder"
	"github.com/1F47E/go-pixelreel/internal/logger"
	"github.com/1F47E/go-pixelreel/internal/manifest"
	"github.com/1F47E/go-pixelreel/internal/storage"
	"github.com/1F47E/go-pixelreel/internal/video"
)

// Convert turns a video file into a playable .bin asset plus its
// sidecar manifest. ffmpeg does the scaling and resampling, we do the
// RGB565 packing frame by frame.
func Convert(ctx context.Context, videoPath, outPath string, width, height, fps int) error {
	log := logger.Log.WithField("scope", "convert")

	framesDir, err := storage.CreateFramesDir()
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.RemoveFramesDir(); err != nil {
			log.Warnf("cannot clean up frames dir: %v", err)
		}
	}()

	log.Infof("extracting frames from %s", videoPath)
	err = video.ExtractFrames(ctx, videoPath, framesDir, width, height, fps)
	if err != nil {
		return fmt.Errorf("error extracting frames: %w", err)
	}

	filesList, err := storage.ScanFrames(framesDir)
	if err != nil {
		return err
	}
	log.Debugf("total frames: %d", len(filesList))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating asset: %w", err)
	}
	defer out.Close()

	enc := encoder.NewFrameEncoder(width, height)
	bar := progressbar.NewOptions(len(filesList),
		progressbar.OptionSetDescription("Converting... "),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]/[reset]",
			SaucerHead:    "[green]/[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	frameCnt := 0
	for _, file := range filesList {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		data, err := encodeFile(enc, file)
		if err != nil {
			return fmt.Errorf("frame %s: %w", file, err)
		}
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("error writing asset: %w", err)
		}
		frameCnt++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	conf := manifest.Config{Width: width, Height: height, FPS: fps, Frames: frameCnt, Loop: true}
	if err := manifest.Write(outPath, conf); err != nil {
		return fmt.Errorf("error writing manifest: %w", err)
	}

	log.Infof("saved %s: %d frames, %dx%d@%d", outPath, frameCnt, width, height, fps)
	return nil
}

func encodeFile(enc *encoder.FrameEncoder, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return enc.EncodeFrame(img)
}
