// Asset files access and scanning
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
)

// Asset is an open handle to a raw pixel file on the local block device.
// Size is cached at open time, Position is tracked across reads and seeks.
type Asset interface {
	io.Reader
	io.Closer
	// Rewind seeks back to the first byte of the stream.
	Rewind() error
	Position() int64
	Size() int64
}

type fileAsset struct {
	f    *os.File
	size int64
	pos  int64
}

// Open opens a playback asset and probes its size.
func Open(path string) (Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileAsset{f: f, size: info.Size()}, nil
}

func (a *fileAsset) Read(p []byte) (int, error) {
	n, err := a.f.Read(p)
	a.pos += int64(n)
	return n, err
}

func (a *fileAsset) Rewind() error {
	_, err := a.f.Seek(0, io.SeekStart)
	if err == nil {
		a.pos = 0
	}
	return err
}

func (a *fileAsset) Position() int64 { return a.pos }
func (a *fileAsset) Size() int64     { return a.size }

func (a *fileAsset) Close() error { return a.f.Close() }

// FileSize probes the size of a file without keeping it open.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// ScanAssets walks an expression library dir and returns all playable
// assets, sorted. Subfolders are scanned too, one folder per expression.
func ScanAssets(dir string) ([]string, error) {
	var list []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), cfg.AssetExt) {
			list = append(list, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no %s assets found in %s", cfg.AssetExt, dir)
	}
	sort.Strings(list)
	return list, nil
}

// CreateFramesDir makes the tmp dir for extracted video frames.
func CreateFramesDir() (string, error) {
	err := os.MkdirAll(cfg.PathFramesDir, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("error creating frames dir: %w", err)
	}
	return cfg.PathFramesDir, nil
}

// ScanFrames lists extracted frame images in order.
func ScanFrames(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	filesList := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasPrefix(file.Name(), "out_") {
			filesList = append(filesList, filepath.Join(dir, file.Name()))
		}
	}
	if len(filesList) == 0 {
		return nil, fmt.Errorf("no frames to convert")
	}
	sort.Strings(filesList)
	return filesList, nil
}

// RemoveFramesDir cleans up after a conversion.
func RemoveFramesDir() error {
	return os.RemoveAll(cfg.PathFramesDir)
}
