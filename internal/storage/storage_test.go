package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAssetReadPositionRewind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.bin")
	data := []byte("0123456789abcdef")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if a.Size() != int64(len(data)) {
		t.Errorf("got size %d, want %d", a.Size(), len(data))
	}
	if a.Position() != 0 {
		t.Errorf("got position %d, want 0", a.Position())
	}

	buf := make([]byte, 10)
	if _, err := io.ReadFull(a, buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, data[:10]) {
		t.Errorf("got %q, want %q", buf, data[:10])
	}
	if a.Position() != 10 {
		t.Errorf("got position %d after read, want 10", a.Position())
	}

	if err := a.Rewind(); err != nil {
		t.Fatal(err)
	}
	if a.Position() != 0 {
		t.Errorf("got position %d after rewind, want 0", a.Position())
	}
	if _, err := io.ReadFull(a, buf[:4]); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:4], data[:4]) {
		t.Errorf("got %q after rewind, want %q", buf[:4], data[:4])
	}
}

func TestScanAssets(t *testing.T) {
	dir := t.TempDir()
	mk := func(rel string) string {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	b := mk("love/love1.bin")
	a := mk("burger/burger.BIN")
	mk("burger/burger_manifest.txt")
	mk("readme.md")

	got, err := ScanAssets(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{a, b} // sorted, case-insensitive extension match
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanAssetsEmpty(t *testing.T) {
	if _, err := ScanAssets(t.TempDir()); err == nil {
		t.Fatal("expected error for a dir without assets")
	}
}
