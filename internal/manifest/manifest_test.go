package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseOverrides(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "all keys",
			content: "width=4\nheight=4\nfps=10\nframes=2\nloop=0\n",
			want:    Config{Width: 4, Height: 4, FPS: 10, Frames: 2, Loop: false},
		},
		{
			name:    "subset keeps defaults",
			content: "fps=30\n",
			want:    Config{Width: 240, Height: 320, FPS: 30, Frames: 0, Loop: true},
		},
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Defaults(),
		},
		{
			name:    "comments and blanks skipped",
			content: "# a comment\n\n  # indented comment\nwidth=120\n",
			want:    Config{Width: 120, Height: 320, FPS: 15, Frames: 0, Loop: true},
		},
		{
			name:    "malformed lines skipped",
			content: "width\nfps: 30\nheight=100=200\nframes=7\n",
			want:    Config{Width: 240, Height: 320, FPS: 15, Frames: 7, Loop: true},
		},
		{
			name:    "unknown keys ignored",
			content: "codec=raw\nwidth=64\n",
			want:    Config{Width: 64, Height: 320, FPS: 15, Frames: 0, Loop: true},
		},
		{
			name:    "unparseable values coerce to zero",
			content: "width=abc\nloop=x\n",
			want:    Config{Width: 0, Height: 320, FPS: 15, Frames: 0, Loop: false},
		},
		{
			name:    "whitespace around key and value",
			content: "  fps = 24 \n loop = 1 \n",
			want:    Config{Width: 240, Height: 320, FPS: 24, Frames: 0, Loop: true},
		},
		{
			name:    "loop true iff nonzero",
			content: "loop=2\n",
			want:    Config{Width: 240, Height: 320, FPS: 15, Frames: 0, Loop: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			asset := filepath.Join(dir, "anim.bin")
			writeFile(t, asset, "xx")
			writeFile(t, filepath.Join(dir, "anim_manifest.txt"), tc.content)

			got := Resolve(asset)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveOrder(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "anim.bin")
	writeFile(t, asset, "xx")
	writeFile(t, filepath.Join(dir, "manifest.txt"), "fps=10\n")
	writeFile(t, filepath.Join(dir, "anim_manifest.txt"), "fps=20\n")

	// sidecar wins over the generic name
	if got := Resolve(asset); got.FPS != 20 {
		t.Errorf("got fps %d, want 20", got.FPS)
	}

	// generic name is the fallback
	if err := os.Remove(filepath.Join(dir, "anim_manifest.txt")); err != nil {
		t.Fatal(err)
	}
	if got := Resolve(asset); got.FPS != 10 {
		t.Errorf("got fps %d, want 10", got.FPS)
	}
}

func TestResolveNoManifest(t *testing.T) {
	frameSize := int(Defaults().FrameSize())
	testCases := []struct {
		name       string
		assetBytes int
		wantFrames int
	}{
		{"exact multiple", frameSize * 3, 3},
		{"remainder never yields a partial frame", frameSize*2 + frameSize/2, 2},
		{"smaller than one frame", frameSize - 1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			asset := filepath.Join(dir, "anim.bin")
			if err := os.WriteFile(asset, make([]byte, tc.assetBytes), 0o644); err != nil {
				t.Fatal(err)
			}

			got := Resolve(asset)
			want := Defaults()
			want.Frames = tc.wantFrames
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestResolveMissingAsset(t *testing.T) {
	got := Resolve(filepath.Join(t.TempDir(), "nope.bin"))
	want := Defaults() // frames stay 0, playback falls back to physical EOF
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWriteRoundtrip(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "anim.bin")
	writeFile(t, asset, "xx")

	want := Config{Width: 64, Height: 48, FPS: 12, Frames: 9, Loop: false}
	if err := Write(asset, want); err != nil {
		t.Fatal(err)
	}
	if got := Resolve(asset); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
