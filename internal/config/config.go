package config

// NOTE: assets are raw RGB565, little endian, pixels left to right, top to bottom
const (
	// defaults when no manifest is found next to the asset
	DefaultWidth  = 240
	DefaultHeight = 320
	DefaultFPS    = 15

	// all sizes are in bytes
	SizePixel = 2

	// frames are streamed in horizontal bands, ChunkRows rows at a time.
	// the buffer is sized for the widest panel we support, allocated once
	// and reused for every band of every frame.
	ChunkRows     = 20
	MaxFrameWidth = 480
	SizeChunkBuf  = MaxFrameWidth * ChunkRows * SizePixel

	// asset naming
	AssetExt            = ".bin"
	ManifestSuffix      = "_manifest.txt"
	ManifestGenericName = "manifest.txt"

	// Paths
	PathFramesDir = "tmp/frames"
)
