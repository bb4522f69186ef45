// Display sinks for RGB565 pixel bands.
package display

// Sink draws rectangular pixel regions. Pix is packed RGB565, little
// endian, w*h*2 bytes. Blit is synchronous - when it returns, the band
// is on its way to the panel.
type Sink interface {
	Blit(x, y, w, h int, pix []byte) error
	Close() error
}

// NopSink discards pixels. Useful for benchmarks and dry runs.
type NopSink struct{}

func (NopSink) Blit(x, y, w, h int, pix []byte) error { return nil }
func (NopSink) Close() error                          { return nil }
