package display

import (
	"fmt"

	gc9307 "github.com/photonicat/periph.io-gc9307"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
	"github.com/1F47E/go-pixelreel/internal/logger"
)

// TFTSink pushes pixel bands straight to a GC9307 panel over SPI.
// The panel takes RGB565 natively so bands go out without conversion.
type TFTSink struct {
	dev  *gc9307.Device
	port spi.PortCloser
}

// NewTFTSink initializes the SPI bus and configures the panel.
func NewTFTSink(s cfg.Settings, width, height int) (*TFTSink, error) {
	log := logger.Log.WithField("scope", "tft sink")
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(s.TFT.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("spi open: %w", err)
	}
	conn, err := port.Connect(100000*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("spi connect: %w", err)
	}

	dev := gc9307.New(conn,
		gpioreg.ByName(s.TFT.RstPin),
		gpioreg.ByName(s.TFT.DcPin),
		gpioreg.ByName(s.TFT.CsPin),
		gpioreg.ByName(s.TFT.BlPin))
	dev.Configure(gc9307.Config{
		Width:     int16(width),
		Height:    int16(height),
		Rotation:  gc9307.Rotation(s.TFT.Rotation),
		FrameRate: gc9307.FRAMERATE_60,
	})
	log.Infof("panel up on %s, %dx%d", s.TFT.SPIPort, width, height)
	return &TFTSink{dev: &dev, port: port}, nil
}

func (t *TFTSink) Blit(x, y, w, h int, pix []byte) error {
	return t.dev.DrawRGBBitmap8(int16(x), int16(y), pix, int16(w), int16(h))
}

func (t *TFTSink) Close() error {
	return t.port.Close()
}
