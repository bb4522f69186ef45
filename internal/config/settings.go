package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Settings holds the runtime config for the play command.
// Everything hardware or network specific lives here, not in code.
type Settings struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	TFT struct {
		SPIPort  string `yaml:"spiPort"`
		RstPin   string `yaml:"rstPin"`
		DcPin    string `yaml:"dcPin"`
		CsPin    string `yaml:"csPin"`
		BlPin    string `yaml:"blPin"`
		Rotation int    `yaml:"rotation"`
	} `yaml:"tft"`
}

func LoadSettings(path string) (Settings, error) {
	var s Settings
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()
	err = yaml.NewDecoder(f).Decode(&s)
	return s, err
}
