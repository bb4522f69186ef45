package display

import (
	"encoding/binary"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	cfg "github.com/1F47E/go-pixelreel/internal/config"
	"github.com/1F47E/go-pixelreel/internal/logger"
)

// MQTTSink streams pixel bands as binary messages to a remote display
// device. Wire format per message, little endian:
//
//	uint16 x, uint16 y, uint16 w, uint16 h, then w*h*2 bytes of RGB565
//
// QoS 0 - a dropped band is repainted by the next frame anyway.
type MQTTSink struct {
	client mqtt.Client
	topic  string
}

// NewMQTTSink connects to the broker and returns a ready sink.
func NewMQTTSink(s cfg.Settings) (*MQTTSink, error) {
	log := logger.Log.WithField("scope", "mqtt sink")
	options := mqtt.NewClientOptions().
		AddBroker(s.Mqtt.URL).
		SetClientID("pixelreel").
		SetUsername(s.Mqtt.Username).
		SetPassword(s.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	log.Infof("connected to %s", s.Mqtt.URL)
	return &MQTTSink{client: client, topic: s.Mqtt.Topics.Stream}, nil
}

func (m *MQTTSink) Blit(x, y, w, h int, pix []byte) error {
	data := make([]byte, 8, 8+len(pix))
	binary.LittleEndian.PutUint16(data[0:], uint16(x))
	binary.LittleEndian.PutUint16(data[2:], uint16(y))
	binary.LittleEndian.PutUint16(data[4:], uint16(w))
	binary.LittleEndian.PutUint16(data[6:], uint16(h))
	data = append(data, pix...)

	token := m.client.Publish(m.topic, 0, false, data)
	token.Wait()
	return token.Error()
}

func (m *MQTTSink) Close() error {
	m.client.Disconnect(250)
	return nil
}
