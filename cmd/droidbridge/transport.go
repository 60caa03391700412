// cmd/droidbridge/transport.go
package main

import (
	"fmt"

	"github.com/tamzrod/droid-bridge/internal/config"
	"github.com/tamzrod/droid-bridge/internal/link"
	"github.com/tamzrod/droid-bridge/internal/link/ble"
	"github.com/tamzrod/droid-bridge/internal/link/serial"
)

// buildTransport selects the configured radio. It expects a normalized config.
func buildTransport(c config.TransportConfig) (link.Transport, error) {
	switch c.Kind {
	case config.TransportBLE:
		return ble.New(ble.Config{
			ServiceUUID:        c.ServiceUUID,
			CharacteristicUUID: c.CharacteristicUUID,
		})
	case config.TransportSerial:
		return serial.New(serial.Config{
			Port: c.Serial.Port,
			Baud: c.Serial.Baud,
		})
	default:
		return nil, fmt.Errorf("transport: unknown kind %q", c.Kind)
	}
}
