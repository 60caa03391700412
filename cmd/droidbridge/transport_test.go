// cmd/droidbridge/transport_test.go
package main

import (
	"syscall"
	"testing"

	"github.com/tamzrod/droid-bridge/internal/config"
	"github.com/tamzrod/droid-bridge/internal/link/serial"
)

func TestBuildTransport_Serial(t *testing.T) {
	tr, err := buildTransport(config.TransportConfig{
		Kind:   config.TransportSerial,
		Serial: config.SerialConfig{Port: "/dev/rfcomm0", Baud: 115200},
	})
	if err != nil {
		t.Fatalf("buildTransport() err=%v", err)
	}
	if _, ok := tr.(*serial.Transport); !ok {
		t.Fatalf("got %T, want *serial.Transport", tr)
	}
}

func TestBuildTransport_Unknown(t *testing.T) {
	if _, err := buildTransport(config.TransportConfig{Kind: "wifi"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestShutdownSignals(t *testing.T) {
	if len(shutdownSignals) != 2 || shutdownSignals[0] != syscall.SIGINT || shutdownSignals[1] != syscall.SIGTERM {
		t.Fatalf("got %v, want [SIGINT SIGTERM]", shutdownSignals)
	}
}
