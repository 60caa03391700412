// internal/config/validate.go
package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Validate checks configuration correctness.
// It performs declarative validation only; zero values mean "use default".
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	switch cfg.Transport.Kind {
	case "", TransportBLE:
		if cfg.Transport.WriteWithResponse {
			return fmt.Errorf("transport: write_with_response is not supported by kind %q", TransportBLE)
		}
	case TransportSerial:
		if cfg.Transport.Serial.Port == "" {
			return fmt.Errorf("transport: kind %q requires serial.port", TransportSerial)
		}
	default:
		return fmt.Errorf("transport: unknown kind %q", cfg.Transport.Kind)
	}
	if cfg.Transport.Serial.Baud < 0 {
		return fmt.Errorf("transport: serial.baud must be >= 0")
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	durations := []struct {
		name  string
		value int
	}{
		{"peer.scan_timeout_ms", cfg.Peer.ScanTimeoutMs},
		{"session.period_ms", cfg.Session.PeriodMs},
		{"session.keepalive_ticks", cfg.Session.KeepaliveTicks},
		{"session.retry_delay_ms", cfg.Session.RetryDelayMs},
		{"session.reconnect_delay_ms", cfg.Session.ReconnectDelayMs},
		{"session.disconnect_timeout_ms", cfg.Session.DisconnectTimeoutMs},
	}
	for _, d := range durations {
		if d.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", d.name, d.value)
		}
	}

	// ------------------------------------------------------------
	// INPUT
	// ------------------------------------------------------------

	in := cfg.Input

	if in.Device < 0 {
		return fmt.Errorf("input.device must be >= 0")
	}
	if in.AxisThreshold != 0 && (in.AxisThreshold <= 0 || in.AxisThreshold >= 1) {
		return fmt.Errorf("input.axis_threshold must be in (0,1), got %v", in.AxisThreshold)
	}

	switch in.LEDMode {
	case "", LEDModeToggle, LEDModeCycle:
	default:
		return fmt.Errorf("input.led_mode: unknown mode %q", in.LEDMode)
	}

	indices := []struct {
		name string
		v    *int
	}{
		{"input.axis_x", in.AxisX},
		{"input.axis_y", in.AxisY},
		{"input.head_axis", in.HeadAxis},
		{"input.buttons.head_left", in.Buttons.HeadLeft},
		{"input.buttons.head_right", in.Buttons.HeadRight},
		{"input.buttons.led_blue", in.Buttons.LEDBlue},
		{"input.buttons.led_red", in.Buttons.LEDRed},
	}
	for _, ix := range indices {
		if ix.v != nil && *ix.v < -1 {
			return fmt.Errorf("%s must be >= -1 (-1 = unwired), got %d", ix.name, *ix.v)
		}
	}
	for i, s := range in.Buttons.Sounds {
		if s.Button < 0 {
			return fmt.Errorf("input.buttons.sounds[%d].button must be >= 0", i)
		}
	}

	hc := in.HeadCurve
	if hc.Deadzone != nil && (*hc.Deadzone < 0 || *hc.Deadzone >= 1) {
		return fmt.Errorf("input.head_curve.deadzone must be in [0,1)")
	}
	if hc.Gamma != nil && *hc.Gamma <= 0 {
		return fmt.Errorf("input.head_curve.gamma must be > 0")
	}
	if hc.LeftMin != nil && hc.Center != nil && *hc.LeftMin > *hc.Center {
		return fmt.Errorf("input.head_curve: left_min > center")
	}
	if hc.Center != nil && hc.RightMax != nil && *hc.Center > *hc.RightMax {
		return fmt.Errorf("input.head_curve: center > right_max")
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if cfg.Log.Level != "" {
		if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	return nil
}
