// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultPeerName            = "R2D2"
	DefaultScanTimeoutMs       = 5000
	DefaultCharacteristicUUID  = "0000fff1-0000-1000-8000-00805f9b34fb"
	DefaultSerialBaud          = 9600
	DefaultPeriodMs            = 200
	DefaultKeepaliveTicks      = 10
	DefaultRetryDelayMs        = 2000
	DefaultReconnectDelayMs    = 1000
	DefaultDisconnectTimeoutMs = 2000
	DefaultAxisThreshold       = 0.7
	DefaultLogLevel            = "info"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ---- peer / transport ----

	setString(&cfg.Peer.Name, DefaultPeerName)
	setInt(&cfg.Peer.ScanTimeoutMs, DefaultScanTimeoutMs)

	setString(&cfg.Transport.Kind, TransportBLE)
	setString(&cfg.Transport.CharacteristicUUID, DefaultCharacteristicUUID)
	setInt(&cfg.Transport.Serial.Baud, DefaultSerialBaud)

	// ---- session ----

	s := &cfg.Session
	setInt(&s.PeriodMs, DefaultPeriodMs)
	setInt(&s.KeepaliveTicks, DefaultKeepaliveTicks)
	setInt(&s.RetryDelayMs, DefaultRetryDelayMs)
	setInt(&s.ReconnectDelayMs, DefaultReconnectDelayMs)
	setInt(&s.DisconnectTimeoutMs, DefaultDisconnectTimeoutMs)

	// ---- input ----

	in := &cfg.Input
	if in.AxisThreshold == 0 {
		in.AxisThreshold = DefaultAxisThreshold
	}
	setIndex(&in.AxisX, 0)
	setIndex(&in.AxisY, 1)
	setIndex(&in.HeadAxis, -1)

	if len(in.Buttons.Sounds) == 0 {
		in.Buttons.Sounds = []SoundConfig{
			{Button: 0, Code: 0x0A},
			{Button: 1, Code: 0x08},
			{Button: 2, Code: 0x09},
			{Button: 3, Code: 0x05},
		}
	}
	setIndex(&in.Buttons.HeadLeft, 4)
	setIndex(&in.Buttons.HeadRight, 5)
	setIndex(&in.Buttons.LEDBlue, 6)
	setIndex(&in.Buttons.LEDRed, 7)
	setString(&in.LEDMode, LEDModeToggle)

	hc := &in.HeadCurve
	if hc.Deadzone == nil {
		v := 0.05
		hc.Deadzone = &v
	}
	if hc.Gamma == nil {
		v := 2.0
		hc.Gamma = &v
	}
	setByte(&hc.LeftMin, 0x04)
	setByte(&hc.Center, 0x14)
	setByte(&hc.RightMax, 0x24)

	// ---- log ----

	setString(&cfg.Log.Level, DefaultLogLevel)
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setIndex(dst **int, def int) {
	if *dst == nil {
		v := def
		*dst = &v
	}
}

func setByte(dst **uint8, def uint8) {
	if *dst == nil {
		v := def
		*dst = &v
	}
}
