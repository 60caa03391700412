// internal/config/config.go
package config

type Config struct {
	Peer      PeerConfig      `yaml:"peer"`
	Transport TransportConfig `yaml:"transport"`
	Session   SessionConfig   `yaml:"session"`
	Input     InputConfig     `yaml:"input"`
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
}

// ---- PEER ----

type PeerConfig struct {
	Name          string `yaml:"name"`
	ScanTimeoutMs int    `yaml:"scan_timeout_ms"`
}

// ---- TRANSPORT ----

const (
	TransportBLE    = "ble"
	TransportSerial = "serial"
)

type TransportConfig struct {
	Kind               string       `yaml:"kind"` // ble | serial
	ServiceUUID        string       `yaml:"service_uuid"` // empty => search all services
	CharacteristicUUID string       `yaml:"characteristic_uuid"`
	WriteWithResponse  bool         `yaml:"write_with_response"`
	Serial             SerialConfig `yaml:"serial"`
}

type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// ---- SESSION ----

type SessionConfig struct {
	PeriodMs            int `yaml:"period_ms"`
	KeepaliveTicks      int `yaml:"keepalive_ticks"`
	RetryDelayMs        int `yaml:"retry_delay_ms"`
	ReconnectDelayMs    int `yaml:"reconnect_delay_ms"`
	DisconnectTimeoutMs int `yaml:"disconnect_timeout_ms"`
}

// ---- INPUT ----

const (
	LEDModeToggle = "toggle"
	LEDModeCycle  = "cycle"
)

type InputConfig struct {
	Device        int     `yaml:"device"`
	AxisThreshold float64 `yaml:"axis_threshold"`

	// nil => default; -1 => unwired
	AxisX    *int `yaml:"axis_x"`
	AxisY    *int `yaml:"axis_y"`
	HeadAxis *int `yaml:"head_axis"`

	Buttons   ButtonConfig    `yaml:"buttons"`
	LEDMode   string          `yaml:"led_mode"` // toggle | cycle
	HeadCurve HeadCurveConfig `yaml:"head_curve"`
}

type ButtonConfig struct {
	Sounds    []SoundConfig `yaml:"sounds"` // evaluation order; later wins
	HeadLeft  *int          `yaml:"head_left"`
	HeadRight *int          `yaml:"head_right"`
	LEDBlue   *int          `yaml:"led_blue"`
	LEDRed    *int          `yaml:"led_red"`
}

type SoundConfig struct {
	Button int   `yaml:"button"`
	Code   uint8 `yaml:"code"`
}

type HeadCurveConfig struct {
	Deadzone *float64 `yaml:"deadzone"`
	Gamma    *float64 `yaml:"gamma"`
	LeftMin  *uint8   `yaml:"left_min"`
	Center   *uint8   `yaml:"center"`
	RightMax *uint8   `yaml:"right_max"`
}

// ---- HTTP ----

type HTTPConfig struct {
	Listen string `yaml:"listen"` // empty => disabled
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}
