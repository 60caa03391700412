// internal/control/frame.go
package control

import "fmt"

// Frame layout constants.
// These values are the wire contract with the droid and MUST NOT be configurable.

// FrameSize is the fixed length of a command frame.
const FrameSize = 20

// ---- OFFSETS ----

const (
	OffsetPreamble = 0
	OffsetSound    = 1
	OffsetMotor1   = 3
	OffsetSpeed1   = 4
	OffsetMotor2   = 5
	OffsetSpeed2   = 6
	OffsetHead     = 7
	OffsetLEDBlue  = 10
	OffsetLEDRed   = 11
	OffsetTrailer  = 12
)

// Reserved offsets are always zero.
var reservedOffsets = [...]int{2, 8, 9}

// ---- CONSTANT BYTES ----

// Preamble opens every frame.
const Preamble byte = 0xB5

// Trailer closes every frame. Order matters.
var Trailer = [8]byte{0x7C, 0x6B, 0x5A, 0x49, 0x38, 0x27, 0x16, 0x05}

// Frame is one encoded command. Two frames are the same command iff their
// bytes are equal, so Frame is comparable with ==.
type Frame [FrameSize]byte

// Encode converts a State into a command frame.
// No IO. No side effects.
func Encode(s State) Frame {
	var f Frame

	f[OffsetPreamble] = Preamble
	f[OffsetSound] = s.Sound
	f[OffsetMotor1] = s.Motor1
	f[OffsetSpeed1] = s.Speed1
	f[OffsetMotor2] = s.Motor2
	f[OffsetSpeed2] = s.Speed2
	f[OffsetHead] = s.Head
	f[OffsetLEDBlue] = s.LEDBlue
	f[OffsetLEDRed] = s.LEDRed

	for _, off := range reservedOffsets {
		f[off] = 0x00
	}
	copy(f[OffsetTrailer:], Trailer[:])

	return f
}

// Bytes returns a copy of the frame as a slice, ready for a transport write.
func (f Frame) Bytes() []byte {
	b := make([]byte, FrameSize)
	copy(b, f[:])
	return b
}

func (f Frame) String() string {
	return fmt.Sprintf("% x", f[:])
}
