// internal/control/frame_test.go
package control

import "testing"

func TestEncode_FixedBytes(t *testing.T) {
	states := []State{
		NewState(),
		{Sound: 0x0A, Motor1: 0x02, Speed1: 0x03, Motor2: 0x01, Speed2: 0x03, Head: 0x24, LEDBlue: 1, LEDRed: 3},
		{Sound: 0xFF, Motor1: 0xFF, Speed1: 0xFF, Motor2: 0xFF, Speed2: 0xFF, Head: 0xFF, LEDBlue: 0xFF, LEDRed: 0xFF},
	}

	for _, s := range states {
		f := Encode(s)

		if len(f.Bytes()) != FrameSize {
			t.Fatalf("expected %d bytes, got %d", FrameSize, len(f.Bytes()))
		}
		if f[0] != 0xB5 {
			t.Fatalf("preamble: got=%#x want=0xb5", f[0])
		}
		for _, off := range []int{2, 8, 9} {
			if f[off] != 0x00 {
				t.Fatalf("reserved offset %d: got=%#x want=0", off, f[off])
			}
		}

		want := []byte{0x7C, 0x6B, 0x5A, 0x49, 0x38, 0x27, 0x16, 0x05}
		for i, b := range want {
			if f[12+i] != b {
				t.Fatalf("trailer offset %d: got=%#x want=%#x", 12+i, f[12+i], b)
			}
		}
	}
}

func TestEncode_FieldOffsets(t *testing.T) {
	s := State{
		Sound:   0x09,
		Motor1:  0x01,
		Speed1:  0x03,
		Motor2:  0x02,
		Speed2:  0x03,
		Head:    0x04,
		LEDBlue: 0x01,
		LEDRed:  0x02,
	}

	want := Frame{
		0xB5, 0x09, 0x00, 0x01, 0x03, 0x02, 0x03, 0x04, 0x00, 0x00,
		0x01, 0x02, 0x7C, 0x6B, 0x5A, 0x49, 0x38, 0x27, 0x16, 0x05,
	}

	if got := Encode(s); got != want {
		t.Fatalf("frame mismatch:\n got=%v\nwant=%v", got, want)
	}
}

func TestFrameBytes_IsCopy(t *testing.T) {
	f := Encode(NewState())
	b := f.Bytes()
	b[0] = 0x00

	if f[0] != Preamble {
		t.Fatalf("Bytes() must not alias the frame")
	}
}
