// internal/control/head_test.go
package control

import "testing"

func TestHeadCurve_Endpoints(t *testing.T) {
	c := DefaultHeadCurve()

	if got := c.Map(0); got != c.Center {
		t.Fatalf("Map(0)=%#x want=%#x", got, c.Center)
	}
	if got := c.Map(1); got != c.RightMax {
		t.Fatalf("Map(1)=%#x want=%#x", got, c.RightMax)
	}
	if got := c.Map(-1); got != c.LeftMin {
		t.Fatalf("Map(-1)=%#x want=%#x", got, c.LeftMin)
	}
}

func TestHeadCurve_Deadzone(t *testing.T) {
	c := DefaultHeadCurve()

	for _, v := range []float64{0.049, -0.049, 0.01} {
		if got := c.Map(v); got != c.Center {
			t.Fatalf("Map(%v)=%#x want center", v, got)
		}
	}
}

func TestHeadCurve_Shape(t *testing.T) {
	c := DefaultHeadCurve()

	// 0.5^2 = 0.25 of the 16-code half range -> 4 codes from center
	if got := c.Map(0.5); got != c.Center+4 {
		t.Fatalf("Map(0.5)=%d want=%d", got, c.Center+4)
	}
	if got := c.Map(-0.5); got != c.Center-4 {
		t.Fatalf("Map(-0.5)=%d want=%d", got, c.Center-4)
	}
	if got := c.Map(3); got != c.RightMax {
		t.Fatalf("out of range input must clamp, got=%d", got)
	}
}
