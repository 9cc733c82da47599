package dsp

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestLFilterLengthProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bLen := rapid.IntRange(1, 8).Draw(rt, "bLen")
		xLen := rapid.IntRange(0, 64).Draw(rt, "xLen")

		b := make([]float32, bLen)
		for i := range b {
			b[i] = float32(rapid.Float64Range(-4, 4).Draw(rt, "b"))
		}
		x := make([]float32, xLen)
		for i := range x {
			x[i] = float32(rapid.Float64Range(-4, 4).Draw(rt, "x"))
		}

		y := LFilter(b, x)
		if len(y) != xLen {
			rt.Fatalf("len(LFilter) = %d, want %d", len(y), xLen)
		}
		for _, v := range y {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				rt.Fatalf("non-finite output %v", v)
			}
		}
	})
}

func TestAutocorrelateLengthAndPeakProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 64).Draw(rt, "n")
		x := make([]float32, n)
		for i := range x {
			x[i] = float32(rapid.Float64Range(-4, 4).Draw(rt, "x"))
		}

		r := Autocorrelate(x)
		if len(r) != n {
			rt.Fatalf("len(Autocorrelate) = %d, want %d", len(r), n)
		}
		for _, lag := range r {
			if lag > r[0]+1e-3 {
				rt.Fatalf("lag-0 autocorrelation %v is not the maximum (found %v)", r[0], lag)
			}
		}
	})
}

func TestHannWindowBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 256).Draw(rt, "n")
		w := HannWindow(n)
		if len(w) != n {
			rt.Fatalf("len(HannWindow) = %d, want %d", len(w), n)
		}
		for i, v := range w {
			if v < 0 || v > 1 {
				rt.Fatalf("HannWindow(%d)[%d] = %v, out of [0,1]", n, i, v)
			}
		}
		if w[0] != 0 {
			rt.Fatalf("HannWindow(%d)[0] = %v, want 0", n, w[0])
		}
	})
}

func TestEqualLoudnessCompensationBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		freq := float32(rapid.Float64Range(20, 20000).Draw(rt, "freq"))
		c := EqualLoudnessCompensation(freq)
		if c < 0.05 || c > 4.0 {
			rt.Fatalf("EqualLoudnessCompensation(%v) = %v, want in [0.05, 4.0]", freq, c)
		}
	})
}
