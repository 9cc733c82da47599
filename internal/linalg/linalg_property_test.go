package linalg

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// FindRoots must always return exactly len(coefs) finite complex values,
// whatever the input coefficients — it has no failure mode, unlike
// SolveToeplitz.
func TestFindRootsAlwaysFiniteProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		coefs := make([]float32, n)
		for i := range coefs {
			coefs[i] = float32(rapid.Float64Range(-10, 10).Draw(rt, "coef"))
		}

		roots := FindRoots(coefs)
		if len(roots) != n {
			rt.Fatalf("got %d roots, want %d", len(roots), n)
		}
		for _, r := range roots {
			if math.IsNaN(real(r)) || math.IsNaN(imag(r)) || math.IsInf(real(r), 0) || math.IsInf(imag(r), 0) {
				rt.Fatalf("non-finite root %v for coefs %v", r, coefs)
			}
		}
	})
}
