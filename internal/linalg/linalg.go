// Package linalg implements the polynomial-root-finding and symmetric
// Toeplitz-solving primitives that formant extraction and LPC fitting are
// built on.
package linalg

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularPrincipalMinor is the recoverable numerical-degeneracy
// condition raised by SolveToeplitz when a principal minor of the Toeplitz
// matrix vanishes. Callers are expected to skip the offending unit of work
// rather than treat it as a contract violation.
var ErrSingularPrincipalMinor = errors.New("sws: singular principal minor")

// CompanionMatrix builds the n x n companion matrix of the monic polynomial
// x^n + sum_i coefs[i]*x^i (coefs given in increasing degree, x^n implied):
// ones on the super-diagonal, -coefs in the last row.
func CompanionMatrix(coefs []float32) *mat.Dense {
	n := len(coefs)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n-1; i++ {
		m.Set(i, i+1, 1)
	}
	for j := 0; j < n; j++ {
		m.Set(n-1, j, float64(-coefs[j]))
	}
	return m
}

// FindRoots returns the n complex roots of the monic polynomial with
// coefficients coefs (increasing degree, x^n implied), as an unordered
// slice, via the complex eigenvalues of its companion matrix. Degenerate
// all-zero input returns n complex zeros (the companion matrix is then the
// nilpotent shift matrix, whose eigenvalues are all zero).
func FindRoots(coefs []float32) []complex128 {
	n := len(coefs)
	if n == 0 {
		return nil
	}
	companion := CompanionMatrix(coefs)

	var eig mat.Eigen
	ok := eig.Factorize(companion, mat.EigenNone)
	if !ok {
		return make([]complex128, n)
	}
	return eig.Values(nil)
}

// SolveToeplitz solves T*x = b for the symmetric Toeplitz matrix T of
// dimension n whose concatenated "edge" is a (length 2n-1): a's first n
// elements, reversed, form T's first row, and a's last n elements form T's
// first column. This is the Levinson-Trench-Zohar recurrence.
//
// Algorithm ported from the reference implementation's AI reimplementation
// of SciPy's Cython solve_toeplitz (scipy/linalg/_solve_toeplitz.pyx).
func SolveToeplitz(a, b []float32) ([]float32, error) {
	n := len(b)
	if len(a) != 2*n-1 {
		panic("linalg: SolveToeplitz: a must have length 2n-1")
	}

	x := make([]float32, n)
	g := make([]float32, n)
	h := make([]float32, n)

	if a[n-1] == 0 {
		return nil, ErrSingularPrincipalMinor
	}

	x[0] = b[0] / a[n-1]

	if n == 1 {
		return x, nil
	}

	g[0] = a[n-2] / a[n-1]
	h[0] = a[n] / a[n-1]

	for m := 1; m < n; m++ {
		xNum := -b[m]
		xDen := -a[n-1]
		for j := 0; j < m; j++ {
			nmj := n + m - (j + 1)
			xNum += a[nmj] * x[j]
			xDen += a[nmj] * g[m-j-1]
		}
		if xDen == 0 {
			return nil, ErrSingularPrincipalMinor
		}
		x[m] = xNum / xDen

		for j := 0; j < m; j++ {
			x[j] -= x[m] * g[m-j-1]
		}
		if m == n-1 {
			return x, nil
		}

		gNum := -a[n-m-2]
		hNum := -a[n+m]
		gDen := -a[n-1]
		for j := 0; j < m; j++ {
			gNum += a[n+j-m-1] * g[j]
			hNum += a[n+m-j-1] * h[j]
			gDen += a[n+j-m-1] * h[m-j-1]
		}

		if gDen == 0 {
			return nil, ErrSingularPrincipalMinor
		}

		g[m] = gNum / gDen
		h[m] = hNum / xDen
		k := m - 1
		m2 := (m + 1) >> 1
		c1 := g[m]
		c2 := h[m]
		for j := 0; j < m2; j++ {
			gj, gk := g[j], g[k-j]
			hj, hk := h[j], h[k-j]
			g[j] = gj - c1*hk
			g[k-j] = gk - c1*hj
			h[j] = hj - c2*gk
			h[k-j] = hk - c2*gj
		}
	}

	return x, nil
}
