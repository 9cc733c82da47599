// Package dsp implements the direct-form filtering, autocorrelation,
// windowing, and loudness-weighting primitives the LPC and music stages are
// built on.
package dsp

import "math"

// LFilter applies a direct-form FIR filter: y[i] = sum_j b[j]*x[i-j] for
// i >= j, treating x[i-j] as zero otherwise. There is no denominator (a=1).
// Output length equals len(x).
//
// Reference: scipy.signal.lfilter(b, 1, x) as used by the fit_lpc reference
// implementation for pre-emphasis and residual computation.
func LFilter(b, x []float32) []float32 {
	y := make([]float32, len(x))
	for i := range x {
		var sum float32
		for j := 0; j < len(b); j++ {
			if i >= j {
				sum += b[j] * x[i-j]
			}
		}
		y[i] = sum
	}
	return y
}

// Autocorrelate returns the one-sided, non-normalized autocorrelation of x:
// result[lag] = sum_{i=0}^{n-lag-1} x[i]*x[i+lag].
func Autocorrelate(x []float32) []float32 {
	n := len(x)
	result := make([]float32, n)
	for lag := 0; lag < n; lag++ {
		var sum float32
		for i := 0; i < n-lag; i++ {
			sum += x[i] * x[i+lag]
		}
		result[lag] = sum
	}
	return result
}

// HannWindow returns the N-periodic Hann window 0.5*(1-cos(2*pi*n/N)) for
// n = 0..N-1. This is the periodic form, not the symmetric one: index 0 is
// exactly zero but index N-1 is not.
func HannWindow(n int) []float32 {
	w := make([]float32, n)
	for i := 0; i < n; i++ {
		x := 2 * math.Pi * float64(i) / float64(n)
		w[i] = float32(0.5 * (1 - math.Cos(x)))
	}
	return w
}

// AWeighingLoudness evaluates the A-weighting curve at frequencyHz.
//
// See https://en.wikipedia.org/wiki/A-weighting#A
func AWeighingLoudness(frequencyHz float32) float32 {
	f2 := frequencyHz * frequencyHz
	const a = 12194.0
	a2 := float32(a * a)

	return (a2 * f2 * f2) /
		((f2 + 20.6*20.6) * float32(math.Sqrt(float64((f2+107.7*107.7)*(f2+737.9*737.9)))) * (f2 + a2))
}

// equalLoudnessBaseCoef is roughly a_weighing_loudness(1000Hz), lowered
// further so the compensated signal isn't too loud.
const equalLoudnessBaseCoef = 0.5

// EqualLoudnessCompensation returns the divisor applying equal-loudness
// compensation at frequencyHz, clamping the evaluation frequency to
// [100Hz, 20kHz] before evaluating the A-weighting curve.
func EqualLoudnessCompensation(frequencyHz float32) float32 {
	switch {
	case frequencyHz < 100.0:
		return AWeighingLoudness(100.0) / equalLoudnessBaseCoef
	case frequencyHz > 20000.0:
		return AWeighingLoudness(20000.0) / equalLoudnessBaseCoef
	default:
		return AWeighingLoudness(frequencyHz) / equalLoudnessBaseCoef
	}
}
