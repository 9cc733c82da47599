// Package lpc implements hopped, windowed linear-predictive-coding
// analysis and the conversion of per-hop predictor polynomials into
// (frequency, magnitude) formant tracks.
package lpc

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"

	"github.com/thesyncim/sws/internal/dsp"
	"github.com/thesyncim/sws/internal/linalg"
	"github.com/thesyncim/sws/internal/numeric"
)

// preEmphasisCoefficient accentuates high frequencies before LPC fitting.
// Inherited from the reference implementation; documented, not tuned.
var preEmphasisCoefficient = []float32{1, -0.9}

// Logger receives the diagnostic emitted when a hop's Toeplitz system is
// singular (spec's §7.1 recoverable-degeneracy policy). Defaults to the
// package-level charmbracelet/log default logger. Code inside this module
// may replace it with SetLogger; the sws package does not expose a setter.
var Logger = log.Default()

// SetLogger replaces the logger used for singular-hop diagnostics.
func SetLogger(l *log.Logger) {
	Logger = l
}

// Result holds the outputs of FitLPC: A has shape (nHops, p+1), Gain has
// shape (nHops,), Residual has shape ((nHops-1)*hopSize + windowSize -
// padSize,) where padSize = (windowSize-hopSize)/2: the leading padSize
// samples are trimmed off before return.
type Result struct {
	A         *numeric.Array2
	Gain      []float32
	Residual  []float32
	HopSize   int
	P         int
}

// FitLPC performs hopped, windowed autocorrelation-method LPC analysis of
// audio, order p, at the given hopSize. windowSize defaults to 2*hopSize
// when 0 is passed.
//
// On a singular Toeplitz system for a given hop (recoverable numerical
// degeneracy, spec §7.1), that hop's row of A is left as zeros and its
// residual contribution is skipped; a diagnostic is logged and analysis
// continues.
func FitLPC(audio []float32, p, hopSize, windowSize int) Result {
	if windowSize == 0 {
		windowSize = 2 * hopSize
	}
	nHops := len(audio) / hopSize
	padSize := (windowSize - hopSize) / 2

	padded := make([]float32, padSize+len(audio)+padSize)
	copy(padded[padSize:], audio)

	preEmph := dsp.LFilter(preEmphasisCoefficient, padded)

	window := dsp.HannWindow(windowSize)

	a := numeric.NewArray2(nHops, p+1)
	gain := make([]float32, nHops)
	residual := make([]float32, (nHops-1)*hopSize+windowSize)

	for h := 0; h < nHops; h++ {
		frame := preEmph[h*hopSize : h*hopSize+windowSize]
		windowed := make([]float32, windowSize)
		for i := range windowed {
			windowed[i] = frame[i] * window[i]
		}

		autocorrelated := dsp.Autocorrelate(windowed)[:p+1]

		// Toeplitz edge: [R[p-1], ..., R[1], R[0], R[1], ..., R[p-1]].
		edge := make([]float32, 2*p-1)
		copy(edge, numeric.Reverse(autocorrelated[1:p]))
		copy(edge[p-1:], autocorrelated[:p])

		coeffs, err := linalg.SolveToeplitz(edge, autocorrelated[1:p+1])
		if err != nil {
			if errors.Is(err, linalg.ErrSingularPrincipalMinor) {
				Logger.Warn("singular principal minor, skipping hop", "hop", h)
				continue
			}
			panic(err)
		}

		row := a.Row(h)
		row[0] = 1
		for i, c := range coeffs {
			row[i+1] = -c
		}

		curResidual := dsp.LFilter(row, windowed)
		squared := make([]float32, len(curResidual))
		copy(squared, curResidual)
		numeric.MapInPlace(squared, func(v float32) float32 { return v * v })
		curGain := float32(math.Sqrt(float64(numeric.Mean(squared))))
		gain[h] = curGain

		for i, v := range curResidual {
			residual[h*hopSize+i] += v / curGain
		}
	}

	return Result{A: a, Gain: gain, Residual: residual[padSize:], HopSize: hopSize, P: p}
}

// CoefficientsToTracks converts per-hop LPC coefficients and gains into
// (frequency, magnitude) formant tracks of shape (nHops, p/2). It implements
// lpc_to_tracks: for each hop, the coefficients (excluding the leading 1,
// reversed) are fed to FindRoots; surviving positive-angle roots become
// tracks, sorted ascending by angle so interpolation never crosses tracks.
func CoefficientsToTracks(a *numeric.Array2, gain []float32) (freq, mag *numeric.Array2) {
	nHops := a.Rows
	p := a.Cols - 1
	nTracks := p / 2

	freq = numeric.NewArray2(nHops, nTracks)
	mag = numeric.NewArray2(nHops, nTracks)

	for h := 0; h < nHops; h++ {
		row := a.Row(h)
		coefs := numeric.Reverse(row[1:])
		roots := linalg.FindRoots(coefs)

		type pair struct {
			theta float64
			m     float32
		}
		pairs := make([]pair, 0, len(roots))
		for _, z := range roots {
			theta := math.Atan2(imag(z), real(z))
			r := math.Hypot(real(z), imag(z))
			m := gain[h] / float32(1-r)

			if theta >= math.Pi-1e-3 {
				theta = -theta
			}
			if theta < 1e-3 {
				continue
			}
			pairs = append(pairs, pair{theta, m})
		}

		if len(pairs) > nTracks {
			panic("lpc: more positive-angle roots than p/2")
		}

		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				if pairs[j].theta < pairs[i].theta {
					pairs[i], pairs[j] = pairs[j], pairs[i]
				}
			}
		}

		fr := freq.Row(h)
		mr := mag.Row(h)
		for i, pr := range pairs {
			fr[i] = float32(pr.theta)
			mr[i] = pr.m
		}
	}

	return freq, mag
}
