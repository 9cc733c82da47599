// Package synth implements additive synthesis from (frequency, magnitude)
// tracks: per-hop upsampling, running phase integration with carry-over,
// and soft-clip mix-down.
package synth

import (
	"math"

	"github.com/thesyncim/sws/internal/numeric"
)

// Method selects the interpolation kernel Upsample uses between hops.
type Method int

const (
	Linear Method = iota
	Nearest
)

// Upsample stretches x by integer factor, producing (len(x)-1)*factor+1
// samples when includeLast is true, or (len(x)-1)*factor otherwise. NaN
// inputs are replaced with 0 before interpolating.
func Upsample(x []float32, factor int, includeLast bool, method Method) []float32 {
	clean := make([]float32, len(x))
	for i, v := range x {
		if math.IsNaN(float64(v)) {
			clean[i] = 0
		} else {
			clean[i] = v
		}
	}

	outputSize := (len(clean) - 1) * factor
	if includeLast {
		outputSize++
	}
	out := make([]float32, outputSize)

	for i := 0; i < outputSize; i++ {
		p := float64(i) / float64(factor)
		iLo := int(math.Floor(p))
		iHi := iLo + 1
		if iHi > len(clean)-1 {
			iHi = len(clean) - 1
		}
		frac := float32(p - math.Floor(p))

		switch method {
		case Nearest:
			out[i] = clean[iLo]
		default:
			out[i] = clean[iLo]*(1-frac) + clean[iHi]*frac
		}
	}
	return out
}

// Synthesize reconstructs a time-domain signal from track matrices F and M
// (each shape (nFrames, nWaves)), upsampling frequency with nearest-neighbor
// interpolation (to preserve track monotonicity) and magnitude with linear
// interpolation, integrating phase per wave with carry-over from
// firstPhases, and soft-clipping the mix with atan. Output length is
// exactly (nFrames-1)*hopSize. firstPhases defaults to zeros of length
// nWaves when nil.
func Synthesize(freq, mag *numeric.Array2, hopSize int, waveFn func(float32) float32, firstPhases []float32) (y []float32, lastPhases []float32) {
	if freq.Rows != mag.Rows || freq.Cols != mag.Cols {
		panic("synth: Synthesize: F and M shapes must match")
	}
	nFrames, nWaves := freq.Rows, freq.Cols
	if nFrames < 2 {
		panic("synth: Synthesize: need at least 2 frames")
	}
	if firstPhases == nil {
		firstPhases = make([]float32, nWaves)
	}

	outputLen := (nFrames - 1) * hopSize
	y = make([]float32, outputLen)
	lastPhases = make([]float32, nWaves)

	freqCol := make([]float32, nFrames)
	magCol := make([]float32, nFrames)

	for k := 0; k < nWaves; k++ {
		for h := 0; h < nFrames; h++ {
			freqCol[h] = freq.At(h, k)
			magCol[h] = mag.At(h, k)
		}

		freqUp := Upsample(freqCol, hopSize, false, Nearest)
		magUp := Upsample(magCol, hopSize, false, Linear)

		sum := firstPhases[k]
		for i := 0; i < outputLen; i++ {
			sum += freqUp[i]
			y[i] += waveFn(sum) * magUp[i]
		}
		lastPhases[k] = float32(math.Mod(float64(sum), 2*math.Pi))
	}

	for i, v := range y {
		y[i] = float32(math.Atan(float64(v)))
	}

	return y, lastPhases
}
