package sws

import (
	"math"

	"github.com/thesyncim/sws/internal/lpc"
	"github.com/thesyncim/sws/internal/music"
	"github.com/thesyncim/sws/internal/numeric"
	"github.com/thesyncim/sws/internal/synth"
)

// ScaleType selects the note subset Quantize snaps onto. ScaleNone leaves
// frequencies unchanged, matching spec §4.G's "no-op if type is absent."
type ScaleType int

const (
	ScaleNone ScaleType = iota
	ScaleChromatic
	ScaleDiatonic
	ScalePentatonic
)

// maxMagnitude clamps per-track magnitudes after analysis. The reference
// implementation's final variant clamps rather than divides by n_waves
// (spec §9's Open Question); Synthesize normalizes with atan compression
// regardless, so clamping only trims the really extreme values.
const maxMagnitude = 2.0

// Converter is a thin, stateful orchestrator over LPC analysis, formant
// extraction, musical quantization, and additive synthesis. It holds only
// the three configuration integers for its lifetime (spec §5); every
// operation is otherwise a pure function of its arguments.
type Converter struct {
	nWaves     int
	hopSize    int
	sampleRate int
}

// NewConverter constructs a Converter for nWaves simultaneous sinusoids,
// hopSize samples per analysis/synthesis hop, at sampleRate Hz. All three
// must be positive.
func NewConverter(nWaves, hopSize, sampleRate int) (*Converter, error) {
	if nWaves <= 0 || hopSize <= 0 || sampleRate <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Converter{nWaves: nWaves, hopSize: hopSize, sampleRate: sampleRate}, nil
}

// NWaves, HopSize, and SampleRate return the converter's fixed configuration.
func (c *Converter) NWaves() int     { return c.nWaves }
func (c *Converter) HopSize() int    { return c.hopSize }
func (c *Converter) SampleRate() int { return c.sampleRate }

// Analyze runs LPC analysis and formant extraction (component D, using
// component C's root finding) on samples, returning per-hop frequency and magnitude
// tracks flattened row-major: len(frequencies) == len(magnitudes) ==
// nHops*nWaves, where nHops = len(samples)/hopSize. This is the two-slice
// equivalent of the external interface table's concatenated "[F‖M]" output.
func (c *Converter) Analyze(samples []float32) (frequencies, magnitudes []float32, err error) {
	if len(samples) < c.hopSize {
		return nil, nil, ErrTooFewSamples
	}

	p := 2 * c.nWaves
	res := lpc.FitLPC(samples, p, c.hopSize, 0)
	freq, mag := lpc.CoefficientsToTracks(res.A, res.Gain)

	numeric.MapInPlace(mag.Data, func(x float32) float32 {
		if x > maxMagnitude {
			return maxMagnitude
		}
		return x
	})

	return freq.Data, mag.Data, nil
}

// Quantize snaps frequencies onto the scale generated for scaleType
// (octaves 0..8, multiplier 2*pi/sampleRate); ScaleNone is a no-op.
func (c *Converter) Quantize(frequencies []float32, scaleType ScaleType) []float32 {
	if scaleType == ScaleNone {
		out := make([]float32, len(frequencies))
		copy(out, frequencies)
		return out
	}

	var qt music.QuantizeType
	switch scaleType {
	case ScaleDiatonic:
		qt = music.QuantizeDiatonic
	case ScalePentatonic:
		qt = music.QuantizePentatonic
	default:
		qt = music.QuantizeChromatic
	}
	return music.QuantizeFrequencies(frequencies, qt, float32(c.sampleRate))
}

// QuantizeContinuous blends the unquantized, chromatic, diatonic, and
// pentatonic variants of frequencies per spec §4.E. strength must lie in
// [0, 3].
func (c *Converter) QuantizeContinuous(frequencies []float32, strength float32) ([]float32, error) {
	if strength < 0 || strength > 3 {
		return nil, ErrInvalidQuantizeStrength
	}
	return music.QuantizeContinuous(frequencies, strength, float32(c.sampleRate)), nil
}

// AddDepth lowers each of the len(frequencies) tracks by a fractional
// octave that shrinks linearly with its position (the first track by width
// octaves, the last not at all), thickening the rendering by
// spreading tracks across octaves. Supplements spec.md from the reference
// implementation's add_depth (see SPEC_FULL.md).
func (c *Converter) AddDepth(frequencies []float32, width float32) []float32 {
	return music.AddDepth(frequencies, width)
}

// Synthesize reconstructs a waveform from flattened frequency/magnitude
// tracks (as returned by Analyze or Quantize), carrying phase continuity
// from firstPhases (nil defaults to zeros) and returning lastPhases to pass
// into the next call over a contiguous buffer.
func (c *Converter) Synthesize(frequencies, magnitudes, firstPhases []float32) (samples, lastPhases []float32, err error) {
	if len(frequencies) != len(magnitudes) {
		return nil, nil, ErrShapeMismatch
	}
	if len(frequencies)%c.nWaves != 0 {
		return nil, nil, ErrShapeMismatch
	}
	nFrames := len(frequencies) / c.nWaves
	if nFrames < 2 {
		return nil, nil, ErrTooFewFrames
	}
	if firstPhases != nil && len(firstPhases) != c.nWaves {
		return nil, nil, ErrShapeMismatch
	}

	freq := &numeric.Array2{Data: frequencies, Rows: nFrames, Cols: c.nWaves}
	mag := &numeric.Array2{Data: magnitudes, Rows: nFrames, Cols: c.nWaves}

	samples, lastPhases = synth.Synthesize(freq, mag, c.hopSize, sin32, firstPhases)
	return samples, lastPhases, nil
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
