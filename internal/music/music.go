// Package music implements note-name/scale generation, cents-based
// frequency quantization, and the continuous blend across scale variants.
package music

import (
	"math"
	"sort"

	"github.com/thesyncim/sws/internal/numeric"
)

// NoteName identifies one of the twelve chromatic pitch classes.
type NoteName int

const (
	C NoteName = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// octave4Frequency is the equal-tempered frequency of each note at octave 4,
// A4 = 440Hz.
var octave4Frequency = [12]float32{
	261.6256, // C4
	277.1826, // C#4
	293.6648, // D4
	311.1270, // D#4
	329.6276, // E4
	349.2282, // F4
	369.9944, // F#4
	391.9954, // G4
	415.3047, // G#4
	440.0000, // A4
	466.1638, // A#4
	493.8833, // B4
}

// Chromatic, Diatonic, and Pentatonic are the three note-name subsets scale
// generation draws from; Diatonic and Pentatonic are the C-major forms.
var (
	Chromatic  = []NoteName{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}
	Diatonic   = []NoteName{C, D, E, F, G, A, B}
	Pentatonic = []NoteName{C, D, E, G, A}
)

const (
	minOctave = 0
	maxOctave = 8
)

// GenerateScale returns the ascending, sorted frequencies of notes across
// octaves [startOctave, endOctave], each note frequency multiplied by
// multiplier (1.0 for Hz, 2*pi/sampleRate to move into normalized-frequency
// space).
func GenerateScale(notes []NoteName, startOctave, endOctave int, multiplier float32) []float32 {
	out := make([]float32, 0, len(notes)*(endOctave-startOctave+1))
	for octave := startOctave; octave <= endOctave; octave++ {
		shift := float32(math.Pow(2, float64(octave-4)))
		for _, n := range notes {
			out = append(out, octave4Frequency[n]*shift*multiplier)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// QuantizeType selects which note subset QuantizeFrequencies snaps onto.
type QuantizeType int

const (
	QuantizeChromatic QuantizeType = iota
	QuantizeDiatonic
	QuantizePentatonic
)

func notesFor(t QuantizeType) []NoteName {
	switch t {
	case QuantizeDiatonic:
		return Diatonic
	case QuantizePentatonic:
		return Pentatonic
	default:
		return Chromatic
	}
}

// QuantizeFrequency returns the element of allowed that minimizes the
// cents distance |1200*log2(f/a)| to f.
func QuantizeFrequency(f float32, allowed []float32) float32 {
	best := allowed[0]
	bestDist := centsDistance(f, best)
	for _, a := range allowed[1:] {
		d := centsDistance(f, a)
		if d < bestDist {
			bestDist = d
			best = a
		}
	}
	return best
}

func centsDistance(f, a float32) float32 {
	dist := float32(1200 * math.Log2(float64(f)/float64(a)))
	return numeric.Abs(dist)
}

// QuantizeFrequencies snaps every frequency in freqs (normalized,
// radians/sample) onto the scale generated from the given type, octaves
// 0..8, with multiplier 2*pi/sampleRate.
func QuantizeFrequencies(freqs []float32, t QuantizeType, sampleRate float32) []float32 {
	multiplier := float32(2 * math.Pi / float64(sampleRate))
	scale := GenerateScale(notesFor(t), minOctave, maxOctave, multiplier)

	out := make([]float32, len(freqs))
	for i, f := range freqs {
		out[i] = QuantizeFrequency(f, scale)
	}
	return out
}

// QuantizeContinuous blends four variants of freqs — unquantized, chromatic,
// diatonic, pentatonic — with piecewise-linear triangle weights peaking at
// strength 0, 1, 2, 3 respectively, normalized to sum 1. strength must lie
// in [0, 3].
func QuantizeContinuous(freqs []float32, strength, sampleRate float32) []float32 {
	if strength < 0 || strength > 3 {
		panic("music: QuantizeContinuous: strength out of range [0, 3]")
	}

	w0 := max32(0, 1-strength/3)
	var w1 float32
	if strength <= 1 {
		w1 = strength * 3
	} else {
		w1 = max32(0, 3*(2-strength))
	}
	var w2 float32
	if strength <= 2 {
		w2 = max32(0, 3*(strength-1))
	} else {
		w2 = max32(0, 3*(3-strength))
	}
	w3 := max32(0, 3*(strength-1)/2)

	sum := w0 + w1 + w2 + w3
	if sum == 0 {
		sum = 1
	}
	w0, w1, w2, w3 = w0/sum, w1/sum, w2/sum, w3/sum

	chromatic := QuantizeFrequencies(freqs, QuantizeChromatic, sampleRate)
	diatonic := QuantizeFrequencies(freqs, QuantizeDiatonic, sampleRate)
	pentatonic := QuantizeFrequencies(freqs, QuantizePentatonic, sampleRate)

	out := make([]float32, len(freqs))
	for i := range freqs {
		out[i] = w0*freqs[i] + w1*chromatic[i] + w2*diatonic[i] + w3*pentatonic[i]
	}
	return out
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// AddDepth lowers each of the len(frequencies) tracks by a fractional
// octave, the i-th track by 0.5^(width*(1 - i/(n-1))): a no-op when there
// are fewer than 2 tracks. Ported from the wasm_realtime_sws reference's
// add_depth, which spec.md's distillation dropped.
func AddDepth(frequencies []float32, width float32) []float32 {
	n := len(frequencies)
	out := make([]float32, n)
	copy(out, frequencies)
	if n <= 1 {
		return out
	}
	for i := range out {
		coef := float32(math.Pow(2, float64(-width*(1-float32(i)/float32(n-1)))))
		out[i] *= coef
	}
	return out
}
