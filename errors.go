// errors.go defines public error types for the sws package.

package sws

import "errors"

// Public error types for converter operations. These mark contract
// violations (spec §7.2): the host is expected to treat them as programming
// bugs, not to retry or recover from them.
var (
	// ErrTooFewSamples indicates fewer samples were given to Analyze than
	// a single hop requires.
	ErrTooFewSamples = errors.New("sws: fewer samples than one hop")

	// ErrShapeMismatch indicates mismatched input lengths across a pair of
	// arguments that must agree (F/M flat lengths, first-phase length).
	ErrShapeMismatch = errors.New("sws: mismatched input shapes")

	// ErrTooFewFrames indicates Synthesize was asked to render fewer than
	// two hops, which leaves no interval to interpolate across.
	ErrTooFewFrames = errors.New("sws: need at least two frames to synthesize")

	// ErrInvalidQuantizeStrength indicates a QuantizeContinuous strength
	// outside [0, 3].
	ErrInvalidQuantizeStrength = errors.New("sws: quantize strength must be in [0, 3]")

	// ErrInvalidConfig indicates nWaves, hopSize, or sampleRate were not
	// positive integers.
	ErrInvalidConfig = errors.New("sws: nWaves, hopSize, and sampleRate must be positive")
)
