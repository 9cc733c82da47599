// Package sws implements a sine-wave-speech (SWS) analysis-synthesis core
// in pure Go.
//
// Sine-wave speech renders an arbitrary audio waveform as a superposition of
// a small number of time-varying sinusoids (typically four) that track the
// signal's formants. The package exposes an analysis pass (waveform to
// frequency/magnitude tracks), optional musical quantization of those
// tracks, and a synthesis pass (tracks back to a waveform), designed to run
// on short buffers in a streaming context.
//
// This implementation requires no cgo dependencies and performs no I/O
// beyond a diagnostic log line written when an analysis hop is skipped: it
// is a synchronous, single-threaded library. Frequencies are always
// expressed normalized (radians per sample); sample-rate conversion happens
// only at the scale-generation boundary inside Quantize.
//
// # Pipeline
//
// Converter.Analyze runs per-hop LPC analysis and converts each hop's
// predictor polynomial to formant tracks via complex root finding.
// Converter.Quantize and Converter.QuantizeContinuous optionally snap track
// frequencies onto a musical scale. Converter.Synthesize reconstructs a
// waveform from tracks, carrying phase continuity across calls via the
// first-phases/last-phases vectors.
//
// # Phase continuity
//
// The only state a host must carry between calls is the last-phases vector
// returned from one Synthesize call, passed back as first-phases on the
// next: this guarantees phase continuity across contiguous buffers.
package sws
