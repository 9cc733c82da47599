package lpc

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestCoefficientsToTracksPropertyNonDecreasingAndInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		const hopSize = 256
		const p = 8
		windowSize := 2 * hopSize
		nHops := rapid.IntRange(2, 8).Draw(rt, "nHops")
		n := nHops*hopSize + windowSize

		audio := make([]float32, n)
		for i := range audio {
			audio[i] = float32(rapid.Float64Range(-1, 1).Draw(rt, "sample"))
		}

		res := FitLPC(audio, p, hopSize, 0)
		freq, mag := CoefficientsToTracks(res.A, res.Gain)

		for h := 0; h < freq.Rows; h++ {
			row := freq.Row(h)
			for i := 1; i < len(row); i++ {
				if row[i] < row[i-1] && row[i] != 0 {
					rt.Fatalf("hop %d: frequencies not non-decreasing: %v", h, row)
				}
			}
			for _, f := range row {
				if f < 0 || f >= math.Pi {
					rt.Fatalf("hop %d: frequency %v out of [0, pi)", h, f)
				}
			}
		}
		for _, m := range mag.Data {
			if math.IsNaN(float64(m)) || math.IsInf(float64(m), 0) {
				rt.Fatalf("magnitude %v not finite", m)
			}
		}
	})
}
