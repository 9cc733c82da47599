package music

import "testing"

func TestGenerateScale(t *testing.T) {
	got := GenerateScale([]NoteName{C, E, G}, 2, 3, 1.0)
	want := []float32{65.41, 82.41, 98.00, 130.82, 164.82, 196.00}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if d := got[i] - want[i]; d < -0.05 || d > 0.05 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuantizeFrequency(t *testing.T) {
	allowed := []float32{100, 200, 300}
	if got := QuantizeFrequency(50, allowed); got != 100 {
		t.Errorf("QuantizeFrequency(50, ...) = %v, want 100", got)
	}
	// crossover at 100*sqrt(2) ~= 141.42, not the linear midpoint 150.
	if got := QuantizeFrequency(145, allowed); got != 200 {
		t.Errorf("QuantizeFrequency(145, ...) = %v, want 200", got)
	}
	if got := QuantizeFrequency(140, allowed); got != 100 {
		t.Errorf("QuantizeFrequency(140, ...) = %v, want 100", got)
	}
}

func TestQuantizeContinuousBoundaryWeights(t *testing.T) {
	freqs := []float32{0.5, 1.0}
	const sampleRate = 8000

	// At strength=0, output must equal the unquantized input (w0=1).
	got := QuantizeContinuous(freqs, 0, sampleRate)
	for i := range freqs {
		if d := got[i] - freqs[i]; d < -1e-5 || d > 1e-5 {
			t.Errorf("strength=0: got[%d] = %v, want %v", i, got[i], freqs[i])
		}
	}
}

func TestQuantizeContinuousOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range strength")
		}
	}()
	QuantizeContinuous([]float32{1}, 4, 8000)
}

func TestAddDepthNoOpForSingleTrack(t *testing.T) {
	got := AddDepth([]float32{1.5}, 1.0)
	if got[0] != 1.5 {
		t.Errorf("got %v, want 1.5", got[0])
	}
}

func TestAddDepthLowersEarlierTracksMore(t *testing.T) {
	in := []float32{1.0, 1.0, 1.0}
	got := AddDepth(in, 1.0)
	// i=0 gets full width (lowered most), i=n-1 gets none.
	if got[2] != in[2] {
		t.Errorf("last track should be unchanged, got %v", got[2])
	}
	if !(got[0] < got[1] && got[1] < got[2]) {
		t.Errorf("expected increasing coefficients from first to last track: %v", got)
	}
}
