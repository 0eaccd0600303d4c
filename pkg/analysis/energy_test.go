package analysis

import (
	"math"
	"testing"
)

func TestGaussianSmoothPreservesConstant(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 0.8
	}

	out := gaussianSmooth(x, 3.0)

	for i, v := range out {
		if math.Abs(v-0.8) > 1e-9 {
			t.Fatalf("constant input changed at %d: %f", i, v)
		}
	}
}

func TestGaussianSmoothReducesSpike(t *testing.T) {
	x := make([]float64, 50)
	x[25] = 1.0

	out := gaussianSmooth(x, 3.0)

	if out[25] >= 0.5 {
		t.Errorf("spike not attenuated: %f", out[25])
	}
	if out[20] <= 0 {
		t.Error("energy did not spread to neighbors")
	}
	// Edge clamping keeps the kernel normalized, so mass is conserved
	// away from the edges.
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("smoothing not mass-preserving: sum %f", sum)
	}
}

func TestGaussianSmoothDegenerateInputs(t *testing.T) {
	if out := gaussianSmooth(nil, 3.0); len(out) != 0 {
		t.Error("nil input must stay empty")
	}
	x := []float64{1, 2, 3}
	if out := gaussianSmooth(x, 0); &out[0] != &x[0] {
		t.Error("non-positive sigma must return input unchanged")
	}
}

func TestQuantileOf(t *testing.T) {
	x := []float64{5, 1, 4, 2, 3}

	if q := quantileOf(x, 0.40); q != 2 {
		t.Errorf("0.40 quantile: expected 2, got %f", q)
	}
	if q := quantileOf(x, 1.0); q != 5 {
		t.Errorf("1.0 quantile: expected 5, got %f", q)
	}
	if x[0] != 5 {
		t.Error("input was mutated")
	}
	if q := quantileOf(nil, 0.5); !math.IsNaN(q) {
		t.Errorf("empty input: expected NaN, got %f", q)
	}
}

func TestStabilityFromBeats(t *testing.T) {
	even := []float64{0, 0.5, 1.0, 1.5, 2.0}
	if s := stabilityFromBeats(even); s < 0.99 {
		t.Errorf("even spacing: expected ~1, got %f", s)
	}

	jittery := []float64{0, 0.3, 1.1, 1.3, 2.4}
	s := stabilityFromBeats(jittery)
	if s <= 0 || s >= 0.9 {
		t.Errorf("jittery spacing: expected mid-range stability, got %f", s)
	}

	if s := stabilityFromBeats([]float64{0, 0.5}); s != 0 {
		t.Errorf("too few intervals: expected 0, got %f", s)
	}
	// Non-increasing beats are skipped, leaving too few intervals.
	if s := stabilityFromBeats([]float64{2, 1, 0}); s != 0 {
		t.Errorf("descending beats: expected 0, got %f", s)
	}
}

func TestTraceFromAudioMissingFile(t *testing.T) {
	if _, err := TraceFromAudio("testdata/does-not-exist.mp3", 0, 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
