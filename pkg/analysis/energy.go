package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Default framing for the RMS energy trace (~23ms frames, ~12ms hop at
// 44.1kHz, matching the coarse resolution structure analysis expects).
const (
	DefaultFrameSize = 1024
	DefaultHopSize   = 512
)

// TraceFromAudio decodes an audio file and computes its RMS energy trace.
// This is the one piece of the feature provider bundled with the planner;
// beat tracking and key extraction stay external.
func TraceFromAudio(path string, frameSize, hopSize int) (EnergyTrace, error) {
	if frameSize <= 0 {
		frameSize = DefaultFrameSize
	}
	if hopSize <= 0 {
		hopSize = DefaultHopSize
	}

	samples, sampleRate, err := LoadAudioMono(path)
	if err != nil {
		return EnergyTrace{}, fmt.Errorf("load audio: %w", err)
	}
	if len(samples) < frameSize {
		return EnergyTrace{}, fmt.Errorf("audio too short: %d samples", len(samples))
	}

	numFrames := (len(samples)-frameSize)/hopSize + 1
	tr := EnergyTrace{
		Times: make([]float64, numFrames),
		RMS:   make([]float64, numFrames),
	}
	for i := 0; i < numFrames; i++ {
		start := i * hopSize
		sum := 0.0
		for _, s := range samples[start : start+frameSize] {
			sum += float64(s) * float64(s)
		}
		tr.Times[i] = float64(start) / float64(sampleRate)
		tr.RMS[i] = math.Sqrt(sum / float64(frameSize))
	}
	return tr, nil
}

// gaussianSmooth applies a 1-D Gaussian kernel with the given sigma,
// truncated at 4 sigma, with edge clamping.
func gaussianSmooth(x []float64, sigma float64) []float64 {
	if len(x) == 0 || sigma <= 0 {
		return x
	}
	radius := int(4 * sigma)
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	out := make([]float64, len(x))
	for i := range x {
		acc := 0.0
		for k, w := range kernel {
			j := i + k - radius
			if j < 0 {
				j = 0
			} else if j >= len(x) {
				j = len(x) - 1
			}
			acc += w * x[j]
		}
		out[i] = acc
	}
	return out
}

// quantileOf returns the p-quantile of x without mutating it.
func quantileOf(x []float64, p float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// stabilityFromBeats estimates tempo stability from beat spacing:
// 1 means perfectly even spacing, 0 means unusable.
func stabilityFromBeats(beats []float64) float64 {
	diffs := make([]float64, 0, len(beats)-1)
	for i := 1; i < len(beats); i++ {
		d := beats[i] - beats[i-1]
		if math.IsNaN(d) || d <= 0 {
			continue
		}
		diffs = append(diffs, d)
	}
	if len(diffs) < 2 {
		return 0
	}
	mean := stat.Mean(diffs, nil)
	if mean <= 0 {
		return 0
	}
	return clamp(1.0-stat.StdDev(diffs, nil)/mean, 0, 1)
}
