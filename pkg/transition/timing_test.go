package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autodj/pkg/analysis"
)

func timedTrack() *analysis.TrackAnalysis {
	return &analysis.TrackAnalysis{
		Duration:  240,
		BPM:       128,
		Beatgrid:  []float64{100.2, 100.7, 101.2, 101.7, 102.2},
		Downbeats: []float64{96, 112, 128},
		CueIn:     8,
		CueOut:    220,
	}
}

func TestTimingAuto(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	timing := CalculateTiming(a, b, ModeAuto, 0)

	assert.InDelta(t, 204.0, timing.StartTime, 1e-9) // cueOut - 16
	assert.InDelta(t, 16.0, timing.MixDuration, 1e-9)
	assert.InDelta(t, 220.0, timing.EndTime, 1e-9)
	assert.InDelta(t, timing.EndTime, timing.TrackAOut, 1e-9)
	assert.InDelta(t, 8.0, timing.TrackBIn, 1e-9)
	assert.InDelta(t, timing.MixDuration, timing.OverlapDuration, 1e-9)
}

func TestTimingQuickPrefersDownbeat(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	timing := CalculateTiming(a, b, ModeQuick, 100)

	// Next downbeat within 30s of the request wins over raw beats.
	assert.InDelta(t, 112.0, timing.StartTime, 1e-9)
	assert.InDelta(t, 8.0, timing.MixDuration, 1e-9)
}

func TestTimingQuickFallsBackToBeat(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	a.Downbeats = []float64{150} // more than 30s ahead of the request
	timing := CalculateTiming(a, b, ModeQuick, 100)

	assert.InDelta(t, 100.2, timing.StartTime, 1e-9)
}

func TestTimingQuickNoBeats(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	a.Downbeats = nil
	a.Beatgrid = nil
	timing := CalculateTiming(a, b, ModeQuick, 100)

	assert.InDelta(t, 104.0, timing.StartTime, 1e-9)
}

func TestTimingQuickWithoutRequestTimeUsesFallback(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	timing := CalculateTiming(a, b, ModeQuick, 0)

	// max(240-20, 0.8*240) = 220, clamped to duration-4
	assert.InDelta(t, 220.0, timing.StartTime, 1e-9)
	assert.InDelta(t, 12.0, timing.MixDuration, 1e-9)
}

func TestTimingForcedMode(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	timing := CalculateTiming(a, b, ModeForced, 0)

	assert.InDelta(t, 220.0, timing.StartTime, 1e-9)
	assert.InDelta(t, 12.0, timing.MixDuration, 1e-9)
}

func TestTimingClampedToTrack(t *testing.T) {
	a, b := timedTrack(), timedTrack()
	a.Duration = 30
	a.CueOut = 28
	timing := CalculateTiming(a, b, ModeAuto, 0)

	assert.GreaterOrEqual(t, timing.StartTime, 0.0)
	assert.LessOrEqual(t, timing.StartTime, a.Duration-4)
}
