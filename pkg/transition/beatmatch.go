package transition

import (
	"math"

	"autodj/pkg/analysis"
)

// Stretch limits: ±6% keeps time-stretching inaudible.
const (
	minStretch = 0.94
	maxStretch = 1.06
)

// PlanBeatmatch decides whether the two tracks are time-stretched to a
// common tempo. Small gaps play naturally, moderate gaps meet in the
// middle, and large gaps are left to style compensation.
func PlanBeatmatch(a, b *analysis.TrackAnalysis) BeatmatchPlan {
	if a == nil || b == nil || !validBPM(a.BPM) || !validBPM(b.BPM) {
		return BeatmatchPlan{
			TargetBPM:      120.0,
			StretchFactorA: 1.0,
			StretchFactorB: 1.0,
			SyncMethod:     SyncNatural,
		}
	}

	bpmA, bpmB := a.BPM, b.BPM
	diff := math.Abs(bpmA - bpmB)

	switch {
	case diff <= 2:
		return BeatmatchPlan{
			TargetBPM:      bpmA,
			StretchFactorA: 1.0,
			StretchFactorB: 1.0,
			SyncMethod:     SyncNatural,
		}
	case diff <= 6:
		target := (bpmA + bpmB) / 2
		return BeatmatchPlan{
			StretchNeeded:  true,
			TargetBPM:      target,
			StretchFactorA: clampStretch(target / bpmA),
			StretchFactorB: clampStretch(target / bpmB),
			SyncMethod:     SyncTimeStretch,
		}
	default:
		return BeatmatchPlan{
			TargetBPM:      bpmB,
			StretchFactorA: 1.0,
			StretchFactorB: 1.0,
			SyncMethod:     SyncNone,
		}
	}
}

func clampStretch(f float64) float64 {
	return math.Max(minStretch, math.Min(maxStretch, f))
}
