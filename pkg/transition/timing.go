package transition

import (
	"math"

	"autodj/pkg/analysis"
)

// Timing constants in seconds.
const (
	autoMixDuration   = 16.0
	quickMixDuration  = 8.0
	forcedMixDuration = 12.0
	phraseLookahead   = 30.0
	minTailroom       = 4.0
)

// CalculateTiming computes the transition window on track A's timeline.
// Auto mode backs off 16s from A's cue-out; quick mode snaps the
// requested time forward to the next phrase boundary; any other mode
// uses a late fixed window.
func CalculateTiming(a, b *analysis.TrackAnalysis, mode Mode, forceTime float64) Timing {
	durationA := a.Duration
	cueOutA := a.CueOut
	if cueOutA <= 0 {
		cueOutA = durationA - autoMixDuration
	}
	cueInB := b.CueIn

	var startTime, mixDuration float64
	switch {
	case mode == ModeAuto:
		startTime = cueOutA - autoMixDuration
		mixDuration = autoMixDuration
	case mode == ModeQuick && forceTime > 0:
		startTime = nextPhraseBoundary(a, forceTime)
		mixDuration = quickMixDuration
	default:
		startTime = math.Max(durationA-20.0, durationA*0.8)
		mixDuration = forcedMixDuration
	}

	startTime = math.Max(0, math.Min(startTime, durationA-minTailroom))
	endTime := startTime + mixDuration

	return Timing{
		StartTime:       startTime,
		EndTime:         endTime,
		MixDuration:     mixDuration,
		TrackAOut:       endTime,
		TrackBIn:        cueInB,
		OverlapDuration: mixDuration,
	}
}

// nextPhraseBoundary finds the next clean point to start a quick
// transition: a downbeat within the lookahead window, else the next raw
// beat, else a short fixed offset.
func nextPhraseBoundary(t *analysis.TrackAnalysis, after float64) float64 {
	for _, db := range t.Downbeats {
		if db > after && db-after <= phraseLookahead {
			return db
		}
	}
	for _, b := range t.Beatgrid {
		if b > after {
			return b
		}
	}
	return after + 4.0
}
