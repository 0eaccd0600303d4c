package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeatmatchNaturalOnSmallGap(t *testing.T) {
	plan := PlanBeatmatch(track(128, "8B"), track(129.5, "8B"))

	assert.False(t, plan.StretchNeeded)
	assert.Equal(t, SyncNatural, plan.SyncMethod)
	assert.InDelta(t, 128.0, plan.TargetBPM, 1e-9)
	assert.InDelta(t, 1.0, plan.StretchFactorA, 1e-9)
	assert.InDelta(t, 1.0, plan.StretchFactorB, 1e-9)
}

func TestBeatmatchStretchMeetsInTheMiddle(t *testing.T) {
	plan := PlanBeatmatch(track(126, "8B"), track(130, "8B"))

	assert.True(t, plan.StretchNeeded)
	assert.Equal(t, SyncTimeStretch, plan.SyncMethod)
	assert.InDelta(t, 128.0, plan.TargetBPM, 1e-9)
	assert.InDelta(t, 128.0/126.0, plan.StretchFactorA, 1e-9)
	assert.InDelta(t, 128.0/130.0, plan.StretchFactorB, 1e-9)
}

func TestBeatmatchStretchFactorsClamped(t *testing.T) {
	for _, pair := range [][2]float64{{80, 86}, {84, 90}, {120, 126}, {174, 180}} {
		plan := PlanBeatmatch(track(pair[0], "8B"), track(pair[1], "8B"))
		if !plan.StretchNeeded {
			continue
		}
		assert.GreaterOrEqual(t, plan.StretchFactorA, 0.94)
		assert.LessOrEqual(t, plan.StretchFactorA, 1.06)
		assert.GreaterOrEqual(t, plan.StretchFactorB, 0.94)
		assert.LessOrEqual(t, plan.StretchFactorB, 1.06)
	}
}

func TestBeatmatchLargeGapNotMatched(t *testing.T) {
	plan := PlanBeatmatch(track(128, "8B"), track(174, "8B"))

	assert.False(t, plan.StretchNeeded)
	assert.Equal(t, SyncNone, plan.SyncMethod)
	assert.InDelta(t, 174.0, plan.TargetBPM, 1e-9)
	assert.InDelta(t, 1.0, plan.StretchFactorA, 1e-9)
	assert.InDelta(t, 1.0, plan.StretchFactorB, 1e-9)
}

func TestBeatmatchInvalidBPM(t *testing.T) {
	plan := PlanBeatmatch(track(0, "8B"), track(128, "8B"))

	assert.False(t, plan.StretchNeeded)
	assert.Equal(t, SyncNatural, plan.SyncMethod)
	assert.InDelta(t, 120.0, plan.TargetBPM, 1e-9)
}
