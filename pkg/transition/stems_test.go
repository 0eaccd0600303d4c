package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autodj/pkg/analysis"
)

func vocalTrack(vocals ...analysis.Interval) *analysis.TrackAnalysis {
	return &analysis.TrackAnalysis{
		Duration: 240,
		BPM:      128,
		Vocals:   vocals,
		CueIn:    8,
		CueOut:   220,
	}
}

func TestStemMixNoVocalClash(t *testing.T) {
	timing := Timing{StartTime: 200, MixDuration: 16}
	a := vocalTrack(analysis.Interval{Start: 40, End: 80})
	b := vocalTrack(analysis.Interval{Start: 60, End: 90})

	plan := PlanStemMix(a, b, timing)

	assert.Equal(t, FadeLinearOut, plan.TrackA.Vocals.Fade)
	assert.InDelta(t, 0.0, plan.TrackA.Vocals.Delay, 1e-9)
	assert.InDelta(t, 1.0, plan.TrackA.Vocals.DurationFactor, 1e-9)

	assert.Equal(t, FadeLinearIn, plan.TrackB.Vocals.Fade)
	assert.InDelta(t, 0.0, plan.TrackB.Vocals.Delay, 1e-9)
}

func TestStemMixOutgoingVocalsFadeFast(t *testing.T) {
	timing := Timing{StartTime: 200, MixDuration: 16}
	a := vocalTrack(analysis.Interval{Start: 190, End: 210})
	b := vocalTrack()

	plan := PlanStemMix(a, b, timing)

	assert.Equal(t, FadeFastOut, plan.TrackA.Vocals.Fade)
	assert.InDelta(t, 0.0, plan.TrackA.Vocals.Delay, 1e-9)
	assert.InDelta(t, 0.6, plan.TrackA.Vocals.DurationFactor, 1e-9)
}

func TestStemMixEarlyIncomingVocalsDelayed(t *testing.T) {
	timing := Timing{StartTime: 200, MixDuration: 16}
	a := vocalTrack()
	b := vocalTrack(analysis.Interval{Start: 10, End: 30}) // before cueIn+mix

	plan := PlanStemMix(a, b, timing)

	assert.Equal(t, FadeLinearIn, plan.TrackB.Vocals.Fade)
	assert.InDelta(t, 16*0.4, plan.TrackB.Vocals.Delay, 1e-9)
	assert.InDelta(t, 0.6, plan.TrackB.Vocals.DurationFactor, 1e-9)
}

func TestStemMixRhythmSchedule(t *testing.T) {
	timing := Timing{StartTime: 200, MixDuration: 10}
	plan := PlanStemMix(vocalTrack(), vocalTrack(), timing)

	// Outgoing: drums and other drop immediately, bass holds 30%.
	assert.InDelta(t, 0.0, plan.TrackA.Drums.Delay, 1e-9)
	assert.InDelta(t, 0.0, plan.TrackA.Other.Delay, 1e-9)
	assert.InDelta(t, 3.0, plan.TrackA.Bass.Delay, 1e-9)

	// Incoming: drums immediate, bass 20%, other 10%.
	assert.InDelta(t, 0.0, plan.TrackB.Drums.Delay, 1e-9)
	assert.InDelta(t, 2.0, plan.TrackB.Bass.Delay, 1e-9)
	assert.InDelta(t, 1.0, plan.TrackB.Other.Delay, 1e-9)
}
