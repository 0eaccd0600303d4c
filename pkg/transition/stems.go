package transition

import "autodj/pkg/analysis"

// Stem scheduling factors as fractions of the mix duration.
const (
	vocalFastFactor  = 0.6 // clashing vocals fade across 60% of the mix
	vocalDelayFactor = 0.4 // incoming vocals held until 40% into the mix
	bassOutDelay     = 0.3 // outgoing low end persists
	bassInDelay      = 0.2
	otherInDelay     = 0.1
)

// PlanStemMix schedules per-stem fades over the transition window so two
// vocal lines never sound simultaneously and rhythmic elements establish
// before vocals re-enter.
func PlanStemMix(a, b *analysis.TrackAnalysis, timing Timing) StemMixPlan {
	start := timing.StartTime
	dur := timing.MixDuration
	end := start + dur

	vocalsAActive := false
	for _, v := range a.Vocals {
		if v.Start <= end && v.End >= start {
			vocalsAActive = true
			break
		}
	}

	vocalsBEarly := false
	for _, v := range b.Vocals {
		if v.Start <= b.CueIn+dur {
			vocalsBEarly = true
			break
		}
	}

	return StemMixPlan{
		TrackA: StemSet{
			Vocals: vocalFade(vocalsAActive, FadeLinearOut, FadeFastOut, 0),
			Drums:  StemFade{Fade: FadeLinearOut, DurationFactor: 1.0},
			Bass:   StemFade{Fade: FadeLinearOut, Delay: dur * bassOutDelay, DurationFactor: 1.0},
			Other:  StemFade{Fade: FadeLinearOut, DurationFactor: 1.0},
		},
		TrackB: StemSet{
			Vocals: vocalFade(vocalsBEarly, FadeLinearIn, FadeLinearIn, dur*vocalDelayFactor),
			Drums:  StemFade{Fade: FadeLinearIn, DurationFactor: 1.0},
			Bass:   StemFade{Fade: FadeLinearIn, Delay: dur * bassInDelay, DurationFactor: 1.0},
			Other:  StemFade{Fade: FadeLinearIn, Delay: dur * otherInDelay, DurationFactor: 1.0},
		},
	}
}

// vocalFade plans the vocal stem: with a potential clash, an outgoing
// vocal fades fast and an incoming vocal is delayed; otherwise the
// standard linear fade applies.
func vocalFade(clash bool, standard, clashShape FadeShape, clashDelay float64) StemFade {
	if !clash {
		return StemFade{Fade: standard, DurationFactor: 1.0}
	}
	return StemFade{Fade: clashShape, Delay: clashDelay, DurationFactor: vocalFastFactor}
}
