package transition

import (
	"errors"
	"fmt"
	"math"

	"autodj/pkg/analysis"
)

// ErrInconsistentInput marks a validation failure at the planning entry
// point: inner stages never re-validate.
var ErrInconsistentInput = errors.New("inconsistent track analysis")

// Plan produces a transition plan between two analyzed tracks. Mode
// defaults to auto when empty; forceTime only applies to quick mode.
// Inconsistent analyses (negative duration, cue-out before cue-in) fail
// here; entirely absent analyses yield the safe fallback plan instead,
// because producing a usable plan beats raising.
func Plan(a, b *analysis.TrackAnalysis, mode Mode, forceTime float64) (*TransitionPlan, error) {
	if mode == "" {
		mode = ModeAuto
	}
	if a == nil || b == nil {
		return FallbackPlan(a), nil
	}
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("track a: %w", err)
	}
	if err := validate(b); err != nil {
		return nil, fmt.Errorf("track b: %w", err)
	}

	compat := AnalyzeCompatibility(a, b)
	timing := CalculateTiming(a, b, mode, forceTime)
	style := SelectStyle(b, compat)

	return &TransitionPlan{
		Compatibility:      compat,
		Timing:             timing,
		Style:              style,
		Beatmatch:          PlanBeatmatch(a, b),
		StemPlan:           PlanStemMix(a, b, timing),
		Effects:            PlanEffects(style, compat),
		SuccessProbability: SuccessProbability(compat, timing),
	}, nil
}

func validate(t *analysis.TrackAnalysis) error {
	switch {
	case t.Duration < 0 || math.IsNaN(t.Duration):
		return fmt.Errorf("%w: duration %v", ErrInconsistentInput, t.Duration)
	case t.CueOut < t.CueIn:
		return fmt.Errorf("%w: cue_out %.2f before cue_in %.2f", ErrInconsistentInput, t.CueOut, t.CueIn)
	}
	return nil
}

// FallbackPlan is the safe plan used when planning has nothing usable to
// work with: a late quick cut with plain linear fades and no beatmatch.
func FallbackPlan(a *analysis.TrackAnalysis) *TransitionPlan {
	durationA := 180.0
	if a != nil && a.Duration > 0 {
		durationA = a.Duration
	}
	startTime := math.Max(0, durationA-12.0)

	return &TransitionPlan{
		Compatibility: neutralReport(),
		Timing: Timing{
			StartTime:       startTime,
			EndTime:         startTime + quickMixDuration,
			MixDuration:     quickMixDuration,
			TrackAOut:       startTime + quickMixDuration,
			TrackBIn:        8.0,
			OverlapDuration: quickMixDuration,
		},
		Style: Style{
			Name:        StyleQuickCut,
			Description: "Safe fallback transition",
			MixCurve:    "fast_fade",
			UseStems:    true,
		},
		Beatmatch: BeatmatchPlan{
			TargetBPM:      120.0,
			StretchFactorA: 1.0,
			StretchFactorB: 1.0,
			SyncMethod:     SyncNone,
		},
		StemPlan: StemMixPlan{
			TrackA: StemSet{
				Vocals: StemFade{Fade: FadeLinearOut, DurationFactor: 1.0},
				Drums:  StemFade{Fade: FadeLinearOut, DurationFactor: 1.0},
				Bass:   StemFade{Fade: FadeLinearOut, DurationFactor: 1.0},
				Other:  StemFade{Fade: FadeLinearOut, DurationFactor: 1.0},
			},
			TrackB: StemSet{
				Vocals: StemFade{Fade: FadeLinearIn, DurationFactor: 1.0},
				Drums:  StemFade{Fade: FadeLinearIn, DurationFactor: 1.0},
				Bass:   StemFade{Fade: FadeLinearIn, DurationFactor: 1.0},
				Other:  StemFade{Fade: FadeLinearIn, DurationFactor: 1.0},
			},
		},
		Effects:            EffectList{TrackA: []Effect{}, TrackB: []Effect{}},
		SuccessProbability: fallbackProbability,
	}
}
