package transition

// Fixed effect parameters.
const (
	echoDelay    = 0.125 // 1/8 note at 120 BPM
	echoFeedback = 0.3
	echoMix      = 0.4

	highpassFreq   = 8000.0
	lowpassFreq    = 200.0
	sweepFadeTime  = 0.5
	eqLowCut       = 0.8
	eqFadePerScore = 2.0
)

// PlanEffects attaches style-triggered effects. Effects are not freely
// combinable: echo_out puts an echo tail on the outgoing track, slam
// sweeps complementary filters across both tracks, and any style with an
// EQ transition adds a bass cut whose fade scales with the overall score.
func PlanEffects(style Style, compat CompatibilityReport) EffectList {
	fx := EffectList{
		TrackA: []Effect{},
		TrackB: []Effect{},
	}

	switch style.Name {
	case StyleEchoOut:
		fx.TrackA = append(fx.TrackA, Effect{
			Type:     "echo",
			Delay:    echoDelay,
			Feedback: echoFeedback,
			Mix:      echoMix,
		})
	case StyleSlam:
		fx.TrackA = append(fx.TrackA, Effect{
			Type:       "highpass",
			Frequency:  highpassFreq,
			FadeInTime: sweepFadeTime,
		})
		fx.TrackB = append(fx.TrackB, Effect{
			Type:        "lowpass",
			Frequency:   lowpassFreq,
			FadeOutTime: sweepFadeTime,
		})
	}

	if style.EQTransition {
		fx.TrackA = append(fx.TrackA, Effect{
			Type:     "eq",
			LowCut:   eqLowCut,
			FadeTime: compat.OverallScore * eqFadePerScore,
		})
	}

	return fx
}
