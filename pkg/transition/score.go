package transition

import "math"

// tempoBonuses adjusts the success estimate by tempo class; unknown or
// half-time classes carry no adjustment.
var tempoBonuses = map[TempoCompat]float64{
	TempoPerfect:    0.2,
	TempoGood:       0.1,
	TempoAcceptable: 0.0,
	TempoPoor:       -0.2,
}

const fallbackProbability = 0.7

// SuccessProbability estimates how likely the transition sounds good:
// the compatibility score adjusted for mix-length sweet spot and tempo
// class, clamped to [0, 1].
func SuccessProbability(compat CompatibilityReport, timing Timing) float64 {
	base := compat.OverallScore
	if math.IsNaN(base) {
		return fallbackProbability
	}

	timingBonus := -0.1
	if timing.MixDuration >= 8 && timing.MixDuration <= 16 {
		timingBonus = 0.1
	}

	prob := base + timingBonus + tempoBonuses[compat.Tempo.Compatibility]
	return math.Max(0.0, math.Min(1.0, prob))
}
