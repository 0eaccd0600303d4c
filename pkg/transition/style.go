package transition

import (
	"math"

	"autodj/pkg/analysis"
)

// styleRule pairs a predicate with the style it selects. Rules are
// evaluated top-down; the first match wins.
type styleRule struct {
	match func(score float64, tempo TempoCompat, introB float64) bool
	style Style
}

var styleRules = []styleRule{
	{
		match: func(score float64, tempo TempoCompat, _ float64) bool {
			return score >= 0.8 && (tempo == TempoPerfect || tempo == TempoGood)
		},
		style: Style{
			Name:         StyleCrossfade,
			Description:  "Professional crossfade with EQ and stem control",
			MixCurve:     "equal_power",
			UseStems:     true,
			EQTransition: true,
		},
	},
	{
		match: func(score float64, _ TempoCompat, introB float64) bool {
			return score >= 0.6 && introB > 8
		},
		style: Style{
			Name:        StyleEchoOut,
			Description: "Echo tail on outgoing track, clean drop-in",
			MixCurve:    "linear",
			UseStems:    true,
			AddEcho:     true,
		},
	},
	{
		match: func(_ float64, tempo TempoCompat, _ float64) bool {
			return tempo == TempoPoor
		},
		style: Style{
			Name:        StyleSlam,
			Description: "Hard cut with filter effects",
			MixCurve:    "immediate",
			UseStems:    false,
			AddFilter:   true,
		},
	},
	{
		match: func(_ float64, _ TempoCompat, _ float64) bool { return true },
		style: Style{
			Name:        StyleQuickCut,
			Description: "Beat-aligned quick transition",
			MixCurve:    "fast_fade",
			UseStems:    true,
		},
	},
}

// safeStyle is the fallback when selection inputs are unusable.
var safeStyle = Style{
	Name:        StyleCrossfade,
	Description: "Standard crossfade",
	MixCurve:    "linear",
	UseStems:    false,
}

// SelectStyle picks a transition style from the pair's compatibility and
// the incoming track's intro length.
func SelectStyle(b *analysis.TrackAnalysis, compat CompatibilityReport) Style {
	score := compat.OverallScore
	if b == nil || math.IsNaN(score) {
		return safeStyle
	}
	introB := b.Intro.End - b.Intro.Start

	for _, rule := range styleRules {
		if rule.match(score, compat.Tempo.Compatibility, introB) {
			return rule.style
		}
	}
	return safeStyle
}
