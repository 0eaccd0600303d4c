package transition

import (
	"math"
	"strconv"

	"autodj/pkg/analysis"
)

// Score lookups for the overall compatibility score. Classes missing
// from a table score at the table's floor.
var tempoScores = map[TempoCompat]float64{
	TempoPerfect:    1.0,
	TempoGood:       0.9,
	TempoAcceptable: 0.7,
	TempoHalfTime:   0.6,
	TempoPoor:       0.3,
}

var harmonicScores = map[HarmonicCompat]float64{
	HarmonicPerfect:    1.0,
	HarmonicCompatible: 0.8,
	HarmonicRelative:   0.7,
	HarmonicBoost:      0.6,
	HarmonicClash:      0.2,
}

const (
	tempoScoreFloor    = 0.3
	harmonicScoreFloor = 0.2
)

// AnalyzeCompatibility scores the tempo and harmonic relationship between
// two tracks. Unusable BPM values yield the neutral report (score 0.5,
// mixable) rather than an error.
func AnalyzeCompatibility(a, b *analysis.TrackAnalysis) CompatibilityReport {
	if a == nil || b == nil || !validBPM(a.BPM) || !validBPM(b.BPM) {
		return neutralReport()
	}

	tempo := classifyTempo(a.BPM, b.BPM)
	harmonic := HarmonicReport{
		KeyA:          a.Camelot,
		KeyB:          b.Camelot,
		Compatibility: classifyHarmonic(a.Camelot, b.Camelot),
	}

	tempoScore, ok := tempoScores[tempo.Compatibility]
	if !ok {
		tempoScore = tempoScoreFloor
	}
	harmonicScore, ok := harmonicScores[harmonic.Compatibility]
	if !ok {
		harmonicScore = harmonicScoreFloor
	}
	score := (tempoScore + harmonicScore) / 2

	return CompatibilityReport{
		Tempo:        tempo,
		Harmonic:     harmonic,
		OverallScore: score,
		Mixable:      score > 0.5,
	}
}

// classifyTempo classifies the tempo relationship. The half-time check
// only tests whether bpmA sits near half of bpmB, so a half/double pair
// with the faster track outgoing classifies as poor; kept as-is.
func classifyTempo(bpmA, bpmB float64) TempoReport {
	diff := math.Abs(bpmA - bpmB)
	ratio := math.Max(bpmA, bpmB) / math.Min(bpmA, bpmB)

	var compat TempoCompat
	switch {
	case diff <= 2:
		compat = TempoPerfect
	case diff <= 6:
		compat = TempoGood
	case ratio <= 1.06:
		compat = TempoAcceptable
	case ratio <= 2.0 && math.Abs(bpmA-bpmB/2) <= 6:
		compat = TempoHalfTime
	default:
		compat = TempoPoor
	}

	return TempoReport{
		BPMA:          bpmA,
		BPMB:          bpmB,
		Difference:    diff,
		Ratio:         ratio,
		Compatibility: compat,
	}
}

// The Camelot wheel is a static graph on 24 nodes, precomputed once as an
// ordered-pair lookup so boost/drop directionality is preserved.

type camelotKey struct {
	num   int // 1..12
	major bool
}

type camelotPair struct {
	from, to camelotKey
}

var wheelCompat = buildWheel()

func buildWheel() map[camelotPair]HarmonicCompat {
	keys := make([]camelotKey, 0, 24)
	for num := 1; num <= 12; num++ {
		keys = append(keys, camelotKey{num, false}, camelotKey{num, true})
	}

	wheel := make(map[camelotPair]HarmonicCompat, 24*24)
	for _, from := range keys {
		for _, to := range keys {
			wheel[camelotPair{from, to}] = relate(from, to)
		}
	}
	return wheel
}

func relate(from, to camelotKey) HarmonicCompat {
	if from == to {
		return HarmonicPerfect
	}
	if from.num == to.num {
		return HarmonicRelative
	}
	if from.major == to.major {
		diff := from.num - to.num
		if diff < 0 {
			diff = -diff
		}
		switch diff {
		case 1, 11: // adjacent on the wheel, including the 12-1 wrap
			return HarmonicCompatible
		case 5, 7: // energy change
			if to.num > from.num {
				return HarmonicBoost
			}
			return HarmonicDrop
		}
	}
	return HarmonicClash
}

// classifyHarmonic looks up the wheel relation of two Camelot codes.
// "Unknown" or malformed codes classify as unknown.
func classifyHarmonic(codeA, codeB string) HarmonicCompat {
	a, okA := parseCamelot(codeA)
	b, okB := parseCamelot(codeB)
	if !okA || !okB {
		return HarmonicUnknown
	}
	return wheelCompat[camelotPair{a, b}]
}

// parseCamelot parses a code like "8B" or "12A".
func parseCamelot(code string) (camelotKey, bool) {
	if len(code) < 2 {
		return camelotKey{}, false
	}
	letter := code[len(code)-1]
	if letter != 'A' && letter != 'B' {
		return camelotKey{}, false
	}
	num, err := strconv.Atoi(code[:len(code)-1])
	if err != nil || num < 1 || num > 12 {
		return camelotKey{}, false
	}
	return camelotKey{num: num, major: letter == 'B'}, true
}

func neutralReport() CompatibilityReport {
	return CompatibilityReport{
		Tempo:        TempoReport{Compatibility: TempoUnknown},
		Harmonic:     HarmonicReport{Compatibility: HarmonicUnknown},
		OverallScore: 0.5,
		Mixable:      true,
	}
}

func validBPM(bpm float64) bool {
	return bpm > 0 && !math.IsNaN(bpm) && !math.IsInf(bpm, 0)
}
