package analysis

import "math"

// Cue derivation policy. The quiet/peak thresholds and section caps are
// transition-planning policy, not generic DSP, so they live here rather
// than in the feature provider.
const (
	quietQuantile  = 0.40 // smoothed-energy threshold for intro/outro
	peakQuantile   = 0.85 // smoothed-energy threshold for energy peaks
	sectionMinHold = 5.0  // seconds a section must last before it counts
	sectionCap     = 32.0 // max intro/outro length in seconds
	vocalBuffer    = 2.0  // seconds of clearance after a vocal segment
	maxEnergyPeaks = 10
)

// Fixed fallbacks when derivation has nothing to work with.
const (
	defaultCueIn     = 8.0
	defaultCueOutMin = 60.0
	defaultDuration  = 180.0
	minMixLength     = 8.0
)

// Derive builds an immutable TrackAnalysis from raw provider features.
// Individual steps degrade independently: a missing beatgrid skips beat
// snapping, missing vocals skip vocal avoidance, a missing energy trace
// falls back to fixed intro/outro windows. Derive never fails.
func Derive(fs *FeatureSet) *TrackAnalysis {
	if fs == nil || !(fs.Duration > 0) || math.IsNaN(fs.Duration) {
		return fallbackAnalysis(fs)
	}

	ta := &TrackAnalysis{
		File:           fs.File,
		Duration:       fs.Duration,
		SampleRate:     fs.SampleRate,
		BPM:            fs.BPM,
		TempoStability: fs.TempoStability,
		Beatgrid:       fs.Beatgrid,
		Downbeats:      fs.Downbeats,
		Key:            fs.Key,
		Camelot:        fs.Camelot,
		KeyConfidence:  fs.KeyConfidence,
		Vocals:         fs.Vocals,
	}

	if ta.Camelot == "" {
		ta.Camelot = CamelotFromKey(ta.Key)
	}
	if ta.TempoStability == 0 && len(ta.Beatgrid) >= 3 {
		ta.TempoStability = stabilityFromBeats(ta.Beatgrid)
	}
	if len(ta.Downbeats) == 0 && len(ta.Beatgrid) >= 4 {
		ta.Downbeats = downbeatsFromGrid(ta.Beatgrid)
	}
	for _, v := range ta.Vocals {
		ta.VocalCoverage += v.End - v.Start
	}

	ta.Intro, ta.Outro, ta.EnergyPeaks = deriveStructure(fs.Duration, fs.Energy)
	deriveCues(ta)
	return ta
}

// deriveStructure finds intro/outro windows and energy peaks from the
// smoothed energy trace, with fixed windows when no trace is available.
func deriveStructure(duration float64, tr EnergyTrace) (intro, outro Window, peaks []float64) {
	intro = Window{Start: 0, End: defaultCueIn}
	outro = Window{Start: math.Max(0, duration-16.0), End: duration}

	if len(tr.RMS) == 0 || len(tr.Times) != len(tr.RMS) {
		return intro, outro, nil
	}

	smooth := gaussianSmooth(tr.RMS, 3.0)
	quiet := quantileOf(smooth, quietQuantile)
	if math.IsNaN(quiet) {
		return intro, outro, nil
	}

	for i, t := range tr.Times {
		if smooth[i] > quiet && t > sectionMinHold {
			intro.End = math.Min(t, sectionCap)
			break
		}
	}

	for i := len(smooth) - 1; i >= 0; i-- {
		t := tr.Times[i]
		if smooth[i] > quiet && duration-t > sectionMinHold {
			outro.Start = math.Max(t, duration-sectionCap)
			break
		}
	}

	peak := quantileOf(smooth, peakQuantile)
	for i, t := range tr.Times {
		if smooth[i] > peak {
			peaks = append(peaks, t)
			if len(peaks) == maxEnergyPeaks {
				break
			}
		}
	}
	return intro, outro, peaks
}

// deriveCues sets beat-aligned cue-in/cue-out points. The cue-out walks
// vocal segments from the end so the mix never exits over a vocal line.
func deriveCues(ta *TrackAnalysis) {
	d := ta.Duration

	cueIn := ta.Intro.End
	if beat, ok := snapForward(ta.Beatgrid, cueIn); ok {
		cueIn = beat
	}
	cueIn = clamp(cueIn, 0, d*0.3)

	cueOut := ta.Outro.Start
	for i := len(ta.Vocals) - 1; i >= 0; i-- {
		v := ta.Vocals[i]
		if v.Start < cueOut && !math.IsNaN(v.End) {
			cueOut = v.End + vocalBuffer
			break
		}
	}
	if beat, ok := snapBackward(ta.Beatgrid, cueOut); ok {
		cueOut = beat
	}
	cueOut = clamp(cueOut, d*0.7, d)

	if math.IsNaN(cueIn) || math.IsNaN(cueOut) {
		cueIn = defaultCueIn
		cueOut = math.Max(d-16.0, defaultCueOutMin)
	}

	ta.CueIn = cueIn
	ta.CueOut = cueOut
	ta.MixLength = math.Max(minMixLength, 0.1*(cueOut-cueIn))
}

// snapForward returns the nearest beat at or after t.
func snapForward(beats []float64, t float64) (float64, bool) {
	for _, b := range beats {
		if math.IsNaN(b) {
			continue
		}
		if b >= t {
			return b, true
		}
	}
	return 0, false
}

// snapBackward returns the nearest beat at or before t.
func snapBackward(beats []float64, t float64) (float64, bool) {
	best, found := 0.0, false
	for _, b := range beats {
		if math.IsNaN(b) || b > t {
			continue
		}
		best, found = b, true
	}
	return best, found
}

// downbeatsFromGrid takes every 4th beat as a phrase boundary.
func downbeatsFromGrid(beats []float64) []float64 {
	downbeats := make([]float64, 0, len(beats)/4+1)
	for i := 0; i < len(beats); i += 4 {
		downbeats = append(downbeats, beats[i])
	}
	return downbeats
}

// fallbackAnalysis is returned when the feature set is entirely unusable.
func fallbackAnalysis(fs *FeatureSet) *TrackAnalysis {
	duration := defaultDuration
	ta := &TrackAnalysis{
		Duration:  duration,
		BPM:       120.0,
		Key:       "Unknown",
		Camelot:   "Unknown",
		Intro:     Window{Start: 0, End: defaultCueIn},
		Outro:     Window{Start: duration - 16.0, End: duration},
		CueIn:     defaultCueIn,
		CueOut:    math.Max(duration-16.0, defaultCueOutMin),
		MixLength: minMixLength,
	}
	if fs != nil {
		ta.File = fs.File
		if fs.BPM > 0 {
			ta.BPM = fs.BPM
		}
	}
	return ta
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
