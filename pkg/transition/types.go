// Package transition plans automated DJ transitions between two analyzed
// tracks: compatibility scoring, timing, style selection, beatmatching,
// stem fades, effects and a success estimate. Every stage is a pure
// function of its inputs, so plans for independent pairs may be computed
// concurrently without coordination.
package transition

// TempoCompat classifies the tempo relationship between two tracks.
type TempoCompat string

const (
	TempoPerfect    TempoCompat = "perfect"
	TempoGood       TempoCompat = "good"
	TempoAcceptable TempoCompat = "acceptable"
	TempoHalfTime   TempoCompat = "half_time"
	TempoPoor       TempoCompat = "poor"
	TempoUnknown    TempoCompat = "unknown"
)

// HarmonicCompat classifies the Camelot-wheel relationship between two keys.
type HarmonicCompat string

const (
	HarmonicPerfect    HarmonicCompat = "perfect"
	HarmonicRelative   HarmonicCompat = "relative"
	HarmonicCompatible HarmonicCompat = "compatible"
	HarmonicBoost      HarmonicCompat = "boost"
	HarmonicDrop       HarmonicCompat = "drop"
	HarmonicClash      HarmonicCompat = "clash"
	HarmonicUnknown    HarmonicCompat = "unknown"
)

// TempoReport describes the tempo relationship of a track pair.
type TempoReport struct {
	BPMA          float64     `json:"bpm_a"`
	BPMB          float64     `json:"bpm_b"`
	Difference    float64     `json:"difference"`
	Ratio         float64     `json:"ratio"`
	Compatibility TempoCompat `json:"compatibility"`
}

// HarmonicReport describes the harmonic relationship of a track pair.
type HarmonicReport struct {
	KeyA          string         `json:"key_a"`
	KeyB          string         `json:"key_b"`
	Compatibility HarmonicCompat `json:"compatibility"`
}

// CompatibilityReport combines tempo and harmonic scoring for one pair.
// It is derived fresh per pair and never cached.
type CompatibilityReport struct {
	Tempo        TempoReport    `json:"tempo"`
	Harmonic     HarmonicReport `json:"harmonic"`
	OverallScore float64        `json:"overall_score"`
	Mixable      bool           `json:"mixable"`
}

// Mode selects how transition timing is calculated.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeQuick  Mode = "quick"
	ModeForced Mode = "forced"
)

// Timing describes when and for how long the two tracks overlap.
// All values are seconds on the outgoing track's timeline except
// TrackBIn, which is on the incoming track's timeline.
type Timing struct {
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
	MixDuration     float64 `json:"mix_duration"`
	TrackAOut       float64 `json:"track_a_out"`
	TrackBIn        float64 `json:"track_b_in"`
	OverlapDuration float64 `json:"overlap_duration"`
}

// StyleName is one of the fixed transition style variants.
type StyleName string

const (
	StyleCrossfade StyleName = "crossfade"
	StyleEchoOut   StyleName = "echo_out"
	StyleQuickCut  StyleName = "quick_cut"
	StyleSlam      StyleName = "slam"
)

// Style is a transition style with its mix curve and feature flags.
type Style struct {
	Name         StyleName `json:"name"`
	Description  string    `json:"description"`
	MixCurve     string    `json:"mix_curve"`
	UseStems     bool      `json:"use_stems"`
	EQTransition bool      `json:"eq_transition"`
	AddEcho      bool      `json:"add_echo"`
	AddFilter    bool      `json:"add_filter"`
}

// SyncMethod describes how beat alignment is achieved.
type SyncMethod string

const (
	SyncNatural     SyncMethod = "natural"
	SyncTimeStretch SyncMethod = "time_stretch"
	SyncNone        SyncMethod = "none"
)

// BeatmatchPlan decides whether and how much each track is time-stretched
// to a common tempo. Stretch factors stay within [0.94, 1.06].
type BeatmatchPlan struct {
	StretchNeeded  bool       `json:"stretch_needed"`
	TargetBPM      float64    `json:"target_bpm"`
	StretchFactorA float64    `json:"stretch_factor_a"`
	StretchFactorB float64    `json:"stretch_factor_b"`
	SyncMethod     SyncMethod `json:"sync_method"`
}

// FadeShape names a stem fade curve.
type FadeShape string

const (
	FadeLinearIn  FadeShape = "linear_in"
	FadeLinearOut FadeShape = "linear_out"
	FadeFastIn    FadeShape = "fast_in"
	FadeFastOut   FadeShape = "fast_out"
)

// StemFade schedules one stem's fade: shape, start delay in seconds, and
// the fraction of the mix duration the fade spans.
type StemFade struct {
	Fade           FadeShape `json:"fade"`
	Delay          float64   `json:"delay"`
	DurationFactor float64   `json:"duration_factor"`
}

// StemSet holds the fade plans for the four fixed stems of one track.
// The stem set is closed, so named fields rather than a keyed map.
type StemSet struct {
	Vocals StemFade `json:"vocals"`
	Drums  StemFade `json:"drums"`
	Bass   StemFade `json:"bass"`
	Other  StemFade `json:"other"`
}

// StemMixPlan schedules per-stem fades for both tracks.
type StemMixPlan struct {
	TrackA StemSet `json:"track_a"`
	TrackB StemSet `json:"track_b"`
}

// Effect is one style-triggered audio effect.
type Effect struct {
	Type        string  `json:"type"`
	Delay       float64 `json:"delay,omitempty"`
	Feedback    float64 `json:"feedback,omitempty"`
	Mix         float64 `json:"mix,omitempty"`
	Frequency   float64 `json:"frequency,omitempty"`
	FadeInTime  float64 `json:"fade_in_time,omitempty"`
	FadeOutTime float64 `json:"fade_out_time,omitempty"`
	LowCut      float64 `json:"low_cut,omitempty"`
	FadeTime    float64 `json:"fade_time,omitempty"`
}

// EffectList holds the effects attached to each track.
type EffectList struct {
	TrackA []Effect `json:"track_a"`
	TrackB []Effect `json:"track_b"`
}

// TransitionPlan is the complete executable plan for one transition.
// Constructed fresh per call; no shared mutable state between calls.
type TransitionPlan struct {
	Compatibility      CompatibilityReport `json:"compatibility"`
	Timing             Timing              `json:"timing"`
	Style              Style               `json:"style"`
	Beatmatch          BeatmatchPlan       `json:"beatmatch"`
	StemPlan           StemMixPlan         `json:"stem_plan"`
	Effects            EffectList          `json:"effects"`
	SuccessProbability float64             `json:"success_probability"`
}
