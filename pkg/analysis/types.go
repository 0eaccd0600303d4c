// Package analysis turns raw per-track feature measurements into the
// TrackAnalysis record consumed by transition planning: structural
// intro/outro windows, energy peaks, and beat-aligned cue points.
package analysis

import (
	"encoding/json"
	"os"
)

// Interval is a span of vocal activity in seconds.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Window marks a structural section of a track (intro or outro).
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// EnergyTrace is a coarse RMS energy curve sampled at regular timestamps.
// Times and RMS are parallel slices.
type EnergyTrace struct {
	Times []float64 `json:"times"`
	RMS   []float64 `json:"rms"`
}

// FeatureSet is the raw measurement bundle a feature provider hands over
// for one track. Beat tracking, key extraction and vocal detection happen
// upstream; this package only interprets their output.
type FeatureSet struct {
	File           string      `json:"file,omitempty"`
	Duration       float64     `json:"duration"`
	SampleRate     int         `json:"sample_rate"`
	BPM            float64     `json:"bpm"`
	TempoStability float64     `json:"tempo_stability,omitempty"`
	Beatgrid       []float64   `json:"beatgrid"`
	Downbeats      []float64   `json:"downbeats,omitempty"`
	Key            string      `json:"key"`
	Camelot        string      `json:"camelot,omitempty"`
	KeyConfidence  float64     `json:"key_confidence"`
	Vocals         []Interval  `json:"vocals"`
	Energy         EnergyTrace `json:"energy"`
}

// TrackAnalysis is the per-track record transition planning works from.
// It is built once by Derive and never mutated afterward, so plans for
// different pairs may share the same record concurrently.
type TrackAnalysis struct {
	File           string     `json:"file,omitempty"`
	Duration       float64    `json:"duration"`
	SampleRate     int        `json:"sample_rate"`
	BPM            float64    `json:"bpm"`
	TempoStability float64    `json:"tempo_stability"`
	Beatgrid       []float64  `json:"beatgrid"`
	Downbeats      []float64  `json:"downbeats"`
	Key            string     `json:"key"`
	Camelot        string     `json:"camelot"`
	KeyConfidence  float64    `json:"key_confidence"`
	Vocals         []Interval `json:"vocals"`
	VocalCoverage  float64    `json:"vocal_coverage"`
	Intro          Window     `json:"intro"`
	Outro          Window     `json:"outro"`
	EnergyPeaks    []float64  `json:"energy_peaks"`
	CueIn          float64    `json:"cue_in"`
	CueOut         float64    `json:"cue_out"`
	MixLength      float64    `json:"mix_length"`
}

// ReadJSON loads a TrackAnalysis sidecar file.
func ReadJSON(path string) (*TrackAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ta TrackAnalysis
	if err := json.Unmarshal(data, &ta); err != nil {
		return nil, err
	}
	return &ta, nil
}

// WriteJSON writes the analysis to a JSON sidecar file.
func (ta *TrackAnalysis) WriteJSON(path string) error {
	data, err := json.MarshalIndent(ta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFeatureSet loads a feature provider JSON file.
func ReadFeatureSet(path string) (*FeatureSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fs FeatureSet
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, err
	}
	return &fs, nil
}
