package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"autodj/pkg/analysis"
	"autodj/pkg/transition"
)

// renderPlan formats a transition plan as a readable summary table.
func renderPlan(a, b *analysis.TrackAnalysis, plan *transition.TransitionPlan) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})

	compat := plan.Compatibility
	if a.File != "" || b.File != "" {
		tw.AppendRow(table.Row{"Tracks", fmt.Sprintf("%s → %s", a.File, b.File)})
	}
	tw.AppendRows([]table.Row{
		{"Style", fmt.Sprintf("%s (%s)", plan.Style.Name, plan.Style.MixCurve)},
		{"Start", fmt.Sprintf("%.1fs", plan.Timing.StartTime)},
		{"Mix duration", fmt.Sprintf("%.1fs", plan.Timing.MixDuration)},
		{"Track B in", fmt.Sprintf("%.1fs", plan.Timing.TrackBIn)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Tempo", fmt.Sprintf("%.1f → %.1f BPM (%s)", compat.Tempo.BPMA, compat.Tempo.BPMB, compat.Tempo.Compatibility)},
		{"Keys", fmt.Sprintf("%s → %s (%s)", compat.Harmonic.KeyA, compat.Harmonic.KeyB, compat.Harmonic.Compatibility)},
		{"Score", fmt.Sprintf("%.2f", compat.OverallScore)},
		{"Mixable", fmt.Sprintf("%t", compat.Mixable)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Sync", string(plan.Beatmatch.SyncMethod)},
		{"Target BPM", fmt.Sprintf("%.1f", plan.Beatmatch.TargetBPM)},
		{"Stretch", fmt.Sprintf("%.3f / %.3f", plan.Beatmatch.StretchFactorA, plan.Beatmatch.StretchFactorB)},
		{"Effects", fmt.Sprintf("%d out, %d in", len(plan.Effects.TrackA), len(plan.Effects.TrackB))},
	})
	tw.AppendFooter(table.Row{"Success", fmt.Sprintf("%.0f%%", plan.SuccessProbability*100)})

	return tw.Render()
}
