// CLI for DJ transition planning over per-track analysis records.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"autodj/pkg/analysis"
	"autodj/pkg/config"
	"autodj/pkg/server"
	"autodj/pkg/transition"
)

var rootCmd = &cobra.Command{
	Use:   "autodj",
	Short: "Plan automated DJ transitions between analyzed tracks",
}

var planCmd = &cobra.Command{
	Use:   "plan <track_a.json> <track_b.json> [mode] [time]",
	Short: "Plan a transition between two analyzed tracks",
	Args:  cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runPlan(args, asJSON)
	},
}

var cuesCmd = &cobra.Command{
	Use:   "cues <features.json>",
	Short: "Derive cue points and structure from raw track features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioPath, _ := cmd.Flags().GetString("audio")
		out, _ := cmd.Flags().GetString("output")
		return runCues(args[0], audioPath, out)
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <audio.mp3>",
	Short: "Compute the RMS energy trace for an audio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrace(args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planning API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		return runServe(cfgPath)
	},
}

func init() {
	planCmd.Flags().Bool("json", false, "Output the raw plan as JSON")
	cuesCmd.Flags().String("audio", "", "Audio file to compute the energy trace from when the features lack one")
	cuesCmd.Flags().StringP("output", "o", "", "Write the analysis to a sidecar file instead of stdout")
	serveCmd.Flags().String("config", "", "Path to TOML config file")
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(cuesCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlan(args []string, asJSON bool) error {
	trackA, err := analysis.ReadJSON(args[0])
	if err != nil {
		return fmt.Errorf("read track a: %w", err)
	}
	trackB, err := analysis.ReadJSON(args[1])
	if err != nil {
		return fmt.Errorf("read track b: %w", err)
	}

	mode := transition.ModeAuto
	if len(args) > 2 {
		mode = transition.Mode(args[2])
	}
	forceTime := 0.0
	if len(args) > 3 {
		forceTime, err = strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid transition time %q: %w", args[3], err)
		}
	}

	plan, err := transition.Plan(trackA, trackB, mode, forceTime)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(plan)
	}
	fmt.Println(renderPlan(trackA, trackB, plan))
	return nil
}

func runCues(featuresPath, audioPath, outPath string) error {
	fs, err := analysis.ReadFeatureSet(featuresPath)
	if err != nil {
		return fmt.Errorf("read features: %w", err)
	}

	if audioPath != "" && len(fs.Energy.RMS) == 0 {
		trace, err := analysis.TraceFromAudio(audioPath, analysis.DefaultFrameSize, analysis.DefaultHopSize)
		if err != nil {
			logrus.WithError(err).Warn("energy trace unavailable, deriving without it")
		} else {
			fs.Energy = trace
		}
	}

	ta := analysis.Derive(fs)
	if outPath != "" {
		return ta.WriteJSON(outPath)
	}
	return printJSON(ta)
}

func runTrace(audioPath string) error {
	trace, err := analysis.TraceFromAudio(audioPath, analysis.DefaultFrameSize, analysis.DefaultHopSize)
	if err != nil {
		return err
	}
	return printJSON(trace)
}

func runServe(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return server.Run(cfg.Addr())
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
