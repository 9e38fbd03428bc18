package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tremolab/vibratrack/dataset"
	"github.com/tremolab/vibratrack/evaluation"
	"github.com/tremolab/vibratrack/vibrato"
)

func newPitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pitch <file.wav>",
		Short: "Print the per-block F0 contour of a WAV file as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := dataset.LoadWAV(args[0])
			if err != nil {
				return err
			}

			f0, times, err := vibrato.TrackPitch(clip.Samples, cfg.BlockSize, cfg.HopSize, clip.SampleRate, cfg.Interpolate)
			if err != nil {
				return err
			}

			fmt.Println("time_s,f0_hz")
			for i := range f0 {
				fmt.Printf("%.4f,%.3f\n", times[i], f0[i])
			}
			return nil
		},
	}
}

func newVibratoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vibrato <file.wav>",
		Short: "Print the per-window vibrato rate of a WAV file as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRateCommand(args[0], vibrato.TrackVibrato)
		},
	}
}

func newRMSVibratoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rms-vibrato <file.wav>",
		Short: "Print the per-window vibrato rate from the energy contour as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRateCommand(args[0], vibrato.TrackRMSVibrato)
		},
	}
}

type rateTracker func([]float64, *vibrato.TrackerParams) ([]float64, []float64, error)

func runRateCommand(path string, track rateTracker) error {
	clip, err := dataset.LoadWAV(path)
	if err != nil {
		return err
	}

	params, err := cfg.params(clip.SampleRate)
	if err != nil {
		return err
	}

	rates, times, err := track(clip.Samples, params)
	if err != nil {
		return err
	}

	fmt.Println("time_s,rate_hz")
	for i := range rates {
		fmt.Printf("%.4f,%.3f\n", times[i], rates[i])
	}
	return nil
}

func newEvaluateCmd() *cobra.Command {
	var (
		annotationsPath string
		useRMS          bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <dir>",
		Short: "Score a directory of WAV files against a ground-truth CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			annotations, err := dataset.LoadAnnotations(annotationsPath)
			if err != nil {
				return err
			}

			paths, err := dataset.ListWAVs(args[0])
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no WAV files in %s", args[0])
			}

			track := rateTracker(vibrato.TrackVibrato)
			if useRMS {
				track = vibrato.TrackRMSVibrato
			}

			var series []evaluation.WindowSeries
			for _, path := range paths {
				clip, err := dataset.LoadWAV(path)
				if err != nil {
					return err
				}

				params, err := cfg.params(clip.SampleRate)
				if err != nil {
					return err
				}

				rates, times, err := track(clip.Samples, params)
				if err != nil {
					return fmt.Errorf("analyzing %s: %w", clip.Name, err)
				}

				series = append(series, evaluation.WindowSeries{
					Filename: clip.Name,
					Rates:    rates,
					Times:    times,
				})
			}

			deviations := evaluation.RateDeviations(series, annotations)
			for i, dev := range deviations {
				fmt.Printf("segment %d: %.2f%% deviation\n", i, dev)
			}

			summary := evaluation.Summarize(deviations)
			fmt.Printf("segments: %d\n", summary.Count)
			fmt.Printf("deviation: mean %.2f%%, median %.2f%%, stddev %.2f%%, range %.2f%%-%.2f%%\n",
				summary.Mean, summary.Median, summary.StdDev, summary.Min, summary.Max)
			return nil
		},
	}

	cmd.Flags().StringVar(&annotationsPath, "annotations", "", "ground-truth CSV file")
	cmd.Flags().BoolVar(&useRMS, "rms", false, "score the energy-domain estimator instead")
	_ = cmd.MarkFlagRequired("annotations")

	return cmd
}

func newSynthCmd() *cobra.Command {
	var (
		carrier   float64
		modulator float64
		depth     float64
		duration  float64
		rate      float64
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Analyze a synthetic FM tone (sanity check without audio files)",
		RunE: func(cmd *cobra.Command, args []string) error {
			signal := vibrato.GenerateFM(rate, duration, carrier, modulator, depth)

			params, err := cfg.params(rate)
			if err != nil {
				return err
			}

			rates, times, err := vibrato.TrackVibrato(signal, params)
			if err != nil {
				return err
			}

			fmt.Printf("synthetic tone: carrier %.1f Hz, vibrato %.2f Hz\n", carrier, modulator)
			fmt.Println("time_s,rate_hz")
			for i := range rates {
				fmt.Printf("%.4f,%.3f\n", times[i], rates[i])
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&carrier, "carrier", 440, "carrier frequency in Hz")
	cmd.Flags().Float64Var(&modulator, "modulator", 5.5, "vibrato frequency in Hz")
	cmd.Flags().Float64Var(&depth, "depth", 1.0, "modulation depth")
	cmd.Flags().Float64Var(&duration, "duration", 3.0, "duration in seconds")
	cmd.Flags().Float64Var(&rate, "sample-rate", 44100, "sample rate in Hz")

	return cmd
}
