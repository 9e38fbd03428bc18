// vibratrack analyzes monophonic recordings for vibrato: it tracks the
// fundamental frequency with block-based autocorrelation, conditions the
// contour, and estimates a vibrato rate per analysis window, with an
// energy-domain variant and an evaluation mode against ground-truth CSV
// annotations.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tremolab/vibratrack/logging"
)

var (
	cfg        = DefaultConfig()
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "vibratrack",
		Short:         "Autocorrelation-based vibrato rate analysis for monophonic audio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appLogger := logrus.New()
			if verbose {
				appLogger.SetLevel(logrus.DebugLevel)
			}
			logging.SetGlobalLogger(logging.NewLogrusLogger(appLogger))

			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags beat the config file.
			flags := cmd.Flags()
			if !flags.Changed("block-size") {
				blockSize = cfg.BlockSize
			}
			if !flags.Changed("hop-size") {
				hopSize = cfg.HopSize
			}
			cfg.BlockSize = blockSize
			cfg.HopSize = hopSize
			if flags.Changed("no-filter") {
				cfg.Filter = !noFilter
			}
			if flags.Changed("no-interpolate") {
				cfg.Interpolate = !noInterpolate
			}
			if flags.Changed("hop-denominator") {
				cfg.HopDenominator = hopDenominator
			}
			if flags.Changed("window-duration") {
				cfg.WindowDuration = windowDuration
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with analysis defaults")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().IntVar(&blockSize, "block-size", cfg.BlockSize, "analysis block size in samples")
	root.PersistentFlags().IntVar(&hopSize, "hop-size", cfg.HopSize, "hop between blocks in samples")
	root.PersistentFlags().BoolVar(&noFilter, "no-filter", false, "disable contour median + low-pass filtering")
	root.PersistentFlags().BoolVar(&noInterpolate, "no-interpolate", false, "disable quadratic peak interpolation")
	root.PersistentFlags().IntVar(&hopDenominator, "hop-denominator", cfg.HopDenominator, "window hop divisor")
	root.PersistentFlags().Float64Var(&windowDuration, "window-duration", cfg.WindowDuration, "rate window duration in seconds")

	root.AddCommand(newPitchCmd(), newVibratoCmd(), newRMSVibratoCmd(), newEvaluateCmd(), newSynthCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var (
	blockSize      int
	hopSize        int
	noFilter       bool
	noInterpolate  bool
	hopDenominator int
	windowDuration float64
)
