package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joss/pdgid/internal/selftest"
)

var errSelftestFailed = errors.New("selftest failed")

func selftestCmd() *cobra.Command {
	var (
		samples int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Verify decoder properties over a sample of codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("samples") {
				samples = cfg.SelftestSamples
			}
			report, err := selftest.Run(cmd.Context(), samples)
			if err != nil {
				return err
			}
			if err := newRenderer(cmd.OutOrStdout()).Selftest(report, verbose); err != nil {
				return err
			}
			if !report.IsHealthy() {
				return errSelftestFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 0, "Random codes per check (default $PDGID_SELFTEST_SAMPLES)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every check")
	return cmd
}
