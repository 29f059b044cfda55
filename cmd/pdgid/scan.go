package main

import (
	"github.com/spf13/cobra"

	"github.com/joss/pdgid/internal/metrics"
	"github.com/joss/pdgid/internal/runtime"
	"github.com/joss/pdgid/internal/scan"
)

func scanCmd() *cobra.Command {
	var (
		opts        scan.Options
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Enumerate a range of codes matching predicate queries",
		Example: `  pdgid scan --from 100 --to 600 --where is_meson,has_strange
  pdgid scan --from=-20 --to=20 --where is_lepton -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.Workers = cfg.ScanWorkers
			}
			if !cmd.Flags().Changed("limit") {
				opts.Limit = cfg.ScanLimit
			}

			sm := runtime.NewShutdownManager(cmd.Context(), runtime.DefaultShutdownTimeout)
			stop := sm.ListenForSignals()
			defer stop()

			report, err := scan.Run(sm.Context(), opts)
			if showMetrics {
				_ = metrics.Global().WriteText(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout()).Scan(report)
		},
	}

	cmd.Flags().Int64Var(&opts.From, "from", 0, "First code of the range")
	cmd.Flags().Int64Var(&opts.To, "to", 0, "Last code of the range (inclusive)")
	cmd.Flags().StringSliceVar(&opts.Where, "where", scan.DefaultWhere, "Predicate queries that must all hold")
	cmd.Flags().IntVar(&opts.Workers, "workers", scan.DefaultWorkers, "Parallel workers (default $PDGID_SCAN_WORKERS)")
	cmd.Flags().Int64Var(&opts.Limit, "limit", scan.DefaultLimit, "Widest range accepted (default $PDGID_SCAN_LIMIT)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print scan counters to stderr in Prometheus format")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
