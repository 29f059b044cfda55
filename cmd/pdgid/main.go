// Package main provides the pdgid CLI entrypoint.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joss/pdgid/internal/config"
	"github.com/joss/pdgid/internal/logging"
)

var (
	version = "0.1.0"

	cfg      *config.CLIEnv
	output   string
	noColor  bool
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitOnError(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdgid",
		Short: "Decode and classify PDG Monte Carlo particle codes",
		Long: `pdgid decodes Particle Data Group identifier codes: quark content,
spin, charge, nuclear numbers and the numbering-scheme family of a code.

Negative codes follow "--", e.g. pdgid inspect -- -211.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: text, json or yaml (default $PDGID_OUTPUT or text)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default $PDGID_LOG_LEVEL or warn)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "decode", Title: "Decoding:"},
		&cobra.Group{ID: "tools", Title: "Tools:"},
	)

	for _, c := range []*cobra.Command{inspectCmd(), classifyCmd(), chargeCmd(), queriesCmd()} {
		c.GroupID = "decode"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{scanCmd(), selftestCmd(), exploreCmd()} {
		c.GroupID = "tools"
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup loads configuration and applies flag overrides.
func setup(cmd *cobra.Command) error {
	config.ResetEnv()
	env, err := config.Env()
	if err != nil {
		return err
	}
	cfg = env

	if !cmd.Flags().Changed("output") {
		output = cfg.Output
	}
	if err := config.ValidateOutput(output); err != nil {
		return err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logging.SetLevel(lvl)

	if noColor || cfg.ColorDisabled() || !isTerminal(cmd.OutOrStdout()) {
		color.NoColor = true
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pdgid %s\n", version)
		},
	}
}
