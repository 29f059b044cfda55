package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joss/pdgid/internal/runtime"
	"github.com/joss/pdgid/internal/tui"
)

var errNoTTY = errors.New("explore needs an interactive terminal")

func exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [code[/filter]]",
		Short: "Interactively decode codes as you type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
				return errNoTTY
			}

			sm := runtime.NewShutdownManager(cmd.Context(), runtime.DefaultShutdownTimeout)
			stop := sm.ListenForSignals()
			defer stop()

			return tui.Run(sm.Context(), strings.Join(args, ""))
		},
	}
}
