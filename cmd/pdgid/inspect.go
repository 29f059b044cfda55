package main

import (
	"github.com/spf13/cobra"

	"github.com/joss/pdgid/internal/render"
)

func inspectCmd() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "inspect <code>...",
		Short: "List every query for one or more codes",
		Example: `  pdgid inspect 2212
  pdgid inspect 211 --only 'is_*' --only '*charge'
  pdgid inspect -o json -- -11`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidatePatterns(only); err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout()).Inspect(ids, only)
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "Glob patterns selecting query names")
	return cmd
}
