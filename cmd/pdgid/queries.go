package main

import (
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/joss/pdgid/pkg/pdgid"
)

func queriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queries [pattern]",
		Short: "List available queries, fuzzy-filtered by pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qs := pdgid.Queries()
			if len(args) == 1 {
				qs = fuzzyQueries(qs, args[0])
			}
			return newRenderer(cmd.OutOrStdout()).Queries(qs)
		},
	}
}

// fuzzyQueries keeps queries whose name matches pattern, best match first.
func fuzzyQueries(qs []pdgid.Query, pattern string) []pdgid.Query {
	names := make([]string, len(qs))
	for i, q := range qs {
		names[i] = q.Name
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]pdgid.Query, 0, len(matches))
	for _, m := range matches {
		out = append(out, qs[m.Index])
	}
	return out
}
