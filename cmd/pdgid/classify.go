package main

import (
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <code>...",
		Short: "Show the categories each code belongs to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout()).Classify(ids)
		},
	}
}

func chargeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charge <code>...",
		Short: "Show electric charge in units of e/3 and e",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout()).Charges(ids)
		},
	}
}
