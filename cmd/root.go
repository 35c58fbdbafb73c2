// Package cmd implements the gridlearn command line interface
package cmd

import "github.com/spf13/cobra"

// RootCommand returns the root of the gridlearn command tree
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridlearn",
		Short: "Tabular Q-learning on discrete grid worlds",
	}

	cmd.AddCommand(
		TrainCommand(),
	)

	return cmd
}
