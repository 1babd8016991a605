package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calculator",
		Short:         "Arithmetic with an in-memory calculation history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	demoCmd := newDemoCmd()
	rootCmd.AddCommand(demoCmd, newServeCmd())

	// Running the binary bare performs the demonstration.
	rootCmd.RunE = demoCmd.RunE
	rootCmd.Flags().AddFlagSet(demoCmd.Flags())

	return rootCmd
}
