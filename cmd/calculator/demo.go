package main

import (
	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the add / multiply / divide demonstration and print the history",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("name")
			if err != nil {
				return err
			}
			_, err = calculator.RunDemo(cmd.OutOrStdout(), name)
			return err
		},
	}

	cmd.Flags().String("name", "Go Calculator", "name used in the greeting")

	return cmd
}
