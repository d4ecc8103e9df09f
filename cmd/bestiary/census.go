package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCensusCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "census",
		Short: "Populate the creature map and print its census as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := setup(cmd, *cfgPath)
			if err != nil {
				return err
			}
			data, err := m.Census().JSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
