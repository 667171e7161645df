package main

import (
	"fmt"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/spf13/cobra"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in process sets, or print one as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range simulator.PresetNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			procs, err := simulator.Preset(args[0])
			if err != nil {
				return err
			}
			return writeCSV(cmd.OutOrStdout(), procs)
		},
	}
}
