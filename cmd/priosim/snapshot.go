package main

import (
	"github.com/Gthulhu/priosim/hostproc"
	"github.com/spf13/cobra"
)

func snapshotCmd() *cobra.Command {
	var (
		limit int
		out   outputOptions
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Simulate the busiest processes running on this host",
		Long: `Build a process set from the processes with the most CPU time on this host: the pid is the
id, creation time gives the arrival in seconds, CPU seconds give the burst and the nice value
is the priority.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := hostproc.Snapshot(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return out.simulateAndRender(cmd, processes)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of host processes to include")
	out.bind(cmd)
	return cmd
}
