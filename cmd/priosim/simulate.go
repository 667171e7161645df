package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/spf13/cobra"
)

type outputOptions struct {
	output  string
	noColor bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", outputTable, "Output: table or json")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable colors in the Gantt chart")
}

func (o *outputOptions) simulateAndRender(cmd *cobra.Command, processes []simulator.Process) error {
	res, err := simulator.Simulate(processes)
	if err != nil {
		return err
	}
	return renderResult(cmd.OutOrStdout(), res, o.output, !o.noColor)
}

func simulateCmd() *cobra.Command {
	var (
		format   string
		jsonPath string
		preset   string
		out      outputOptions
	)
	cmd := &cobra.Command{
		Use:   "simulate [file|-]",
		Short: "Simulate a process set read from a file, stdin or a preset",
		Long: `Simulate a process set. CSV input has one process per row as id,arrival,burst,priority
with an optional header row. JSON input is an array of {id, arrivalTime, burstTime, priority}
objects, optionally selected with --json-path.`,
		Example: `  priosim simulate procs.csv
  priosim simulate --preset default
  cat run.json | priosim simulate - --format json --json-path data.processes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var processes []simulator.Process
			switch {
			case preset != "":
				if len(args) > 0 {
					return fmt.Errorf("--preset cannot be combined with an input file")
				}
				procs, err := simulator.Preset(preset)
				if err != nil {
					return fmt.Errorf("%w (available: %s)", err, strings.Join(simulator.PresetNames(), ", "))
				}
				processes = procs
			default:
				path := "-"
				if len(args) > 0 {
					path = args[0]
				}
				procs, err := loadProcesses(cmd.InOrStdin(), path, format, jsonPath)
				if err != nil {
					return err
				}
				processes = procs
			}
			return out.simulateAndRender(cmd, processes)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: csv or json (default from the file extension, csv for stdin)")
	cmd.Flags().StringVar(&jsonPath, "json-path", "", "gjson path selecting the process array in JSON input")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "Simulate a built-in process set instead of reading input")
	out.bind(cmd)
	return cmd
}

// loadProcesses reads path, or stdin when path is "-".
func loadProcesses(stdin io.Reader, path, format, jsonPath string) ([]simulator.Process, error) {
	if format == "" {
		format = formatCSV
		if strings.EqualFold(filepath.Ext(path), ".json") {
			format = formatJSON
		}
	}
	if path == "-" {
		return readProcesses(stdin, format, jsonPath)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	procs, err := readProcesses(f, format, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return procs, nil
}
