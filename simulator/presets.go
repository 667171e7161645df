package simulator

import (
	"fmt"
	"sort"
)

var presets = map[string][]Process{
	"default": {
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: 3, ArrivalTime: 2, BurstTime: 8, Priority: 3},
		{ID: 4, ArrivalTime: 3, BurstTime: 6, Priority: 2},
	},
	"sample": {
		{ID: 1, ArrivalTime: 0, BurstTime: 4, Priority: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: 3, ArrivalTime: 2, BurstTime: 1, Priority: 4},
		{ID: 4, ArrivalTime: 3, BurstTime: 2, Priority: 2},
		{ID: 5, ArrivalTime: 5, BurstTime: 4, Priority: 1},
	},
}

// Preset returns a copy of a built-in process set.
func Preset(name string) ([]Process, error) {
	procs, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return append([]Process(nil), procs...), nil
}

// PresetNames lists the built-in process sets in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
