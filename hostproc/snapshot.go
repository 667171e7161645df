// Package hostproc turns the processes running on this host into a simulator process set.
package hostproc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Gthulhu/priosim/pkg/logger"
	"github.com/Gthulhu/priosim/simulator"
	"github.com/shirou/gopsutil/v3/process"
)

var ErrInvalidLimit = errors.New("snapshot limit must be positive")

// hostProcess is the part of a live process a snapshot needs.
type hostProcess struct {
	PID        int32
	CreateTime int64 // unix ms
	CPUSeconds float64
	Nice       int32
}

// Snapshot picks the limit processes with the most CPU time and describes them as a process set:
// id is the pid, arrival is seconds since the oldest picked process was created, burst is the
// rounded CPU time (at least 1) and priority is the nice value. The result is sorted by pid.
func Snapshot(ctx context.Context, limit int) ([]simulator.Process, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLimit, limit)
	}
	procs, err := collect(ctx)
	if err != nil {
		return nil, err
	}
	return build(procs, limit), nil
}

// collect skips processes whose metadata cannot be read, which is normal for short-lived or
// privileged ones.
func collect(ctx context.Context) ([]hostProcess, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list host processes: %w", err)
	}

	skipped := 0
	result := make([]hostProcess, 0, len(procs))
	for _, p := range procs {
		createTime, err := p.CreateTimeWithContext(ctx)
		if err != nil {
			skipped++
			continue
		}
		times, err := p.TimesWithContext(ctx)
		if err != nil {
			skipped++
			continue
		}
		nice, err := p.NiceWithContext(ctx)
		if err != nil {
			skipped++
			continue
		}
		result = append(result, hostProcess{
			PID:        p.Pid,
			CreateTime: createTime,
			CPUSeconds: times.User + times.System,
			Nice:       nice,
		})
	}
	logger.Logger(ctx).Debug().Int("collected", len(result)).Int("skipped", skipped).Msg("host process snapshot")
	return result, nil
}

func build(procs []hostProcess, limit int) []simulator.Process {
	sorted := append([]hostProcess(nil), procs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CPUSeconds != sorted[j].CPUSeconds {
			return sorted[i].CPUSeconds > sorted[j].CPUSeconds
		}
		return sorted[i].PID < sorted[j].PID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if len(sorted) == 0 {
		return nil
	}

	oldest := sorted[0].CreateTime
	for _, p := range sorted[1:] {
		oldest = min(oldest, p.CreateTime)
	}

	result := make([]simulator.Process, len(sorted))
	for i, p := range sorted {
		result[i] = simulator.Process{
			ID:          int(p.PID),
			ArrivalTime: int((p.CreateTime - oldest) / 1000),
			BurstTime:   max(1, int(math.Round(p.CPUSeconds))),
			Priority:    int(p.Nice),
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
