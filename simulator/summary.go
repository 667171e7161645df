package simulator

import "sort"

// summarize fills the aggregate fields of res from its segments and process results.
func summarize(res *Result) {
	var waiting, turnaround, response float64
	for _, p := range res.Processes {
		waiting += float64(p.WaitingTime)
		turnaround += float64(p.TurnaroundTime)
		response += float64(p.ResponseTime)
	}
	if n := float64(len(res.Processes)); n > 0 {
		res.AverageWaitingTime = waiting / n
		res.AverageTurnaroundTime = turnaround / n
		res.AverageResponseTime = response / n
	}

	res.IdleTime = 0
	res.ContextSwitches = 0
	for i, s := range res.Segments {
		if s.Occupant.IsIdle() {
			res.IdleTime += s.Len()
			continue
		}
		if i > 0 {
			res.ContextSwitches++
		}
	}

	if res.TotalTime > 0 {
		total := float64(res.TotalTime)
		res.CPUUtilization = float64(res.TotalTime-res.IdleTime) / total
		res.Throughput = float64(len(res.Processes)) / total
	}
}

// SortedByID returns a copy of the per-process results ordered by process id.
func (r *Result) SortedByID() []ProcessResult {
	out := make([]ProcessResult, len(r.Processes))
	copy(out, r.Processes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Segments = append([]Segment(nil), r.Segments...)
	out.Processes = append([]ProcessResult(nil), r.Processes...)
	return &out
}

// BurstOf sums the time the given process held the processor.
func (r *Result) BurstOf(processID int) int {
	total := 0
	for _, s := range r.Segments {
		if id, ok := s.Occupant.ProcessID(); ok && id == processID {
			total += s.Len()
		}
	}
	return total
}
