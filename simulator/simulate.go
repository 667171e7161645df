// Package simulator implements preemptive priority scheduling of a fixed process set on a
// single processor and reports the resulting timeline and per-process statistics.
//
// Time is discrete. At every instant the processor goes to the ready process with the
// smallest (priority, arrival time, id); a running process is preempted as soon as a more
// favorable one arrives. Simulate does not step one time unit at a time: the ready set can
// only change when a process arrives or completes, so time advances straight to the next
// such boundary.
package simulator

import (
	"container/heap"
	"sort"
)

// task is the private runtime state of one process during a run.
type task struct {
	Process
	remaining  int
	completion int
	firstRun   int
	index      int
}

// before is the total selection order: priority, then arrival, then id.
func (t *task) before(o *task) bool {
	if t.Priority != o.Priority {
		return t.Priority < o.Priority
	}
	if t.ArrivalTime != o.ArrivalTime {
		return t.ArrivalTime < o.ArrivalTime
	}
	return t.ID < o.ID
}

type readyQueue []*task

func (q readyQueue) Len() int           { return len(q) }
func (q readyQueue) Less(i, j int) bool { return q[i].before(q[j]) }
func (q readyQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *readyQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// timeline appends occupancy intervals and merges an interval into the previous segment
// when both have the same occupant.
type timeline struct {
	segments []Segment
}

func (tl *timeline) occupy(o Occupant, start, end int) {
	if n := len(tl.segments); n > 0 {
		last := &tl.segments[n-1]
		if last.Occupant == o && last.End == start {
			last.End = end
			return
		}
	}
	tl.segments = append(tl.segments, Segment{Occupant: o, Start: start, End: end})
}

// Simulate runs preemptive priority scheduling over processes. The input slice is not
// modified. It returns ErrEmptyInput, *InvalidDescriptorError or *DuplicateIDError when the
// process set violates a precondition; no partial result is produced in that case.
func Simulate(processes []Process) (*Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}

	tasks := make([]*task, len(processes))
	for i, p := range processes {
		tasks[i] = &task{Process: p, remaining: p.BurstTime, firstRun: -1, index: -1}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].ArrivalTime < tasks[j].ArrivalTime
	})

	var (
		ready     readyQueue
		tl        timeline
		now       int
		next      int
		completed int
	)
	for completed < len(tasks) {
		for next < len(tasks) && tasks[next].ArrivalTime <= now {
			heap.Push(&ready, tasks[next])
			next++
		}

		if ready.Len() == 0 {
			// nothing is ready, so another arrival must exist
			arrival := tasks[next].ArrivalTime
			tl.occupy(Idle, now, arrival)
			now = arrival
			continue
		}

		cur := ready[0]
		until := now + cur.remaining
		if next < len(tasks) && tasks[next].ArrivalTime < until {
			until = tasks[next].ArrivalTime
		}
		if cur.firstRun < 0 {
			cur.firstRun = now
		}
		tl.occupy(Running(cur.ID), now, until)
		cur.remaining -= until - now
		now = until
		if cur.remaining == 0 {
			heap.Pop(&ready)
			cur.completion = now
			completed++
		}
	}

	results := make([]ProcessResult, len(tasks))
	for i, t := range tasks {
		turnaround := t.completion - t.ArrivalTime
		results[i] = ProcessResult{
			Process:        t.Process,
			CompletionTime: t.completion,
			TurnaroundTime: turnaround,
			WaitingTime:    turnaround - t.BurstTime,
			ResponseTime:   t.firstRun - t.ArrivalTime,
		}
	}

	res := &Result{
		Segments:  tl.segments,
		Processes: results,
		TotalTime: now,
	}
	summarize(res)
	return res, nil
}
