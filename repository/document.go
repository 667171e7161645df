package repository

import (
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/simulator"
)

type runDocument struct {
	ID          string            `bson:"_id"`
	Fingerprint string            `bson:"fingerprint"`
	Name        string            `bson:"name,omitempty"`
	Processes   []processDocument `bson:"processes"`
	Result      *resultDocument   `bson:"result,omitempty"`
	CreatedTime int64             `bson:"createdTime"`
}

type processDocument struct {
	ID          int `bson:"id"`
	ArrivalTime int `bson:"arrivalTime"`
	BurstTime   int `bson:"burstTime"`
	Priority    int `bson:"priority"`
}

// segmentDocument flattens the occupant; ProcessID is meaningless when Idle is set.
type segmentDocument struct {
	Idle      bool `bson:"idle"`
	ProcessID int  `bson:"processId"`
	Start     int  `bson:"startTime"`
	End       int  `bson:"endTime"`
}

type processResultDocument struct {
	Process        processDocument `bson:",inline"`
	CompletionTime int             `bson:"completionTime"`
	TurnaroundTime int             `bson:"turnaroundTime"`
	WaitingTime    int             `bson:"waitingTime"`
	ResponseTime   int             `bson:"responseTime"`
}

type resultDocument struct {
	Segments              []segmentDocument       `bson:"segments"`
	Processes             []processResultDocument `bson:"processes"`
	TotalTime             int                     `bson:"totalTime"`
	AverageWaitingTime    float64                 `bson:"averageWaitingTime"`
	AverageTurnaroundTime float64                 `bson:"averageTurnaroundTime"`
	AverageResponseTime   float64                 `bson:"averageResponseTime"`
	IdleTime              int                     `bson:"idleTime"`
	ContextSwitches       int                     `bson:"contextSwitches"`
	CPUUtilization        float64                 `bson:"cpuUtilization"`
	Throughput            float64                 `bson:"throughput"`
}

func newProcessDocument(p simulator.Process) processDocument {
	return processDocument{ID: p.ID, ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime, Priority: p.Priority}
}

func (d processDocument) toDomain() simulator.Process {
	return simulator.Process{ID: d.ID, ArrivalTime: d.ArrivalTime, BurstTime: d.BurstTime, Priority: d.Priority}
}

func newRunDocument(run *domain.SimulationRun) *runDocument {
	doc := &runDocument{
		ID:          run.ID,
		Fingerprint: run.Fingerprint,
		Name:        run.Name,
		Processes:   make([]processDocument, len(run.Processes)),
		CreatedTime: run.CreatedTime,
	}
	for i, p := range run.Processes {
		doc.Processes[i] = newProcessDocument(p)
	}
	if res := run.Result; res != nil {
		rd := &resultDocument{
			Segments:              make([]segmentDocument, len(res.Segments)),
			Processes:             make([]processResultDocument, len(res.Processes)),
			TotalTime:             res.TotalTime,
			AverageWaitingTime:    res.AverageWaitingTime,
			AverageTurnaroundTime: res.AverageTurnaroundTime,
			AverageResponseTime:   res.AverageResponseTime,
			IdleTime:              res.IdleTime,
			ContextSwitches:       res.ContextSwitches,
			CPUUtilization:        res.CPUUtilization,
			Throughput:            res.Throughput,
		}
		for i, s := range res.Segments {
			id, running := s.Occupant.ProcessID()
			rd.Segments[i] = segmentDocument{Idle: !running, ProcessID: id, Start: s.Start, End: s.End}
		}
		for i, p := range res.Processes {
			rd.Processes[i] = processResultDocument{
				Process:        newProcessDocument(p.Process),
				CompletionTime: p.CompletionTime,
				TurnaroundTime: p.TurnaroundTime,
				WaitingTime:    p.WaitingTime,
				ResponseTime:   p.ResponseTime,
			}
		}
		doc.Result = rd
	}
	return doc
}

func (d *runDocument) toDomain() *domain.SimulationRun {
	run := &domain.SimulationRun{
		ID:          d.ID,
		Fingerprint: d.Fingerprint,
		Name:        d.Name,
		Processes:   make([]simulator.Process, len(d.Processes)),
		CreatedTime: d.CreatedTime,
	}
	for i, p := range d.Processes {
		run.Processes[i] = p.toDomain()
	}
	if rd := d.Result; rd != nil {
		res := &simulator.Result{
			Segments:              make([]simulator.Segment, len(rd.Segments)),
			Processes:             make([]simulator.ProcessResult, len(rd.Processes)),
			TotalTime:             rd.TotalTime,
			AverageWaitingTime:    rd.AverageWaitingTime,
			AverageTurnaroundTime: rd.AverageTurnaroundTime,
			AverageResponseTime:   rd.AverageResponseTime,
			IdleTime:              rd.IdleTime,
			ContextSwitches:       rd.ContextSwitches,
			CPUUtilization:        rd.CPUUtilization,
			Throughput:            rd.Throughput,
		}
		for i, s := range rd.Segments {
			occupant := simulator.Idle
			if !s.Idle {
				occupant = simulator.Running(s.ProcessID)
			}
			res.Segments[i] = simulator.Segment{Occupant: occupant, Start: s.Start, End: s.End}
		}
		for i, p := range rd.Processes {
			res.Processes[i] = simulator.ProcessResult{
				Process:        p.Process.toDomain(),
				CompletionTime: p.CompletionTime,
				TurnaroundTime: p.TurnaroundTime,
				WaitingTime:    p.WaitingTime,
				ResponseTime:   p.ResponseTime,
			}
		}
		run.Result = res
	}
	return run
}
