package simulator

import (
	"encoding/json"
	"fmt"
)

// Process describes one schedulable process. Lower Priority values are more favorable.
type Process struct {
	ID          int `json:"id"`
	ArrivalTime int `json:"arrivalTime"`
	BurstTime   int `json:"burstTime"`
	Priority    int `json:"priority"`
}

// Occupant is whatever holds the processor during a segment: a process or nothing.
// The zero value is Idle.
type Occupant struct {
	running   bool
	processID int
}

// Idle is the occupant of a processor with no ready process.
var Idle = Occupant{}

// Running returns the occupant for the process with the given id.
func Running(processID int) Occupant {
	return Occupant{running: true, processID: processID}
}

// IsIdle reports whether the occupant is Idle.
func (o Occupant) IsIdle() bool {
	return !o.running
}

// ProcessID returns the id of the running process; ok is false for Idle.
func (o Occupant) ProcessID() (id int, ok bool) {
	return o.processID, o.running
}

func (o Occupant) String() string {
	if !o.running {
		return "idle"
	}
	return fmt.Sprintf("P%d", o.processID)
}

type occupantJSON struct {
	ProcessID *int `json:"processId,omitempty"`
	Idle      bool `json:"idle,omitempty"`
}

func (o Occupant) MarshalJSON() ([]byte, error) {
	if !o.running {
		return json.Marshal(occupantJSON{Idle: true})
	}
	id := o.processID
	return json.Marshal(occupantJSON{ProcessID: &id})
}

func (o *Occupant) UnmarshalJSON(data []byte) error {
	var raw occupantJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Idle && raw.ProcessID != nil:
		return fmt.Errorf("occupant cannot be both idle and process %d", *raw.ProcessID)
	case raw.ProcessID != nil:
		*o = Running(*raw.ProcessID)
	default:
		*o = Idle
	}
	return nil
}

// Segment is a maximal interval [Start, End) during which one occupant held the processor.
type Segment struct {
	Occupant Occupant `json:"occupant"`
	Start    int      `json:"startTime"`
	End      int      `json:"endTime"`
}

// Len returns the segment duration.
func (s Segment) Len() int {
	return s.End - s.Start
}

// ProcessResult holds the final statistics of one process.
type ProcessResult struct {
	Process
	CompletionTime int `json:"completionTime"`
	TurnaroundTime int `json:"turnaroundTime"`
	WaitingTime    int `json:"waitingTime"`
	ResponseTime   int `json:"responseTime"`
}

// Result is the outcome of one simulation run.
type Result struct {
	Segments              []Segment       `json:"segments"`
	Processes             []ProcessResult `json:"processes"`
	TotalTime             int             `json:"totalTime"`
	AverageWaitingTime    float64         `json:"averageWaitingTime"`
	AverageTurnaroundTime float64         `json:"averageTurnaroundTime"`
	AverageResponseTime   float64         `json:"averageResponseTime"`
	IdleTime              int             `json:"idleTime"`
	// ContextSwitches counts dispatches of a process after the first segment, whether the
	// processor was running another process or idle before. A process giving the processor up
	// to idle is not a switch.
	ContextSwitches       int             `json:"contextSwitches"`
	CPUUtilization        float64         `json:"cpuUtilization"`
	Throughput            float64         `json:"throughput"`
}
