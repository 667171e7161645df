package simulator

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is matched by every precondition failure reported by Simulate.
	ErrInvalidInput = errors.New("invalid process set")
	// ErrEmptyInput is returned when there is nothing to schedule.
	ErrEmptyInput = fmt.Errorf("%w: no processes", ErrInvalidInput)
	// ErrUnknownPreset is returned by Preset for names it does not know.
	ErrUnknownPreset = errors.New("unknown preset")
)

// InvalidDescriptorError reports a descriptor with a negative arrival or a non-positive burst.
// Field "horizon" marks the descriptor that pushes the latest arrival plus the summed bursts
// past the int range.
type InvalidDescriptorError struct {
	ID    int
	Field string
	Value int
}

func (e *InvalidDescriptorError) Error() string {
	switch e.Field {
	case "arrivalTime":
		return fmt.Sprintf("process %d: arrival time must be >= 0, got %d", e.ID, e.Value)
	case "burstTime":
		return fmt.Sprintf("process %d: burst time must be > 0, got %d", e.ID, e.Value)
	case "horizon":
		return fmt.Sprintf("process %d: schedule would run past time %d", e.ID, math.MaxInt)
	}
	return fmt.Sprintf("process %d: invalid %s %d", e.ID, e.Field, e.Value)
}

func (e *InvalidDescriptorError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DuplicateIDError reports two descriptors sharing an id.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("process id %d is used more than once", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate checks the preconditions of Simulate without running it.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.ArrivalTime < 0 {
			return &InvalidDescriptorError{ID: p.ID, Field: "arrivalTime", Value: p.ArrivalTime}
		}
		if p.BurstTime <= 0 {
			return &InvalidDescriptorError{ID: p.ID, Field: "burstTime", Value: p.BurstTime}
		}
		if _, ok := seen[p.ID]; ok {
			return &DuplicateIDError{ID: p.ID}
		}
		seen[p.ID] = struct{}{}
	}
	return checkHorizon(processes)
}

// checkHorizon rejects sets whose schedule could end beyond math.MaxInt. No schedule ends
// later than the latest arrival plus every burst.
func checkHorizon(processes []Process) error {
	latest := processes[0]
	total := 0
	for _, p := range processes {
		if p.BurstTime > math.MaxInt-total {
			return &InvalidDescriptorError{ID: p.ID, Field: "horizon", Value: p.BurstTime}
		}
		total += p.BurstTime
		if p.ArrivalTime > latest.ArrivalTime {
			latest = p
		}
	}
	if latest.ArrivalTime > math.MaxInt-total {
		return &InvalidDescriptorError{ID: latest.ID, Field: "horizon", Value: latest.ArrivalTime}
	}
	return nil
}
