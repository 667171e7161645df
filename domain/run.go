package domain

import "github.com/Gthulhu/priosim/simulator"

// SimulationRun is one stored execution of the scheduler over a process set.
type SimulationRun struct {
	ID string `json:"id"`
	// Fingerprint identifies the input process set in its given order.
	Fingerprint string              `json:"fingerprint"`
	Name        string              `json:"name,omitempty"`
	Processes   []simulator.Process `json:"processes"`
	Result      *simulator.Result   `json:"result"`
	CreatedTime int64               `json:"createdTime"`
}
