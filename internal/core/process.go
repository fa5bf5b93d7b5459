package core

import "fmt"

// Unset marks a start or completion time that has not been recorded yet.
const Unset = -1

// Process is the simulation state of one task. ID, Priority, Arrival and
// Burst are inputs; Remaining, Start and Completion are filled in by a run.
type Process struct {
	ID         string `json:"process_id"`
	Priority   int    `json:"priority"`
	Arrival    int    `json:"arrival_time"`
	Burst      int    `json:"burst_time"`
	Remaining  int    `json:"remaining_time"`
	Start      int    `json:"start_time"`
	Completion int    `json:"completion_time"`
}

// NewProcess returns a process ready to be scheduled.
func NewProcess(id string, priority, arrival, burst int) Process {
	return Process{
		ID:         id,
		Priority:   priority,
		Arrival:    arrival,
		Burst:      burst,
		Remaining:  burst,
		Start:      Unset,
		Completion: Unset,
	}
}

// Validate reports whether the process inputs can be simulated.
func (p Process) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: process id is empty", ErrInvalidInput)
	}
	if p.Arrival < 0 {
		return fmt.Errorf("%w: process %s arrival %d < 0", ErrInvalidInput, p.ID, p.Arrival)
	}
	if p.Burst <= 0 {
		return fmt.Errorf("%w: process %s burst %d <= 0", ErrInvalidInput, p.ID, p.Burst)
	}
	return nil
}

// Reset clears simulation state so the process can be run again.
func (p *Process) Reset() {
	p.Remaining = p.Burst
	p.Start = Unset
	p.Completion = Unset
}

// RunFor executes the process for at most quantum units starting at now and
// returns the units actually consumed.
func (p *Process) RunFor(quantum, now int) int {
	if p.Start == Unset {
		p.Start = now
	}
	run := min(quantum, p.Remaining)
	p.Remaining -= run
	if p.Remaining == 0 {
		p.Completion = now + run
	}
	return run
}

func (p Process) Started() bool {
	return p.Start != Unset
}

func (p Process) Finished() bool {
	return p.Remaining == 0
}

// Turnaround is completion minus arrival.
func (p Process) Turnaround() int {
	return p.Completion - p.Arrival
}

// Response is the delay between arrival and first dispatch.
func (p Process) Response() int {
	return p.Start - p.Arrival
}

func (p Process) String() string {
	return fmt.Sprintf("%s(prio=%d, arr=%d, rem=%d)", p.ID, p.Priority, p.Arrival, p.Remaining)
}

// CloneProcesses copies processes and resets their simulation state.
func CloneProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	for i := range out {
		out[i].Reset()
	}
	return out
}
