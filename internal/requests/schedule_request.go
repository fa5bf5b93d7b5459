package requests

import (
	"fmt"
	"os-scheduler/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id"`
	Priority    int    `json:"priority"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

// ScheduleRequests carries a workload and optional engine overrides. A nil
// override falls back to the server configuration.
type ScheduleRequests struct {
	Jobs          []Job `json:"jobs"`
	TimeQuantum   *int  `json:"time_quantum,omitempty"`
	ContextSwitch *int  `json:"context_switch,omitempty"`
}

// Processes validates every job and converts it into a fresh process.
func (r ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	seen := make(map[string]struct{}, len(r.Jobs))
	for i, job := range r.Jobs {
		p := core.NewProcess(job.ProcessId, job.Priority, job.ArrivalTime, job.BurstTime)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("job %d: %w: duplicate process id %s", i, core.ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
		processes = append(processes, p)
	}
	return processes, nil
}

// Quantum returns the requested quantum or fallback.
func (r ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum != nil {
		return *r.TimeQuantum
	}
	return fallback
}

// ContextSwitchOr returns the requested context switch or fallback.
func (r ScheduleRequests) ContextSwitchOr(fallback int) int {
	if r.ContextSwitch != nil {
		return *r.ContextSwitch
	}
	return fallback
}
