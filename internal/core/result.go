package core

// ScheduleResult is what every engine returns from a run. Processes holds
// the run's own copies, ordered as the engine documents, and Waiting is
// indexed the same way.
type ScheduleResult struct {
	Algorithm         string
	Processes         []Process
	Waiting           []int
	Timeline          []TimelineEntry
	AvgTurnaround     float64
	AvgWaiting        float64
	CPUUtilization    float64
	Throughput        float64
	Makespan          int
	BusyTime          int
	IdleTime          int
	ContextSwitchTime int
}

// Find returns the result process with the given id.
func (r ScheduleResult) Find(id string) (Process, bool) {
	for _, p := range r.Processes {
		if p.ID == id {
			return p, true
		}
	}
	return Process{}, false
}

// WaitingFor returns the waiting time recorded for the process at index i.
func (r ScheduleResult) WaitingFor(i int) int {
	if i < 0 || i >= len(r.Waiting) {
		return 0
	}
	return r.Waiting[i]
}
