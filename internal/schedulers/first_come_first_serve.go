package schedulers

import (
	"fmt"
	"os-scheduler/internal/core"
	"sort"
)

// FirstComeFirstServe runs processes to completion in arrival order and
// charges a fixed context switch between consecutive dispatches.
type FirstComeFirstServe struct {
	contextSwitch int
}

func NewFirstComeFirstServe(contextSwitch int) (*FirstComeFirstServe, error) {
	if contextSwitch < 0 {
		return nil, fmt.Errorf("%w: context switch %d must be >= 0", core.ErrInvalidConfiguration, contextSwitch)
	}
	return &FirstComeFirstServe{contextSwitch: contextSwitch}, nil
}

func (s *FirstComeFirstServe) Name() string {
	return AlgorithmFirstComeFirstServe
}

// Run returns processes in dispatch order. Equal arrivals keep input order.
func (s *FirstComeFirstServe) Run(processes []core.Process) core.ScheduleResult {
	procs := core.CloneProcesses(processes)

	// sort jobs by arrival time
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})

	cpu := core.NewCPU()
	for i := range procs {
		p := &procs[i]
		cpu.IdleUntil(p.Arrival)
		if i > 0 {
			cpu.ContextSwitch(s.contextSwitch)
		}
		cpu.Execute(p, p.Remaining)
	}

	// non-preemptive: waiting is the delay before the only dispatch
	return summarize(s.Name(), procs, cpu, func(p core.Process) int {
		return p.Start - p.Arrival
	})
}
