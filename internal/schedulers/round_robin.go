package schedulers

import (
	"fmt"
	"os-scheduler/internal/core"
	"sort"
)

// RoundRobin is a preemptive scheduler that gives each ready process at most
// one quantum per dispatch from a FIFO ready queue. Quantum boundaries carry
// no switching cost.
type RoundRobin struct {
	quantum int
}

func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum %d must be > 0", core.ErrInvalidConfiguration, quantum)
	}
	return &RoundRobin{quantum: quantum}, nil
}

func (s *RoundRobin) Name() string {
	return AlgorithmRoundRobin
}

// Run returns processes in arrival order.
func (s *RoundRobin) Run(processes []core.Process) core.ScheduleResult {
	procs := core.CloneProcesses(processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})

	cpu := core.NewCPU()
	readyQueue := make([]*core.Process, 0, len(procs))
	next := 0
	admit := func() {
		for next < len(procs) && procs[next].Arrival <= cpu.Now() {
			readyQueue = append(readyQueue, &procs[next])
			next++
		}
	}

	admit()
	finished := 0
	for finished < len(procs) {
		if len(readyQueue) == 0 {
			if next >= len(procs) {
				break
			}
			cpu.IdleUntil(procs[next].Arrival)
			admit()
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]
		cpu.Execute(current, s.quantum)

		// arrivals during the slice queue up ahead of the preempted process
		admit()
		if current.Finished() {
			finished++
			continue
		}
		readyQueue = append(readyQueue, current)
	}

	return summarize(s.Name(), procs, cpu, preemptiveWaiting)
}
