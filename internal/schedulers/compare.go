package schedulers

import (
	"os-scheduler/internal/core"
	"sync"
)

// Compare runs every scheduler over the same workload concurrently. Each run
// works on its own copy of processes; results follow the argument order.
func Compare(processes []core.Process, schedulers ...Scheduler) []core.ScheduleResult {
	results := make([]core.ScheduleResult, len(schedulers))

	var wg sync.WaitGroup
	wg.Add(len(schedulers))
	for i, s := range schedulers {
		go func(i int, s Scheduler) {
			defer wg.Done()
			results[i] = s.Run(processes)
		}(i, s)
	}
	wg.Wait()

	return results
}
