package schedulers

import (
	"container/heap"
	"os-scheduler/internal/core"
	"sort"
)

// ShortestRemainingTimeFirst always runs the arrived process with the least
// remaining burst. Ties go to the earlier arrival, then to the earlier input
// position.
//
// The ready set is a heap, so the clock jumps between arrival and completion
// events instead of ticking one unit at a time. Between two events the
// running process only gets shorter, so every unit step would have picked it
// again and the coalesced timeline is identical.
type ShortestRemainingTimeFirst struct{}

func NewShortestRemainingTimeFirst() *ShortestRemainingTimeFirst {
	return &ShortestRemainingTimeFirst{}
}

func (s *ShortestRemainingTimeFirst) Name() string {
	return AlgorithmShortestRemainingTimeFirst
}

// Run returns processes in arrival order.
func (s *ShortestRemainingTimeFirst) Run(processes []core.Process) core.ScheduleResult {
	procs := core.CloneProcesses(processes)
	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return procs[order[i]].Arrival < procs[order[j]].Arrival
	})

	cpu := core.NewCoalescingCPU()
	ready := &remainingQueue{procs: procs}
	next := 0
	admit := func() {
		for next < len(order) && procs[order[next]].Arrival <= cpu.Now() {
			heap.Push(ready, order[next])
			next++
		}
	}

	admit()
	for ready.Len() > 0 || next < len(order) {
		if ready.Len() == 0 {
			cpu.IdleUntil(procs[order[next]].Arrival)
			admit()
			continue
		}

		idx := heap.Pop(ready).(int)
		current := &procs[idx]
		run := current.Remaining
		if next < len(order) {
			run = min(run, procs[order[next]].Arrival-cpu.Now())
		}
		cpu.Execute(current, run)

		admit()
		if !current.Finished() {
			heap.Push(ready, idx)
		}
	}

	sorted := make([]core.Process, len(order))
	for i, idx := range order {
		sorted[i] = procs[idx]
	}
	return summarize(s.Name(), sorted, cpu, preemptiveWaiting)
}

// remainingQueue is a min-heap of indexes into procs keyed on
// (remaining burst, arrival, input index).
type remainingQueue struct {
	procs []core.Process
	items []int
}

func (q *remainingQueue) Len() int { return len(q.items) }

func (q *remainingQueue) Less(i, j int) bool {
	a, b := q.procs[q.items[i]], q.procs[q.items[j]]
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return q.items[i] < q.items[j]
}

func (q *remainingQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *remainingQueue) Push(x any) { q.items = append(q.items, x.(int)) }

func (q *remainingQueue) Pop() any {
	n := len(q.items)
	item := q.items[n-1]
	q.items = q.items[:n-1]
	return item
}
