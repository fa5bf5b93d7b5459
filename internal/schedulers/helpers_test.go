package schedulers

import (
	"math"
	"os-scheduler/internal/core"
	"testing"
)

const epsilon = 1e-6

func approx(t *testing.T, name string, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > epsilon {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
}

func mustFind(t *testing.T, r core.ScheduleResult, id string) core.Process {
	t.Helper()
	p, ok := r.Find(id)
	if !ok {
		t.Fatalf("process %s missing from result", id)
	}
	return p
}

// checkInvariants asserts the properties every engine must hold.
func checkInvariants(t *testing.T, r core.ScheduleResult, inputCount int) {
	t.Helper()
	if len(r.Processes) != inputCount {
		t.Fatalf("expected %d processes, got %d", inputCount, len(r.Processes))
	}

	sum := 0
	prevEnd := 0
	for i, e := range r.Timeline {
		if e.Start != prevEnd {
			t.Fatalf("entry %d %+v does not start at previous end %d", i, e, prevEnd)
		}
		if e.End <= e.Start {
			t.Fatalf("entry %d %+v is empty or reversed", i, e)
		}
		sum += e.Duration()
		prevEnd = e.End
	}
	if sum != r.Makespan {
		t.Fatalf("timeline sum %d != makespan %d", sum, r.Makespan)
	}

	last := 0
	for _, p := range r.Processes {
		if p.Remaining != 0 {
			t.Fatalf("process %s unfinished: %+v", p.ID, p)
		}
		if p.Start < p.Arrival || p.Completion < p.Start {
			t.Fatalf("process %s violates arrival <= start <= completion: %+v", p.ID, p)
		}
		last = max(last, p.Completion)
	}
	if last != r.Makespan {
		t.Fatalf("makespan %d != last completion %d", r.Makespan, last)
	}
	if r.BusyTime+r.IdleTime+r.ContextSwitchTime != r.Makespan {
		t.Fatalf("busy %d + idle %d + cs %d != makespan %d", r.BusyTime, r.IdleTime, r.ContextSwitchTime, r.Makespan)
	}
}
