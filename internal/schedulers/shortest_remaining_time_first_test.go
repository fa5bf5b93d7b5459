package schedulers

import (
	"os-scheduler/internal/core"
	"testing"
)

func TestShortestRemainingTimeFirstPreemptsAndBreaksTies(t *testing.T) {
	s := NewShortestRemainingTimeFirst()
	r := s.Run([]core.Process{
		core.NewProcess("P1", 0, 3, 1),
		core.NewProcess("P2", 0, 1, 4),
		core.NewProcess("P3", 0, 4, 2),
		core.NewProcess("P4", 0, 0, 6),
		core.NewProcess("P5", 0, 2, 3),
	})

	checkInvariants(t, r, 5)
	completions := map[string]int{"P1": 4, "P2": 6, "P3": 8, "P4": 16, "P5": 11}
	for id, want := range completions {
		if got := mustFind(t, r, id).Completion; got != want {
			t.Fatalf("%s: expected completion %d, got %d", id, want, got)
		}
	}
	approx(t, "avg turnaround", 7.0, r.AvgTurnaround)
	approx(t, "avg waiting", 3.8, r.AvgWaiting)

	// P2 wins the remaining-burst ties at t=2 and t=4 by earlier arrival
	want := []core.TimelineEntry{
		{Label: "P4", Start: 0, End: 1},
		{Label: "P2", Start: 1, End: 3},
		{Label: "P1", Start: 3, End: 4},
		{Label: "P2", Start: 4, End: 6},
		{Label: "P3", Start: 6, End: 8},
		{Label: "P5", Start: 8, End: 11},
		{Label: "P4", Start: 11, End: 16},
	}
	if len(r.Timeline) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), r.Timeline)
	}
	for i, e := range want {
		got := r.Timeline[i]
		if got.Label != e.Label || got.Start != e.Start || got.End != e.End {
			t.Fatalf("entry %d: expected %+v, got %+v", i, e, got)
		}
	}
}

func TestShortestRemainingTimeFirstResultInArrivalOrder(t *testing.T) {
	r := NewShortestRemainingTimeFirst().Run([]core.Process{
		core.NewProcess("late", 0, 5, 1),
		core.NewProcess("early", 0, 0, 2),
	})
	if r.Processes[0].ID != "early" || r.Processes[1].ID != "late" {
		t.Fatalf("expected arrival order, got %v", r.Processes)
	}
}

func TestShortestRemainingTimeFirstTieBreakByInputOrder(t *testing.T) {
	s := NewShortestRemainingTimeFirst()
	in := []core.Process{
		core.NewProcess("B", 0, 0, 3),
		core.NewProcess("A", 0, 0, 3),
		core.NewProcess("C", 0, 0, 3),
	}

	for run := 0; run < 3; run++ {
		r := s.Run(in)
		for i, id := range []string{"B", "A", "C"} {
			if r.Timeline[i].Label != id {
				t.Fatalf("run %d slot %d: expected %s, got %v", run, i, id, r.Timeline)
			}
		}
	}
}

func TestShortestRemainingTimeFirstIdleUntilArrival(t *testing.T) {
	r := NewShortestRemainingTimeFirst().Run([]core.Process{
		core.NewProcess("A", 0, 3, 2),
	})
	checkInvariants(t, r, 1)
	if r.Timeline[0].Kind != core.KindIdle || r.Makespan != 5 {
		t.Fatalf("expected leading idle and makespan 5, got %v %d", r.Timeline, r.Makespan)
	}
	approx(t, "utilization", 40, r.CPUUtilization)
}

// unitStep is the straightforward tick-by-tick simulation used as an oracle.
func unitStep(processes []core.Process) map[string]int {
	procs := core.CloneProcesses(processes)
	completions := make(map[string]int)
	done := 0
	for now := 0; done < len(procs); now++ {
		best := -1
		for i, p := range procs {
			if p.Arrival > now || p.Remaining == 0 {
				continue
			}
			if best == -1 || p.Remaining < procs[best].Remaining ||
				(p.Remaining == procs[best].Remaining && p.Arrival < procs[best].Arrival) {
				best = i
			}
		}
		if best == -1 {
			continue
		}
		procs[best].RunFor(1, now)
		if procs[best].Finished() {
			completions[procs[best].ID] = procs[best].Completion
			done++
		}
	}
	return completions
}

func TestShortestRemainingTimeFirstMatchesUnitStep(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 12345} {
		procs := generated(t, 30, seed)
		r := NewShortestRemainingTimeFirst().Run(procs)
		checkInvariants(t, r, len(procs))

		oracle := unitStep(procs)
		for _, p := range r.Processes {
			if oracle[p.ID] != p.Completion {
				t.Fatalf("seed %d %s: expected completion %d, got %d", seed, p.ID, oracle[p.ID], p.Completion)
			}
		}
	}
}
