package workload

import (
	"errors"
	"os-scheduler/internal/core"
	"testing"
)

func TestExtremeIsReproducible(t *testing.T) {
	a, err := Extreme(DefaultExtremeParams(50, 12345))
	if err != nil {
		t.Fatalf("extreme: %v", err)
	}
	b, _ := Extreme(DefaultExtremeParams(50, 12345))
	if len(a) != 50 {
		t.Fatalf("expected 50 processes, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("process %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestExtremeShape(t *testing.T) {
	params := DefaultExtremeParams(60, 7)
	procs, err := Extreme(params)
	if err != nil {
		t.Fatalf("extreme: %v", err)
	}
	for i, p := range procs {
		if err := p.Validate(); err != nil {
			t.Fatalf("process %d invalid: %v", i, err)
		}
		if i < params.Count/3 && p.Arrival != i/5 {
			t.Fatalf("process %d: expected bunched arrival %d, got %d", i, i/5, p.Arrival)
		}
		long := params.MaxBurst * params.SkewFactor
		if p.Burst != long && (p.Burst < params.MinBurst || p.Burst > params.MaxBurst) {
			t.Fatalf("process %d: burst %d out of range", i, p.Burst)
		}
		if p.Priority < 1 || p.Priority > 5 {
			t.Fatalf("process %d: priority %d out of range", i, p.Priority)
		}
	}
}

func TestExtremeRejectsBadParams(t *testing.T) {
	params := DefaultExtremeParams(10, 1)
	params.MinBurst = 0
	if _, err := Extreme(params); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestDemoIsValid(t *testing.T) {
	for _, p := range Demo() {
		if err := p.Validate(); err != nil {
			t.Fatalf("demo process invalid: %v", err)
		}
	}
}
