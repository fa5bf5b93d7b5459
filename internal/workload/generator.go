package workload

import (
	"fmt"
	"os-scheduler/internal/core"

	"golang.org/x/exp/rand"
)

// Demo is the small built-in workload.
func Demo() []core.Process {
	return []core.Process{
		core.NewProcess("P1", 1, 0, 5),
		core.NewProcess("P2", 2, 2, 3),
		core.NewProcess("P3", 1, 4, 2),
		core.NewProcess("P4", 3, 5, 4),
	}
}

// ExtremeParams shapes a stress workload: bunched and out-of-order arrivals,
// mostly short bursts with a few very long ones.
type ExtremeParams struct {
	Count      int
	MinBurst   int
	MaxBurst   int
	SkewFactor int
	// LongBurstRate is the probability of a MaxBurst*SkewFactor burst.
	LongBurstRate float64
	Seed          uint64
}

// DefaultExtremeParams returns the parameters used by the --extreme mode.
func DefaultExtremeParams(count int, seed uint64) ExtremeParams {
	return ExtremeParams{
		Count:         count,
		MinBurst:      5,
		MaxBurst:      100,
		SkewFactor:    3,
		LongBurstRate: 0.15,
		Seed:          seed,
	}
}

// Extreme generates a workload that depends only on params.
func Extreme(params ExtremeParams) ([]core.Process, error) {
	if params.Count < 0 {
		return nil, fmt.Errorf("%w: count %d < 0", core.ErrInvalidConfiguration, params.Count)
	}
	if params.MinBurst <= 0 || params.MaxBurst < params.MinBurst || params.SkewFactor <= 0 {
		return nil, fmt.Errorf("%w: burst range [%d,%d] skew %d", core.ErrInvalidConfiguration,
			params.MinBurst, params.MaxBurst, params.SkewFactor)
	}

	rnd := rand.New(rand.NewSource(params.Seed))
	out := make([]core.Process, 0, params.Count)
	for i := 0; i < params.Count; i++ {
		arrival := rnd.Intn(max(1, params.Count/4))
		if i < params.Count/3 {
			arrival = i / 5
		}
		burst := params.MinBurst + rnd.Intn(params.MaxBurst-params.MinBurst+1)
		if rnd.Float64() < params.LongBurstRate {
			burst = params.MaxBurst * params.SkewFactor
		}
		priority := 1 + rnd.Intn(5)
		out = append(out, core.NewProcess(fmt.Sprintf("X%d", i+1), priority, arrival, burst))
	}
	return out, nil
}
