package schedulers

import (
	"fmt"
	"os-scheduler/internal/core"
	"strings"
)

const (
	AlgorithmFirstComeFirstServe        = "fcfs"
	AlgorithmRoundRobin                 = "rr"
	AlgorithmShortestRemainingTimeFirst = "srtf"
)

// Scheduler is implemented by every engine. Run never mutates its argument:
// it simulates over its own copy and returns that copy in the result.
type Scheduler interface {
	Name() string
	Run(processes []core.Process) core.ScheduleResult
}

// Algorithms lists the engine names accepted by New, in comparison order.
func Algorithms() []string {
	return []string{AlgorithmFirstComeFirstServe, AlgorithmRoundRobin, AlgorithmShortestRemainingTimeFirst}
}

// New builds an engine by name. quantum is only used by round robin and
// contextSwitch only by first come first serve.
func New(name string, quantum, contextSwitch int) (Scheduler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case AlgorithmFirstComeFirstServe:
		return NewFirstComeFirstServe(contextSwitch)
	case AlgorithmRoundRobin:
		return NewRoundRobin(quantum)
	case AlgorithmShortestRemainingTimeFirst:
		return NewShortestRemainingTimeFirst(), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, name)
	}
}

// NewAll builds every engine in Algorithms order.
func NewAll(quantum, contextSwitch int) ([]Scheduler, error) {
	all := make([]Scheduler, 0, len(Algorithms()))
	for _, name := range Algorithms() {
		s, err := New(name, quantum, contextSwitch)
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}
