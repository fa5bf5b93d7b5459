package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// preemptiveWaiting is the part of turnaround not spent executing.
func preemptiveWaiting(p core.Process) int {
	return p.Turnaround() - p.Burst
}

// summarize aggregates the final process states and the CPU record of a run.
func summarize(algorithm string, procs []core.Process, cpu *core.CPU, waiting func(core.Process) int) core.ScheduleResult {
	turnarounds := make([]int, len(procs))
	waits := make([]int, len(procs))
	for i, p := range procs {
		turnarounds[i] = p.Turnaround()
		waits[i] = waiting(p)
	}

	makespan := cpu.Now()
	return core.ScheduleResult{
		Algorithm:         algorithm,
		Processes:         procs,
		Waiting:           waits,
		Timeline:          cpu.Timeline(),
		AvgTurnaround:     util.Mean(turnarounds),
		AvgWaiting:        util.Mean(waits),
		CPUUtilization:    util.Percent(cpu.BusyTime(), makespan),
		Throughput:        util.Ratio(len(procs), makespan),
		Makespan:          makespan,
		BusyTime:          cpu.BusyTime(),
		IdleTime:          cpu.IdleTime(),
		ContextSwitchTime: cpu.ContextSwitchTime(),
	}
}

// GenerateResponse converts a run into its wire representation.
func GenerateResponse(result core.ScheduleResult) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for i, p := range result.Processes {
		details = append(details, generateProcessDetails(p, result.WaitingFor(i)))
	}
	timeline := make([]responses.TimelineResponse, 0, len(result.Timeline))
	for _, e := range result.Timeline {
		timeline = append(timeline, responses.TimelineResponse{
			Label: e.Label,
			Kind:  e.Kind.String(),
			Start: e.Start,
			End:   e.End,
		})
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Algorithm,
		TotalTime:             result.Makespan,
		IdleTime:              result.IdleTime,
		ContextSwitchTime:     result.ContextSwitchTime,
		AverageWaitingTime:    result.AvgWaiting,
		AverageTurnAroundTime: result.AvgTurnaround,
		CpuUtilization:        result.CPUUtilization,
		CpuThroughput:         result.Throughput,
		Details:               details,
		Timeline:              timeline,
	}
}

func generateProcessDetails(p core.Process, waiting int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		Priority:       p.Priority,
		ArrivalTime:    p.Arrival,
		BurstTime:      p.Burst,
		StartTime:      p.Start,
		CompletionTime: p.Completion,
		ResponseTime:   p.Response(),
		TurnAroundTime: p.Turnaround(),
		WaitingTime:    waiting,
	}
}
