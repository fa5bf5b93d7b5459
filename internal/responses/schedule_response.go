package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	Priority       int    `json:"priority"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type TimelineResponse struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string             `json:"algorithm"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	ContextSwitchTime     int                `json:"context_switch_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Timeline              []TimelineResponse `json:"timeline"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
