package responses

import "scheduling-simulator/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id" yaml:"process_id"`
	ArrivalTime    int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	StartTime      int `json:"start_time" yaml:"start_time"`
	CompletionTime int `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int `json:"response_time" yaml:"response_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	Title                 string            `json:"title" yaml:"title"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Timeline              []core.Segment    `json:"timeline" yaml:"timeline"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

func NewProcessResponse(p core.Process) ProcessResponse {
	return ProcessResponse{
		ProcessId:      p.Id,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		StartTime:      p.StartTime,
		CompletionTime: p.CompletionTime,
		ResponseTime:   p.ResponseTime,
		TurnAroundTime: p.TurnAroundTime,
		WaitingTime:    p.WaitingTime,
	}
}
