package schedulers

import (
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
	"scheduling-simulator/internal/util"
)

func generateResponse(algorithm Algorithm, results []core.Process, timeline []core.Segment) (responses.ScheduleResponse, error) {
	averages, err := util.CalculateAverage(results)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	cpuMetric := core.NewCpuMetric(timeline)
	var response = responses.ScheduleResponse{
		Algorithm:             algorithm.Name,
		Title:                 algorithm.Title,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(results)),
		AverageWaitingTime:    averages.WaitingTime,
		AverageResponseTime:   averages.ResponseTime,
		AverageTurnAroundTime: averages.TurnAroundTime,
		Timeline:              timeline,
		Details:               generateProcessDetails(results),
	}
	return response, nil
}

func generateProcessDetails(results []core.Process) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(results))
	for _, process := range results {
		details = append(details, responses.NewProcessResponse(process))
	}
	return details
}
