package requests

import (
	"fmt"
	"math"
	"scheduling-simulator/internal/core"
)

type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// InvalidInputError reports a batch the schedulers must not see.
// ProcessId is 0 when the problem is with the batch as a whole.
type InvalidInputError struct {
	ProcessId int
	Reason    string
}

// Error keeps the wording the interactive simulator prints.
func (e *InvalidInputError) Error() string {
	msg := "Invalid number of processes"
	if e.ProcessId != 0 {
		msg = fmt.Sprintf("Invalid input for process %d", e.ProcessId)
	}
	if e.Reason == "" {
		return msg
	}
	return msg + ": " + e.Reason
}

func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return &InvalidInputError{}
	}
	latest := 0
	for i, job := range r.Jobs {
		if job.ArrivalTime < 0 {
			return &InvalidInputError{ProcessId: i + 1, Reason: "arrival time must not be negative"}
		}
		if job.BurstTime < 0 {
			return &InvalidInputError{ProcessId: i + 1, Reason: "burst time must not be negative"}
		}
		if job.ArrivalTime > latest {
			latest = job.ArrivalTime
		}
	}

	// no completion time may exceed the last arrival plus every burst
	horizon := latest
	for i, job := range r.Jobs {
		if job.BurstTime > math.MaxInt-horizon {
			return &InvalidInputError{ProcessId: i + 1, Reason: "completion time overflows"}
		}
		horizon += job.BurstTime
	}
	return nil
}

// Processes validates the request and numbers the jobs 1..n in request order.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			Id:          i + 1,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		}
	}
	return processes, nil
}
