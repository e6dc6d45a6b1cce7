package schedulers

import (
	"errors"
	"fmt"
	"log"
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
	"scheduling-simulator/internal/util"
	"sync"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// ScheduleFunc is a scheduling discipline over a private copy of the batch.
type ScheduleFunc func(processes []core.Process) ([]core.Process, []core.Segment)

type Algorithm struct {
	Name     string
	Title    string
	Schedule ScheduleFunc
}

const (
	FirstComeFirstServe = "fcfs"
	ShortestJobFirst    = "sjf"
)

var algorithms = map[string]Algorithm{
	FirstComeFirstServe: {
		Name:     FirstComeFirstServe,
		Title:    "First Come First Served (FCFS)",
		Schedule: ScheduleFirstComeFirstServe,
	},
	ShortestJobFirst: {
		Name:     ShortestJobFirst,
		Title:    "Shortest Job First (SJF)",
		Schedule: ScheduleShortestJobFirst,
	},
}

// Names lists the registered algorithms in report order.
func Names() []string {
	return []string{FirstComeFirstServe, ShortestJobFirst}
}

func Lookup(name string) (Algorithm, error) {
	algorithm, ok := algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return algorithm, nil
}

// Run schedules the batch with the named algorithm and builds its report.
func Run(name string, processes []core.Process) (responses.ScheduleResponse, error) {
	algorithm, err := Lookup(name)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if len(processes) == 0 {
		return responses.ScheduleResponse{}, util.ErrEmptyInput
	}

	log.Println("running", algorithm.Name, "algorithm ...")
	results, timeline := algorithm.Schedule(processes)
	for _, s := range timeline {
		log.Printf("pid: %d scheduled [%d, %d)", s.ProcessId, s.Start, s.End)
	}

	response, err := generateResponse(algorithm, results, timeline)
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("%s: %w", algorithm.Name, err)
	}
	return response, nil
}

// RunAll runs every named algorithm concurrently. Each run works on its own
// copy of the batch. Responses come back in the order of names.
func RunAll(names []string, processes []core.Process) ([]responses.ScheduleResponse, error) {
	results := make([]responses.ScheduleResponse, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	for i, name := range names {
		go func(i int, name string) {
			defer wg.Done()
			results[i], errs[i] = Run(name, processes)
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
