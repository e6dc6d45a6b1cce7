package schedulers

import (
	"scheduling-simulator/internal/core"
	"sort"
)

// ScheduleFirstComeFirstServe runs the batch in (arrival time, id) order.
// Results are returned in that order; the input slice is not modified.
func ScheduleFirstComeFirstServe(processes []core.Process) ([]core.Process, []core.Segment) {
	jobs := core.Clone(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].Id < jobs[j].Id
	})

	timeline := make([]core.Segment, 0, len(jobs))
	clock := 0
	for i := range jobs {
		// cpu idles until the next arrival
		if clock < jobs[i].ArrivalTime {
			clock = jobs[i].ArrivalTime
		}
		segment := jobs[i].Dispatch(clock)
		timeline = append(timeline, segment)
		clock = segment.End
	}

	return jobs, timeline
}
