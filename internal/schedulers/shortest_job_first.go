package schedulers

import (
	"scheduling-simulator/internal/core"
	"sort"
)

// ScheduleShortestJobFirst runs the non-preemptive SJF discipline. At every
// decision point the ready process with the smallest burst wins, ties going to
// the earlier arrival and then the lower id. Results are returned sorted by id
// while the timeline keeps execution order.
func ScheduleShortestJobFirst(processes []core.Process) ([]core.Process, []core.Segment) {
	jobs := core.Clone(processes)
	timeline := make([]core.Segment, 0, len(jobs))

	clock := 0
	for done := 0; done < len(jobs); {
		best := pickShortestJob(jobs, clock)
		if best == -1 {
			clock = nextArrival(jobs)
			continue
		}
		segment := jobs[best].Dispatch(clock)
		timeline = append(timeline, segment)
		clock = segment.End
		done++
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Id < jobs[j].Id
	})
	return jobs, timeline
}

// pickShortestJob returns the index of the job to run at clock, or -1 when
// nothing has arrived yet.
func pickShortestJob(jobs []core.Process, clock int) int {
	best := -1
	for i := range jobs {
		if jobs[i].Completed || jobs[i].ArrivalTime > clock {
			continue
		}
		if best == -1 || shorter(jobs[i], jobs[best]) {
			best = i
		}
	}
	return best
}

func shorter(a, b core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Id < b.Id
}

// nextArrival is the earliest arrival among unfinished jobs. Only called while
// at least one job is unfinished and none of them is ready, so it always
// moves the clock forward.
func nextArrival(jobs []core.Process) int {
	next := -1
	for i := range jobs {
		if jobs[i].Completed {
			continue
		}
		if next == -1 || jobs[i].ArrivalTime < next {
			next = jobs[i].ArrivalTime
		}
	}
	return next
}
