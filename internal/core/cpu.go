package core

// CpuMetric is the CPU accounting of one timeline.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// NewCpuMetric measures a timeline from time 0 to the end of its last segment.
func NewCpuMetric(timeline []Segment) CpuMetric {
	var metric CpuMetric
	for _, s := range timeline {
		if s.Idle() {
			continue
		}
		metric.UtilizationTime += s.Duration()
		if s.End > metric.TotalTime {
			metric.TotalTime = s.End
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy fraction of TotalTime, 0 for an empty timeline.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// IdleGaps returns the intervals in which the CPU sat empty, including the
// leading gap before the first segment. The timeline must be ordered by start.
func IdleGaps(timeline []Segment) []Segment {
	gaps := make([]Segment, 0)
	clock := 0
	for _, s := range timeline {
		if s.Start > clock {
			gaps = append(gaps, Segment{Start: clock, End: s.Start})
		}
		if s.End > clock {
			clock = s.End
		}
	}
	return gaps
}

// WithIdleGaps merges IdleGaps back into the timeline in start order.
func WithIdleGaps(timeline []Segment) []Segment {
	out := make([]Segment, 0, len(timeline))
	clock := 0
	for _, s := range timeline {
		if s.Start > clock {
			out = append(out, Segment{Start: clock, End: s.Start})
		}
		out = append(out, s)
		if s.End > clock {
			clock = s.End
		}
	}
	return out
}
