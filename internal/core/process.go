package core

// Process is one entry of the batch. Id, ArrivalTime and BurstTime are input;
// the remaining fields are filled in by a single scheduling run.
type Process struct {
	Id          int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`

	StartTime      int  `json:"start_time" yaml:"start_time"`
	CompletionTime int  `json:"completion_time" yaml:"completion_time"`
	WaitingTime    int  `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int  `json:"turn_around_time" yaml:"turn_around_time"`
	ResponseTime   int  `json:"response_time" yaml:"response_time"`
	Completed      bool `json:"-" yaml:"-"`
}

// Segment is a contiguous execution interval on the CPU.
// ProcessId is 0 for idle gaps produced by IdleGaps.
type Segment struct {
	ProcessId int `json:"process_id" yaml:"process_id"`
	Start     int `json:"start" yaml:"start"`
	End       int `json:"end" yaml:"end"`
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

func (s Segment) Idle() bool {
	return s.ProcessId == 0
}

// Dispatch starts p at clock and fills in every derived timing field.
// It returns the segment for the run.
func (p *Process) Dispatch(clock int) Segment {
	p.StartTime = clock
	p.CompletionTime = p.StartTime + p.BurstTime
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.BurstTime
	p.ResponseTime = p.WaitingTime
	p.Completed = true

	return Segment{ProcessId: p.Id, Start: p.StartTime, End: p.CompletionTime}
}

// Clone returns a copy of the batch with all result fields reset.
func Clone(processes []Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		out[i] = Process{Id: p.Id, ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime}
	}
	return out
}
