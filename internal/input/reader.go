package input

import (
	"bufio"
	"fmt"
	"io"
	"scheduling-simulator/internal/requests"
	"strconv"
)

// Reader reads a batch the way the interactive simulator asks for it: the
// process count, then one "arrival burst" pair per process. Tokens may be
// split across lines arbitrarily.
type Reader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewReader reads from r. Prompts go to prompt unless it is nil.
func NewReader(r io.Reader, prompt io.Writer) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Reader{scanner: scanner, prompt: prompt}
}

func (r *Reader) ReadRequest() (*requests.ScheduleRequests, error) {
	r.printf("Enter the number of processes: ")
	n, err := r.nextInt()
	if err != nil || n <= 0 {
		return nil, &requests.InvalidInputError{}
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0)}
	for i := 1; i <= n; i++ {
		r.printf("Enter the arrival time and burst time for process %d: ", i)
		arrival, err := r.nextInt()
		if err != nil {
			return nil, &requests.InvalidInputError{ProcessId: i, Reason: "arrival time is not a number"}
		}
		burst, err := r.nextInt()
		if err != nil {
			return nil, &requests.InvalidInputError{ProcessId: i, Reason: "burst time is not a number"}
		}
		request.Jobs = append(request.Jobs, requests.Job{ArrivalTime: arrival, BurstTime: burst})
	}
	r.printf("\n")

	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *Reader) nextInt() (int, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(r.scanner.Text())
}

func (r *Reader) printf(format string, args ...interface{}) {
	if r.prompt != nil {
		fmt.Fprintf(r.prompt, format, args...)
	}
}
