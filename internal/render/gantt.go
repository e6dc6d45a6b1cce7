package render

import (
	"fmt"
	"io"
	"scheduling-simulator/internal/core"
	"strings"
)

// Gantt writes the timeline as one box per segment. A box is as wide as the
// segment lasts, with a minimum of one so zero-burst processes stay visible.
func Gantt(w io.Writer, timeline []core.Segment) {
	writeGantt(w, timeline)
}

// GanttWithIdle is Gantt with the idle gaps drawn as "--" boxes.
func GanttWithIdle(w io.Writer, timeline []core.Segment) {
	writeGantt(w, core.WithIdleGaps(timeline))
}

func writeGantt(w io.Writer, timeline []core.Segment) {
	var boxes, ticks strings.Builder
	for _, s := range timeline {
		width := s.Duration()
		if width < 1 {
			width = 1
		}
		inner := 1
		if width >= 3 {
			inner = width - 2
		}

		label := fmt.Sprintf("| P%d", s.ProcessId)
		if s.Idle() {
			label = "| --"
		}
		box := label + strings.Repeat(" ", inner)
		boxes.WriteString(box)

		tick := fmt.Sprint(s.Start)
		ticks.WriteString(tick)
		if pad := len(box) - len(tick); pad > 0 {
			ticks.WriteString(strings.Repeat(" ", pad))
		} else {
			ticks.WriteString(" ")
		}
	}
	if len(timeline) > 0 {
		boxes.WriteString("|")
		ticks.WriteString(fmt.Sprint(timeline[len(timeline)-1].End))
	}

	fmt.Fprintf(w, "Gantt Chart: %s\n", boxes.String())
	fmt.Fprintf(w, "             %s\n\n", ticks.String())
}
