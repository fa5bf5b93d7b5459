package render

import (
	"fmt"
	"io"
	"os-scheduler/internal/core"
	"strings"
)

// maxGanttWidth bounds the rendered line length for long makespans.
const maxGanttWidth = 120

// Gantt writes the timeline as a single line with one label per scaled time
// unit. Every entry gets at least one label so short slices stay visible.
func Gantt(w io.Writer, timeline []core.TimelineEntry) {
	if len(timeline) == 0 {
		fmt.Fprintln(w, "<empty gantt>")
		return
	}
	makespan := timeline[len(timeline)-1].End
	scale := max(1, makespan/maxGanttWidth)

	var line strings.Builder
	for _, e := range timeline {
		line.WriteString(strings.Repeat(label(e.Label), max(1, e.Duration()/scale)))
	}
	fmt.Fprintln(w, line.String())
}

// GanttAxis writes the timeline as labelled cells followed by their start
// times.
func GanttAxis(w io.Writer, timeline []core.TimelineEntry) {
	if len(timeline) == 0 {
		fmt.Fprintln(w, "<empty gantt>")
		return
	}
	var bars, ticks strings.Builder
	bars.WriteString("|")
	for _, e := range timeline {
		cell := fmt.Sprintf(" %s ", e.Label)
		bars.WriteString(cell)
		bars.WriteString("|")

		tick := fmt.Sprint(e.Start)
		ticks.WriteString(tick)
		ticks.WriteString(strings.Repeat(" ", max(1, len(cell)+1-len(tick))))
	}
	ticks.WriteString(fmt.Sprint(timeline[len(timeline)-1].End))
	fmt.Fprintln(w, bars.String())
	fmt.Fprintln(w, ticks.String())
}

func label(id string) string {
	if len(id) > 1 {
		return id[:2]
	}
	return id
}
