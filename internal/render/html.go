package render

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"html"
	"io"
	"os"
	"os-scheduler/internal/core"
)

const (
	minSVGWidth = 600
	maxSVGWidth = 1200
	svgMargin   = 50
	rowHeight   = 20
)

// ExportHTML writes a self-contained HTML page with the timeline drawn as an
// SVG, one row per entry.
func ExportHTML(w io.Writer, result core.ScheduleResult) error {
	width := min(maxSVGWidth, max(minSVGWidth, result.Makespan*5))
	height := 100 + len(result.Timeline)*rowHeight
	span := float64(width - 2*svgMargin)

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "<html><head><meta charset='utf-8'><title>Schedule</title></head><body>")
	fmt.Fprintf(bw, "<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d'>", width, height)
	y := rowHeight
	for _, e := range result.Timeline {
		if result.Makespan <= 0 {
			break
		}
		x := int(float64(e.Start) / float64(result.Makespan) * span)
		rw := max(2, int(float64(e.Duration())/float64(result.Makespan)*span))
		id := html.EscapeString(e.Label)
		fmt.Fprintf(bw, "<rect x='%d' y='%d' width='%d' height='16' fill='%s'><title>%s [%d,%d)</title></rect>",
			x+svgMargin, y, rw, colorFor(e), id, e.Start, e.End)
		fmt.Fprintf(bw, "<text x='%d' y='%d' font-size='10'>%s</text>", x+svgMargin+2, y+12, id)
		y += rowHeight
	}
	fmt.Fprint(bw, "</svg></body></html>\n")
	return bw.Flush()
}

// ExportHTMLFile writes ExportHTML output to path.
func ExportHTMLFile(path string, result core.ScheduleResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ExportHTML(f, result); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func colorFor(e core.TimelineEntry) string {
	switch e.Kind {
	case core.KindIdle:
		return "#dddddd"
	case core.KindContextSwitch:
		return "#888888"
	}
	h := fnv.New32a()
	h.Write([]byte(e.Label))
	return fmt.Sprintf("hsl(%d,70%%,60%%)", h.Sum32()%360)
}
