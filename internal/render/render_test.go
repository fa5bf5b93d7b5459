package render

import (
	"bytes"
	"os"
	"os-scheduler/internal/core"
	"path/filepath"
	"strings"
	"testing"
)

func sampleResult() core.ScheduleResult {
	return core.ScheduleResult{
		Algorithm: "fcfs",
		Processes: []core.Process{
			{ID: "A", Priority: 1, Arrival: 0, Burst: 2, Start: 0, Completion: 2},
			{ID: "B<x>", Priority: 2, Arrival: 3, Burst: 1, Start: 4, Completion: 5},
		},
		Waiting: []int{0, 1},
		Timeline: []core.TimelineEntry{
			{Label: "A", Kind: core.KindProcess, Start: 0, End: 2},
			{Label: core.IdleLabel, Kind: core.KindIdle, Start: 2, End: 3},
			{Label: core.ContextSwitchLabel, Kind: core.KindContextSwitch, Start: 3, End: 4},
			{Label: "B<x>", Kind: core.KindProcess, Start: 4, End: 5},
		},
		AvgTurnaround:  2,
		AvgWaiting:     0.5,
		CPUUtilization: 60,
		Makespan:       5,
	}
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, sampleResult().Timeline)
	if got, want := buf.String(), "AAidCSB<\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGanttScalesLongTimelines(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, []core.TimelineEntry{
		{Label: "P1", Start: 0, End: 480},
		{Label: "P2", Start: 480, End: 481},
	})
	line := strings.TrimSuffix(buf.String(), "\n")
	// scale 4: P1 gets 120 units of two characters, P2 keeps one
	if len(line) != 2*120+2 {
		t.Fatalf("expected 242 characters, got %d", len(line))
	}
}

func TestGanttEmpty(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, nil)
	GanttAxis(&buf, nil)
	if buf.String() != "<empty gantt>\n<empty gantt>\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestGanttAxis(t *testing.T) {
	var buf bytes.Buffer
	GanttAxis(&buf, sampleResult().Timeline)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "| A | idle | CS |") {
		t.Fatalf("unexpected bars %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0") || !strings.HasSuffix(lines[1], "5") {
		t.Fatalf("unexpected ticks %q", lines[1])
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sampleResult())
	out := buf.String()
	for _, want := range []string{"COMPLETION", "B<x>", "2.000", "0.500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, core.ScheduleResult{})
	if buf.String() != "(no rows)\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, sampleResult())
	want := "Makespan: 5, Avg Turnaround: 2.00, Avg Waiting: 0.50, CPU%: 60.00\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestComparison(t *testing.T) {
	var buf bytes.Buffer
	r := sampleResult()
	other := r
	other.Algorithm = "rr"
	Comparison(&buf, []core.ScheduleResult{r, other})
	if !strings.Contains(buf.String(), "fcfs") || !strings.Contains(buf.String(), "rr") {
		t.Fatalf("expected both algorithms:\n%s", buf.String())
	}
}

func TestExportHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportHTML(&buf, sampleResult()); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<html>") || !strings.Contains(out, "</svg></body></html>") {
		t.Fatalf("expected html document, got %q", out)
	}
	if strings.Count(out, "<rect") != 4 {
		t.Fatalf("expected 4 rects, got %q", out)
	}
	if strings.Contains(out, "B<x>") || !strings.Contains(out, "B&lt;x&gt;") {
		t.Fatalf("expected escaped label, got %q", out)
	}
	if !strings.Contains(out, "width='600'") {
		t.Fatalf("expected minimum width 600, got %q", out)
	}
}

func TestExportHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportHTML(&buf, core.ScheduleResult{}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(buf.String(), "<rect") {
		t.Fatalf("expected no rects, got %q", buf.String())
	}
}

func TestExportHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantt.html")
	if err := ExportHTMLFile(path, sampleResult()); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("expected svg in file")
	}
}
