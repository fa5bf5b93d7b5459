package render

import (
	"fmt"
	"io"
	"os-scheduler/internal/core"

	"github.com/olekukonko/tablewriter"
)

var tableHeader = []string{"ID", "Priority", "Arrival", "Burst", "Start", "Completion", "Turnaround", "Waiting"}

// Table writes one row per process and the run averages in the footer.
func Table(w io.Writer, result core.ScheduleResult) {
	if len(result.Processes) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}

	rows := make([][]string, 0, len(result.Processes))
	for i, p := range result.Processes {
		rows = append(rows, []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Start),
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.Turnaround()),
			fmt.Sprint(result.WaitingFor(i)),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.3f", result.AvgTurnaround),
		fmt.Sprintf("Average\n%.3f", result.AvgWaiting)})
	table.Render()
}

// Summary writes the one-line run totals.
func Summary(w io.Writer, result core.ScheduleResult) {
	fmt.Fprintf(w, "Makespan: %d, Avg Turnaround: %.2f, Avg Waiting: %.2f, CPU%%: %.2f\n",
		result.Makespan, result.AvgTurnaround, result.AvgWaiting, result.CPUUtilization)
}

// Comparison writes one row per algorithm.
func Comparison(w io.Writer, results []core.ScheduleResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Makespan", "Avg Turnaround", "Avg Waiting", "CPU %", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprint(r.Makespan),
			fmt.Sprintf("%.2f", r.AvgTurnaround),
			fmt.Sprintf("%.2f", r.AvgWaiting),
			fmt.Sprintf("%.2f", r.CPUUtilization),
			fmt.Sprintf("%.3f", r.Throughput),
		})
	}
	table.Render()
}
