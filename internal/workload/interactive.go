package workload

import (
	"bufio"
	"fmt"
	"io"
	"os-scheduler/internal/core"
	"strings"
)

const prompt = "proc> "

// ReadInteractive prompts for "id priority arrival burst" lines until a blank
// line or EOF. Bad lines print a diagnostic and are asked for again.
func ReadInteractive(in io.Reader, out io.Writer) []core.Process {
	fmt.Fprintln(out, "Enter processes one per line in format: id priority arrival burst")
	fmt.Fprintln(out, "Empty line to run.")

	scanner := bufio.NewScanner(in)
	processes := make([]core.Process, 0)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		p, err := parseFields(strings.Fields(line))
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		processes = append(processes, p)
	}
	return processes
}
