package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os-scheduler/internal/core"
	"strconv"
	"strings"
)

// LoadCSV reads id,priority,arrival,burst rows. Blank lines and lines
// starting with # are skipped. Malformed rows are skipped and reported in the
// returned error slice, one error per row.
func LoadCSV(r io.Reader) ([]core.Process, []error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	processes := make([]core.Process, 0)
	var rowErrors []error
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Errorf("%w: %v", core.ErrInvalidInput, err))
			continue
		}
		line, _ := reader.FieldPos(0)
		if isBlankOrComment(record) {
			continue
		}

		p, err := parseFields(record)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		processes = append(processes, p)
	}
	return processes, rowErrors
}

// LoadCSVFile opens path and loads it with LoadCSV. The error is only set
// when the file cannot be opened.
func LoadCSVFile(path string) ([]core.Process, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	processes, rowErrors := LoadCSV(f)
	return processes, rowErrors, nil
}

func isBlankOrComment(record []string) bool {
	first := strings.TrimSpace(record[0])
	if strings.HasPrefix(first, "#") {
		return true
	}
	if len(record) == 1 && first == "" {
		return true
	}
	return false
}

// parseFields turns id, priority, arrival, burst into a validated process.
// Extra trailing fields are ignored.
func parseFields(fields []string) (core.Process, error) {
	if len(fields) < 4 {
		return core.Process{}, fmt.Errorf("%w: need 4 fields: id priority arrival burst, got %d", core.ErrInvalidInput, len(fields))
	}
	id := strings.TrimSpace(fields[0])
	nums := make([]int, 3)
	for i, name := range []string{"priority", "arrival", "burst"} {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return core.Process{}, fmt.Errorf("%w: bad %s %q", core.ErrInvalidInput, name, fields[i+1])
		}
		nums[i] = n
	}

	p := core.NewProcess(id, nums[0], nums[1], nums[2])
	if err := p.Validate(); err != nil {
		return core.Process{}, err
	}
	return p, nil
}
