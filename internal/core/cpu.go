package core

// CPU is a simulated single core. It owns the clock of one run and records
// every interval it spends executing, idling or switching context.
type CPU struct {
	clock    int
	busy     int
	idle     int
	switches int
	last     *Process
	coalesce bool
	timeline []TimelineEntry
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]TimelineEntry, 0)}
}

// NewCoalescingCPU returns a CPU that merges back-to-back executions of the
// same process into one timeline entry.
func NewCoalescingCPU() *CPU {
	c := NewCPU()
	c.coalesce = true
	return c
}

// Now returns the current simulated time.
func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil records an idle interval up to t. It is a no-op when t is not
// in the future.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.idle += t - c.clock
	c.record(IdleLabel, KindIdle, t-c.clock, nil)
}

// ContextSwitch charges a fixed switching overhead.
func (c *CPU) ContextSwitch(d int) {
	if d <= 0 {
		return
	}
	c.record(ContextSwitchLabel, KindContextSwitch, d, nil)
	c.switches += d
}

// Execute runs p for at most quantum units and returns the units consumed.
func (c *CPU) Execute(p *Process, quantum int) int {
	run := p.RunFor(quantum, c.clock)
	if run <= 0 {
		return 0
	}
	c.record(p.ID, KindProcess, run, p)
	c.busy += run
	return run
}

// record appends an interval. Adjacent idle stretches always merge; process
// slices merge only on a coalescing CPU.
func (c *CPU) record(label string, kind EntryKind, d int, p *Process) {
	start := c.clock
	c.clock += d
	defer func() { c.last = p }()
	if n := len(c.timeline); n > 0 {
		prev := &c.timeline[n-1]
		if prev.Kind == kind && prev.End == start && (kind == KindIdle || (c.coalesce && p != nil && p == c.last)) {
			prev.End = c.clock
			return
		}
	}
	c.timeline = append(c.timeline, TimelineEntry{Label: label, Kind: kind, Start: start, End: c.clock})
}

func (c *CPU) Timeline() []TimelineEntry {
	return c.timeline
}

func (c *CPU) BusyTime() int {
	return c.busy
}

func (c *CPU) IdleTime() int {
	return c.idle
}

func (c *CPU) ContextSwitchTime() int {
	return c.switches
}
