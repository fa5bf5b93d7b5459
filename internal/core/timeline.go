package core

// EntryKind tags what the CPU was doing during a timeline entry.
type EntryKind int

const (
	KindProcess EntryKind = iota
	KindIdle
	KindContextSwitch
)

const (
	IdleLabel          = "idle"
	ContextSwitchLabel = "CS"
)

func (k EntryKind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindContextSwitch:
		return "context_switch"
	default:
		return "process"
	}
}

// TimelineEntry is the half-open interval [Start, End).
type TimelineEntry struct {
	Label string
	Kind  EntryKind
	Start int
	End   int
}

func (e TimelineEntry) Duration() int {
	return e.End - e.Start
}
