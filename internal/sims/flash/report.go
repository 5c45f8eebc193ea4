package flash

import "fmt"

// ReportKind tags the outcome of Simulate.
type ReportKind int

const (
	// ReportCounted means the run finished without a synchronized tick.
	ReportCounted ReportKind = iota
	// ReportSynchronized means at least one tick flashed every cell.
	ReportSynchronized
)

func (k ReportKind) String() string {
	switch k {
	case ReportCounted:
		return "counted"
	case ReportSynchronized:
		return "synchronized"
	default:
		return fmt.Sprintf("ReportKind(%d)", int(k))
	}
}

// Report is the result of Simulate. SyncTick is only meaningful when Kind is
// ReportSynchronized.
type Report struct {
	Kind     ReportKind
	Ticks    int
	Flashes  int
	SyncTick int
}

// SyncStep returns the first synchronized tick, if any.
func (r Report) SyncStep() (int, bool) {
	if r.Kind != ReportSynchronized {
		return 0, false
	}
	return r.SyncTick, true
}
