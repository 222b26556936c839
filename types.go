package lendcell

// Dropper is optionally implemented by values that need cleanup when they
// are destroyed instead of returned home. The method set of T itself must
// include Drop; a pointer-receiver Drop on a non-pointer T is not seen.
type Dropper interface {
	Drop()
}

// EventType identifies a cell lifecycle transition.
type EventType uint8

const (
	// EventLent is emitted when the value moves from the cell into a handle.
	EventLent EventType = iota
	// EventReturned is emitted when a dropped handle deposits the value.
	EventReturned
	// EventReclaimed is emitted when the cell takes a deposited value home.
	EventReclaimed
	// EventOrphaned is emitted when the cell is dropped while lent.
	EventOrphaned
	// EventDestroyed is emitted when the value is destroyed.
	EventDestroyed
)

// String returns the event name used in logs.
func (t EventType) String() string {
	switch t {
	case EventLent:
		return "lent"
	case EventReturned:
		return "returned"
	case EventReclaimed:
		return "reclaimed"
	case EventOrphaned:
		return "orphaned"
	case EventDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle transition. Seq is the lend cycle the
// transition belongs to; it is 0 for a value that was never lent.
type Event struct {
	Value any
	Cell  string
	Seq   uint64
	Type  EventType
}

// Observer receives lifecycle events. Events raised by a handle are
// delivered on the goroutine that drops it, so observers shared with
// handles sent to other goroutines must be safe for concurrent use.
type Observer interface {
	OnCellEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnCellEvent calls f(e).
func (f ObserverFunc) OnCellEvent(e Event) {
	f(e)
}
