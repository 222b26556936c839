// Package link implements the back-link shared between a cell and the one
// handle lent from it.
//
// A Link is allocated per lend and settles exactly once: either the handle
// deposits the value (Returned) or the cell gives up on it (Gone). Both sides
// race through a single compare-and-swap out of Lent, so for any interleaving
// the value ends up in exactly one place.
package link

import "sync/atomic"

// State is the settlement state of a Link.
type State uint32

const (
	// Lent means the handle still owns the value and the cell is alive.
	Lent State = iota
	// Returned means the handle deposited the value for the cell to reclaim.
	Returned
	// Gone means the cell was dropped before the handle returned.
	Gone
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Lent:
		return "lent"
	case Returned:
		return "returned"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// Link is the shared slot coordinating return-of-value and
// destruction-of-value between a cell and its handle.
type Link[T any] struct {
	deposit   T
	state     atomic.Uint32
	reclaimed atomic.Bool
}

// New returns a link in the Lent state with an empty deposit slot.
func New[T any]() *Link[T] {
	return &Link[T]{}
}

// State returns the current state.
func (l *Link[T]) State() State {
	return State(l.state.Load())
}

// Deposit is called by the handle when it is dropped. It stores v and moves
// the link to Returned. It reports false if the cell is already gone, in
// which case the slot is left empty and the caller keeps responsibility
// for destroying v.
func (l *Link[T]) Deposit(v T) bool {
	// The store must happen before the CAS publishes it; readers only touch
	// the slot after observing Returned.
	l.deposit = v
	if l.state.CompareAndSwap(uint32(Lent), uint32(Returned)) {
		return true
	}
	var zero T
	l.deposit = zero
	return false
}

// Reclaim is called by the cell to take a deposited value home. It succeeds
// at most once per link.
func (l *Link[T]) Reclaim() (T, bool) {
	var zero T
	if State(l.state.Load()) != Returned {
		return zero, false
	}
	if !l.reclaimed.CompareAndSwap(false, true) {
		return zero, false
	}
	v := l.deposit
	l.deposit = zero
	return v, true
}

// Abandon is called by the cell when it is dropped. If the handle has not
// returned yet the link becomes Gone and the handle will destroy the value
// itself. If the handle already returned, the deposited value is handed back
// so the cell can destroy it.
func (l *Link[T]) Abandon() (T, bool) {
	if l.state.CompareAndSwap(uint32(Lent), uint32(Gone)) {
		var zero T
		return zero, false
	}
	return l.Reclaim()
}
