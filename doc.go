// Package lendcell provides a single-slot container that lends its value
// out as an owned-looking handle and gets it back when the handle is dropped.
//
// A Cell holds a value. ToBorrowed moves the value into a Borrowed handle
// that has no tie to the cell's scope: it can be stored, passed across API
// boundaries, or sent to another goroutine. While the handle is alive the
// cell behaves like an empty optional. Dropping the handle returns the
// value home:
//
//	cell := lendcell.New(conn)
//	b := cell.ToBorrowed()
//	_, ok := cell.TryGet() // ok == false, the value is lent
//	(*b.Get()).Ping()      // exclusive access through the handle
//	b.Drop()               // value goes back to cell
//	_, ok = cell.TryGet()  // ok == true
//
// # Ownership Rules
//
// Exclusivity is enforced at runtime:
//
//	Cell holds T      - TryGet reports the value, ToBorrowed may be called
//	Handle holds T    - TryGet reports absent, ToBorrowed panics
//	Cell dropped      - the handle destroys T when it is dropped
//
// At every point the value lives in exactly one place. Lending twice is a
// contract violation and panics with an *errors.Error (KindAlreadyLent);
// TryToBorrowed returns the same error instead.
//
// # Destruction
//
// Go has no destructors, so both sides end their life with an explicit
// Drop call. A value is destroyed by calling its Drop method if it
// implements Dropper. The cell destroys a value that is home; an orphaned
// handle destroys the value it holds. Dropping a cell and its handle
// concurrently from different goroutines is safe: exactly one of them
// destroys the value.
//
// # Observability
//
// Lifecycle transitions are logged at debug level through a zap logger
// (no-op by default, see SetLogger and Options.Logger) and delivered to an
// optional Observer.
package lendcell
