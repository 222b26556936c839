package lendcell

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/lendcell/errors"
	"github.com/wippyai/lendcell/internal/link"
)

// Borrowed is the owned-looking handle produced by Cell.ToBorrowed. It holds
// the value directly for its entire lifetime, and may be moved to and
// dropped on a different goroutine than the one that created it.
type Borrowed[T any] struct {
	value    T
	link     *link.Link[T]
	observer Observer
	log      *zap.Logger
	name     string
	seq      uint64
	released atomic.Bool
}

// Get returns a pointer to the held value. It panics after Drop.
func (b *Borrowed[T]) Get() *T {
	b.checkLive()
	return &b.value
}

// Value returns a copy of the held value. It panics after Drop.
func (b *Borrowed[T]) Value() T {
	b.checkLive()
	return b.value
}

// Set replaces the held value. It panics after Drop.
func (b *Borrowed[T]) Set(v T) {
	b.checkLive()
	b.value = v
}

// Seq returns the lend cycle this handle belongs to.
func (b *Borrowed[T]) Seq() uint64 {
	return b.seq
}

// Released reports whether Drop has been called.
func (b *Borrowed[T]) Released() bool {
	return b.released.Load()
}

// Drop ends the borrow. If the origin cell is alive the value is deposited
// for it to reclaim; otherwise the value is destroyed here. Drop is
// idempotent.
func (b *Borrowed[T]) Drop() {
	if !b.released.CompareAndSwap(false, true) {
		return
	}

	var zero T
	v := b.value
	b.value = zero

	if b.link.Deposit(v) {
		b.log.Debug("value returned", zap.Uint64("seq", b.seq))
		b.notify(EventReturned, v)
		return
	}

	destroyValue(v)
	b.log.Debug("orphaned value destroyed", zap.Uint64("seq", b.seq))
	b.notify(EventDestroyed, v)
}

func (b *Borrowed[T]) checkLive() {
	if b.released.Load() {
		err := errors.Released(b.name, b.seq)
		b.log.Error("handle contract violation", zap.Error(err))
		panic(err)
	}
}

func (b *Borrowed[T]) notify(t EventType, v any) {
	if b.observer == nil {
		return
	}
	b.observer.OnCellEvent(Event{
		Type:  t,
		Cell:  b.name,
		Seq:   b.seq,
		Value: v,
	})
}
