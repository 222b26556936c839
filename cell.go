package lendcell

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/lendcell/errors"
	"github.com/wippyai/lendcell/internal/link"
)

// Cell is a single-slot container that can lend its value out as a
// Borrowed handle. While the handle is alive the cell reports itself empty;
// dropping the handle returns the value home. If the cell is dropped first,
// the value is destroyed when the handle is dropped.
//
// A Cell is used by one goroutine at a time. The handles it lends may be
// moved to and dropped on any goroutine.
type Cell[T any] struct {
	value    T
	link     *link.Link[T]
	observer Observer
	log      *zap.Logger
	name     string
	seq      uint64
	present  bool
	dropped  bool
}

// New creates a cell holding value with default options.
func New[T any](value T) *Cell[T] {
	return NewWithOptions(value, DefaultOptions())
}

// NewWithOptions creates a cell holding value.
func NewWithOptions[T any](value T, opts Options) *Cell[T] {
	name := opts.Name
	if name == "" {
		name = reflect.TypeFor[T]().String()
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cell[T]{
		value:    value,
		present:  true,
		observer: opts.Observer,
		log:      log.With(zap.String("cell", name)),
		name:     name,
	}
}

// Name returns the label used in logs and events.
func (c *Cell[T]) Name() string {
	return c.name
}

// TryGet returns a copy of the value if it is home.
// It reports false while the value is lent and after the cell is dropped.
func (c *Cell[T]) TryGet() (T, bool) {
	if !c.reclaim() {
		var zero T
		return zero, false
	}
	return c.value, true
}

// TryGetMut returns a pointer to the value if it is home. The pointer is
// valid until the next lend or drop.
func (c *Cell[T]) TryGetMut() (*T, bool) {
	if !c.reclaim() {
		return nil, false
	}
	return &c.value, true
}

// Get returns a copy of the value and panics if it is not home.
func (c *Cell[T]) Get() T {
	return *c.GetMut()
}

// GetMut returns a pointer to the value and panics if it is not home.
func (c *Cell[T]) GetMut() *T {
	if c.dropped {
		c.fail(errors.Dropped(errors.PhaseAccess, c.name))
	}
	p, ok := c.TryGetMut()
	if !ok {
		c.fail(errors.NotPresent(c.name))
	}
	return p
}

// IsLent reports whether a handle currently holds the value.
func (c *Cell[T]) IsLent() bool {
	return !c.dropped && !c.reclaim()
}

// ToBorrowed moves the value into a new handle. The cell stays empty until
// the handle is dropped. Lending a cell that is already lent, or that was
// dropped, is a contract violation and panics with an *errors.Error.
func (c *Cell[T]) ToBorrowed() *Borrowed[T] {
	b, err := c.TryToBorrowed()
	if err != nil {
		c.fail(err)
	}
	return b
}

// TryToBorrowed is like ToBorrowed but returns the violation as an error.
func (c *Cell[T]) TryToBorrowed() (*Borrowed[T], error) {
	if c.dropped {
		return nil, errors.New(errors.PhaseLend, errors.KindDropped).
			TypeName(c.name).
			Seq(c.seq).
			Detail("cannot lend from a dropped cell").
			Build()
	}
	if !c.reclaim() {
		return nil, errors.AlreadyLent(errors.PhaseLend, c.name, c.seq)
	}

	c.seq++
	l := link.New[T]()
	v := c.take()
	c.link = l

	b := &Borrowed[T]{
		value:    v,
		link:     l,
		observer: c.observer,
		log:      c.log,
		name:     c.name,
		seq:      c.seq,
	}
	c.log.Debug("value lent", zap.Uint64("seq", c.seq))
	c.notify(EventLent, v)
	return b, nil
}

// TryIntoInner consumes the cell and returns its value. If the value is
// lent, the cell is left unchanged and an error is returned.
func (c *Cell[T]) TryIntoInner() (T, error) {
	var zero T
	if c.dropped {
		return zero, errors.Dropped(errors.PhaseTeardown, c.name)
	}
	if !c.reclaim() {
		return zero, errors.AlreadyLent(errors.PhaseTeardown, c.name, c.seq)
	}
	c.dropped = true
	return c.take(), nil
}

// Drop destroys the cell. A value that is home is destroyed now. If the
// value is lent, the outstanding handle is orphaned and destroys the value
// when it is dropped. Drop is idempotent.
func (c *Cell[T]) Drop() {
	if c.dropped {
		return
	}
	c.dropped = true

	if c.present {
		v := c.take()
		c.destroy(v)
		return
	}

	l := c.link
	c.link = nil
	if l == nil {
		return
	}
	if v, ok := l.Abandon(); ok {
		// The handle returned before we got here.
		c.destroy(v)
		return
	}
	c.log.Debug("cell dropped while lent", zap.Uint64("seq", c.seq))
	c.notify(EventOrphaned, nil)
}

// reclaim takes a deposited value home and reports whether the value is
// present in the cell.
func (c *Cell[T]) reclaim() bool {
	if c.dropped {
		return false
	}
	if c.present {
		return true
	}
	if c.link == nil {
		return false
	}
	v, ok := c.link.Reclaim()
	if !ok {
		return false
	}
	c.value = v
	c.present = true
	c.link = nil
	c.log.Debug("value reclaimed", zap.Uint64("seq", c.seq))
	c.notify(EventReclaimed, v)
	return true
}

func (c *Cell[T]) take() T {
	var zero T
	v := c.value
	c.value = zero
	c.present = false
	return v
}

func (c *Cell[T]) destroy(v T) {
	destroyValue(v)
	c.log.Debug("value destroyed", zap.Uint64("seq", c.seq))
	c.notify(EventDestroyed, v)
}

func (c *Cell[T]) notify(t EventType, v any) {
	if c.observer == nil {
		return
	}
	c.observer.OnCellEvent(Event{
		Type:  t,
		Cell:  c.name,
		Seq:   c.seq,
		Value: v,
	})
}

func (c *Cell[T]) fail(err error) {
	c.log.Error("cell contract violation", zap.Error(err))
	panic(err)
}

func destroyValue[T any](v T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}
