package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates which cell operation was running when the error occurred
type Phase string

const (
	PhaseLend     Phase = "lend"     // moving the value into a handle
	PhaseAccess   Phase = "access"   // reading or writing the value
	PhaseReturn   Phase = "return"   // handle drop, deposit back home
	PhaseTeardown Phase = "teardown" // cell drop or into-inner
)

// Kind categorizes the error
type Kind string

const (
	KindAlreadyLent Kind = "already_lent"
	KindNotPresent  Kind = "not_present"
	KindReleased    Kind = "released"
	KindDropped     Kind = "dropped"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
	Seq      uint64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.TypeName != "" {
		b.WriteString(" for ")
		b.WriteString(e.TypeName)
	}

	if e.Seq > 0 {
		b.WriteString(" (lend #")
		b.WriteString(strconv.FormatUint(e.Seq, 10))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// TypeName sets the Go type name of the lent value
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Seq sets the lend cycle number
func (b *Builder) Seq(seq uint64) *Builder {
	b.err.Seq = seq
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AlreadyLent creates an error for a value that is currently held by a handle
func AlreadyLent(phase Phase, typeName string, seq uint64) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindAlreadyLent,
		TypeName: typeName,
		Seq:      seq,
		Detail:   "value is held by an outstanding handle",
	}
}

// NotPresent creates an error for reading a cell that does not hold its value
func NotPresent(typeName string) *Error {
	return &Error{
		Phase:    PhaseAccess,
		Kind:     KindNotPresent,
		TypeName: typeName,
		Detail:   "cell is empty",
	}
}

// Released creates an error for using a handle after it was dropped
func Released(typeName string, seq uint64) *Error {
	return &Error{
		Phase:    PhaseAccess,
		Kind:     KindReleased,
		TypeName: typeName,
		Seq:      seq,
		Detail:   "handle used after drop",
	}
}

// Dropped creates an error for operating on a cell after it was dropped
func Dropped(phase Phase, typeName string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindDropped,
		TypeName: typeName,
		Detail:   "cell used after drop",
	}
}
