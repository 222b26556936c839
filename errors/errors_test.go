package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseLend,
				Kind:     KindAlreadyLent,
				TypeName: "*bytes.Buffer",
				Seq:      4,
				Detail:   "cell is lent",
			},
			contains: []string{"[lend]", "already_lent", "*bytes.Buffer", "lend #4", "cell is lent"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseAccess,
				Kind:  KindNotPresent,
			},
			contains: []string{"[access]", "not_present"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseTeardown,
				Kind:   KindDropped,
				Detail: "close failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[teardown]", "dropped", "close failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_ErrorOmitsZeroSeq(t *testing.T) {
	err := &Error{Phase: PhaseAccess, Kind: KindNotPresent}
	if strings.Contains(err.Error(), "lend #") {
		t.Errorf("zero Seq should not be rendered: %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseReturn,
		Kind:  KindReleased,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:    PhaseLend,
		Kind:     KindAlreadyLent,
		TypeName: "int",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseLend, Kind: KindAlreadyLent}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseTeardown, Kind: KindAlreadyLent}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseLend, Kind: KindDropped}) {
		t.Error("Is should not match different kind")
	}

	if err.Is(errors.New("already_lent")) {
		t.Error("Is should not match foreign errors")
	}

	target := &Error{Phase: PhaseLend, Kind: KindAlreadyLent}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLend, KindDropped).
		TypeName("string").
		Seq(7).
		Cause(cause).
		Detail("cell %q was dropped", "primary").
		Build()

	if err.Phase != PhaseLend {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLend)
	}
	if err.Kind != KindDropped {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDropped)
	}
	if err.TypeName != "string" {
		t.Errorf("TypeName = %v, want 'string'", err.TypeName)
	}
	if err.Seq != 7 {
		t.Errorf("Seq = %v, want 7", err.Seq)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != `cell "primary" was dropped` {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestBuilder_DetailWithoutArgs(t *testing.T) {
	err := New(PhaseAccess, KindNotPresent).Detail("100%% empty").Build()
	if err.Detail != "100%% empty" {
		t.Errorf("Detail = %q, want verbatim message", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("AlreadyLent", func(t *testing.T) {
		err := AlreadyLent(PhaseTeardown, "int", 2)
		if err.Kind != KindAlreadyLent || err.Phase != PhaseTeardown {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if err.Seq != 2 {
			t.Errorf("Seq = %v, want 2", err.Seq)
		}
	})

	t.Run("NotPresent", func(t *testing.T) {
		err := NotPresent("int")
		if err.Kind != KindNotPresent || err.Phase != PhaseAccess {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})

	t.Run("Released", func(t *testing.T) {
		err := Released("int", 9)
		if err.Kind != KindReleased {
			t.Errorf("Kind = %v, want %v", err.Kind, KindReleased)
		}
		if !strings.Contains(err.Error(), "lend #9") {
			t.Errorf("message should carry seq: %q", err.Error())
		}
	})

	t.Run("Dropped", func(t *testing.T) {
		err := Dropped(PhaseLend, "int")
		if err.Kind != KindDropped || err.Phase != PhaseLend {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})
}
