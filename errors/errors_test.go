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
				Phase:   PhaseConvert,
				Kind:    KindUnsupported,
				SrcType: "pointer",
				DstType: "int",
				Detail:  "no numeric interpretation",
			},
			contains: []string{"[convert]", "unsupported", "pointer -> int", "no numeric interpretation"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLayout,
				Kind:  KindUnsizedArray,
			},
			contains: []string{"[layout]", "unsized_array"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseMarshal,
				Kind:   KindInvalidData,
				Detail: "short buffer",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[marshal]", "invalid_data", "short buffer", "caused by", "underlying error"},
		},
		{
			name: "source type only",
			err: &Error{
				Phase:   PhaseLayout,
				Kind:    KindUnsizedArray,
				SrcType: "float[]",
			},
			contains: []string{"[layout]", "unsized_array", "float[]"},
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

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseConvert,
		Kind:  KindInvalidData,
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
		Phase:   PhaseConvert,
		Kind:    KindUnsupported,
		SrcType: "half",
	}

	if !err.Is(&Error{Phase: PhaseConvert, Kind: KindUnsupported}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseLayout, Kind: KindUnsupported}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseConvert, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseConvert, Kind: KindUnsupported}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match same phase and kind")
	}

	if err.Is(errors.New("plain error")) {
		t.Error("Is should not match a non-structured error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("parse int")
	err := New(PhaseConvert, KindInvalidData).
		SrcType("string").
		DstType("int").
		Value("abc").
		Cause(cause).
		Detail("element %d does not parse", 3).
		Build()

	if err.Phase != PhaseConvert || err.Kind != KindInvalidData {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.SrcType != "string" || err.DstType != "int" {
		t.Errorf("unexpected types: %s/%s", err.SrcType, err.DstType)
	}
	if err.Value != "abc" {
		t.Errorf("unexpected value: %v", err.Value)
	}
	if err.Detail != "element 3 does not parse" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"unsized array", UnsizedArray(PhaseLayout, "int[]"), KindUnsizedArray},
		{"invalid base", InvalidBase(PhaseLayout, 16), KindInvalidBase},
		{"out of bounds", OutOfBounds(PhaseConvert, 16, 8), KindOutOfBounds},
		{"unsupported", Unsupported(PhaseConvert, "pointer", "float"), KindUnsupported},
		{"invalid data", InvalidData(PhaseConvert, "bad literal"), KindInvalidData},
		{"overflow", Overflow(PhaseConvert, 1e300, "float"), KindOverflow},
		{"not found", NotFound(PhaseIntern, "string", "hash 42"), KindNotFound},
		{"invalid input", InvalidInput(PhaseConvert, "negative count"), KindInvalidInput},
		{"wrap", Wrap(PhaseMarshal, KindInvalidData, errors.New("eof"), "decode"), KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
