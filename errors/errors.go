package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // type string parsing
	PhaseLayout  Phase = "layout"  // size and count queries
	PhaseConvert Phase = "convert" // buffer conversion
	PhaseIntern  Phase = "intern"  // string interning
	PhaseMarshal Phase = "marshal" // binary and CBOR serialization
)

// Kind categorizes the error
type Kind string

const (
	KindUnsizedArray Kind = "unsized_array"
	KindInvalidBase  Kind = "invalid_base"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindUnsupported  Kind = "unsupported"
	KindInvalidData  Kind = "invalid_data"
	KindOverflow     Kind = "overflow"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	SrcType string
	DstType string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.SrcType != "" || e.DstType != "" {
		b.WriteString(": ")
		if e.SrcType != "" && e.DstType != "" {
			b.WriteString(e.SrcType)
			b.WriteString(" -> ")
			b.WriteString(e.DstType)
		} else if e.SrcType != "" {
			b.WriteString(e.SrcType)
		} else {
			b.WriteString(e.DstType)
		}
	}

	if e.Detail != "" {
		if e.SrcType != "" || e.DstType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// SrcType sets the source type name
func (b *Builder) SrcType(t string) *Builder {
	b.err.SrcType = t
	return b
}

// DstType sets the destination type name
func (b *Builder) DstType(t string) *Builder {
	b.err.DstType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// UnsizedArray creates an error for a count or size query on an unsized array
func UnsizedArray(phase Phase, typeName string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsizedArray,
		SrcType: typeName,
		Detail:  "count is undefined for unsized arrays",
	}
}

// InvalidBase creates an error for a base type code with no size table entry
func InvalidBase(phase Phase, code int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBase,
		Detail: fmt.Sprintf("base type code %d has no defined size", code),
		Value:  code,
	}
}

// OutOfBounds creates a buffer bounds error
func OutOfBounds(phase Phase, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
		Value:  need,
	}
}

// Unsupported creates an unsupported conversion error
func Unsupported(phase Phase, srcType, dstType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupported,
		SrcType: srcType,
		DstType: dstType,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, targetType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindOverflow,
		DstType: targetType,
		Detail:  fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:   value,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
