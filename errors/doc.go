// Package errors provides structured error types for the typedesc library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: source/destination type names,
// the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindUnsupported).
//		SrcType("pointer").
//		DstType("int").
//		Detail("no numeric interpretation for pointers").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsizedArray(errors.PhaseLayout, "float[]")
//	err := errors.OutOfBounds(errors.PhaseConvert, 12, 8)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
