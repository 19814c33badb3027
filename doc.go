// Package typedesc describes simple binary data types.
//
// It frequently comes up, with renderers and image handling programs in
// particular, that heterogeneous data must be passed through APIs as blind
// byte buffers. TypeDesc is a compact fixed-layout value carrying just
// enough type information to validate, size, compare, promote, and convert
// such buffers: a scalar base type, a small fixed aggregate (vector or
// matrix), an advisory semantic hint, and an optional array repetition.
//
// This is deliberately not a general type system. There are no structs,
// unions, typed pointers, or nested definitions; only scalar base types, a
// closed set of aggregates, and one level of array repetition.
//
// # Package layout
//
//	typedesc/      TypeDesc value, layout arithmetic, grammar, ordering, promotion
//	├── convert/   Raw buffer conversion between descriptor types
//	├── ustring/   Interned strings with stable 8-byte handles
//	├── paramlist/ Typed named parameters with CBOR serialization
//	├── errors/    Structured error types
//	└── cmd/typeinfo/  CLI for inspecting and converting types
//
// # Quick start
//
// Parse a type name and query its layout:
//
//	t, n := typedesc.ParseType("float[3]")
//	if n == 0 {
//		// no valid type at the front of the string
//	}
//	sz, err := t.Size() // 12
//
// Descriptors are 8-byte values; pass and compare them directly:
//
//	if a == b { ... }                // exact equality
//	if typedesc.Equivalent(a, b) { } // same layout, hints ignored
//
// Promote two base types to one that can hold both losslessly:
//
//	base := typedesc.MergeBase(typedesc.UInt16, typedesc.UInt8) // UInt16
//
// # Concurrency
//
// Every operation in this package is a pure function over stack-sized
// values. There is no shared mutable state; all operations are safe to
// call concurrently without coordination.
package typedesc
