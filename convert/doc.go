// Package convert performs raw buffer conversion between descriptor types.
//
// Convert moves n elements from a source-typed byte buffer to a
// destination-typed byte buffer, applying one policy per call:
//
//  1. Equivalent types: byte-for-byte copy.
//  2. String destination: each scalar is rendered to canonical text and
//     stored as an interned-string handle.
//  3. Int or uint destination: numeric sources cast best-effort; string
//     sources must parse in full as integer literals.
//  4. Float destination: numeric sources cast; string sources must parse
//     in full as float literals.
//  5. Everything else fails.
//
// A failure on any element fails the whole call and leaves the
// destination buffer unspecified.
//
// The package logger (see Logger and SetLogger) is a no-op unless
// configured; conversion failures are also reported at debug level.
package convert
