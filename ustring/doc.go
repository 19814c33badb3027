// Package ustring provides interned strings with stable 8-byte handles.
//
// Data buffers described by a string-based TypeDesc cannot hold Go strings
// directly; each cell instead holds a UString handle. The handle is the
// xxh3 content hash, so it doubles as the value stored for hash-based
// string cells, and two buffers built in different processes agree on
// handles for equal contents.
//
// The intern table is global and safe for concurrent use.
package ustring
