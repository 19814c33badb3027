package ustring

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// UString is a handle to an interned, immutable string. The handle is the
// 64-bit xxh3 hash of the string's contents, so equal strings always
// intern to equal handles, handles are stable across processes, and a
// handle fits in a single 8-byte buffer cell.
type UString uint64

var table = struct {
	sync.RWMutex
	strings map[UString]string
}{strings: make(map[UString]string)}

// Intern adds s to the global table and returns its handle. Interning
// the same contents twice returns the same handle.
func Intern(s string) UString {
	u := UString(xxh3.HashString(s))

	table.RLock()
	_, ok := table.strings[u]
	table.RUnlock()
	if ok {
		return u
	}

	table.Lock()
	table.strings[u] = s
	table.Unlock()
	return u
}

// String returns the interned contents, or the empty string if the
// handle was never produced by Intern in this process.
func (u UString) String() string {
	table.RLock()
	s := table.strings[u]
	table.RUnlock()
	return s
}

// Hash returns the 64-bit content hash the handle is built from.
func (u UString) Hash() uint64 {
	return uint64(u)
}

// FromHash resolves a raw content hash back to a handle, reporting
// whether the hash is known to the table.
func FromHash(h uint64) (UString, bool) {
	u := UString(h)
	table.RLock()
	_, ok := table.strings[u]
	table.RUnlock()
	return u, ok
}

// Count returns the number of distinct strings interned so far.
func Count() int {
	table.RLock()
	n := len(table.strings)
	table.RUnlock()
	return n
}
