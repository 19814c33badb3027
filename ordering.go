package typedesc

// Exact equality is ordinary struct equality: two TypeDesc values are
// equal iff base type, aggregate, semantics, and array length all match.
// The Reserved byte is always zero and never participates.

// Equivalent reports whether a and b describe the same memory layout:
// equal base type, aggregate, and array length, with semantic hints
// ignored. Equivalence is weaker than equality.
func Equivalent(a, b TypeDesc) bool {
	return a.BaseType == b.BaseType &&
		a.Aggregate == b.Aggregate &&
		a.ArrayLen == b.ArrayLen
}

// Equivalent reports whether t and b describe the same memory layout,
// ignoring semantic hints.
func (t TypeDesc) Equivalent(b TypeDesc) bool {
	return Equivalent(t, b)
}

// MatchesBase reports whether the descriptor is exactly the given bare
// base type: scalar aggregate, not an array, matching base. The relation
// is symmetric between a descriptor and a base type by construction.
func (t TypeDesc) MatchesBase(b BaseType) bool {
	return t.BaseType == b && t.Aggregate == Scalar && t.ArrayLen == 0
}

// Less imposes a strict total order on descriptors for use in sorted
// containers. Fields are compared in fixed priority: base type, then
// aggregate, then array length, then semantics. The first differing
// field decides; equal on all four means not less. The priority order
// must be preserved exactly for any container relying on it.
func Less(a, b TypeDesc) bool {
	if a.BaseType != b.BaseType {
		return a.BaseType < b.BaseType
	}
	if a.Aggregate != b.Aggregate {
		return a.Aggregate < b.Aggregate
	}
	if a.ArrayLen != b.ArrayLen {
		return a.ArrayLen < b.ArrayLen
	}
	return a.VecSemantics < b.VecSemantics
}

// Less reports whether t sorts before b under the strict total order.
func (t TypeDesc) Less(b TypeDesc) bool {
	return Less(t, b)
}
