package typedesc

// MergeBase computes a base type able to represent values of both a and
// b without loss of range or precision. It is total and deterministic:
// every input pair produces some answer, with Float as the safe fallback
// for pairs no exact integer type covers (such as mixed signedness).
func MergeBase(a, b BaseType) BaseType {
	if a == b {
		return a
	}
	if a == Unknown {
		return b
	}
	if b == Unknown {
		return a
	}

	// The byte-larger type drives the decision. Swap only when b is
	// strictly larger, so operand order breaks ties.
	if baseSizeOf(b) > baseSizeOf(a) {
		a, b = b, a
	}

	switch {
	case a == Double || a == Float:
		return a
	case a == UInt32 && (b == UInt16 || b == UInt8):
		return a
	case a == Int32 && (b == Int16 || b == Int8 || b == UInt16 || b == UInt8):
		return a
	case (a == UInt16 || a == Half) && b == UInt8:
		return a
	case (a == Int16 || a == Half) && (b == Int8 || b == UInt8):
		return a
	}
	return Float
}

// MergeBase3 merges three base types by folding left: the result of
// merging a and b is merged with c. The fold is deterministic and total
// but not associative in the general integer-promotion sense.
func MergeBase3(a, b, c BaseType) BaseType {
	return MergeBase(MergeBase(a, b), c)
}
