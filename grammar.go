package typedesc

import (
	"strconv"
	"strings"
)

// The textual grammar is a wire format: a base keyword or semantic alias,
// optionally followed by an array suffix "[n]" or "[]". The vocabulary
// below is exact and case-sensitive; implementations must accept exactly
// these names and produce exactly these canonical strings.

var baseKeywords = map[string]BaseType{
	"unknown":     Unknown,
	"void":        None,
	"uint8":       UInt8,
	"int8":        Int8,
	"uint16":      UInt16,
	"int16":       Int16,
	"uint":        UInt32,
	"int":         Int32,
	"uint64":      UInt64,
	"int64":       Int64,
	"half":        Half,
	"float":       Float,
	"double":      Double,
	"string":      String,
	"pointer":     Pointer,
	"ustringhash": UStringHash,
}

// Semantic aliases expand to a full descriptor, not just a base type.
type aliasEntry struct {
	name string
	t    TypeDesc
}

var aliases = []aliasEntry{
	{"color", TypeColor},
	{"point", TypePoint},
	{"vector", TypeVector},
	{"normal", TypeNormal},
	{"matrix", TypeMatrix44},
	{"matrix33", TypeMatrix33},
}

// ParseType parses a type descriptor from a prefix of s and returns the
// descriptor along with the number of bytes consumed. On no match it
// returns (TypeUnknown, 0); parsing never fails with an error.
//
// The keyword is matched as a whole token (everything up to a space,
// '[', or the end of input), so "uint16" can never be mistaken for
// "uint" with trailing text.
func ParseType(s string) (TypeDesc, int) {
	wordEnd := len(s)
	if i := strings.IndexAny(s, " ["); i >= 0 {
		wordEnd = i
	}
	word := s[:wordEnd]

	var t TypeDesc
	if base, ok := baseKeywords[word]; ok {
		t = NewScalar(base)
	} else {
		found := false
		for _, a := range aliases {
			if a.name == word {
				t = a.t
				found = true
				break
			}
		}
		if !found {
			return TypeUnknown, 0
		}
	}

	consumed := wordEnd

	// Optional array suffix, possibly preceded by spaces.
	pos := consumed
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	if pos >= len(s) || s[pos] != '[' {
		return t, consumed
	}
	pos++
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	if pos < len(s) && s[pos] == ']' {
		// "[]" is an array of unspecified length.
		t.ArrayLen = -1
		return t, pos + 1
	}

	digitsStart := pos
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	if pos == digitsStart {
		return TypeUnknown, 0
	}
	n, err := strconv.Atoi(s[digitsStart:pos])
	if err != nil {
		return TypeUnknown, 0
	}
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	if pos >= len(s) || s[pos] != ']' {
		return TypeUnknown, 0
	}
	t.ArrayLen = int32(n)
	return t, pos + 1
}

// SetFromString sets *t to the type described by a prefix of s and
// returns the number of bytes consumed. If no valid type could be
// assembled it returns 0 and leaves *t unmodified.
func (t *TypeDesc) SetFromString(s string) int {
	parsed, n := ParseType(s)
	if n == 0 {
		return 0
	}
	*t = parsed
	return n
}

// String returns the canonical name of the descriptor, for example
// "float", "int[5]", or "point". Names produced for any parseable
// descriptor parse back to the identical value.
func (t TypeDesc) String() string {
	var b strings.Builder

	named := false
	for _, a := range aliases {
		if t.BaseType == a.t.BaseType && t.Aggregate == a.t.Aggregate &&
			t.VecSemantics == a.t.VecSemantics {
			b.WriteString(a.name)
			named = true
			break
		}
	}
	if !named {
		b.WriteString(t.BaseType.String())
		if t.Aggregate != Scalar {
			// No alias covers this aggregate combination; spell out the
			// component count.
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(t.Aggregate.Components()))
			b.WriteByte(']')
		}
	}

	if t.ArrayLen > 0 {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(int(t.ArrayLen)))
		b.WriteByte(']')
	} else if t.ArrayLen < 0 {
		b.WriteString("[]")
	}
	return b.String()
}
