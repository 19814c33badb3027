package typedesc

import (
	"github.com/oiio-go/typedesc/errors"
)

// HandleWidth is the storage width of String and Pointer cells in data
// buffers. Strings are stored as 8-byte interned-string handles and
// pointers as 8-byte addresses, matching 64-bit targets.
const HandleWidth = 8

var baseSizes = [LastBase]int{
	Unknown:     0,
	None:        0,
	UInt8:       1,
	Int8:        1,
	UInt16:      2,
	Int16:       2,
	UInt32:      4,
	Int32:       4,
	UInt64:      8,
	Int64:       8,
	Half:        2,
	Float:       4,
	Double:      8,
	String:      HandleWidth,
	Pointer:     HandleWidth,
	UStringHash: 8,
}

// baseSizeOf is the permissive lookup used internally where a total
// function is required (promotion tie-breaking). Out-of-table codes
// report zero.
func baseSizeOf(b BaseType) int {
	if b < LastBase {
		return baseSizes[b]
	}
	return 0
}

// IsArray reports whether the descriptor is an array, sized or not.
func (t TypeDesc) IsArray() bool { return t.ArrayLen != 0 }

// IsUnsizedArray reports whether the descriptor is an array of
// unspecified length.
func (t TypeDesc) IsUnsizedArray() bool { return t.ArrayLen < 0 }

// IsSizedArray reports whether the descriptor is an array with a known
// length.
func (t TypeDesc) IsSizedArray() bool { return t.ArrayLen > 0 }

// IsUnknown reports whether the base type is Unknown.
func (t TypeDesc) IsUnknown() bool { return t.BaseType == Unknown }

// IsFloatingPoint reports whether the base type is a floating-point kind.
func (t TypeDesc) IsFloatingPoint() bool { return t.BaseType.IsFloatingPoint() }

// IsSigned reports whether the base type is a signed integer kind.
func (t TypeDesc) IsSigned() bool { return t.BaseType.IsSigned() }

// NumElements returns the number of elements: 1 if not an array, or the
// array length. It fails on an unsized array, whose element count is a
// precondition violation to ask for.
func (t TypeDesc) NumElements() (int, error) {
	if t.ArrayLen < 0 {
		return 0, errors.UnsizedArray(errors.PhaseLayout, t.String())
	}
	if t.ArrayLen == 0 {
		return 1, nil
	}
	return int(t.ArrayLen), nil
}

// BaseValues returns the total number of scalar values: elements times
// aggregate components. Fails on an unsized array.
func (t TypeDesc) BaseValues() (int, error) {
	n, err := t.NumElements()
	if err != nil {
		return 0, err
	}
	return n * t.Aggregate.Components(), nil
}

// BaseSize returns the size in bytes of one scalar of the base type.
// Fails for LastBase and any other code outside the size table.
func (t TypeDesc) BaseSize() (int, error) {
	if t.BaseType >= LastBase {
		return 0, errors.InvalidBase(errors.PhaseLayout, int(t.BaseType))
	}
	return baseSizes[t.BaseType], nil
}

// ElementSize returns the size in bytes of one element, i.e. one
// aggregate's worth of scalars, ignoring array-ness.
func (t TypeDesc) ElementSize() (int, error) {
	bs, err := t.BaseSize()
	if err != nil {
		return 0, err
	}
	return t.Aggregate.Components() * bs, nil
}

// Size returns the size in bytes of the whole described value. Fails on
// an unsized array.
func (t TypeDesc) Size() (int, error) {
	n, err := t.NumElements()
	if err != nil {
		return 0, err
	}
	es, err := t.ElementSize()
	if err != nil {
		return 0, err
	}
	return n * es, nil
}

// ElementType returns the type of one element, stripping array-ness but
// keeping the aggregate.
func (t TypeDesc) ElementType() TypeDesc {
	t.ArrayLen = 0
	return t
}

// ScalarType returns just the underlying scalar type, stripping both
// array-ness and aggregate-ness.
func (t TypeDesc) ScalarType() TypeDesc {
	return NewScalar(t.BaseType)
}
