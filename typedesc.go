package typedesc

import (
	"encoding/binary"

	"github.com/oiio-go/typedesc/errors"
)

// TypeDesc describes the shape of a blob of binary data: its scalar base
// type, whether it is a small fixed aggregate, an advisory semantic hint,
// and whether it repeats as an array.
//
// A TypeDesc is a plain 8-byte value: three enum bytes, one reserved
// padding byte, and a 32-bit signed array length. It is freely copyable
// and owns nothing; treat it as immutable and replace the whole value
// rather than editing individual fields.
//
// ArrayLen of 0 means not an array, a positive value is a sized array,
// and a negative value (conventionally -1) is an array of unspecified
// length.
type TypeDesc struct {
	BaseType     BaseType
	Aggregate    Aggregate
	VecSemantics VecSemantics
	Reserved     uint8 // kept for layout compatibility, always 0
	ArrayLen     int32
}

// New constructs a TypeDesc with every field given explicitly. No
// validation is performed: any combination is representable, and callers
// are responsible for meaning.
func New(base BaseType, agg Aggregate, sem VecSemantics, arraylen int32) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: agg, VecSemantics: sem, ArrayLen: arraylen}
}

// NewScalar constructs a plain scalar TypeDesc of the given base type.
func NewScalar(base BaseType) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: Scalar}
}

// NewArray constructs an array of a non-aggregate base type.
func NewArray(base BaseType, arraylen int32) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: Scalar, ArrayLen: arraylen}
}

// NewAggregateArray constructs an array of aggregates with no semantic hint.
func NewAggregateArray(base BaseType, agg Aggregate, arraylen int32) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: agg, ArrayLen: arraylen}
}

// UnArray returns the same descriptor demoted to a non-array.
func (t TypeDesc) UnArray() TypeDesc {
	t.ArrayLen = 0
	return t
}

// Predefined descriptors for the common types.
var (
	TypeUnknown     = TypeDesc{BaseType: Unknown, Aggregate: Scalar}
	TypeVoid        = NewScalar(None)
	TypeUInt8       = NewScalar(UInt8)
	TypeInt8        = NewScalar(Int8)
	TypeUInt16      = NewScalar(UInt16)
	TypeInt16       = NewScalar(Int16)
	TypeUInt        = NewScalar(UInt32)
	TypeInt         = NewScalar(Int32)
	TypeUInt64      = NewScalar(UInt64)
	TypeInt64       = NewScalar(Int64)
	TypeHalf        = NewScalar(Half)
	TypeFloat       = NewScalar(Float)
	TypeDouble      = NewScalar(Double)
	TypeString      = NewScalar(String)
	TypePointer     = NewScalar(Pointer)
	TypeUstringhash = NewScalar(UStringHash)

	TypeColor    = New(Float, Vec3, Color, 0)
	TypePoint    = New(Float, Vec3, Point, 0)
	TypeVector   = New(Float, Vec3, Vector, 0)
	TypeNormal   = New(Float, Vec3, Normal, 0)
	TypeMatrix33 = New(Float, Matrix33, NoSemantics, 0)
	TypeMatrix44 = New(Float, Matrix44, NoSemantics, 0)
	TypeMatrix   = TypeMatrix44

	// SMPTE timecode and keycode, and an integer rational. These have no
	// names in the grammar but come up in image metadata.
	TypeTimeCode = New(UInt32, Scalar, Timecode, 2)
	TypeKeyCode  = New(Int32, Scalar, Keycode, 7)
	TypeRational = New(Int32, Vec2, Rational, 0)
)

const wireSize = 8

// MarshalBinary encodes the descriptor as its fixed 8-byte wire image:
// base, aggregate, and semantics bytes, the reserved byte, then the array
// length as a little-endian int32.
func (t TypeDesc) MarshalBinary() ([]byte, error) {
	buf := make([]byte, wireSize)
	buf[0] = byte(t.BaseType)
	buf[1] = byte(t.Aggregate)
	buf[2] = byte(t.VecSemantics)
	buf[3] = 0
	binary.LittleEndian.PutUint32(buf[4:], uint32(t.ArrayLen))
	return buf, nil
}

// UnmarshalBinary decodes the fixed 8-byte wire image produced by
// MarshalBinary.
func (t *TypeDesc) UnmarshalBinary(data []byte) error {
	if len(data) != wireSize {
		return errors.InvalidData(errors.PhaseMarshal, "descriptor wire image must be exactly 8 bytes")
	}
	t.BaseType = BaseType(data[0])
	t.Aggregate = Aggregate(data[1])
	t.VecSemantics = VecSemantics(data[2])
	t.Reserved = 0
	t.ArrayLen = int32(binary.LittleEndian.Uint32(data[4:]))
	return nil
}
