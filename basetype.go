package typedesc

// BaseType is the scalar storage kind at the heart of a TypeDesc.
//
// The numeric codes are part of the external binary contract and must
// never be renumbered: serialized descriptors and cross-boundary callers
// depend on them.
type BaseType uint8

const (
	Unknown     BaseType = iota // 0
	None                        // 1, void
	UInt8                       // 2
	Int8                        // 3
	UInt16                      // 4
	Int16                       // 5
	UInt32                      // 6
	Int32                       // 7
	UInt64                      // 8
	Int64                       // 9
	Half                        // 10
	Float                       // 11
	Double                      // 12
	String                      // 13
	Pointer                     // 14
	UStringHash                 // 15
	LastBase                    // sentinel, not a usable type
)

var baseNames = [LastBase]string{
	Unknown:     "unknown",
	None:        "void",
	UInt8:       "uint8",
	Int8:        "int8",
	UInt16:      "uint16",
	Int16:       "int16",
	UInt32:      "uint",
	Int32:       "int",
	UInt64:      "uint64",
	Int64:       "int64",
	Half:        "half",
	Float:       "float",
	Double:      "double",
	String:      "string",
	Pointer:     "pointer",
	UStringHash: "ustringhash",
}

func (b BaseType) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return "unknown"
}

// IsFloatingPoint reports whether b is one of the floating-point kinds.
func (b BaseType) IsFloatingPoint() bool {
	return b == Half || b == Float || b == Double
}

// IsSigned reports whether b is a signed integer kind. Floating-point,
// unsigned, string, pointer, and hash kinds all report false.
func (b BaseType) IsSigned() bool {
	return b == Int8 || b == Int16 || b == Int32 || b == Int64
}

// Aggregate describes whether a type is a simple scalar or one of a small
// closed set of fixed composites. The numeric value of each constant equals
// its component count; size arithmetic relies on this identity.
type Aggregate uint8

const (
	Scalar   Aggregate = 1
	Vec2     Aggregate = 2
	Vec3     Aggregate = 3
	Vec4     Aggregate = 4
	Matrix33 Aggregate = 9
	Matrix44 Aggregate = 16
)

func (a Aggregate) String() string {
	switch a {
	case Scalar:
		return "scalar"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Matrix33:
		return "matrix33"
	case Matrix44:
		return "matrix44"
	}
	return "unknown"
}

// Components returns the number of scalar components in the aggregate.
func (a Aggregate) Components() int {
	return int(a)
}

// VecSemantics is an advisory hint about what aggregate data represents,
// for example whether a 3-vector transforms as a point, a direction, or a
// surface normal. It never affects byte layout.
type VecSemantics uint8

const (
	NoSemantics VecSemantics = iota // 0
	Color
	Point
	Vector
	Normal
	Timecode
	Keycode
	Rational
	Box
)

var semanticsNames = [...]string{
	NoSemantics: "nosemantics",
	Color:       "color",
	Point:       "point",
	Vector:      "vector",
	Normal:      "normal",
	Timecode:    "timecode",
	Keycode:     "keycode",
	Rational:    "rational",
	Box:         "box",
}

func (v VecSemantics) String() string {
	if int(v) < len(semanticsNames) {
		return semanticsNames[v]
	}
	return "nosemantics"
}
