package convert

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/x448/float16"
	"go.uber.org/zap"

	"github.com/oiio-go/typedesc"
	"github.com/oiio-go/typedesc/errors"
	"github.com/oiio-go/typedesc/ustring"
)

// Buffer cells are little-endian. String cells hold 8-byte ustring
// handles; pointer cells hold 8-byte addresses; hash cells hold the raw
// 64-bit content hash.

// Convert converts n elements from a source-typed buffer into a
// destination-typed buffer.
//
// Both buffers must hold at least n elements of their respective types;
// short buffers fail before anything is read or written. Equivalent
// types (same layout, hints ignored) are copied byte for byte. A string
// destination accepts any renderable source. Int, uint, and float
// destinations accept numeric sources via best-effort casts and string
// sources whose full contents parse as the right literal. Every other
// combination fails.
//
// On failure the destination contents are unspecified; never treat them
// as partially valid.
func Convert(src typedesc.TypeDesc, srcData []byte, dst typedesc.TypeDesc, dstData []byte, n int) error {
	if n < 0 {
		return errors.InvalidInput(errors.PhaseConvert, "negative element count")
	}

	srcES, err := src.ElementSize()
	if err != nil {
		return err
	}
	dstES, err := dst.ElementSize()
	if err != nil {
		return err
	}
	if need := n * srcES; len(srcData) < need {
		return errors.OutOfBounds(errors.PhaseConvert, need, len(srcData))
	}
	if need := n * dstES; len(dstData) < need {
		return errors.OutOfBounds(errors.PhaseConvert, need, len(dstData))
	}

	if typedesc.Equivalent(src, dst) {
		copy(dstData[:n*srcES], srcData[:n*srcES])
		return nil
	}

	if src.Aggregate.Components() != dst.Aggregate.Components() {
		Logger().Debug("aggregate shapes differ",
			zap.String("src", src.String()),
			zap.String("dst", dst.String()))
		return errors.Unsupported(errors.PhaseConvert, src.String(), dst.String())
	}
	nv := n * src.Aggregate.Components()

	srcBS, err := src.BaseSize()
	if err != nil {
		return err
	}
	dstBS, err := dst.BaseSize()
	if err != nil {
		return err
	}

	switch dst.BaseType {
	case typedesc.String:
		return convertToString(src, srcData, dstData, nv, srcBS, dstBS)
	case typedesc.Int32, typedesc.UInt32:
		return convertToInt(src, srcData, dst, dstData, nv, srcBS, dstBS)
	case typedesc.Float:
		return convertToFloat(src, srcData, dstData, nv, srcBS, dstBS)
	}

	Logger().Debug("unsupported conversion",
		zap.String("src", src.String()),
		zap.String("dst", dst.String()))
	return errors.Unsupported(errors.PhaseConvert, src.String(), dst.String())
}

// scalarClass partitions numeric base types by how their bits are read.
type scalarClass int

const (
	classNone scalarClass = iota
	classUnsigned
	classSigned
	classFloat
)

func classify(base typedesc.BaseType) scalarClass {
	switch base {
	case typedesc.UInt8, typedesc.UInt16, typedesc.UInt32, typedesc.UInt64:
		return classUnsigned
	case typedesc.Int8, typedesc.Int16, typedesc.Int32, typedesc.Int64:
		return classSigned
	case typedesc.Half, typedesc.Float, typedesc.Double:
		return classFloat
	}
	return classNone
}

// loadScalar reads one scalar of the given numeric base type from the
// front of b. Exactly one of u, i, f is meaningful, per the class.
func loadScalar(base typedesc.BaseType, b []byte) (u uint64, i int64, f float64, cl scalarClass) {
	switch base {
	case typedesc.UInt8:
		return uint64(b[0]), 0, 0, classUnsigned
	case typedesc.UInt16:
		return uint64(binary.LittleEndian.Uint16(b)), 0, 0, classUnsigned
	case typedesc.UInt32:
		return uint64(binary.LittleEndian.Uint32(b)), 0, 0, classUnsigned
	case typedesc.UInt64:
		return binary.LittleEndian.Uint64(b), 0, 0, classUnsigned
	case typedesc.Int8:
		return 0, int64(int8(b[0])), 0, classSigned
	case typedesc.Int16:
		return 0, int64(int16(binary.LittleEndian.Uint16(b))), 0, classSigned
	case typedesc.Int32:
		return 0, int64(int32(binary.LittleEndian.Uint32(b))), 0, classSigned
	case typedesc.Int64:
		return 0, int64(binary.LittleEndian.Uint64(b)), 0, classSigned
	case typedesc.Half:
		return 0, 0, float64(float16.Frombits(binary.LittleEndian.Uint16(b)).Float32()), classFloat
	case typedesc.Float:
		return 0, 0, float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), classFloat
	case typedesc.Double:
		return 0, 0, math.Float64frombits(binary.LittleEndian.Uint64(b)), classFloat
	}
	return 0, 0, 0, classNone
}

// renderScalar produces the canonical textual representation of one
// scalar, the same rendering a human-readable dump would use.
func renderScalar(base typedesc.BaseType, b []byte) (string, bool) {
	u, i, f, cl := loadScalar(base, b)
	switch cl {
	case classUnsigned:
		return strconv.FormatUint(u, 10), true
	case classSigned:
		return strconv.FormatInt(i, 10), true
	case classFloat:
		bits := 64
		if base != typedesc.Double {
			bits = 32
		}
		return strconv.FormatFloat(f, 'g', -1, bits), true
	}
	switch base {
	case typedesc.String:
		return ustring.UString(binary.LittleEndian.Uint64(b)).String(), true
	case typedesc.UStringHash:
		h := binary.LittleEndian.Uint64(b)
		if u, ok := ustring.FromHash(h); ok {
			return u.String(), true
		}
		return strconv.FormatUint(h, 10), true
	case typedesc.Pointer:
		return "0x" + strconv.FormatUint(binary.LittleEndian.Uint64(b), 16), true
	}
	return "", false
}

func convertToString(src typedesc.TypeDesc, srcData, dstData []byte, nv, srcBS, dstBS int) error {
	for v := 0; v < nv; v++ {
		s, ok := renderScalar(src.BaseType, srcData[v*srcBS:])
		if !ok {
			return errors.Unsupported(errors.PhaseConvert, src.String(), "string")
		}
		binary.LittleEndian.PutUint64(dstData[v*dstBS:], ustring.Intern(s).Hash())
	}
	return nil
}

func convertToInt(src typedesc.TypeDesc, srcData []byte, dst typedesc.TypeDesc, dstData []byte, nv, srcBS, dstBS int) error {
	for v := 0; v < nv; v++ {
		cell := srcData[v*srcBS:]

		var out uint32
		if src.BaseType == typedesc.String {
			i, err := parseIntLiteral(ustring.UString(binary.LittleEndian.Uint64(cell)).String())
			if err != nil {
				return err
			}
			out = uint32(i)
		} else {
			u, i, f, cl := loadScalar(src.BaseType, cell)
			switch cl {
			case classUnsigned:
				out = uint32(u)
			case classSigned:
				out = uint32(i)
			case classFloat:
				if dst.BaseType == typedesc.UInt32 {
					out = floatToUint32(f)
				} else {
					out = uint32(floatToInt32(f))
				}
			default:
				return errors.Unsupported(errors.PhaseConvert, src.String(), dst.String())
			}
		}
		binary.LittleEndian.PutUint32(dstData[v*dstBS:], out)
	}
	return nil
}

func convertToFloat(src typedesc.TypeDesc, srcData, dstData []byte, nv, srcBS, dstBS int) error {
	for v := 0; v < nv; v++ {
		cell := srcData[v*srcBS:]

		var out float32
		if src.BaseType == typedesc.String {
			s := ustring.UString(binary.LittleEndian.Uint64(cell)).String()
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return errors.New(errors.PhaseConvert, errors.KindInvalidData).
					SrcType("string").DstType("float").Value(s).
					Detail("content is not a float literal").Build()
			}
			out = float32(f)
		} else {
			u, i, f, cl := loadScalar(src.BaseType, cell)
			switch cl {
			case classUnsigned:
				out = float32(u)
			case classSigned:
				out = float32(i)
			case classFloat:
				out = float32(f)
			default:
				return errors.Unsupported(errors.PhaseConvert, src.String(), "float")
			}
		}
		binary.LittleEndian.PutUint32(dstData[v*dstBS:], math.Float32bits(out))
	}
	return nil
}

// parseIntLiteral accepts a full-string integer literal, signed or
// unsigned, and returns its 64-bit bit pattern.
func parseIntLiteral(s string) (int64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return int64(u), nil
	}
	return 0, errors.New(errors.PhaseConvert, errors.KindInvalidData).
		SrcType("string").Value(s).
		Detail("content is not an integer literal").Build()
}

// Float-to-integer casts truncate toward zero, clamp at the type's
// range, and map NaN to zero.

func floatToInt32(f float64) int32 {
	if math.IsNaN(f) {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	if f <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(f)
}

func floatToUint32(f float64) uint32 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}
