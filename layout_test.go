package typedesc

import (
	stderrors "errors"
	"testing"

	"github.com/oiio-go/typedesc/errors"
)

func TestBaseSizeTable(t *testing.T) {
	tests := []struct {
		base BaseType
		want int
	}{
		{Unknown, 0},
		{None, 0},
		{UInt8, 1},
		{Int8, 1},
		{UInt16, 2},
		{Int16, 2},
		{UInt32, 4},
		{Int32, 4},
		{UInt64, 8},
		{Int64, 8},
		{Half, 2},
		{Float, 4},
		{Double, 8},
		{String, 8},
		{Pointer, 8},
		{UStringHash, 8},
	}
	for _, tc := range tests {
		t.Run(tc.base.String(), func(t *testing.T) {
			got, err := NewScalar(tc.base).BaseSize()
			if err != nil {
				t.Fatalf("BaseSize: %v", err)
			}
			if got != tc.want {
				t.Errorf("BaseSize() = %d, want %d", got, tc.want)
			}
		})
	}
}

// The sentinel count value has no defined size; asking for it is an
// internal error, not a silent zero.
func TestBaseSizeOutOfTable(t *testing.T) {
	for _, base := range []BaseType{LastBase, BaseType(17), BaseType(255)} {
		_, err := NewScalar(base).BaseSize()
		if err == nil {
			t.Errorf("BaseSize(%d) did not fail", base)
			continue
		}
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindInvalidBase}) {
			t.Errorf("BaseSize(%d) error = %v, want invalid_base", base, err)
		}
	}
}

func TestNumElements(t *testing.T) {
	tests := []struct {
		name string
		td   TypeDesc
		want int
	}{
		{"not array", TypeFloat, 1},
		{"aggregate not array", TypeColor, 1},
		{"sized", NewArray(Int32, 5), 5},
		{"sized aggregate", NewAggregateArray(Float, Vec3, 4), 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.td.NumElements()
			if err != nil {
				t.Fatalf("NumElements: %v", err)
			}
			if got != tc.want {
				t.Errorf("NumElements() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestUnsizedArrayQueriesFail(t *testing.T) {
	td := NewArray(Float, -1)
	if _, err := td.NumElements(); err == nil {
		t.Error("NumElements on unsized array did not fail")
	}
	if _, err := td.BaseValues(); err == nil {
		t.Error("BaseValues on unsized array did not fail")
	}
	if _, err := td.Size(); err == nil {
		t.Error("Size on unsized array did not fail")
	}
	_, err := td.Size()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindUnsizedArray}) {
		t.Errorf("Size error = %v, want unsized_array", err)
	}

	// Element and base sizes ignore array-ness and stay available.
	if es, err := td.ElementSize(); err != nil || es != 4 {
		t.Errorf("ElementSize() = %d, %v; want 4", es, err)
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		name     string
		td       TypeDesc
		elemSize int
		size     int
	}{
		{"float", TypeFloat, 4, 4},
		{"color", TypeColor, 12, 12},
		{"matrix", TypeMatrix44, 64, 64},
		{"matrix33", TypeMatrix33, 36, 36},
		{"float[3]", NewArray(Float, 3), 4, 12},
		{"point[2]", New(Float, Vec3, Point, 2), 12, 24},
		{"half vec4", New(Half, Vec4, NoSemantics, 0), 8, 8},
		{"string", TypeString, 8, 8},
		{"void", TypeVoid, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			es, err := tc.td.ElementSize()
			if err != nil {
				t.Fatalf("ElementSize: %v", err)
			}
			if es != tc.elemSize {
				t.Errorf("ElementSize() = %d, want %d", es, tc.elemSize)
			}
			sz, err := tc.td.Size()
			if err != nil {
				t.Fatalf("Size: %v", err)
			}
			if sz != tc.size {
				t.Errorf("Size() = %d, want %d", sz, tc.size)
			}
		})
	}
}

func TestBaseValues(t *testing.T) {
	tests := []struct {
		name string
		td   TypeDesc
		want int
	}{
		{"scalar", TypeInt, 1},
		{"vec3", TypeColor, 3},
		{"matrix array", NewAggregateArray(Float, Matrix44, 3), 48},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.td.BaseValues()
			if err != nil {
				t.Fatalf("BaseValues: %v", err)
			}
			if got != tc.want {
				t.Errorf("BaseValues() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestElementAndScalarType(t *testing.T) {
	descriptors := []TypeDesc{
		TypeFloat,
		TypeColor,
		NewArray(Int32, 5),
		New(Half, Matrix44, Box, -1),
		New(String, Vec2, Rational, 3),
	}
	for _, td := range descriptors {
		t.Run(td.String(), func(t *testing.T) {
			et := td.ElementType()
			if et.ArrayLen != 0 {
				t.Errorf("ElementType().ArrayLen = %d", et.ArrayLen)
			}
			if et.BaseType != td.BaseType || et.Aggregate != td.Aggregate ||
				et.VecSemantics != td.VecSemantics {
				t.Errorf("ElementType() changed non-array fields: %+v", et)
			}

			st := td.ScalarType()
			if st.Aggregate != Scalar || st.ArrayLen != 0 || st.VecSemantics != NoSemantics {
				t.Errorf("ScalarType() = %+v", st)
			}
			if st.BaseType != td.BaseType {
				t.Errorf("ScalarType() changed base: %+v", st)
			}
		})
	}
}

func TestArrayPredicates(t *testing.T) {
	tests := []struct {
		name                   string
		td                     TypeDesc
		isArr, isUnsized, isSz bool
	}{
		{"not array", TypeFloat, false, false, false},
		{"sized", NewArray(Float, 3), true, false, true},
		{"unsized", NewArray(Float, -1), true, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.td.IsArray(); got != tc.isArr {
				t.Errorf("IsArray() = %v", got)
			}
			if got := tc.td.IsUnsizedArray(); got != tc.isUnsized {
				t.Errorf("IsUnsizedArray() = %v", got)
			}
			if got := tc.td.IsSizedArray(); got != tc.isSz {
				t.Errorf("IsSizedArray() = %v", got)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	floating := []BaseType{Half, Float, Double}
	signed := []BaseType{Int8, Int16, Int32, Int64}
	neither := []BaseType{Unknown, None, UInt8, UInt16, UInt32, UInt64, String, Pointer, UStringHash}

	for _, b := range floating {
		if !NewScalar(b).IsFloatingPoint() {
			t.Errorf("%s should be floating point", b)
		}
		if NewScalar(b).IsSigned() {
			t.Errorf("%s should not count as signed", b)
		}
	}
	for _, b := range signed {
		if !NewScalar(b).IsSigned() {
			t.Errorf("%s should be signed", b)
		}
		if NewScalar(b).IsFloatingPoint() {
			t.Errorf("%s should not be floating point", b)
		}
	}
	for _, b := range neither {
		if NewScalar(b).IsFloatingPoint() || NewScalar(b).IsSigned() {
			t.Errorf("%s should be neither floating point nor signed", b)
		}
	}

	if !TypeUnknown.IsUnknown() {
		t.Error("TypeUnknown.IsUnknown() = false")
	}
	if TypeFloat.IsUnknown() {
		t.Error("TypeFloat.IsUnknown() = true")
	}
}
