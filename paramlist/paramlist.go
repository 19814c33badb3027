package paramlist

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/oiio-go/typedesc"
	"github.com/oiio-go/typedesc/convert"
	"github.com/oiio-go/typedesc/errors"
	"github.com/oiio-go/typedesc/ustring"
)

// Interp describes how a parameter's values interpolate across a
// primitive.
type Interp uint8

const (
	InterpConstant Interp = 0 // a single value for the whole primitive
	InterpPerPiece Interp = 1 // one value per piece or face
	InterpLinear   Interp = 2 // linearly interpolated across each piece
	InterpVertex   Interp = 3 // interpolated like vertices
)

// ParamValue is a named, typed parameter holding its values as raw bytes
// sized by the type's layout. The value owns a private copy of the data.
type ParamValue struct {
	name    ustring.UString
	ptype   typedesc.TypeDesc
	nvalues int
	interp  Interp
	data    []byte
}

// NewParamValue builds a parameter holding nvalues values of type t.
// The data must hold at least nvalues times the type's size; unsized
// array types are rejected because their size is undefined.
func NewParamValue(name string, t typedesc.TypeDesc, nvalues int, data []byte) (*ParamValue, error) {
	if nvalues < 0 {
		return nil, errors.InvalidInput(errors.PhaseLayout, "negative value count")
	}
	sz, err := t.Size()
	if err != nil {
		return nil, err
	}
	need := nvalues * sz
	if len(data) < need {
		return nil, errors.OutOfBounds(errors.PhaseLayout, need, len(data))
	}
	p := &ParamValue{
		name:    ustring.Intern(name),
		ptype:   t,
		nvalues: nvalues,
		data:    make([]byte, need),
	}
	copy(p.data, data[:need])
	return p, nil
}

// Name returns the parameter name.
func (p *ParamValue) Name() string { return p.name.String() }

// NameHandle returns the interned-string handle of the name.
func (p *ParamValue) NameHandle() ustring.UString { return p.name }

// Type returns the value type descriptor.
func (p *ParamValue) Type() typedesc.TypeDesc { return p.ptype }

// NValues returns how many values of the type are held.
func (p *ParamValue) NValues() int { return p.nvalues }

// Interp returns the interpolation mode.
func (p *ParamValue) Interp() Interp { return p.interp }

// SetInterp sets the interpolation mode.
func (p *ParamValue) SetInterp(i Interp) { p.interp = i }

// Data returns the raw value bytes. Callers must treat them as
// read-only.
func (p *ParamValue) Data() []byte { return p.data }

// elements returns the flat element count and element type covering the
// whole data block, folding nvalues and array length together.
func (p *ParamValue) elements() (typedesc.TypeDesc, int, error) {
	perValue, err := p.ptype.NumElements()
	if err != nil {
		return typedesc.TypeDesc{}, 0, err
	}
	return p.ptype.ElementType(), p.nvalues * perValue, nil
}

// Floats converts the whole parameter to float32 values, one per scalar
// component.
func (p *ParamValue) Floats() ([]float32, error) {
	elemType, n, err := p.elements()
	if err != nil {
		return nil, err
	}
	dstType := typedesc.New(typedesc.Float, p.ptype.Aggregate, typedesc.NoSemantics, 0)
	dstES, err := dstType.ElementSize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n*dstES)
	if err := convert.Convert(elemType, p.data, dstType, buf, n); err != nil {
		return nil, err
	}
	out := make([]float32, n*dstType.Aggregate.Components())
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out, nil
}

// Strings converts the whole parameter to its textual renderings, one
// per scalar component.
func (p *ParamValue) Strings() ([]string, error) {
	elemType, n, err := p.elements()
	if err != nil {
		return nil, err
	}
	dstType := typedesc.New(typedesc.String, p.ptype.Aggregate, typedesc.NoSemantics, 0)
	dstES, err := dstType.ElementSize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n*dstES)
	if err := convert.Convert(elemType, p.data, dstType, buf, n); err != nil {
		return nil, err
	}
	out := make([]string, n*dstType.Aggregate.Components())
	for i := range out {
		out[i] = ustring.UString(binary.LittleEndian.Uint64(buf[i*8:])).String()
	}
	return out, nil
}

// ParamValueList is an ordered collection of parameters.
type ParamValueList []ParamValue

// Find returns the parameter with the given name, or nil.
func (l ParamValueList) Find(name string) *ParamValue {
	h := ustring.Intern(name)
	for i := range l {
		if l[i].name == h {
			return &l[i]
		}
	}
	return nil
}

// FindMatching returns the parameter with the given name whose type is
// layout-equivalent to t, or nil.
func (l ParamValueList) FindMatching(name string, t typedesc.TypeDesc) *ParamValue {
	p := l.Find(name)
	if p == nil || !p.ptype.Equivalent(t) {
		return nil
	}
	return p
}

// Add appends the parameter, replacing any existing one with the same
// name.
func (l *ParamValueList) Add(p ParamValue) {
	for i := range *l {
		if (*l)[i].name == p.name {
			(*l)[i] = p
			return
		}
	}
	*l = append(*l, p)
}

// Remove deletes the named parameter, reporting whether it was present.
func (l *ParamValueList) Remove(name string) bool {
	h := ustring.Intern(name)
	for i := range *l {
		if (*l)[i].name == h {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Sort orders the list by name, breaking name ties with the descriptor
// total order.
func (l ParamValueList) Sort() {
	sort.Slice(l, func(i, j int) bool {
		ni, nj := l[i].Name(), l[j].Name()
		if ni != nj {
			return ni < nj
		}
		return typedesc.Less(l[i].ptype, l[j].ptype)
	})
}
