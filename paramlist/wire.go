package paramlist

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/oiio-go/typedesc"
	"github.com/oiio-go/typedesc/errors"
)

// cborEncMode uses canonical options so equal lists always encode to
// identical bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("paramlist: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// wireParam is the serialized form of one parameter. The descriptor
// travels as its fixed 8-byte wire image.
type wireParam struct {
	Name    string `cbor:"name"`
	Type    []byte `cbor:"type"`
	NValues int    `cbor:"nvalues"`
	Interp  uint8  `cbor:"interp"`
	Data    []byte `cbor:"data"`
}

// MarshalList serializes a ParamValueList to CBOR bytes.
func MarshalList(l ParamValueList) ([]byte, error) {
	wire := make([]wireParam, len(l))
	for i := range l {
		img, err := l[i].ptype.MarshalBinary()
		if err != nil {
			return nil, err
		}
		wire[i] = wireParam{
			Name:    l[i].Name(),
			Type:    img,
			NValues: l[i].nvalues,
			Interp:  uint8(l[i].interp),
			Data:    l[i].data,
		}
	}
	return cborEncMode.Marshal(wire)
}

// UnmarshalList deserializes a ParamValueList from CBOR bytes. Each
// entry is revalidated against its descriptor's layout.
func UnmarshalList(data []byte) (ParamValueList, error) {
	var wire []wireParam
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(errors.PhaseMarshal, errors.KindInvalidData, err, "unmarshal param list")
	}
	list := make(ParamValueList, 0, len(wire))
	for _, w := range wire {
		var t typedesc.TypeDesc
		if err := t.UnmarshalBinary(w.Type); err != nil {
			return nil, err
		}
		p, err := NewParamValue(w.Name, t, w.NValues, w.Data)
		if err != nil {
			return nil, err
		}
		p.interp = Interp(w.Interp)
		list = append(list, *p)
	}
	return list, nil
}
