package textcodec

import (
	"fmt"

	"github.com/francoispqt/gojay"
)

// intArray encodes a []int as a JSON array.
type intArray []int

func (a intArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range a {
		enc.Int(v)
	}
}

func (a intArray) IsNil() bool { return false }

// signalDoc is the JSON document written for one signal.
type signalDoc struct {
	name   string
	values intArray
}

func (d signalDoc) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", d.name)
	enc.IntKey("length", len(d.values))
	enc.ArrayKey("signal", d.values)
}

func (d signalDoc) IsNil() bool { return false }

// EncodeJSON renders a named signal as
//
//	{"name":"...","length":N,"signal":[...]}
func EncodeJSON(name string, sig []int) ([]byte, error) {
	b, err := gojay.MarshalJSONObject(signalDoc{name: name, values: intArray(sig)})
	if err != nil {
		return nil, fmt.Errorf("textcodec.EncodeJSON: %w", err)
	}

	return b, nil
}
