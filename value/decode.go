package value

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/holiman/uint256"
	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/metadata"
)

const (
	maxDepth = 128
	// sequences longer than the remaining input are only accepted up to this length,
	// elements of empty types take no bytes
	maxEmptyElements = 1 << 16
)

var primitiveSizes = map[metadata.Primitive]int{
	metadata.U8: 1, metadata.U16: 2, metadata.U32: 4, metadata.U64: 8, metadata.U128: 16, metadata.U256: 32,
	metadata.I8: 1, metadata.I16: 2, metadata.I32: 4, metadata.I64: 8,
}

type decoder struct {
	md TypeLookup
	r  *bytes.Reader
	d  *scale.Decoder
}

// Decode decodes data as a value of type id. All of data must be consumed.
func Decode(md TypeLookup, id uint32, data []byte) (Value, error) {
	r := bytes.NewReader(data)
	dec := &decoder{md: md, r: r, d: scale.NewDecoder(r)}
	v, err := dec.decode(id, 0)
	if err != nil {
		return Value{}, &DecodeError{TypeID: id, Err: err}
	}
	if r.Len() != 0 {
		return Value{}, &DecodeError{TypeID: id, Err: fmt.Errorf("%w: %d", codec.ErrTrailingBytes, r.Len())}
	}
	return v, nil
}

func (dec *decoder) decode(id uint32, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrTooDeep
	}
	typ, err := dec.md.Type(id)
	if err != nil {
		return Value{}, err
	}
	def := &typ.Def
	switch def.Kind {
	case metadata.KindComposite:
		fields, err := dec.fields(def.Fields, depth)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindComposite, Fields: fields}, nil
	case metadata.KindVariant:
		index, _, err := scale.DecodeByte(dec.d)
		if err != nil {
			return Value{}, err
		}
		variant, ok := typ.VariantByIndex(index)
		if !ok {
			return Value{}, fmt.Errorf("%w: index %d of type %d", ErrVariantNotFound, index, id)
		}
		fields, err := dec.fields(variant.Fields, depth)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindVariant, Variant: variant.Name, Fields: fields}, nil
	case metadata.KindSequence:
		length, _, err := scale.DecodeCompact32(dec.d)
		if err != nil {
			return Value{}, err
		}
		if int(length) > dec.r.Len() && length > maxEmptyElements {
			return Value{}, fmt.Errorf("%w: sequence of %d elements with %d bytes left", ErrInvalidData, length, dec.r.Len())
		}
		return dec.items(def.Elem, int(length), depth)
	case metadata.KindArray:
		return dec.items(def.Elem, int(def.Len), depth)
	case metadata.KindTuple:
		fields := make([]NamedValue, 0, len(def.Tuple))
		for _, elem := range def.Tuple {
			v, err := dec.decode(elem, depth+1)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, NamedValue{Value: v})
		}
		return Value{Kind: KindComposite, Fields: fields}, nil
	case metadata.KindPrimitive:
		return dec.primitive(def.Primitive)
	case metadata.KindCompact:
		v, err := decodeCompact(dec.d)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindUint, Uint: v}, nil
	}
	return Value{}, fmt.Errorf("%w: kind %s", ErrUnsupported, def.Kind)
}

func (dec *decoder) fields(fields []metadata.Field, depth int) ([]NamedValue, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]NamedValue, 0, len(fields))
	for _, f := range fields {
		v, err := dec.decode(f.Type, depth+1)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out = append(out, NamedValue{Name: f.Name, Value: v})
	}
	return out, nil
}

func (dec *decoder) items(elem uint32, length, depth int) (Value, error) {
	items := make([]Value, 0, min(length, dec.r.Len()+1))
	for i := 0; i < length; i++ {
		v, err := dec.decode(elem, depth+1)
		if err != nil {
			return Value{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, v)
	}
	return Value{Kind: KindSequence, Items: items}, nil
}

func (dec *decoder) primitive(p metadata.Primitive) (Value, error) {
	switch p {
	case metadata.Bool:
		b, _, err := scale.DecodeByte(dec.d)
		if err != nil {
			return Value{}, err
		}
		if b > 1 {
			return Value{}, fmt.Errorf("%w: bool %d", ErrInvalidData, b)
		}
		return Bool(b == 1), nil
	case metadata.Str:
		length, _, err := scale.DecodeCompact32(dec.d)
		if err != nil {
			return Value{}, err
		}
		if int(length) > dec.r.Len() {
			return Value{}, fmt.Errorf("%w: string of %d bytes with %d bytes left", ErrInvalidData, length, dec.r.Len())
		}
		buf := make([]byte, length)
		if _, err := scale.DecodeByteArray(dec.d, buf); err != nil {
			return Value{}, err
		}
		if !utf8.Valid(buf) {
			return Value{}, fmt.Errorf("%w: string is not utf-8", ErrInvalidData)
		}
		return String(string(buf)), nil
	case metadata.Char:
		r, _, err := scale.DecodeUint32(dec.d)
		if err != nil {
			return Value{}, err
		}
		if !utf8.ValidRune(rune(r)) {
			return Value{}, fmt.Errorf("%w: char %d", ErrInvalidData, r)
		}
		return String(string(rune(r))), nil
	}
	size, ok := primitiveSizes[p]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, p)
	}
	le := make([]byte, size)
	if _, err := scale.DecodeByteArray(dec.d, le); err != nil {
		return Value{}, err
	}
	switch p {
	case metadata.U128, metadata.U256:
		return Value{Kind: KindUint, Uint: fromLittleEndian(le)}, nil
	case metadata.I8:
		return Int(int64(int8(le[0]))), nil
	case metadata.I16:
		return Int(int64(int16(binary.LittleEndian.Uint16(le)))), nil
	case metadata.I32:
		return Int(int64(int32(binary.LittleEndian.Uint32(le)))), nil
	case metadata.I64:
		return Int(int64(binary.LittleEndian.Uint64(le))), nil
	}
	var buf [8]byte
	copy(buf[:], le)
	return Value{Kind: KindUint, Uint: uint256.NewInt(binary.LittleEndian.Uint64(buf[:]))}, nil
}
