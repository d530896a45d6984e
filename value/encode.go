package value

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/metadata"
)

type encoder struct {
	md TypeLookup
	e  *scale.Encoder
}

// Encode encodes v as a value of type id.
func Encode(md TypeLookup, id uint32, v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := &encoder{md: md, e: scale.NewEncoder(&buf)}
	if err := enc.encode(id, v, 0); err != nil {
		return nil, &EncodeError{TypeID: id, Err: err}
	}
	return buf.Bytes(), nil
}

func mismatch(want string, v Value) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, v.Kind)
}

func (enc *encoder) encode(id uint32, v Value, depth int) error {
	if depth > maxDepth {
		return ErrTooDeep
	}
	typ, err := enc.md.Type(id)
	if err != nil {
		return err
	}
	def := &typ.Def
	switch def.Kind {
	case metadata.KindComposite:
		if v.Kind != KindComposite {
			return mismatch("composite", v)
		}
		return enc.fields(def.Fields, v.Fields, depth)
	case metadata.KindVariant:
		if v.Kind != KindVariant {
			return mismatch("variant", v)
		}
		variant, ok := typ.VariantByName(v.Variant)
		if !ok {
			return fmt.Errorf("%w: %q of type %d", ErrVariantNotFound, v.Variant, id)
		}
		if _, err := scale.EncodeByte(enc.e, variant.Index); err != nil {
			return err
		}
		return enc.fields(variant.Fields, v.Fields, depth)
	case metadata.KindSequence:
		if v.Kind != KindSequence {
			return mismatch("sequence", v)
		}
		if uint64(len(v.Items)) > math.MaxUint32 {
			return fmt.Errorf("%w: sequence of %d items", ErrOutOfRange, len(v.Items))
		}
		if _, err := scale.EncodeCompact32(enc.e, uint32(len(v.Items))); err != nil {
			return err
		}
		return enc.items(def.Elem, v.Items, depth)
	case metadata.KindArray:
		if v.Kind != KindSequence {
			return mismatch("array", v)
		}
		if len(v.Items) != int(def.Len) {
			return fmt.Errorf("%w: array of %d items, got %d", ErrTypeMismatch, def.Len, len(v.Items))
		}
		return enc.items(def.Elem, v.Items, depth)
	case metadata.KindTuple:
		if v.Kind != KindComposite {
			return mismatch("tuple", v)
		}
		if len(v.Fields) != len(def.Tuple) {
			return fmt.Errorf("%w: tuple of %d elements, got %d", ErrTypeMismatch, len(def.Tuple), len(v.Fields))
		}
		for i, elem := range def.Tuple {
			if err := enc.encode(elem, v.Fields[i].Value, depth+1); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	case metadata.KindPrimitive:
		return enc.primitive(def.Primitive, v)
	case metadata.KindCompact:
		if v.Kind != KindUint || v.Uint == nil {
			return mismatch("compact", v)
		}
		_, err := encodeCompact(enc.e, v.Uint)
		return err
	}
	return fmt.Errorf("%w: kind %s", ErrUnsupported, def.Kind)
}

func (enc *encoder) fields(fields []metadata.Field, values []NamedValue, depth int) error {
	if len(fields) != len(values) {
		return fmt.Errorf("%w: %d fields, got %d", ErrTypeMismatch, len(fields), len(values))
	}
	for i, f := range fields {
		if values[i].Name != "" && f.Name != "" && values[i].Name != f.Name {
			return fmt.Errorf("%w: field %d is %q, got %q", ErrTypeMismatch, i, f.Name, values[i].Name)
		}
		if err := enc.encode(f.Type, values[i].Value, depth+1); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}

func (enc *encoder) items(elem uint32, items []Value, depth int) error {
	for i, item := range items {
		if err := enc.encode(elem, item, depth+1); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func (enc *encoder) primitive(p metadata.Primitive, v Value) error {
	switch p {
	case metadata.Bool:
		if v.Kind != KindBool {
			return mismatch("bool", v)
		}
		var b byte
		if v.Bool {
			b = 1
		}
		_, err := scale.EncodeByte(enc.e, b)
		return err
	case metadata.Str:
		if v.Kind != KindString {
			return mismatch("string", v)
		}
		if uint64(len(v.Str)) > math.MaxUint32 {
			return fmt.Errorf("%w: string of %d bytes", ErrOutOfRange, len(v.Str))
		}
		if _, err := scale.EncodeCompact32(enc.e, uint32(len(v.Str))); err != nil {
			return err
		}
		_, err := scale.EncodeByteArray(enc.e, []byte(v.Str))
		return err
	case metadata.Char:
		if v.Kind != KindString || utf8.RuneCountInString(v.Str) != 1 {
			return mismatch("char", v)
		}
		r, _ := utf8.DecodeRuneInString(v.Str)
		_, err := scale.EncodeUint32(enc.e, uint32(r))
		return err
	}
	size, ok := primitiveSizes[p]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupported, p)
	}
	var le []byte
	switch p {
	case metadata.U8, metadata.U16, metadata.U32, metadata.U64, metadata.U128, metadata.U256:
		if v.Kind != KindUint || v.Uint == nil {
			return mismatch(p.String(), v)
		}
		if v.Uint.BitLen() > size*8 {
			return fmt.Errorf("%w: %s does not fit %s", ErrOutOfRange, v.Uint.Dec(), p)
		}
		le = toLittleEndian(v.Uint, size)
	default:
		if v.Kind != KindInt {
			return mismatch(p.String(), v)
		}
		bits := size * 8
		if bits < 64 && (v.Int < -(1<<(bits-1)) || v.Int >= 1<<(bits-1)) {
			return fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v.Int, p)
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Int))
		le = buf[:size]
	}
	_, err := scale.EncodeByteArray(enc.e, le)
	return err
}
