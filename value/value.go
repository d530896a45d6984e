// Package value encodes and decodes runtime values whose shape is only known
// from the type registry of the metadata.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/spacemeshos/go-subxt/metadata"
)

// TypeLookup resolves types of the registry.
type TypeLookup interface {
	Type(id uint32) (*metadata.Type, error)
}

// Kind selects the variant of Value.
type Kind uint8

const (
	KindComposite Kind = iota
	KindVariant
	KindSequence
	KindBool
	KindString
	KindUint
	KindInt
)

var kindNames = [...]string{
	KindComposite: "composite",
	KindVariant:   "variant",
	KindSequence:  "sequence",
	KindBool:      "bool",
	KindString:    "string",
	KindUint:      "uint",
	KindInt:       "int",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// NamedValue is a field of a composite or variant value. Name is empty for unnamed fields.
type NamedValue struct {
	Name  string
	Value Value
}

// Value is a dynamically typed runtime value.
//   - composites and tuples are KindComposite with Fields
//   - enums are KindVariant with Variant and Fields
//   - sequences and arrays are KindSequence with Items
//   - unsigned integers of any width and compacts are KindUint with Uint
type Value struct {
	Kind    Kind
	Fields  []NamedValue
	Variant string
	Items   []Value
	Bool    bool
	Str     string
	Uint    *uint256.Int
	Int     int64
}

// Composite returns a composite value with named fields.
func Composite(fields ...NamedValue) Value {
	return Value{Kind: KindComposite, Fields: fields}
}

// Unnamed returns a composite value with unnamed fields, such as a tuple.
func Unnamed(values ...Value) Value {
	fields := make([]NamedValue, len(values))
	for i, v := range values {
		fields[i] = NamedValue{Value: v}
	}
	return Value{Kind: KindComposite, Fields: fields}
}

// Variant returns an enum value.
func Variant(name string, fields ...NamedValue) Value {
	return Value{Kind: KindVariant, Variant: name, Fields: fields}
}

// Sequence returns a sequence or array value.
func Sequence(items ...Value) Value {
	return Value{Kind: KindSequence, Items: items}
}

// Bool returns a bool value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// String returns a string value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Uint returns an unsigned integer value.
func Uint(v uint64) Value {
	return Value{Kind: KindUint, Uint: uint256.NewInt(v)}
}

// BigUint returns an unsigned integer value wider than 64 bits.
func BigUint(v *uint256.Int) Value {
	return Value{Kind: KindUint, Uint: new(uint256.Int).Set(v)}
}

// Int returns a signed integer value.
func Int(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// Field returns a named field.
func Field(name string, v Value) NamedValue {
	return NamedValue{Name: name, Value: v}
}

func (v Value) String() string {
	var b strings.Builder
	v.format(&b)
	return b.String()
}

func (v Value) format(b *strings.Builder) {
	switch v.Kind {
	case KindComposite:
		formatFields(b, v.Fields)
	case KindVariant:
		b.WriteString(v.Variant)
		if len(v.Fields) > 0 {
			b.WriteByte(' ')
			formatFields(b, v.Fields)
		}
	case KindSequence:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.format(b)
		}
		b.WriteByte(']')
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindString:
		b.WriteString(strconv.Quote(v.Str))
	case KindUint:
		if v.Uint == nil {
			b.WriteString("0")
		} else {
			b.WriteString(v.Uint.Dec())
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	default:
		b.WriteString(v.Kind.String())
	}
}

func formatFields(b *strings.Builder, fields []NamedValue) {
	named := len(fields) > 0 && fields[0].Name != ""
	if named {
		b.WriteByte('{')
	} else {
		b.WriteByte('(')
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if f.Name != "" {
			b.WriteString(f.Name)
			b.WriteString(": ")
		}
		f.Value.format(b)
	}
	if named {
		b.WriteByte('}')
	} else {
		b.WriteByte(')')
	}
}
