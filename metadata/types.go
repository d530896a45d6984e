package metadata

import "fmt"

// Version identifies the runtime build a registry was produced from.
// A registry must be rebuilt when any of the fields change.
type Version struct {
	SpecVersion        uint32
	TransactionVersion uint32
}

func (v Version) String() string {
	return fmt.Sprintf("spec=%d tx=%d", v.SpecVersion, v.TransactionVersion)
}

// PalletMetadata describes a single pallet of the runtime.
type PalletMetadata struct {
	Name    string
	Index   uint8
	Calls   []CallMetadata
	Errors  []ErrorMetadata
	Storage *StorageMetadata
	Docs    []string
}

// CallMetadata describes a dispatchable call of a pallet.
type CallMetadata struct {
	Name   string
	Index  uint8
	Fields []Field
	Docs   []string
}

// ErrorMetadata describes an error that a pallet can return.
type ErrorMetadata struct {
	// PalletName is filled in by New from the owning pallet.
	PalletName string
	Name       string
	Index      uint8
	Fields     []Field
	Docs       []string
}

// Pallet returns the name of the pallet the error belongs to.
func (e *ErrorMetadata) Pallet() string { return e.PalletName }

// Description returns the documentation lines of the error.
func (e *ErrorMetadata) Description() []string { return e.Docs }

// Field is a named or unnamed field of a call, error, composite type or variant.
type Field struct {
	Name     string
	Type     uint32
	TypeName string
	Docs     []string
}

// StorageMetadata lists the storage entries of a pallet.
type StorageMetadata struct {
	Prefix  string
	Entries []StorageEntry
}

// StorageEntry describes a single storage item.
type StorageEntry struct {
	Name string
	// Plain entries have no keys. KeyType and Hashers are ignored for them.
	Plain     bool
	Hashers   []Hasher
	KeyType   uint32
	ValueType uint32
	Docs      []string
}

// Hasher is the hashing algorithm applied to a storage map key.
type Hasher uint8

const (
	Blake2_128 Hasher = iota
	Blake2_256
	Blake2_128Concat
	Twox128
	Twox256
	Twox64Concat
	Identity
)

var hasherNames = [...]string{
	Blake2_128:       "blake2_128",
	Blake2_256:       "blake2_256",
	Blake2_128Concat: "blake2_128_concat",
	Twox128:          "twox128",
	Twox256:          "twox256",
	Twox64Concat:     "twox64_concat",
	Identity:         "identity",
}

func (h Hasher) String() string {
	if int(h) < len(hasherNames) {
		return hasherNames[h]
	}
	return fmt.Sprintf("hasher(%d)", h)
}

// ParseHasher parses the snake case hasher name.
func ParseHasher(name string) (Hasher, error) {
	for i, n := range hasherNames {
		if n == name {
			return Hasher(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hasher %q", name)
}

// TypeKind selects which part of TypeDef is set.
type TypeKind uint8

const (
	KindComposite TypeKind = iota
	KindVariant
	KindSequence
	KindArray
	KindTuple
	KindPrimitive
	KindCompact
)

var kindNames = [...]string{
	KindComposite: "composite",
	KindVariant:   "variant",
	KindSequence:  "sequence",
	KindArray:     "array",
	KindTuple:     "tuple",
	KindPrimitive: "primitive",
	KindCompact:   "compact",
}

func (k TypeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Primitive is a primitive type of the registry.
type Primitive uint8

const (
	Bool Primitive = iota
	Char
	Str
	U8
	U16
	U32
	U64
	U128
	U256
	I8
	I16
	I32
	I64
	I128
	I256
)

var primitiveNames = [...]string{
	Bool: "bool", Char: "char", Str: "str",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128", U256: "u256",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128", I256: "i256",
}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("primitive(%d)", p)
}

// ParsePrimitive parses the lowercase primitive name.
func ParsePrimitive(name string) (Primitive, error) {
	for i, n := range primitiveNames {
		if n == name {
			return Primitive(i), nil
		}
	}
	return 0, fmt.Errorf("unknown primitive %q", name)
}

// Variant is a single variant of an enum type.
type Variant struct {
	Name   string
	Index  uint8
	Fields []Field
	Docs   []string
}

// TypeDef is the shape of a type. Kind selects the relevant fields:
//   - KindComposite: Fields
//   - KindVariant: Variants
//   - KindSequence, KindCompact: Elem
//   - KindArray: Elem and Len
//   - KindTuple: Tuple
//   - KindPrimitive: Primitive
type TypeDef struct {
	Kind      TypeKind
	Fields    []Field
	Variants  []Variant
	Elem      uint32
	Len       uint32
	Tuple     []uint32
	Primitive Primitive
}

// Type is an entry of the type registry.
type Type struct {
	ID   uint32
	Path []string
	Def  TypeDef
	Docs []string
}

// VariantByIndex returns the variant with the given index of a variant type.
func (t *Type) VariantByIndex(index uint8) (*Variant, bool) {
	for i := range t.Def.Variants {
		if t.Def.Variants[i].Index == index {
			return &t.Def.Variants[i], true
		}
	}
	return nil, false
}

// VariantByName returns the variant with the given name of a variant type.
func (t *Type) VariantByName(name string) (*Variant, bool) {
	for i := range t.Def.Variants {
		if t.Def.Variants[i].Name == name {
			return &t.Def.Variants[i], true
		}
	}
	return nil, false
}
