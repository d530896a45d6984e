package metadata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

const schemaFile = "registry.schema.json"

// Schema is the JSON schema of the materialized registry accepted by Load.
//
//go:embed registry.schema.json
var Schema string

// ValidateSchema checks that data is a registry document accepted by Load.
func ValidateSchema(data []byte) error {
	sch, err := jsonschema.CompileString(schemaFile, Schema)
	if err != nil {
		return fmt.Errorf("compile registry json schema: %w", err)
	}
	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal registry data: %w", err)
	}
	if err = sch.Validate(v); err != nil {
		return fmt.Errorf("validate registry data: %w", err)
	}
	return nil
}

type jsonField struct {
	Name     string   `json:"name"`
	Type     uint32   `json:"type"`
	TypeName string   `json:"type_name"`
	Docs     []string `json:"docs"`
}

type jsonItem struct {
	Name   string      `json:"name"`
	Index  uint8       `json:"index"`
	Fields []jsonField `json:"fields"`
	Docs   []string    `json:"docs"`
}

type jsonStorageEntry struct {
	Name    string   `json:"name"`
	Hashers []string `json:"hashers"`
	Key     *uint32  `json:"key"`
	Value   uint32   `json:"value"`
	Docs    []string `json:"docs"`
}

type jsonPallet struct {
	Name    string      `json:"name"`
	Index   uint8       `json:"index"`
	Calls   []jsonItem  `json:"calls"`
	Errors  []jsonItem  `json:"errors"`
	Docs    []string    `json:"docs"`
	Storage *struct {
		Prefix  string             `json:"prefix"`
		Entries []jsonStorageEntry `json:"entries"`
	} `json:"storage"`
}

type jsonDef struct {
	Composite *struct {
		Fields []jsonField `json:"fields"`
	} `json:"composite"`
	Variant *struct {
		Variants []jsonItem `json:"variants"`
	} `json:"variant"`
	Sequence *uint32 `json:"sequence"`
	Array    *struct {
		Len  uint32 `json:"len"`
		Type uint32 `json:"type"`
	} `json:"array"`
	Tuple     []uint32 `json:"tuple"`
	Primitive *string  `json:"primitive"`
	Compact   *uint32  `json:"compact"`
}

type jsonType struct {
	ID   uint32   `json:"id"`
	Path []string `json:"path"`
	Def  jsonDef  `json:"def"`
	Docs []string `json:"docs"`
}

type jsonRegistry struct {
	Version struct {
		SpecVersion        uint32 `json:"spec_version"`
		TransactionVersion uint32 `json:"transaction_version"`
	} `json:"version"`
	Pallets []jsonPallet `json:"pallets"`
	Types   []jsonType   `json:"types"`
}

// Load reads a registry document, validates it against Schema and indexes it with New.
func Load(r io.Reader) (*Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	if err := ValidateSchema(data); err != nil {
		return nil, &InvalidMetadataError{Reason: err.Error()}
	}
	var doc jsonRegistry
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &InvalidMetadataError{Reason: fmt.Sprintf("decode registry: %v", err)}
	}
	pallets := make([]PalletMetadata, 0, len(doc.Pallets))
	for _, p := range doc.Pallets {
		pallet, err := p.convert()
		if err != nil {
			return nil, err
		}
		pallets = append(pallets, pallet)
	}
	registry := make([]Type, 0, len(doc.Types))
	for _, t := range doc.Types {
		typ, err := t.convert()
		if err != nil {
			return nil, err
		}
		registry = append(registry, typ)
	}
	return New(Version{
		SpecVersion:        doc.Version.SpecVersion,
		TransactionVersion: doc.Version.TransactionVersion,
	}, pallets, registry)
}

// LoadFile loads a registry document from the filesystem.
func LoadFile(fs afero.Fs, path string) (*Metadata, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func convertFields(fields []jsonField) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, Field(f))
	}
	return out
}

func (p *jsonPallet) convert() (PalletMetadata, error) {
	pallet := PalletMetadata{Name: p.Name, Index: p.Index, Docs: p.Docs}
	for _, c := range p.Calls {
		pallet.Calls = append(pallet.Calls, CallMetadata{
			Name:   c.Name,
			Index:  c.Index,
			Fields: convertFields(c.Fields),
			Docs:   c.Docs,
		})
	}
	for _, e := range p.Errors {
		pallet.Errors = append(pallet.Errors, ErrorMetadata{
			Name:   e.Name,
			Index:  e.Index,
			Fields: convertFields(e.Fields),
			Docs:   e.Docs,
		})
	}
	if p.Storage != nil {
		pallet.Storage = &StorageMetadata{Prefix: p.Storage.Prefix}
		for _, e := range p.Storage.Entries {
			entry := StorageEntry{
				Name:      e.Name,
				ValueType: e.Value,
				Docs:      e.Docs,
				Plain:     e.Key == nil,
			}
			if e.Key != nil {
				entry.KeyType = *e.Key
				for _, name := range e.Hashers {
					h, err := ParseHasher(name)
					if err != nil {
						return PalletMetadata{}, invalidf("storage %s.%s: %v", p.Name, e.Name, err)
					}
					entry.Hashers = append(entry.Hashers, h)
				}
			} else if len(e.Hashers) > 0 {
				return PalletMetadata{}, invalidf("plain storage %s.%s has hashers", p.Name, e.Name)
			}
			pallet.Storage.Entries = append(pallet.Storage.Entries, entry)
		}
	}
	return pallet, nil
}

func (t *jsonType) convert() (Type, error) {
	typ := Type{ID: t.ID, Path: t.Path, Docs: t.Docs}
	d := &t.Def
	switch {
	case d.Composite != nil:
		typ.Def = TypeDef{Kind: KindComposite, Fields: convertFields(d.Composite.Fields)}
	case d.Variant != nil:
		typ.Def.Kind = KindVariant
		for _, v := range d.Variant.Variants {
			typ.Def.Variants = append(typ.Def.Variants, Variant{
				Name:   v.Name,
				Index:  v.Index,
				Fields: convertFields(v.Fields),
				Docs:   v.Docs,
			})
		}
	case d.Sequence != nil:
		typ.Def = TypeDef{Kind: KindSequence, Elem: *d.Sequence}
	case d.Array != nil:
		typ.Def = TypeDef{Kind: KindArray, Elem: d.Array.Type, Len: d.Array.Len}
	case d.Tuple != nil:
		typ.Def = TypeDef{Kind: KindTuple, Tuple: d.Tuple}
	case d.Primitive != nil:
		p, err := ParsePrimitive(*d.Primitive)
		if err != nil {
			return Type{}, invalidf("type %d: %v", t.ID, err)
		}
		typ.Def = TypeDef{Kind: KindPrimitive, Primitive: p}
	case d.Compact != nil:
		typ.Def = TypeDef{Kind: KindCompact, Elem: *d.Compact}
	default:
		return Type{}, invalidf("type %d has empty definition", t.ID)
	}
	return typ, nil
}
