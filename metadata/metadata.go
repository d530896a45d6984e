// Package metadata is an immutable view over the self description of a runtime:
// its pallets, their calls, errors and storage, and the type registry.
package metadata

import (
	"slices"

	"github.com/spacemeshos/go-subxt/common/types"
)

type palletIndex struct {
	pallet  *PalletMetadata
	calls   map[string]*CallMetadata
	errors  map[uint8]*ErrorMetadata
	storage map[string]*StorageEntry
}

// Metadata is a runtime registry. It is never mutated after New returns,
// so all methods are safe for concurrent use. Lookups return copies.
type Metadata struct {
	version Version
	pallets []*PalletMetadata

	byIndex map[uint8]*palletIndex
	byName  map[string]*palletIndex
	types   map[uint32]*Type
}

// New validates and indexes the registry. Pallets and types are deep copied.
func New(version Version, pallets []PalletMetadata, registry []Type) (*Metadata, error) {
	md := &Metadata{
		version: version,
		byIndex: make(map[uint8]*palletIndex, len(pallets)),
		byName:  make(map[string]*palletIndex, len(pallets)),
		types:   make(map[uint32]*Type, len(registry)),
	}
	for i := range registry {
		t := cloneType(registry[i])
		if _, exists := md.types[t.ID]; exists {
			return nil, invalidf("duplicate type id %d", t.ID)
		}
		md.types[t.ID] = &t
	}
	for _, t := range md.types {
		if err := md.checkType(t); err != nil {
			return nil, err
		}
	}
	for i := range pallets {
		p := clonePallet(pallets[i])
		if p.Name == "" {
			return nil, invalidf("pallet with index %d has empty name", p.Index)
		}
		if _, exists := md.byIndex[p.Index]; exists {
			return nil, invalidf("duplicate pallet index %d", p.Index)
		}
		if _, exists := md.byName[p.Name]; exists {
			return nil, invalidf("duplicate pallet name %q", p.Name)
		}
		idx, err := md.indexPallet(&p)
		if err != nil {
			return nil, err
		}
		md.byIndex[p.Index] = idx
		md.byName[p.Name] = idx
		md.pallets = append(md.pallets, &p)
	}
	slices.SortFunc(md.pallets, func(a, b *PalletMetadata) int {
		return int(a.Index) - int(b.Index)
	})
	return md, nil
}

func (md *Metadata) indexPallet(p *PalletMetadata) (*palletIndex, error) {
	idx := &palletIndex{
		pallet: p,
		calls:  make(map[string]*CallMetadata, len(p.Calls)),
		errors: make(map[uint8]*ErrorMetadata, len(p.Errors)),
	}
	callIndices := map[uint8]struct{}{}
	for i := range p.Calls {
		c := &p.Calls[i]
		if _, exists := idx.calls[c.Name]; exists {
			return nil, invalidf("duplicate call %s.%s", p.Name, c.Name)
		}
		if _, exists := callIndices[c.Index]; exists {
			return nil, invalidf("duplicate call index %d in pallet %s", c.Index, p.Name)
		}
		if err := md.checkFields(c.Fields); err != nil {
			return nil, invalidf("call %s.%s: %s", p.Name, c.Name, err.Reason)
		}
		idx.calls[c.Name] = c
		callIndices[c.Index] = struct{}{}
	}
	errorNames := map[string]struct{}{}
	for i := range p.Errors {
		e := &p.Errors[i]
		e.PalletName = p.Name
		if _, exists := idx.errors[e.Index]; exists {
			return nil, invalidf("duplicate error index %d in pallet %s", e.Index, p.Name)
		}
		if _, exists := errorNames[e.Name]; exists {
			return nil, invalidf("duplicate error %s.%s", p.Name, e.Name)
		}
		if err := md.checkFields(e.Fields); err != nil {
			return nil, invalidf("error %s.%s: %s", p.Name, e.Name, err.Reason)
		}
		idx.errors[e.Index] = e
		errorNames[e.Name] = struct{}{}
	}
	if p.Storage != nil {
		idx.storage = make(map[string]*StorageEntry, len(p.Storage.Entries))
		for i := range p.Storage.Entries {
			s := &p.Storage.Entries[i]
			if _, exists := idx.storage[s.Name]; exists {
				return nil, invalidf("duplicate storage entry %s.%s", p.Name, s.Name)
			}
			if _, exists := md.types[s.ValueType]; !exists {
				return nil, invalidf("storage %s.%s references unknown value type %d", p.Name, s.Name, s.ValueType)
			}
			if !s.Plain {
				if _, exists := md.types[s.KeyType]; !exists {
					return nil, invalidf("storage %s.%s references unknown key type %d", p.Name, s.Name, s.KeyType)
				}
			}
			idx.storage[s.Name] = s
		}
	}
	return idx, nil
}

func (md *Metadata) checkFields(fields []Field) *InvalidMetadataError {
	for _, f := range fields {
		if _, exists := md.types[f.Type]; !exists {
			return invalidf("field %q references unknown type %d", f.Name, f.Type)
		}
	}
	return nil
}

func (md *Metadata) checkType(t *Type) error {
	ref := func(id uint32) error {
		if _, exists := md.types[id]; !exists {
			return invalidf("type %d references unknown type %d", t.ID, id)
		}
		return nil
	}
	switch t.Def.Kind {
	case KindComposite:
		if err := md.checkFields(t.Def.Fields); err != nil {
			return invalidf("type %d: %s", t.ID, err.Reason)
		}
	case KindVariant:
		seen := map[uint8]struct{}{}
		for _, v := range t.Def.Variants {
			if _, exists := seen[v.Index]; exists {
				return invalidf("type %d has duplicate variant index %d", t.ID, v.Index)
			}
			seen[v.Index] = struct{}{}
			if err := md.checkFields(v.Fields); err != nil {
				return invalidf("type %d variant %s: %s", t.ID, v.Name, err.Reason)
			}
		}
	case KindSequence, KindArray, KindCompact:
		return ref(t.Def.Elem)
	case KindTuple:
		for _, id := range t.Def.Tuple {
			if err := ref(id); err != nil {
				return err
			}
		}
	case KindPrimitive:
		if int(t.Def.Primitive) >= len(primitiveNames) {
			return invalidf("type %d has unknown primitive %d", t.ID, t.Def.Primitive)
		}
	default:
		return invalidf("type %d has unknown kind %d", t.ID, t.Def.Kind)
	}
	return nil
}

// Version returns the runtime version the registry was built for.
func (md *Metadata) Version() Version {
	return md.version
}

// Pallets returns pallets ordered by index.
func (md *Metadata) Pallets() []*PalletMetadata {
	out := make([]*PalletMetadata, len(md.pallets))
	for i, p := range md.pallets {
		c := clonePallet(*p)
		out[i] = &c
	}
	return out
}

// Pallet finds pallet by its index.
func (md *Metadata) Pallet(index uint8) (*PalletMetadata, error) {
	p, ok := md.byIndex[index]
	if !ok {
		return nil, &Error{Kind: ErrPalletIndexNotFound, PalletIndex: index}
	}
	c := clonePallet(*p.pallet)
	return &c, nil
}

// PalletByName finds pallet by its name.
func (md *Metadata) PalletByName(name string) (*PalletMetadata, error) {
	p, ok := md.byName[name]
	if !ok {
		return nil, &Error{Kind: ErrPalletNameNotFound, Pallet: name}
	}
	c := clonePallet(*p.pallet)
	return &c, nil
}

// Error resolves error metadata in two stages, first the pallet by index
// and then the error within that pallet.
func (md *Metadata) Error(pallet, index uint8) (*ErrorMetadata, error) {
	p, ok := md.byIndex[pallet]
	if !ok {
		return nil, &Error{Kind: ErrPalletIndexNotFound, PalletIndex: pallet, Index: index}
	}
	e, ok := p.errors[index]
	if !ok {
		return nil, &Error{
			Kind:        ErrErrorIndexNotFound,
			PalletIndex: pallet,
			Pallet:      p.pallet.Name,
			Index:       index,
		}
	}
	c := cloneError(*e)
	return &c, nil
}

// CallIndex returns the wire index of the call. A missing pallet is
// reported as ErrCallNotFound as well.
func (md *Metadata) CallIndex(pallet, call string) (types.CallIndex, error) {
	c, p, err := md.Call(pallet, call)
	if err != nil {
		return types.CallIndex{}, err
	}
	return types.CallIndex{Pallet: p.Index, Call: c.Index}, nil
}

// Call returns call metadata together with the owning pallet.
func (md *Metadata) Call(pallet, call string) (*CallMetadata, *PalletMetadata, error) {
	p, ok := md.byName[pallet]
	if !ok {
		return nil, nil, &Error{Kind: ErrCallNotFound, Pallet: pallet, Name: call}
	}
	c, ok := p.calls[call]
	if !ok {
		return nil, nil, &Error{Kind: ErrCallNotFound, Pallet: pallet, Name: call}
	}
	cc := cloneCall(*c)
	pc := clonePallet(*p.pallet)
	return &cc, &pc, nil
}

// Type returns the registry entry for id.
func (md *Metadata) Type(id uint32) (*Type, error) {
	t, ok := md.types[id]
	if !ok {
		return nil, &Error{Kind: ErrTypeNotFound, TypeID: id}
	}
	c := cloneType(*t)
	return &c, nil
}

// StorageEntry returns the storage entry together with the storage prefix of the pallet.
func (md *Metadata) StorageEntry(pallet, entry string) (*StorageEntry, string, error) {
	p, ok := md.byName[pallet]
	if !ok || p.storage == nil {
		return nil, "", &Error{Kind: ErrStorageNotFound, Pallet: pallet, Name: entry}
	}
	s, ok := p.storage[entry]
	if !ok {
		return nil, "", &Error{Kind: ErrStorageNotFound, Pallet: pallet, Name: entry}
	}
	c := cloneStorageEntry(*s)
	return &c, p.pallet.Storage.Prefix, nil
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Docs = slices.Clone(f.Docs)
		out[i] = f
	}
	return out
}

func cloneType(t Type) Type {
	t.Path = slices.Clone(t.Path)
	t.Docs = slices.Clone(t.Docs)
	t.Def.Fields = cloneFields(t.Def.Fields)
	t.Def.Tuple = slices.Clone(t.Def.Tuple)
	if t.Def.Variants != nil {
		variants := make([]Variant, len(t.Def.Variants))
		for i, v := range t.Def.Variants {
			v.Fields = cloneFields(v.Fields)
			v.Docs = slices.Clone(v.Docs)
			variants[i] = v
		}
		t.Def.Variants = variants
	}
	return t
}

func clonePallet(p PalletMetadata) PalletMetadata {
	p.Docs = slices.Clone(p.Docs)
	if p.Calls != nil {
		calls := make([]CallMetadata, len(p.Calls))
		for i, c := range p.Calls {
			calls[i] = cloneCall(c)
		}
		p.Calls = calls
	}
	if p.Errors != nil {
		errs := make([]ErrorMetadata, len(p.Errors))
		for i, e := range p.Errors {
			errs[i] = cloneError(e)
		}
		p.Errors = errs
	}
	if p.Storage != nil {
		s := *p.Storage
		if s.Entries != nil {
			entries := make([]StorageEntry, len(s.Entries))
			for i, e := range s.Entries {
				entries[i] = cloneStorageEntry(e)
			}
			s.Entries = entries
		}
		p.Storage = &s
	}
	return p
}

func cloneCall(c CallMetadata) CallMetadata {
	c.Fields = cloneFields(c.Fields)
	c.Docs = slices.Clone(c.Docs)
	return c
}

func cloneError(e ErrorMetadata) ErrorMetadata {
	e.Fields = cloneFields(e.Fields)
	e.Docs = slices.Clone(e.Docs)
	return e
}

func cloneStorageEntry(e StorageEntry) StorageEntry {
	e.Hashers = slices.Clone(e.Hashers)
	e.Docs = slices.Clone(e.Docs)
	return e
}
