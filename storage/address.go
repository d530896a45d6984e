// Package storage builds keys of runtime storage entries.
package storage

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/hash"
	"github.com/spacemeshos/go-subxt/metadata"
)

// Address names a storage entry and the keys of a map entry.
type Address struct {
	Pallet string
	Entry  string
	Keys   []codec.Encodable
}

// RootKey returns twox128(prefix) ++ twox128(entry). It is the whole key of a plain
// entry and the common prefix of all the keys of a map entry.
func RootKey(md Lookup, pallet, entry string) ([]byte, error) {
	_, prefix, err := md.StorageEntry(pallet, entry)
	if err != nil {
		return nil, err
	}
	return rootKey(prefix, entry), nil
}

func rootKey(prefix, entry string) []byte {
	p := hash.Twox128([]byte(prefix))
	e := hash.Twox128([]byte(entry))
	key := make([]byte, 0, len(p)+len(e))
	key = append(key, p[:]...)
	return append(key, e[:]...)
}

// Key encodes the full storage key of the address.
func (a *Address) Key(md Lookup) ([]byte, error) {
	entry, prefix, err := md.StorageEntry(a.Pallet, a.Entry)
	if err != nil {
		return nil, err
	}
	key := rootKey(prefix, a.Entry)
	if entry.Plain {
		if len(a.Keys) != 0 {
			return nil, &AddressError{Kind: WrongNumberOfKeys, Actual: 0, Expected: len(a.Keys)}
		}
		return key, nil
	}
	if err := checkArity(md, entry, len(a.Keys)); err != nil {
		return nil, err
	}
	for i, k := range a.Keys {
		encoded, err := codec.Encode(k)
		if err != nil {
			return nil, fmt.Errorf("encode key %d of %s.%s: %w", i, a.Pallet, a.Entry, err)
		}
		key = append(key, Hash(entry.Hashers[i], encoded)...)
	}
	return key, nil
}

func checkArity(md Lookup, entry *metadata.StorageEntry, keys int) error {
	typ, err := md.Type(entry.KeyType)
	if err != nil {
		if errors.Is(err, metadata.ErrTypeNotFound) {
			return &AddressError{Kind: TypeNotFound, TypeID: entry.KeyType}
		}
		return err
	}
	hashers := len(entry.Hashers)
	fields := 1
	switch {
	case hashers > 1 && typ.Def.Kind != metadata.KindTuple:
		return &AddressError{Kind: MapTypeMustBeTuple}
	case hashers > 1:
		fields = len(typ.Def.Tuple)
	}
	if hashers != fields {
		return &AddressError{Kind: WrongNumberOfHashers, Hashers: hashers, Fields: fields}
	}
	if keys != fields {
		return &AddressError{Kind: WrongNumberOfKeys, Actual: fields, Expected: keys}
	}
	return nil
}

// Hash applies hasher to an encoded key. Concat hashers append the key to its hash.
func Hash(hasher metadata.Hasher, data []byte) []byte {
	switch hasher {
	case metadata.Blake2_128:
		h := hash.Blake2b128(data)
		return h[:]
	case metadata.Blake2_256:
		h := hash.Blake2b256(data)
		return h[:]
	case metadata.Blake2_128Concat:
		h := hash.Blake2b128(data)
		return append(h[:], data...)
	case metadata.Twox128:
		h := hash.Twox128(data)
		return h[:]
	case metadata.Twox256:
		h := hash.Twox256(data)
		return h[:]
	case metadata.Twox64Concat:
		h := hash.Twox64(data)
		return append(h[:], data...)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
