package storage

import (
	"errors"
	"fmt"
)

// ErrStorageAddress is wrapped by every AddressError.
var ErrStorageAddress = errors.New("storage address")

// AddressErrorKind selects the variant of AddressError.
type AddressErrorKind uint8

const (
	// MapTypeMustBeTuple is reported for a map with several hashers whose key type is not a tuple.
	MapTypeMustBeTuple AddressErrorKind = iota
	// WrongNumberOfKeys is reported when the address carries a different number of keys than the entry needs.
	WrongNumberOfKeys
	// TypeNotFound is reported when the key type of the entry is missing from the registry.
	TypeNotFound
	// WrongNumberOfHashers is reported when the hashers of the entry do not match the key tuple.
	WrongNumberOfHashers
)

// AddressError is a failure to encode a storage address.
type AddressError struct {
	Kind AddressErrorKind
	// Actual is the number of keys the entry needs, according to the metadata.
	Actual int
	// Expected is the number of keys provided in the address.
	Expected int
	Hashers  int
	Fields   int
	TypeID   uint32
}

func (e *AddressError) Error() string {
	switch e.Kind {
	case MapTypeMustBeTuple:
		return fmt.Sprintf("%v: storage map type must be a tuple", ErrStorageAddress)
	case WrongNumberOfKeys:
		return fmt.Sprintf("%v: storage entry needs %d keys, address has %d", ErrStorageAddress, e.Actual, e.Expected)
	case TypeNotFound:
		return fmt.Sprintf("%v: type %d not found", ErrStorageAddress, e.TypeID)
	case WrongNumberOfHashers:
		return fmt.Sprintf("%v: storage entry has %d hashers for %d fields", ErrStorageAddress, e.Hashers, e.Fields)
	}
	return fmt.Sprintf("%v: kind %d", ErrStorageAddress, e.Kind)
}

func (e *AddressError) Unwrap() error { return ErrStorageAddress }
