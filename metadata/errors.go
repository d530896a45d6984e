package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrPalletIndexNotFound is returned when no pallet has the requested index.
	ErrPalletIndexNotFound = errors.New("pallet index not found")
	// ErrPalletNameNotFound is returned when no pallet has the requested name.
	ErrPalletNameNotFound = errors.New("pallet name not found")
	// ErrErrorIndexNotFound is returned when the pallet exists but declares no error with the index.
	ErrErrorIndexNotFound = errors.New("error index not found")
	// ErrCallNotFound is returned when the pallet or the call within it does not exist.
	ErrCallNotFound = errors.New("call not found")
	// ErrTypeNotFound is returned when the type registry has no entry for the id.
	ErrTypeNotFound = errors.New("type not found")
	// ErrStorageNotFound is returned when the pallet declares no such storage entry.
	ErrStorageNotFound = errors.New("storage entry not found")

	// ErrInvalidMetadata is returned when a registry violates its structural invariants.
	ErrInvalidMetadata = errors.New("invalid metadata")
)

// Error is a failed registry lookup. Kind is one of the lookup sentinels
// and is returned by Unwrap, so errors.Is works against the sentinels.
type Error struct {
	Kind error
	// PalletIndex is set when the lookup was by index.
	PalletIndex uint8
	// Pallet is the name of the pallet, either requested or resolved.
	Pallet string
	// Name of the requested call or storage entry.
	Name   string
	Index  uint8
	TypeID uint32
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrPalletIndexNotFound:
		return fmt.Sprintf("%v: %d", e.Kind, e.PalletIndex)
	case ErrPalletNameNotFound:
		return fmt.Sprintf("%v: %q", e.Kind, e.Pallet)
	case ErrErrorIndexNotFound:
		return fmt.Sprintf("%v: %d in pallet %s (%d)", e.Kind, e.Index, e.Pallet, e.PalletIndex)
	case ErrCallNotFound, ErrStorageNotFound:
		return fmt.Sprintf("%v: %s.%s", e.Kind, e.Pallet, e.Name)
	case ErrTypeNotFound:
		return fmt.Sprintf("%v: %d", e.Kind, e.TypeID)
	}
	return fmt.Sprintf("metadata lookup: %v", e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

// InvalidMetadataError is returned by New and Load for registries that cannot be indexed.
type InvalidMetadataError struct {
	Reason string
}

func (e *InvalidMetadataError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidMetadata, e.Reason)
}

func (e *InvalidMetadataError) Unwrap() error { return ErrInvalidMetadata }

func invalidf(format string, args ...any) *InvalidMetadataError {
	return &InvalidMetadataError{Reason: fmt.Sprintf(format, args...)}
}
