package storage

import "github.com/spacemeshos/go-subxt/metadata"

// Lookup resolves storage entries and key types.
type Lookup interface {
	StorageEntry(pallet, entry string) (*metadata.StorageEntry, string, error)
	Type(id uint32) (*metadata.Type, error)
}
