package dispatch

import "github.com/spacemeshos/go-subxt/metadata"

//go:generate mockgen -typed -package=dispatch -destination=./mocks.go -source=./interface.go

// ErrorLookup resolves error metadata by pallet index and error index.
type ErrorLookup interface {
	Error(pallet, index uint8) (*metadata.ErrorMetadata, error)
}
