package extrinsic

import "github.com/spacemeshos/go-subxt/common/types"

//go:generate mockgen -typed -package=extrinsic -destination=./mocks.go -source=./interface.go

// CallIndexLookup resolves the wire index of a call by pallet and call name.
type CallIndexLookup interface {
	CallIndex(pallet, call string) (types.CallIndex, error)
}
