package extrinsic

import (
	"bytes"
	"fmt"

	"github.com/spacemeshos/go-subxt/codec"
)

const (
	UtilityPallet     = "Utility"
	UtilityBatch      = "batch"
	UtilityForceBatch = "force_batch"
)

// Compose resolves the index of pallet.call in md and encodes args in order after it.
// Lookup failures are returned unchanged.
func Compose(md CallIndexLookup, pallet, call string, args ...codec.Encodable) (*Call, error) {
	idx, err := md.CallIndex(pallet, call)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for i, arg := range args {
		if _, err := codec.EncodeTo(&buf, arg); err != nil {
			return nil, fmt.Errorf("encode argument %d of %s.%s: %w", i, pallet, call, err)
		}
	}
	return &Call{Index: idx, Args: buf.Bytes()}, nil
}

// ComposeRaw resolves the index of pallet.call and attaches already encoded arguments.
func ComposeRaw(md CallIndexLookup, pallet, call string, args []byte) (*Call, error) {
	idx, err := md.CallIndex(pallet, call)
	if err != nil {
		return nil, err
	}
	return &Call{Index: idx, Args: args}, nil
}
