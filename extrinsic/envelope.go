package extrinsic

import (
	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/common/types"
	"github.com/spacemeshos/go-subxt/hash"
)

// UnsignedVersion is the leading byte of an unsigned version 4 extrinsic.
const UnsignedVersion = 0x04

// Unsigned returns the length prefixed unsigned extrinsic wrapping call.
func Unsigned(call *Call) ([]byte, error) {
	body, err := call.Bytes()
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 0, 1+len(body))
	payload = append(payload, UnsignedVersion)
	payload = append(payload, body...)
	return codec.PrefixLength(payload), nil
}

// Hash returns the blake2b-256 hash of the encoded extrinsic.
func Hash(xt []byte) types.Hash32 {
	return types.Hash32(hash.Sum(xt))
}
