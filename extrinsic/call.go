// Package extrinsic composes runtime calls and batches of calls.
package extrinsic

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/common/types"
	"github.com/spacemeshos/go-subxt/common/util"
)

// Call is a runtime call with already encoded arguments.
type Call struct {
	Index types.CallIndex
	Args  []byte
}

// EncodeScale implements scale codec interface.
// The arguments are written as is, they are not length prefixed.
func (c *Call) EncodeScale(e *scale.Encoder) (int, error) {
	var total int
	{
		n, err := c.Index.EncodeScale(e)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(e, c.Args)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Bytes returns the encoded call.
func (c *Call) Bytes() ([]byte, error) {
	return codec.Encode(c)
}

// Batch is an ordered sequence of calls. The runtime executes them in order.
type Batch struct {
	Calls []Call
}

// EncodeScale implements scale codec interface.
func (b *Batch) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeStructSlice(e, b.Calls)
}

// ErrShortCall is returned by ParseCall for payloads without a call index.
var ErrShortCall = errors.New("call is shorter than its index")

// ParseCall splits an encoded call into its index and arguments.
func ParseCall(raw []byte) (Call, error) {
	if len(raw) < 2 {
		return Call{}, fmt.Errorf("%w: %d bytes", ErrShortCall, len(raw))
	}
	return Call{
		Index: types.CallIndexFromBytes([2]byte(raw[:2])),
		Args:  util.CopyBytes(raw[2:]),
	}, nil
}
