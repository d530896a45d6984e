package types

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/log"
)

// CallIndex identifies a runtime call by the pallet index and the call index within that pallet.
// Indices are only meaningful for the runtime version that produced them.
type CallIndex struct {
	Pallet uint8
	Call   uint8
}

// CallIndexFromBytes builds CallIndex from its 2 byte wire form.
func CallIndexFromBytes(b [2]byte) CallIndex {
	return CallIndex{Pallet: b[0], Call: b[1]}
}

// Bytes returns the 2 byte wire form of the index.
func (c CallIndex) Bytes() [2]byte {
	return [2]byte{c.Pallet, c.Call}
}

// String implements fmt.Stringer.
func (c CallIndex) String() string {
	return fmt.Sprintf("%d:%d", c.Pallet, c.Call)
}

// Field returns a log field. Implements the LoggableField interface.
func (c CallIndex) Field() log.Field { return log.String("call_index", c.String()) }

// EncodeScale implements scale codec interface.
func (c *CallIndex) EncodeScale(e *scale.Encoder) (int, error) {
	b := c.Bytes()
	return scale.EncodeByteArray(e, b[:])
}

// DecodeScale implements scale codec interface.
func (c *CallIndex) DecodeScale(d *scale.Decoder) (int, error) {
	var b [2]byte
	n, err := scale.DecodeByteArray(d, b[:])
	if err != nil {
		return n, err
	}
	*c = CallIndexFromBytes(b)
	return n, nil
}
