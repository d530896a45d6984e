package extrinsic

import (
	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/common/types"
)

// PayoutStakers are the arguments of the staking payout_stakers call.
type PayoutStakers struct {
	ValidatorStash types.AccountID
	Era            uint32
}

// EncodeScale implements scale codec interface.
func (p *PayoutStakers) EncodeScale(e *scale.Encoder) (int, error) {
	var total int
	{
		n, err := p.ValidatorStash.EncodeScale(e)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint32(e, p.Era)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (p *PayoutStakers) DecodeScale(d *scale.Decoder) (int, error) {
	var total int
	{
		n, err := p.ValidatorStash.DecodeScale(d)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeUint32(d)
		if err != nil {
			return total, err
		}
		p.Era = field
		total += n
	}
	return total, nil
}

// PayoutCall is a payout_stakers call with a call index fixed by the caller.
type PayoutCall struct {
	Index types.CallIndex
	Args  PayoutStakers
}

// EncodeScale implements scale codec interface.
func (p *PayoutCall) EncodeScale(e *scale.Encoder) (int, error) {
	var total int
	{
		n, err := p.Index.EncodeScale(e)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := p.Args.EncodeScale(e)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (p *PayoutCall) DecodeScale(d *scale.Decoder) (int, error) {
	var total int
	{
		n, err := p.Index.DecodeScale(d)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := p.Args.DecodeScale(d)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// BatchPayout is a batch where every call is a payout_stakers call.
type BatchPayout struct {
	Calls []PayoutCall
}

// EncodeScale implements scale codec interface.
func (b *BatchPayout) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeStructSlice(e, b.Calls)
}

// DecodeScale implements scale codec interface.
func (b *BatchPayout) DecodeScale(d *scale.Decoder) (int, error) {
	calls, n, err := scale.DecodeStructSlice[PayoutCall](d)
	if err != nil {
		return n, err
	}
	b.Calls = calls
	return n, nil
}
