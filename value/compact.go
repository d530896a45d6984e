package value

import (
	"fmt"
	"slices"

	"github.com/holiman/uint256"
	"github.com/spacemeshos/go-scale"
)

// go-scale compacts stop at 64 bits, u128 balances need the big integer mode as well.

func decodeCompact(d *scale.Decoder) (*uint256.Int, error) {
	first, _, err := scale.DecodeByte(d)
	if err != nil {
		return nil, err
	}
	switch first & 0b11 {
	case 0b00:
		return uint256.NewInt(uint64(first >> 2)), nil
	case 0b01:
		var rest [1]byte
		if _, err := scale.DecodeByteArray(d, rest[:]); err != nil {
			return nil, err
		}
		v := (uint64(first) | uint64(rest[0])<<8) >> 2
		if v < 1<<6 {
			return nil, fmt.Errorf("%w: non canonical compact", ErrInvalidData)
		}
		return uint256.NewInt(v), nil
	case 0b10:
		var rest [3]byte
		if _, err := scale.DecodeByteArray(d, rest[:]); err != nil {
			return nil, err
		}
		v := (uint64(first) | uint64(rest[0])<<8 | uint64(rest[1])<<16 | uint64(rest[2])<<24) >> 2
		if v < 1<<14 {
			return nil, fmt.Errorf("%w: non canonical compact", ErrInvalidData)
		}
		return uint256.NewInt(v), nil
	}
	n := int(first>>2) + 4
	if n > 32 {
		return nil, fmt.Errorf("%w: compact of %d bytes", ErrOutOfRange, n)
	}
	le := make([]byte, n)
	if _, err := scale.DecodeByteArray(d, le); err != nil {
		return nil, err
	}
	if le[n-1] == 0 {
		return nil, fmt.Errorf("%w: non canonical compact", ErrInvalidData)
	}
	v := fromLittleEndian(le)
	if v.IsUint64() && v.Uint64() < 1<<30 {
		return nil, fmt.Errorf("%w: non canonical compact", ErrInvalidData)
	}
	return v, nil
}

func encodeCompact(e *scale.Encoder, v *uint256.Int) (int, error) {
	if v.IsUint64() {
		return scale.EncodeCompact64(e, v.Uint64())
	}
	le := toLittleEndian(v, (v.BitLen()+7)/8)
	total, err := scale.EncodeByte(e, byte(len(le)-4)<<2|0b11)
	if err != nil {
		return total, err
	}
	n, err := scale.EncodeByteArray(e, le)
	return total + n, err
}

func fromLittleEndian(le []byte) *uint256.Int {
	be := slices.Clone(le)
	slices.Reverse(be)
	return new(uint256.Int).SetBytes(be)
}

func toLittleEndian(v *uint256.Int, size int) []byte {
	be := v.Bytes32()
	le := slices.Clone(be[32-size:])
	slices.Reverse(le)
	return le
}
