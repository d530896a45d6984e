package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/base58"
	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/hash"
	"github.com/spacemeshos/go-subxt/log"
)

const (
	// AccountIDLength is the expected length of the account id.
	AccountIDLength = 32
	// GenericNetworkPrefix is the ss58 prefix of generic substrate networks.
	GenericNetworkPrefix uint16 = 42

	checksumLength = 2
	maxPrefix      = 16383
)

var (
	// ErrWrongAddressLength is returned when the decoded address has unexpected length.
	ErrWrongAddressLength = errors.New("wrong address length")
	// ErrUnsupportedNetwork is returned when the address prefix doesn't match the configured network.
	ErrUnsupportedNetwork = errors.New("unsupported network")
	// ErrDecodeBase58 is returned when the address is not valid base58.
	ErrDecodeBase58 = errors.New("error decoding base58")
	// ErrInvalidChecksum is returned when the address checksum doesn't match.
	ErrInvalidChecksum = errors.New("invalid address checksum")

	ss58Pre = []byte("SS58PRE")
)

var networkPrefix = GenericNetworkPrefix

// SetNetworkPrefix updates the ss58 prefix used to render and parse addresses.
func SetNetworkPrefix(prefix uint16) {
	networkPrefix = prefix
}

// NetworkPrefix returns the configured ss58 prefix.
func NetworkPrefix() uint16 {
	return networkPrefix
}

// AccountID is a 32 byte account identifier, usually an sr25519 or ed25519 public key.
type AccountID [AccountIDLength]byte

// StringToAccountID parses an ss58 address for the configured network.
func StringToAccountID(src string) (AccountID, error) {
	var id AccountID
	prefix, err := decodeSS58(src, id[:])
	if err != nil {
		return id, err
	}
	if prefix != networkPrefix {
		return id, fmt.Errorf("wrong network prefix: expected %d, got %d: %w", networkPrefix, prefix, ErrUnsupportedNetwork)
	}
	return id, nil
}

// Bytes gets the byte representation of the account id.
func (a AccountID) Bytes() []byte { return a[:] }

// Hex returns 0x-prefixed hex of the account id.
func (a AccountID) Hex() string { return util.Encode(a[:]) }

// String implements fmt.Stringer by rendering the ss58 address for the configured network.
func (a AccountID) String() string {
	return a.SS58(networkPrefix)
}

// SS58 renders the address with the given network prefix.
func (a AccountID) SS58(prefix uint16) string {
	data := append(encodePrefix(prefix), a[:]...)
	sum := hash.Blake2b512(append(util.CopyBytes(ss58Pre), data...))
	return base58.Encode(append(data, sum[:checksumLength]...))
}

// Field returns a log field. Implements the LoggableField interface.
func (a AccountID) Field() log.Field {
	return log.String("account", a.String())
}

// Format implements fmt.Formatter, forcing the byte slice to be formatted as is,
// without going through the stringer interface used for logging.
func (a AccountID) Format(s fmt.State, c rune) {
	_, _ = fmt.Fprintf(s, "%"+string(c), a[:])
}

// EncodeScale implements scale codec interface.
func (a *AccountID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, a[:])
}

// DecodeScale implements scale codec interface.
func (a *AccountID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, a[:])
}

func encodePrefix(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	first := byte((prefix&0b1111_1100)>>2) | 0b0100_0000
	second := byte(prefix>>8) | byte((prefix&0b11)<<6)
	return []byte{first, second}
}

func decodeSS58(src string, dst []byte) (uint16, error) {
	raw := base58.Decode(src)
	if len(raw) == 0 {
		return 0, ErrDecodeBase58
	}
	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case raw[0] < 64:
		prefix, prefixLen = uint16(raw[0]), 1
	case raw[0] < 128 && len(raw) > 1:
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return 0, fmt.Errorf("%w: reserved prefix %d", ErrDecodeBase58, raw[0])
	}
	if prefix > maxPrefix {
		return 0, fmt.Errorf("%w: prefix %d", ErrUnsupportedNetwork, prefix)
	}
	if len(raw) != prefixLen+len(dst)+checksumLength {
		return 0, fmt.Errorf("expected %d bytes, got %d: %w", prefixLen+len(dst)+checksumLength, len(raw), ErrWrongAddressLength)
	}
	body := raw[:len(raw)-checksumLength]
	sum := hash.Blake2b512(append(util.CopyBytes(ss58Pre), body...))
	if !bytes.Equal(sum[:checksumLength], raw[len(raw)-checksumLength:]) {
		return 0, ErrInvalidChecksum
	}
	copy(dst, body[prefixLen:])
	return prefix, nil
}
