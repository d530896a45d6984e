package nodeapi

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/codec"
)

// ErrUnknownValidity is returned when decoding a validity error the runtime does not define.
var ErrUnknownValidity = errors.New("unknown transaction validity error")

// InvalidTransaction is the reason a transaction is invalid.
type InvalidTransaction uint8

const (
	InvalidCall InvalidTransaction = iota
	InvalidPayment
	InvalidFuture
	InvalidStale
	InvalidBadProof
	InvalidAncientBirthBlock
	InvalidExhaustsResources
	InvalidCustom
	InvalidBadMandatory
	InvalidMandatoryValidation
	InvalidBadSigner
)

var invalidMessages = [...]string{
	InvalidCall:                "transaction call is not expected",
	InvalidPayment:             "inability to pay some fees",
	InvalidFuture:              "transaction will be valid in the future",
	InvalidStale:               "transaction is outdated",
	InvalidBadProof:            "transaction has a bad signature",
	InvalidAncientBirthBlock:   "transaction has an ancient birth block",
	InvalidExhaustsResources:   "transaction would exhaust the resources of current block",
	InvalidCustom:              "custom invalid transaction",
	InvalidBadMandatory:        "a call was labelled as mandatory, but resulted in an error",
	InvalidMandatoryValidation: "transaction dispatch is mandatory; transactions must not be validated",
	InvalidBadSigner:           "invalid signing address",
}

// UnknownTransaction is the reason validity of a transaction could not be determined.
type UnknownTransaction uint8

const (
	UnknownCannotLookup UnknownTransaction = iota
	UnknownNoUnsignedValidator
	UnknownCustom
)

var unknownMessages = [...]string{
	UnknownCannotLookup:        "could not lookup some information that is required to validate the transaction",
	UnknownNoUnsignedValidator: "could not find an unsigned validator for the unsigned transaction",
	UnknownCustom:              "custom unknown transaction",
}

// TransactionValidityError is returned by the runtime for transactions it refuses to include.
// Exactly one of Invalid and Unknown is meaningful, selected by IsUnknown.
// Custom carries the code of InvalidCustom and UnknownCustom.
type TransactionValidityError struct {
	IsUnknown bool
	Invalid   InvalidTransaction
	Unknown   UnknownTransaction
	Custom    uint8
}

// Exhausted is true if the transaction may become valid in a later block.
func (e *TransactionValidityError) Exhausted() bool {
	return !e.IsUnknown && e.Invalid == InvalidExhaustsResources
}

func (e *TransactionValidityError) Error() string {
	if e.IsUnknown {
		msg := fmt.Sprintf("unknown transaction validity: %d", e.Unknown)
		if int(e.Unknown) < len(unknownMessages) {
			msg = "unknown transaction validity: " + unknownMessages[e.Unknown]
		}
		if e.Unknown == UnknownCustom {
			msg += fmt.Sprintf(" %d", e.Custom)
		}
		return msg
	}
	msg := fmt.Sprintf("invalid transaction: %d", e.Invalid)
	if int(e.Invalid) < len(invalidMessages) {
		msg = "invalid transaction: " + invalidMessages[e.Invalid]
	}
	if e.Invalid == InvalidCustom {
		msg += fmt.Sprintf(" %d", e.Custom)
	}
	return msg
}

// EncodeScale implements scale codec interface.
func (e *TransactionValidityError) EncodeScale(enc *scale.Encoder) (int, error) {
	tag, sub, custom := byte(0), byte(e.Invalid), e.Invalid == InvalidCustom
	if e.IsUnknown {
		tag, sub, custom = 1, byte(e.Unknown), e.Unknown == UnknownCustom
	}
	var total int
	for _, b := range []byte{tag, sub} {
		n, err := scale.EncodeByte(enc, b)
		if err != nil {
			return total, err
		}
		total += n
	}
	if custom {
		n, err := scale.EncodeByte(enc, e.Custom)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (e *TransactionValidityError) DecodeScale(dec *scale.Decoder) (int, error) {
	var total int
	tag, n, err := scale.DecodeByte(dec)
	if err != nil {
		return total, err
	}
	total += n
	sub, n, err := scale.DecodeByte(dec)
	if err != nil {
		return total, err
	}
	total += n
	*e = TransactionValidityError{}
	var custom bool
	switch tag {
	case 0:
		if int(sub) >= len(invalidMessages) {
			return total, fmt.Errorf("%w: invalid transaction %d", ErrUnknownValidity, sub)
		}
		e.Invalid = InvalidTransaction(sub)
		custom = e.Invalid == InvalidCustom
	case 1:
		if int(sub) >= len(unknownMessages) {
			return total, fmt.Errorf("%w: unknown transaction %d", ErrUnknownValidity, sub)
		}
		e.IsUnknown = true
		e.Unknown = UnknownTransaction(sub)
		custom = e.Unknown == UnknownCustom
	default:
		return total, fmt.Errorf("%w: tag %d", ErrUnknownValidity, tag)
	}
	if custom {
		code, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		total += n
		e.Custom = code
	}
	return total, nil
}

// DecodeTransactionValidityError decodes the wire form of a validity error.
func DecodeTransactionValidityError(raw []byte) (*TransactionValidityError, error) {
	var e TransactionValidityError
	if err := codec.DecodeExact(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
