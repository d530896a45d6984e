// Package dispatch decodes failures reported by the runtime after dispatching
// a call and resolves them against the runtime metadata.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/common/util"
)

// ErrUnknownDispatchKind is returned when decoding a tag that the runtime does not define.
var ErrUnknownDispatchKind = errors.New("unknown dispatch error kind")

// DispatchKind is the wire tag of DispatchError.
type DispatchKind uint8

const (
	Other DispatchKind = iota
	CannotLookup
	BadOrigin
	Module
	ConsumerRemaining
	NoProviders
	TooManyConsumers
	Token
	Arithmetic
	Transactional
	Exhausted
	Corruption
	Unavailable
	RootNotAllowed
)

var dispatchKindNames = [...]string{
	Other:             "Other",
	CannotLookup:      "CannotLookup",
	BadOrigin:         "BadOrigin",
	Module:            "Module",
	ConsumerRemaining: "ConsumerRemaining",
	NoProviders:       "NoProviders",
	TooManyConsumers:  "TooManyConsumers",
	Token:             "Token",
	Arithmetic:        "Arithmetic",
	Transactional:     "Transactional",
	Exhausted:         "Exhausted",
	Corruption:        "Corruption",
	Unavailable:       "Unavailable",
	RootNotAllowed:    "RootNotAllowed",
}

func (k DispatchKind) String() string {
	if int(k) < len(dispatchKindNames) {
		return dispatchKindNames[k]
	}
	return fmt.Sprintf("DispatchKind(%d)", k)
}

// TokenError is the sub-kind of a Token dispatch error.
type TokenError uint8

const (
	FundsUnavailable TokenError = iota
	OnlyProvider
	BelowMinimum
	CannotCreate
	UnknownAsset
	Frozen
	Unsupported
	CannotCreateHold
	NotExpendable
	Blocked
)

var tokenErrorNames = [...]string{
	"FundsUnavailable", "OnlyProvider", "BelowMinimum", "CannotCreate", "UnknownAsset",
	"Frozen", "Unsupported", "CannotCreateHold", "NotExpendable", "Blocked",
}

func (t TokenError) String() string {
	if int(t) < len(tokenErrorNames) {
		return tokenErrorNames[t]
	}
	return fmt.Sprintf("TokenError(%d)", t)
}

// ArithmeticError is the sub-kind of an Arithmetic dispatch error.
type ArithmeticError uint8

const (
	Underflow ArithmeticError = iota
	Overflow
	DivisionByZero
)

var arithmeticErrorNames = [...]string{"Underflow", "Overflow", "DivisionByZero"}

func (a ArithmeticError) String() string {
	if int(a) < len(arithmeticErrorNames) {
		return arithmeticErrorNames[a]
	}
	return fmt.Sprintf("ArithmeticError(%d)", a)
}

// TransactionalError is the sub-kind of a Transactional dispatch error.
type TransactionalError uint8

const (
	LimitReached TransactionalError = iota
	NoLayer
)

var transactionalErrorNames = [...]string{"LimitReached", "NoLayer"}

func (t TransactionalError) String() string {
	if int(t) < len(transactionalErrorNames) {
		return transactionalErrorNames[t]
	}
	return fmt.Sprintf("TransactionalError(%d)", t)
}

// ModuleErrorData is the raw payload of a Module dispatch error.
// The first byte of Error is the index of the error within the pallet,
// the remaining bytes are the encoded fields of the error, if any.
type ModuleErrorData struct {
	PalletIndex uint8
	Error       [4]byte
}

// ErrorIndex returns the index of the error within the pallet.
func (m ModuleErrorData) ErrorIndex() uint8 {
	return m.Error[0]
}

// EncodeScale implements scale codec interface.
func (m *ModuleErrorData) EncodeScale(e *scale.Encoder) (int, error) {
	var total int
	{
		n, err := scale.EncodeByte(e, m.PalletIndex)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(e, m.Error[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (m *ModuleErrorData) DecodeScale(d *scale.Decoder) (int, error) {
	var total int
	{
		field, n, err := scale.DecodeByte(d)
		if err != nil {
			return total, err
		}
		m.PalletIndex = field
		total += n
	}
	{
		n, err := scale.DecodeByteArray(d, m.Error[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DispatchError is a failure reported by the runtime after dispatching a call.
// Kind selects which of the remaining fields is meaningful.
//
// Message of an Other error is not part of the wire form, the runtime skips it.
// It is set by NewOther and by ParseDispatchError for payloads that cannot be decoded.
type DispatchError struct {
	Kind          DispatchKind
	Module        ModuleErrorData
	Token         TokenError
	Arithmetic    ArithmeticError
	Transactional TransactionalError
	Message       []byte
}

// NewModuleError returns a Module dispatch error for the error index within the pallet.
func NewModuleError(pallet, index uint8) DispatchError {
	return DispatchError{
		Kind:   Module,
		Module: ModuleErrorData{PalletIndex: pallet, Error: [4]byte{index}},
	}
}

// NewOther returns an Other dispatch error carrying msg.
func NewOther(msg []byte) DispatchError {
	return DispatchError{Kind: Other, Message: msg}
}

func (e DispatchError) String() string {
	switch e.Kind {
	case Module:
		return fmt.Sprintf("Module(%d, %s)", e.Module.PalletIndex, util.Encode(e.Module.Error[:]))
	case Token:
		return fmt.Sprintf("Token(%s)", e.Token)
	case Arithmetic:
		return fmt.Sprintf("Arithmetic(%s)", e.Arithmetic)
	case Transactional:
		return fmt.Sprintf("Transactional(%s)", e.Transactional)
	case Other:
		if len(e.Message) > 0 {
			return fmt.Sprintf("Other(%s)", util.Encode(e.Message))
		}
	}
	return e.Kind.String()
}

// EncodeScale implements scale codec interface.
func (e *DispatchError) EncodeScale(enc *scale.Encoder) (int, error) {
	var total int
	{
		// not compact, enum tags are full bytes
		n, err := scale.EncodeByte(enc, uint8(e.Kind))
		if err != nil {
			return total, err
		}
		total += n
	}
	var (
		n   int
		err error
	)
	switch e.Kind {
	case Module:
		n, err = e.Module.EncodeScale(enc)
	case Token:
		n, err = scale.EncodeByte(enc, uint8(e.Token))
	case Arithmetic:
		n, err = scale.EncodeByte(enc, uint8(e.Arithmetic))
	case Transactional:
		n, err = scale.EncodeByte(enc, uint8(e.Transactional))
	case Other, CannotLookup, BadOrigin, ConsumerRemaining, NoProviders, TooManyConsumers,
		Exhausted, Corruption, Unavailable, RootNotAllowed:
	default:
		return total, fmt.Errorf("%w: %d", ErrUnknownDispatchKind, e.Kind)
	}
	if err != nil {
		return total, err
	}
	total += n
	return total, nil
}

// DecodeScale implements scale codec interface.
func (e *DispatchError) DecodeScale(dec *scale.Decoder) (int, error) {
	var total int
	{
		typ, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		*e = DispatchError{Kind: DispatchKind(typ)}
		total += n
	}
	switch e.Kind {
	case Module:
		n, err := e.Module.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	case Token, Arithmetic, Transactional:
		sub, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		total += n
		if err := e.setSubKind(sub); err != nil {
			return total, err
		}
	case Other, CannotLookup, BadOrigin, ConsumerRemaining, NoProviders, TooManyConsumers,
		Exhausted, Corruption, Unavailable, RootNotAllowed:
	default:
		return total, fmt.Errorf("%w: %d", ErrUnknownDispatchKind, e.Kind)
	}
	return total, nil
}

func (e *DispatchError) setSubKind(sub uint8) error {
	switch e.Kind {
	case Token:
		if int(sub) >= len(tokenErrorNames) {
			return fmt.Errorf("%w: token error %d", ErrUnknownDispatchKind, sub)
		}
		e.Token = TokenError(sub)
	case Arithmetic:
		if int(sub) >= len(arithmeticErrorNames) {
			return fmt.Errorf("%w: arithmetic error %d", ErrUnknownDispatchKind, sub)
		}
		e.Arithmetic = ArithmeticError(sub)
	case Transactional:
		if int(sub) >= len(transactionalErrorNames) {
			return fmt.Errorf("%w: transactional error %d", ErrUnknownDispatchKind, sub)
		}
		e.Transactional = TransactionalError(sub)
	}
	return nil
}

// DecodeDispatchError decodes the wire form of a dispatch error. All of raw must be consumed.
func DecodeDispatchError(raw []byte) (DispatchError, error) {
	var e DispatchError
	if err := codec.DecodeExact(raw, &e); err != nil {
		return DispatchError{}, err
	}
	return e, nil
}

// ParseDispatchError decodes raw and falls back to an Other error
// carrying raw when it cannot be decoded.
func ParseDispatchError(raw []byte) DispatchError {
	e, err := DecodeDispatchError(raw)
	if err != nil {
		return NewOther(util.CopyBytes(raw))
	}
	return e
}
