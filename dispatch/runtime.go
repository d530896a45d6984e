package dispatch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spacemeshos/go-subxt/common/util"
)

// Labels of RuntimeError.Message for dispatch errors that have no dedicated RuntimeKind.
const (
	LabelOther          = "other"
	LabelArithmetic     = "math_error"
	LabelToken          = "token error"
	LabelTransactional  = "transactional error"
	LabelExhausted      = "exhausted"
	LabelCorruption     = "corruption"
	LabelUnavailable    = "unavailable"
	LabelRootNotAllowed = "root not allowed"
	LabelUnknown        = "unknown dispatch error"
)

// RuntimeKind selects the variant of RuntimeError.
type RuntimeKind uint8

const (
	RuntimeModule RuntimeKind = iota
	RuntimeBadOrigin
	RuntimeCannotLookup
	RuntimeConsumerRemaining
	RuntimeTooManyConsumers
	RuntimeNoProviders
	RuntimeOther
)

var runtimeKindNames = [...]string{
	RuntimeModule:            "module",
	RuntimeBadOrigin:         "bad_origin",
	RuntimeCannotLookup:      "cannot_lookup",
	RuntimeConsumerRemaining: "consumer_remaining",
	RuntimeTooManyConsumers:  "too_many_consumers",
	RuntimeNoProviders:       "no_providers",
	RuntimeOther:             "other",
}

func (k RuntimeKind) String() string {
	if int(k) < len(runtimeKindNames) {
		return runtimeKindNames[k]
	}
	return fmt.Sprintf("runtime_kind_%d", k)
}

// ModuleError is a Module dispatch error resolved against the metadata.
type ModuleError struct {
	Pallet      string
	Error       string
	Description []string
	Data        ModuleErrorData
}

// PalletIndex returns the index of the pallet that returned the error.
func (m *ModuleError) PalletIndex() uint8 { return m.Data.PalletIndex }

// ErrorIndex returns the index of the error within the pallet.
func (m *ModuleError) ErrorIndex() uint8 { return m.Data.ErrorIndex() }

// RuntimeError is a resolved dispatch error. Module is set for RuntimeModule,
// Message for RuntimeOther.
type RuntimeError struct {
	Kind    RuntimeKind
	Module  *ModuleError
	Message string
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case RuntimeModule:
		msg := fmt.Sprintf("module error: %s.%s", e.Module.Pallet, e.Module.Error)
		if len(e.Module.Description) > 0 {
			msg += ": " + strings.Join(e.Module.Description, " ")
		}
		return msg
	case RuntimeBadOrigin:
		return "bad origin"
	case RuntimeCannotLookup:
		return "cannot lookup"
	case RuntimeConsumerRemaining:
		return "consumer remaining"
	case RuntimeTooManyConsumers:
		return "too many consumers"
	case RuntimeNoProviders:
		return "no providers"
	}
	return "other error: " + e.Message
}

// Resolve converts a dispatch error into a RuntimeError. Module errors are looked up
// in md by the pallet index and the first byte of the raw error payload. Lookup failures
// are returned unchanged. Every other kind resolves without a lookup and never fails.
func Resolve(md ErrorLookup, err DispatchError) (*RuntimeError, error) {
	switch err.Kind {
	case Module:
		info, lerr := md.Error(err.Module.PalletIndex, err.Module.ErrorIndex())
		if lerr != nil {
			return nil, lerr
		}
		return &RuntimeError{
			Kind: RuntimeModule,
			Module: &ModuleError{
				Pallet:      info.Pallet(),
				Error:       info.Name,
				Description: util.CopyStrings(info.Description()),
				Data:        err.Module,
			},
		}, nil
	case BadOrigin:
		return &RuntimeError{Kind: RuntimeBadOrigin}, nil
	case CannotLookup:
		return &RuntimeError{Kind: RuntimeCannotLookup}, nil
	case ConsumerRemaining:
		return &RuntimeError{Kind: RuntimeConsumerRemaining}, nil
	case TooManyConsumers:
		return &RuntimeError{Kind: RuntimeTooManyConsumers}, nil
	case NoProviders:
		return &RuntimeError{Kind: RuntimeNoProviders}, nil
	case Other:
		return &RuntimeError{Kind: RuntimeOther, Message: otherMessage(err.Message)}, nil
	}
	return &RuntimeError{Kind: RuntimeOther, Message: fallbackLabel(err.Kind)}, nil
}

func otherMessage(msg []byte) string {
	switch {
	case len(msg) == 0:
		return LabelOther
	case utf8.Valid(msg):
		return string(msg)
	}
	return util.Encode(msg)
}

func fallbackLabel(kind DispatchKind) string {
	switch kind {
	case Arithmetic:
		return LabelArithmetic
	case Token:
		return LabelToken
	case Transactional:
		return LabelTransactional
	case Exhausted:
		return LabelExhausted
	case Corruption:
		return LabelCorruption
	case Unavailable:
		return LabelUnavailable
	case RootNotAllowed:
		return LabelRootNotAllowed
	}
	return LabelUnknown
}
