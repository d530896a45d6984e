// Package nodeapi aggregates the failures of all the other packages into a single error type.
package nodeapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/dispatch"
	"github.com/spacemeshos/go-subxt/metadata"
	"github.com/spacemeshos/go-subxt/secret"
	"github.com/spacemeshos/go-subxt/storage"
	"github.com/spacemeshos/go-subxt/value"
)

// Kind identifies which component produced the failure.
type Kind uint8

const (
	KindCodec Kind = iota
	KindSerialization
	KindSecretString
	KindInvalid
	KindInvalidMetadata
	KindMetadata
	KindRuntime
	KindDecodeValue
	KindEncodeValue
	KindTransaction
	KindBlock
	KindStorageAddress
	KindOther
)

var kindNames = [...]string{
	KindCodec:           "codec",
	KindSerialization:   "serialization",
	KindSecretString:    "secret string",
	KindInvalid:         "invalid transaction",
	KindInvalidMetadata: "invalid metadata",
	KindMetadata:        "metadata",
	KindRuntime:         "runtime",
	KindDecodeValue:     "decode value",
	KindEncodeValue:     "encode value",
	KindTransaction:     "transaction",
	KindBlock:           "block",
	KindStorageAddress:  "storage address",
	KindOther:           "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind %d", k)
}

// Error is a classified failure. Err is the original error of the component.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FromCodec classifies SCALE encoding and decoding failures.
func FromCodec(err *codec.Error) *Error {
	return &Error{Kind: KindCodec, Err: err}
}

// FromSerialization classifies errors of encoding/json.
func FromSerialization(err error) *Error {
	return &Error{Kind: KindSerialization, Err: err}
}

// FromSecretString classifies secret URI parse failures.
func FromSecretString(err *secret.StringError) *Error {
	return &Error{Kind: KindSecretString, Err: err}
}

// FromInvalid classifies transactions rejected by the pool.
func FromInvalid(err *TransactionValidityError) *Error {
	return &Error{Kind: KindInvalid, Err: err}
}

// FromInvalidMetadata classifies registries that failed validation.
func FromInvalidMetadata(err *metadata.InvalidMetadataError) *Error {
	return &Error{Kind: KindInvalidMetadata, Err: err}
}

// FromMetadata classifies failed registry lookups.
func FromMetadata(err *metadata.Error) *Error {
	return &Error{Kind: KindMetadata, Err: err}
}

// FromRuntime classifies resolved dispatch errors.
func FromRuntime(err *dispatch.RuntimeError) *Error {
	return &Error{Kind: KindRuntime, Err: err}
}

// FromDecodeValue classifies dynamic value decode failures.
func FromDecodeValue(err *value.DecodeError) *Error {
	return &Error{Kind: KindDecodeValue, Err: err}
}

// FromEncodeValue classifies dynamic value encode failures.
func FromEncodeValue(err *value.EncodeError) *Error {
	return &Error{Kind: KindEncodeValue, Err: err}
}

// FromTransaction classifies transaction lifecycle failures.
func FromTransaction(err TransactionError) *Error {
	return &Error{Kind: KindTransaction, Err: err}
}

// FromBlock classifies block lookup failures.
func FromBlock(err BlockError) *Error {
	return &Error{Kind: KindBlock, Err: err}
}

// FromStorageAddress classifies invalid storage addresses.
func FromStorageAddress(err *storage.AddressError) *Error {
	return &Error{Kind: KindStorageAddress, Err: err}
}

// Other returns an unclassified error with a message.
func Other(msg string) *Error {
	return &Error{Kind: KindOther, Err: errors.New(msg)}
}

// Wrap classifies err by the component errors found in its chain. Errors that wrap
// other component errors, such as a value decode failure caused by a missing type,
// are classified by the wrapping error. Errors that no component produced are of KindOther.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var (
		classified    *Error
		runtimeErr    *dispatch.RuntimeError
		decodeErr     *value.DecodeError
		encodeErr     *value.EncodeError
		addressErr    *storage.AddressError
		invalidMD     *metadata.InvalidMetadataError
		metadataErr   *metadata.Error
		validityErr   *TransactionValidityError
		transaction   TransactionError
		blockErr      BlockError
		secretErr     *secret.StringError
		codecErr      *codec.Error
		syntaxErr     *json.SyntaxError
		unmarshalErr  *json.UnmarshalTypeError
		marshalerErr  *json.MarshalerError
		unsupportedTy *json.UnsupportedTypeError
		unsupportedV  *json.UnsupportedValueError
	)
	switch {
	case errors.As(err, &classified):
		return classified
	case errors.As(err, &runtimeErr):
		return &Error{Kind: KindRuntime, Err: err}
	case errors.As(err, &decodeErr):
		return &Error{Kind: KindDecodeValue, Err: err}
	case errors.As(err, &encodeErr):
		return &Error{Kind: KindEncodeValue, Err: err}
	case errors.As(err, &addressErr):
		return &Error{Kind: KindStorageAddress, Err: err}
	case errors.As(err, &invalidMD):
		return &Error{Kind: KindInvalidMetadata, Err: err}
	case errors.As(err, &metadataErr):
		return &Error{Kind: KindMetadata, Err: err}
	case errors.As(err, &validityErr):
		return &Error{Kind: KindInvalid, Err: err}
	case errors.As(err, &transaction):
		return &Error{Kind: KindTransaction, Err: err}
	case errors.As(err, &blockErr):
		return &Error{Kind: KindBlock, Err: err}
	case errors.As(err, &secretErr):
		return &Error{Kind: KindSecretString, Err: err}
	case errors.As(err, &codecErr):
		return &Error{Kind: KindCodec, Err: err}
	case errors.As(err, &syntaxErr), errors.As(err, &unmarshalErr), errors.As(err, &marshalerErr),
		errors.As(err, &unsupportedTy), errors.As(err, &unsupportedV):
		return &Error{Kind: KindSerialization, Err: err}
	}
	return &Error{Kind: KindOther, Err: err}
}
