package value

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a value does not have the shape of its type.
	ErrTypeMismatch = errors.New("value does not match type")
	// ErrVariantNotFound is returned for enum variants that the type does not declare.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrOutOfRange is returned for integers that do not fit their primitive.
	ErrOutOfRange = errors.New("integer out of range")
	// ErrUnsupported is returned for primitives without a Value representation.
	ErrUnsupported = errors.New("unsupported type")
	// ErrTooDeep is returned for values nested deeper than maxDepth.
	ErrTooDeep = errors.New("value nested too deep")
	// ErrInvalidData is returned for bytes that are not a valid encoding.
	ErrInvalidData = errors.New("invalid encoding")
)

// DecodeError is a failure to decode a value of type TypeID.
type DecodeError struct {
	TypeID uint32
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode value of type %d: %v", e.TypeID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError is a failure to encode a value as type TypeID.
type EncodeError struct {
	TypeID uint32
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode value as type %d: %v", e.TypeID, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
