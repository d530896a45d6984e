// Package codec wraps go-scale with the helpers used to produce and consume
// runtime payloads.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spacemeshos/go-scale"
)

var (
	// ErrNotScale is returned for values that do not implement the scale codec interfaces.
	ErrNotScale = errors.New("value does not implement scale codec")
	// ErrTrailingBytes is returned by DecodeExact when the buffer is not consumed fully.
	ErrTrailingBytes = errors.New("trailing bytes after decoded value")
)

// Error describes a failed encode or decode operation.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Encodable is an interface that must be implemented by a struct to be encoded.
type Encodable = scale.Encodable

// Decodable is an interface that must be implemented by a struct to be decoded.
type Decodable = scale.Decodable

// EncodeTo encodes value to a writer stream.
func EncodeTo(w io.Writer, value any) (int, error) {
	encodable, ok := value.(scale.Encodable)
	if !ok {
		return 0, &Error{Op: "encode", Err: fmt.Errorf("%w: %T", ErrNotScale, value)}
	}
	n, err := encodable.EncodeScale(scale.NewEncoder(w))
	if err != nil {
		return n, &Error{Op: "encode", Err: err}
	}
	return n, nil
}

// DecodeFrom decodes a value using data from a reader stream.
func DecodeFrom(r io.Reader, value any) (int, error) {
	decodable, ok := value.(scale.Decodable)
	if !ok {
		return 0, &Error{Op: "decode", Err: fmt.Errorf("%w: %T", ErrNotScale, value)}
	}
	n, err := decodable.DecodeScale(scale.NewDecoder(r))
	if err != nil {
		return n, &Error{Op: "decode", Err: err}
	}
	return n, nil
}

var encoderPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(64)
		return b
	},
}

func getEncoderBuffer() *bytes.Buffer {
	return encoderPool.Get().(*bytes.Buffer)
}

func putEncoderBuffer(b *bytes.Buffer) {
	b.Reset()
	encoderPool.Put(b)
}

// Encode value to a byte buffer.
func Encode(value any) ([]byte, error) {
	b := getEncoderBuffer()
	defer putEncoderBuffer(b)
	_, err := EncodeTo(b, value)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(b.Bytes()))
	copy(buf, b.Bytes())
	return buf, nil
}

// MustEncode calls Encode and panics if Encode returns an error.
// Only for values whose encoding cannot fail, such as fixed size test fixtures.
func MustEncode(value any) []byte {
	buf, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return buf
}

// Decode value from a byte buffer.
func Decode(buf []byte, value any) error {
	if _, err := DecodeFrom(bytes.NewBuffer(buf), value); err != nil {
		return err
	}
	return nil
}

// DecodeExact decodes value and fails if buf holds more bytes than the value consumed.
func DecodeExact(buf []byte, value any) error {
	r := bytes.NewReader(buf)
	if _, err := DecodeFrom(r, value); err != nil {
		return err
	}
	if r.Len() != 0 {
		return &Error{Op: "decode", Err: fmt.Errorf("%w: %d", ErrTrailingBytes, r.Len())}
	}
	return nil
}

// EncodeSlice encodes a length prefixed sequence of values.
func EncodeSlice[V any, H scale.EncodablePtr[V]](value []V) ([]byte, error) {
	var b bytes.Buffer
	_, err := scale.EncodeStructSlice[V, H](scale.NewEncoder(&b), value)
	if err != nil {
		return nil, &Error{Op: "encode struct slice", Err: err}
	}
	return b.Bytes(), nil
}

// DecodeSlice decodes a length prefixed sequence of values.
func DecodeSlice[V any, H scale.DecodablePtr[V]](buf []byte) ([]V, error) {
	v, _, err := scale.DecodeStructSlice[V, H](scale.NewDecoder(bytes.NewReader(buf)))
	if err != nil {
		return nil, &Error{Op: "decode struct slice", Err: err}
	}
	return v, nil
}

// EncodeCompact returns the compact encoding of v.
func EncodeCompact(v uint64) []byte {
	var b bytes.Buffer
	// writes to bytes.Buffer do not fail
	_, _ = scale.EncodeCompact64(scale.NewEncoder(&b), v)
	return b.Bytes()
}

// PrefixLength prepends the compact encoded length of payload.
func PrefixLength(payload []byte) []byte {
	prefix := EncodeCompact(uint64(len(payload)))
	out := make([]byte, 0, len(prefix)+len(payload))
	out = append(out, prefix...)
	return append(out, payload...)
}
