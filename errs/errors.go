// Package errs defines the sentinel error values shared across the ttlv
// packages.
//
// Every failure surfaced by the codec wraps or equals one of these values,
// so callers can branch on error categories with errors.Is:
//
//	_, _, err := message.Decode(buf)
//	if errors.Is(err, errs.ErrInsufficientBufferSize) {
//	    // wait for more bytes from the transport
//	}
package errs

import "errors"

var (
	// ErrUnsupportedType is returned when a decoded type code does not map
	// to a known value kind, or when encoding a BigInteger value (encoding
	// the sign-extension padding is unimplemented; BigInteger is decode-only).
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrTypeMismatch is returned when a typed extraction does not exactly
	// match the value's kind, or when path traversal reaches a non-Structure
	// node while expecting children.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrChildNotFound is returned by path lookup when no child of the
	// current Structure carries the requested tag.
	ErrChildNotFound = errors.New("child not found")

	// ErrMissingStartByte is returned when the first byte of an encoded node
	// is not the fixed start marker.
	ErrMissingStartByte = errors.New("missing start byte")

	// ErrInsufficientBufferSize is returned when a buffer is too small to
	// hold or yield a complete node.
	ErrInsufficientBufferSize = errors.New("insufficient buffer size")

	// ErrCorruptUTF8 is returned when a TextString payload is not valid UTF-8.
	ErrCorruptUTF8 = errors.New("corrupt utf-8 payload")

	// ErrUnrecognizedTag is returned by Tag implementations when a 16-bit
	// wire value does not correspond to any known variant. Decoders that
	// must tolerate unknown tags should read the raw tag instead of going
	// through a Tag type.
	ErrUnrecognizedTag = errors.New("unrecognized tag")
)
