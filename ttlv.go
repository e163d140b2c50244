// Package ttlv provides a binary codec for TTLV (tag-type-length-value)
// messages: structured, strongly-typed trees of tagged values exchanged
// between a client and server over a byte-oriented channel.
//
// The codec translates between an in-memory node tree and a fixed,
// self-describing big-endian wire representation with 8-byte payload
// padding, recursive structures, and lossless round-tripping. Transport,
// framing and protocol semantics live outside this module; the codec only
// moves bytes in and out of caller-owned buffers.
//
// # Basic Usage
//
// Building, encoding and decoding a message:
//
//	import (
//	    "github.com/arloliu/ttlv"
//	    "github.com/arloliu/ttlv/message"
//	)
//
//	msg := message.New(TagRequest, message.Structure{
//	    message.New(TagRequestHeader, message.Structure{
//	        message.New(TagProtocolVersion, message.Integer(6)),
//	    }),
//	    message.New(TagRequestBody, message.TextString("message body")),
//	})
//
//	encoded, err := ttlv.Encode(msg)
//	if err != nil {
//	    return err
//	}
//
//	decoded, _, err := ttlv.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//
//	version, err := decoded.Path(TagRequestHeader, TagProtocolVersion)
//	if err != nil {
//	    return err
//	}
//	v, err := version.Int32()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the message
// package, which holds the node model and the codec itself. The format
// package defines the wire constants and padding math, errs the sentinel
// errors, and compress optional transport-boundary compression. For
// zero-allocation encoding into caller-owned buffers, use the message
// package directly.
package ttlv

import (
	"github.com/arloliu/ttlv/compress"
	"github.com/arloliu/ttlv/format"
	"github.com/arloliu/ttlv/internal/hash"
	"github.com/arloliu/ttlv/message"
)

// Encode serializes the message tree into a freshly allocated,
// exactly-sized buffer and returns the encoded bytes.
//
// For encoding into an existing buffer (e.g. a framing layer's write
// buffer), use Node.Encode directly.
func Encode(n message.Node) ([]byte, error) {
	size := n.EncodedSize()
	if size < format.MinEncodeSize {
		size = format.MinEncodeSize
	}

	buf := make([]byte, size)
	written, err := n.Encode(buf)
	if err != nil {
		return nil, err
	}

	return buf[:written], nil
}

// Decode parses one encoded node from the start of buf and returns the node
// tree and the number of bytes consumed. See message.Decode for the error
// conditions and the zero-copy payload lifetime rules.
func Decode(buf []byte) (message.Node, int, error) {
	return message.Decode(buf)
}

// Fingerprint computes a 64-bit xxHash fingerprint of an encoded message.
//
// Encoding is deterministic, so structurally equal messages produce equal
// fingerprints. Transports can use it as a dedup or correlation key without
// decoding the message.
func Fingerprint(encoded []byte) uint64 {
	return hash.Fingerprint(encoded)
}

// EncodeCompressed serializes the message tree and compresses the encoding
// with the given algorithm. Both peers must agree on the algorithm out of
// band; the output does not identify it.
func EncodeCompressed(n message.Node, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(n)
	if err != nil {
		return nil, err
	}

	return codec.Compress(encoded)
}

// DecodeCompressed decompresses data with the given algorithm and decodes
// the resulting message.
//
// The returned tree's string and byte views are backed by the decompressed
// buffer, which the tree owns, so no caller-held buffer needs to outlive
// the tree. CompressionNone is the exception: it passes data through, so
// the views alias data and the usual Decode lifetime rules apply.
func DecodeCompressed(data []byte, compression format.CompressionType) (message.Node, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return message.Node{}, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return message.Node{}, err
	}

	n, _, err := message.Decode(raw)

	return n, err
}
