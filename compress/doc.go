// Package compress provides compression codecs for encoded TTLV messages.
//
// The codec operates on whole encoded messages at the transport boundary:
// a message tree is first serialized by the message package, then the
// resulting bytes can be compressed before framing and decompressed before
// decoding. Compression never inspects TTLV structure; it treats the
// encoding as an opaque byte payload.
//
// TTLV encodings compress well. Headers repeat the start marker and share
// tag prefixes, numeric payloads carry reserved zero bytes, and padding
// fills slots with zeros, so even fast algorithms recover much of the
// format's fixed overhead.
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - format.CompressionNone: pass-through, for pre-compressed or tiny
//     messages
//   - format.CompressionZstd: best ratio, moderate speed
//   - format.CompressionS2: balanced ratio and speed
//   - format.CompressionLZ4: fastest decompression, moderate ratio
//
// Use GetCodec to resolve a Codec from a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(encoded)
//
// Both sides of a connection must agree on the algorithm out of band; the
// compressed payload does not identify it.
package compress
