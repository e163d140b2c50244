package compress

import (
	"fmt"

	"github.com/arloliu/ttlv/format"
)

// Compressor compresses an encoded TTLV message.
//
// Memory management:
//   - The returned slice is newly allocated and owned by the caller
//     (except for the pass-through codec, which returns its input).
//   - The input slice is not modified.
//   - Internal buffers may be reused across calls for efficiency.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers an encoded TTLV message from its compressed form.
//
// The input must have been produced by the matching Compressor; the
// implementation validates the compressed framing and returns an error for
// corrupted or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless values
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
