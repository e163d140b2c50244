package compress

// NoOpCodec passes message bytes through unchanged.
//
// Use it when the transport already compresses, when messages are too small
// to benefit, or as a baseline when measuring the other codecs.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without copying. The caller must
// not modify the input while the returned slice is in use.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying. The caller
// must not modify the input while the returned slice is in use.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
