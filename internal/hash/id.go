package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of an encoded message.
//
// Equal encodings hash equally, so the fingerprint works as a dedup or
// correlation key for whole messages at the transport boundary.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
