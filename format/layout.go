package format

import (
	"encoding/binary"

	"github.com/arloliu/ttlv/errs"
)

// PaddedLen rounds a payload byte count up to the next multiple of 8.
//
// Every encoded payload region occupies PaddedLen(declared length) bytes on
// the wire; the bytes past the declared length are zero-filled.
func PaddedLen(n int) int {
	return (n + 7) / 8 * 8
}

// ParseLen reads the 4-byte big-endian declared-length field of a node
// header and returns the padded payload size.
//
// It allows a framing layer to predict how many payload bytes a
// not-yet-fully-buffered node will occupy once the first 8 header bytes have
// arrived: the total node size is HeaderSize + ParseLen(header[4:8]).
//
// Returns ErrInsufficientBufferSize if fewer than 4 bytes are available.
func ParseLen(buf []byte) (int, error) {
	if len(buf) < 4 {
		return 0, errs.ErrInsufficientBufferSize
	}

	return PaddedLen(int(binary.BigEndian.Uint32(buf))), nil
}

// WriteVar copies data into buf at the given offset and zero-fills the
// remainder of the padded payload slot.
//
// Returns ErrInsufficientBufferSize if the region past offset is smaller
// than PaddedLen(len(data)).
func WriteVar(buf, data []byte, offset int) error {
	paddedLen := PaddedLen(len(data))
	if offset > len(buf) || len(buf)-offset < paddedLen {
		return errs.ErrInsufficientBufferSize
	}

	region := buf[offset : offset+paddedLen]
	n := copy(region, data)
	for i := n; i < paddedLen; i++ {
		region[i] = 0
	}

	return nil
}
