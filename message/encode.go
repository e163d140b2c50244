package message

import (
	"encoding/binary"

	"github.com/arloliu/ttlv/errs"
	"github.com/arloliu/ttlv/format"
)

// Encode serializes the node tree into buf at offset 0 and returns the
// number of bytes written, which is always 8 + format.PaddedLen(declared
// length) and therefore a multiple of 8.
//
// The 8-byte header is written big-endian (start marker, tag, type code,
// declared length), followed by the zero-padded payload. Structure children
// are encoded recursively in order at successive offsets, after which the
// parent's declared length is finalized to the total size consumed by the
// children.
//
// Returns ErrInsufficientBufferSize if fewer than format.MinEncodeSize
// bytes are available or the payload does not fit, and ErrUnsupportedType
// for BigInteger values (the sign-extension padding rule is unimplemented,
// BigInteger is decode-only).
func (n Node) Encode(buf []byte) (int, error) {
	if len(buf) < format.MinEncodeSize {
		return 0, errs.ErrInsufficientBufferSize
	}

	buf[0] = format.StartMarker
	binary.BigEndian.PutUint16(buf[1:3], n.tag)

	var length int
	switch v := n.value.(type) {
	case Structure:
		cursor := format.HeaderSize
		for i := range v {
			written, err := v[i].Encode(buf[cursor:])
			if err != nil {
				return 0, err
			}
			cursor += written
		}
		// Each child occupies a multiple of 8 bytes, so the sum needs no
		// further padding.
		length = cursor - format.HeaderSize
	case Integer:
		binary.BigEndian.PutUint32(buf[8:12], uint32(v))
		binary.BigEndian.PutUint32(buf[12:16], 0)
		length = 4
	case LongInteger:
		binary.BigEndian.PutUint64(buf[8:16], uint64(v))
		length = 8
	case BigInteger:
		return 0, errs.ErrUnsupportedType
	case Enumeration:
		binary.BigEndian.PutUint32(buf[8:12], uint32(v))
		binary.BigEndian.PutUint32(buf[12:16], 0)
		length = 4
	case Boolean:
		var bits uint64
		if v {
			bits = 1
		}
		binary.BigEndian.PutUint64(buf[8:16], bits)
		length = 8
	case TextString:
		if err := format.WriteVar(buf, []byte(v), format.HeaderSize); err != nil {
			return 0, err
		}
		length = len(v)
	case ByteString:
		if err := format.WriteVar(buf, v, format.HeaderSize); err != nil {
			return 0, err
		}
		length = len(v)
	case DateTime:
		binary.BigEndian.PutUint64(buf[8:16], uint64(v))
		length = 8
	case Interval:
		binary.BigEndian.PutUint32(buf[8:12], uint32(v))
		binary.BigEndian.PutUint32(buf[12:16], 0)
		length = 4
	default:
		return 0, errs.ErrUnsupportedType
	}

	buf[3] = byte(n.value.valueType())
	binary.BigEndian.PutUint32(buf[4:8], uint32(length))

	return format.HeaderSize + format.PaddedLen(length), nil
}

// EncodedSize returns the total number of bytes Encode will write for the
// node tree, without writing anything. It lets callers size buffers exactly
// and lets framing layers reserve space before serializing.
//
// The size is reported for every kind, including BigInteger, even though
// Encode rejects BigInteger values.
func (n Node) EncodedSize() int {
	switch v := n.value.(type) {
	case Structure:
		total := format.HeaderSize
		for i := range v {
			total += v[i].EncodedSize()
		}

		return total
	case TextString:
		return format.HeaderSize + format.PaddedLen(len(v))
	case ByteString:
		return format.HeaderSize + format.PaddedLen(len(v))
	case BigInteger:
		return format.HeaderSize + format.PaddedLen(len(v))
	case nil:
		return 0
	default:
		// All remaining kinds are fixed-width scalars in one padded 8-byte
		// slot.
		return format.HeaderSize + 8
	}
}
