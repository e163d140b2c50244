package message

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/ttlv/errs"
	"github.com/arloliu/ttlv/format"
)

// DecodeStats reports diagnostics gathered during a decode.
//
// A Structure's child scan ends without error on the first nested decode
// failure; when that happens before the structure's declared length has
// been consumed, the visible child list has been silently truncated rather
// than the decode failing. The stats make that condition observable.
type DecodeStats struct {
	// FirstTruncation is the nested-decode error that ended the first
	// truncated child scan, or nil if no structure was truncated.
	FirstTruncation error

	// TruncatedStructures counts Structure nodes whose child scan stopped
	// before consuming the declared payload length. A structure whose scan
	// consumed exactly its declared length is exhausted, not truncated, and
	// is not counted.
	TruncatedStructures int
}

// Truncated reports whether any structure's child list was cut short by a
// malformed nested node.
func (s DecodeStats) Truncated() bool {
	return s.TruncatedStructures > 0
}

// Decode parses one encoded node from the start of buf and returns the
// constructed node tree and the number of bytes consumed, which is always
// 8 + format.PaddedLen(declared length).
//
// The tag is read verbatim and not validated against any enumeration;
// callers recover typed tags with TagOf. TextString payloads are validated
// as UTF-8. TextString, ByteString and BigInteger payloads are returned as
// views into buf (see the package documentation on payload lifetimes).
//
// Structure children are decoded recursively within the declared payload
// region; the child scan stops, without error, at the first failed nested
// decode. Use DecodeWithStats to detect scans that stopped early.
//
// Returns ErrInsufficientBufferSize if fewer than 8 bytes are available or
// the padded declared length exceeds the remaining buffer,
// ErrMissingStartByte if buf does not begin with the start marker,
// ErrUnsupportedType for an unknown type code, and ErrCorruptUTF8 for an
// invalid TextString payload.
func Decode(buf []byte) (Node, int, error) {
	var stats DecodeStats

	return decode(buf, &stats)
}

// DecodeWithStats behaves exactly like Decode and additionally reports
// decode diagnostics, letting integrators distinguish a truncated Structure
// child list from a genuinely exhausted one.
func DecodeWithStats(buf []byte) (Node, int, DecodeStats, error) {
	var stats DecodeStats
	n, consumed, err := decode(buf, &stats)

	return n, consumed, stats, err
}

func decode(buf []byte, stats *DecodeStats) (Node, int, error) {
	if len(buf) < format.HeaderSize {
		return Node{}, 0, errs.ErrInsufficientBufferSize
	}
	if buf[0] != format.StartMarker {
		return Node{}, 0, errs.ErrMissingStartByte
	}

	tag := binary.BigEndian.Uint16(buf[1:3])
	valueType := format.ValueType(buf[3])
	if !valueType.Valid() {
		return Node{}, 0, fmt.Errorf("%w: type code 0x%02x", errs.ErrUnsupportedType, buf[3])
	}

	length := int(binary.BigEndian.Uint32(buf[4:8]))
	paddedLen := format.PaddedLen(length)
	if len(buf) < format.HeaderSize+paddedLen {
		return Node{}, 0, errs.ErrInsufficientBufferSize
	}

	var value Value
	switch valueType {
	case format.TypeStructure:
		value = decodeChildren(buf[format.HeaderSize:format.HeaderSize+length], stats)
	case format.TypeInteger:
		if len(buf) < format.HeaderSize+8 {
			return Node{}, 0, errs.ErrInsufficientBufferSize
		}
		value = Integer(binary.BigEndian.Uint32(buf[8:12]))
	case format.TypeLongInteger:
		if len(buf) < format.HeaderSize+8 {
			return Node{}, 0, errs.ErrInsufficientBufferSize
		}
		value = LongInteger(binary.BigEndian.Uint64(buf[8:16]))
	case format.TypeBigInteger:
		value = BigInteger(buf[format.HeaderSize : format.HeaderSize+length])
	case format.TypeEnumeration:
		if len(buf) < format.HeaderSize+8 {
			return Node{}, 0, errs.ErrInsufficientBufferSize
		}
		value = Enumeration(binary.BigEndian.Uint32(buf[8:12]))
	case format.TypeBoolean:
		if len(buf) < format.HeaderSize+8 {
			return Node{}, 0, errs.ErrInsufficientBufferSize
		}
		value = Boolean(binary.BigEndian.Uint64(buf[8:16]) != 0)
	case format.TypeTextString:
		raw := buf[format.HeaderSize : format.HeaderSize+length]
		if !utf8.Valid(raw) {
			return Node{}, 0, errs.ErrCorruptUTF8
		}
		value = TextString(viewString(raw))
	case format.TypeByteString:
		value = ByteString(buf[format.HeaderSize : format.HeaderSize+length])
	case format.TypeDateTime:
		if len(buf) < format.HeaderSize+8 {
			return Node{}, 0, errs.ErrInsufficientBufferSize
		}
		value = DateTime(binary.BigEndian.Uint64(buf[8:16]))
	case format.TypeInterval:
		if len(buf) < format.HeaderSize+8 {
			return Node{}, 0, errs.ErrInsufficientBufferSize
		}
		value = Interval(binary.BigEndian.Uint32(buf[8:12]))
	}

	return Node{tag: tag, value: value}, format.HeaderSize + paddedLen, nil
}

// decodeChildren scans the structure payload region for consecutive child
// nodes. The scan ends at the first failed nested decode: reaching the end
// of the region is the normal exhaustion signal, while stopping inside it
// means a malformed child truncated the visible child list, which is
// recorded in stats.
func decodeChildren(region []byte, stats *DecodeStats) Structure {
	var children Structure

	cursor := 0
	for cursor < len(region) {
		child, consumed, err := decode(region[cursor:], stats)
		if err != nil {
			stats.TruncatedStructures++
			if stats.FirstTruncation == nil {
				stats.FirstTruncation = err
			}

			break
		}
		cursor += consumed
		children = append(children, child)
	}

	return children
}

// viewString reinterprets a decoded payload slice as a string without
// copying. The input buffer backs the result, so the usual decode lifetime
// rules apply: the buffer must stay live and unmodified while the string is
// in use.
func viewString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}
