package format

type (
	ValueType       uint8
	CompressionType uint8
)

const (
	TypeStructure   ValueType = 0x1 // TypeStructure represents an ordered sequence of child nodes.
	TypeInteger     ValueType = 0x2 // TypeInteger represents a 32-bit signed integer.
	TypeLongInteger ValueType = 0x3 // TypeLongInteger represents a 64-bit signed integer.
	TypeBigInteger  ValueType = 0x4 // TypeBigInteger represents a variable-length signed integer (decode-only).
	TypeEnumeration ValueType = 0x5 // TypeEnumeration represents a 32-bit unsigned enumeration value.
	TypeBoolean     ValueType = 0x6 // TypeBoolean represents a boolean stored as a 64-bit 0 or 1.
	TypeTextString  ValueType = 0x7 // TypeTextString represents UTF-8 text.
	TypeByteString  ValueType = 0x8 // TypeByteString represents raw bytes.
	TypeDateTime    ValueType = 0x9 // TypeDateTime represents a POSIX timestamp in seconds.
	TypeInterval    ValueType = 0xA // TypeInterval represents a duration in seconds as a 32-bit unsigned integer.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// StartMarker is the fixed sentinel byte at offset 0 of every encoded node.
	StartMarker byte = 0x42

	// HeaderSize is the fixed size of the node header: start marker (1),
	// tag (2), type code (1), declared length (4).
	HeaderSize = 8

	// MinEncodeSize is the conservative minimum buffer size accepted by the
	// encoder: an 8-byte header plus one 8-byte payload slot, the smallest
	// possible well-formed node.
	MinEncodeSize = 16
)

// Valid reports whether the type code maps to a known value kind.
func (t ValueType) Valid() bool {
	return t >= TypeStructure && t <= TypeInterval
}

func (t ValueType) String() string {
	switch t {
	case TypeStructure:
		return "Structure"
	case TypeInteger:
		return "Integer"
	case TypeLongInteger:
		return "LongInteger"
	case TypeBigInteger:
		return "BigInteger"
	case TypeEnumeration:
		return "Enumeration"
	case TypeBoolean:
		return "Boolean"
	case TypeTextString:
		return "TextString"
	case TypeByteString:
		return "ByteString"
	case TypeDateTime:
		return "DateTime"
	case TypeInterval:
		return "Interval"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
