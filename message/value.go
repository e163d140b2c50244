package message

import (
	"time"

	"github.com/arloliu/ttlv/format"
)

// Value is the closed set of payload kinds a node can carry.
//
// Exactly ten types implement it, one per wire type code: Structure,
// Integer, LongInteger, BigInteger, Enumeration, Boolean, TextString,
// ByteString, DateTime and Interval.
type Value interface {
	valueType() format.ValueType
}

type (
	// Structure is an ordered sequence of child nodes. Order is significant
	// and tags are not required to be unique among siblings.
	Structure []Node

	// Integer is a 32-bit signed integer.
	Integer int32

	// LongInteger is a 64-bit signed integer.
	LongInteger int64

	// BigInteger is a variable-length sign-extended integer. It is produced
	// by the decoder as a raw view of the payload bytes; encoding it is not
	// supported because the sign-extension padding rule is unimplemented.
	BigInteger []byte

	// Enumeration is a 32-bit unsigned enumeration value.
	Enumeration uint32

	// Boolean is a boolean stored on the wire as a 64-bit 0 or 1.
	Boolean bool

	// TextString is UTF-8 text. Decoded values are views into the input
	// buffer.
	TextString string

	// ByteString is a raw byte sequence. Decoded values are views into the
	// input buffer.
	ByteString []byte

	// DateTime is a POSIX timestamp in seconds, as described in IEEE Std
	// 1003.1.
	DateTime int64

	// Interval is a duration in seconds as a 32-bit unsigned integer.
	Interval uint32
)

func (Structure) valueType() format.ValueType   { return format.TypeStructure }
func (Integer) valueType() format.ValueType     { return format.TypeInteger }
func (LongInteger) valueType() format.ValueType { return format.TypeLongInteger }
func (BigInteger) valueType() format.ValueType  { return format.TypeBigInteger }
func (Enumeration) valueType() format.ValueType { return format.TypeEnumeration }
func (Boolean) valueType() format.ValueType     { return format.TypeBoolean }
func (TextString) valueType() format.ValueType  { return format.TypeTextString }
func (ByteString) valueType() format.ValueType  { return format.TypeByteString }
func (DateTime) valueType() format.ValueType    { return format.TypeDateTime }
func (Interval) valueType() format.ValueType    { return format.TypeInterval }

// NewDateTime converts a time.Time to its DateTime value, truncating to
// whole seconds.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.Unix())
}

// Time returns the timestamp as a time.Time in UTC.
func (d DateTime) Time() time.Time {
	return time.Unix(int64(d), 0).UTC()
}

// Duration returns the interval as a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i) * time.Second
}
