package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ttlv/errs"
	"github.com/arloliu/ttlv/format"
)

func TestDecode_RoundTrip(t *testing.T) {
	msg := New(tagRequest, Structure{
		New(tagRequestHeader, Structure{
			New(tagProtocolVersion, Integer(6)),
		}),
		New(tagRequestBody, TextString("message body")),
	})

	buf := make([]byte, 1024)
	written, err := msg.Encode(buf)
	require.NoError(t, err)

	decoded, consumed, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, written, consumed)
	require.True(t, msg.Equal(decoded))
}

func TestDecode_AllScalarKinds(t *testing.T) {
	nodes := []Node{
		New(tagRequest, Integer(-7)),
		New(tagRequest, LongInteger(-1)),
		New(tagRequest, Enumeration(0xFFFFFFFF)),
		New(tagRequest, Boolean(true)),
		New(tagRequest, Boolean(false)),
		New(tagRequest, TextString("")),
		New(tagRequest, TextString("utf-8 ✓ text")),
		New(tagRequest, ByteString([]byte{0x00, 0xFF})),
		New(tagRequest, DateTime(-1)),
		New(tagRequest, Interval(86400)),
	}

	buf := make([]byte, 1024)
	for _, n := range nodes {
		written, err := n.Encode(buf)
		require.NoError(t, err)

		decoded, consumed, err := Decode(buf[:written])
		require.NoError(t, err)
		require.Equal(t, written, consumed)
		require.True(t, n.Equal(decoded), "type %s", n.Type())
	}
}

func TestDecode_BigInteger(t *testing.T) {
	// BigInteger cannot be encoded, so build its wire form by hand:
	// sign-extended 2 bytes, declared length 2, padded to 8.
	buf := []byte{
		0x42, 0x00, 0x01, 0x04, 0x00, 0x00, 0x00, 0x02,
		0xFF, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	decoded, consumed, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 16, consumed)
	require.Equal(t, format.TypeBigInteger, decoded.Type())

	raw, err := decoded.BigBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0x80}, raw)
}

func TestDecode_ShortBuffer(t *testing.T) {
	_, _, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrInsufficientBufferSize)

	_, _, err = Decode([]byte{0x42, 0x00, 0x01, 0x02})
	require.ErrorIs(t, err, errs.ErrInsufficientBufferSize)
}

func TestDecode_DeclaredLengthExceedsBuffer(t *testing.T) {
	// Header declares a 100-byte payload but none follows.
	buf := []byte{0x42, 0x00, 0x01, 0x07, 0x00, 0x00, 0x00, 0x64}
	_, _, err := Decode(buf)
	require.ErrorIs(t, err, errs.ErrInsufficientBufferSize)
}

func TestDecode_MissingStartByte(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequest, Integer(1)).Encode(buf)
	require.NoError(t, err)

	buf[0] = 0x41
	_, _, err = Decode(buf[:written])
	require.ErrorIs(t, err, errs.ErrMissingStartByte)
}

func TestDecode_UnknownTypeCode(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequest, Integer(1)).Encode(buf)
	require.NoError(t, err)

	buf[3] = 0x0B
	_, _, err = Decode(buf[:written])
	require.ErrorIs(t, err, errs.ErrUnsupportedType)

	buf[3] = 0x00
	_, _, err = Decode(buf[:written])
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestDecode_CorruptUTF8(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequestBody, TextString("ok")).Encode(buf)
	require.NoError(t, err)

	// 0xFF can never appear in valid UTF-8.
	buf[8] = 0xFF
	_, _, err = Decode(buf[:written])
	require.ErrorIs(t, err, errs.ErrCorruptUTF8)
}

func TestDecode_TagNotValidated(t *testing.T) {
	// The decoder reads the tag verbatim; validation happens only when a
	// caller requests a typed tag view.
	buf := make([]byte, 1024)
	written, err := NewRaw(0xFFFF, Integer(1)).Encode(buf)
	require.NoError(t, err)

	decoded, _, err := Decode(buf[:written])
	require.NoError(t, err)
	require.Equal(t, uint16(0xFFFF), decoded.Tag())

	_, err = TagOf[testTag](decoded)
	require.ErrorIs(t, err, errs.ErrUnrecognizedTag)
}

func TestDecode_ZeroCopyViews(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequestBody, ByteString([]byte{1, 2, 3})).Encode(buf)
	require.NoError(t, err)

	decoded, _, err := Decode(buf[:written])
	require.NoError(t, err)

	view, err := decoded.Bytes()
	require.NoError(t, err)

	// The view aliases the input buffer rather than copying it.
	require.Same(t, &buf[8], &view[0])
}

func TestDecode_TextViewAliasesBuffer(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequestBody, TextString("alias")).Encode(buf)
	require.NoError(t, err)

	decoded, _, err := Decode(buf[:written])
	require.NoError(t, err)

	text, err := decoded.Text()
	require.NoError(t, err)
	require.Equal(t, "alias", text)

	// Mutating the source buffer shows through the borrowed view.
	buf[8] = 'A'
	require.Equal(t, "Alias", text)
}

func TestDecode_NestedStructures(t *testing.T) {
	msg := New(tagRequest, Structure{
		New(tagRequestHeader, Structure{
			New(tagProtocolVersion, Integer(6)),
			New(tagProtocolVersion, Integer(7)),
		}),
		New(tagRequestHeader, Structure{}),
		New(tagRequestBody, TextString("message body")),
	})

	buf := make([]byte, 1024)
	written, err := msg.Encode(buf)
	require.NoError(t, err)

	decoded, consumed, err := Decode(buf[:written])
	require.NoError(t, err)
	require.Equal(t, written, consumed)
	require.True(t, msg.Equal(decoded))

	children, err := decoded.Children()
	require.NoError(t, err)
	require.Len(t, children, 3)
}

func TestDecodeWithStats_ExhaustedIsNotTruncated(t *testing.T) {
	msg := New(tagRequest, Structure{
		New(tagProtocolVersion, Integer(6)),
		New(tagRequestBody, TextString("message body")),
	})

	buf := make([]byte, 1024)
	written, err := msg.Encode(buf)
	require.NoError(t, err)

	decoded, consumed, stats, err := DecodeWithStats(buf[:written])
	require.NoError(t, err)
	require.Equal(t, written, consumed)
	require.True(t, msg.Equal(decoded))
	require.False(t, stats.Truncated())
	require.Zero(t, stats.TruncatedStructures)
	require.NoError(t, stats.FirstTruncation)
}

func TestDecodeWithStats_TruncatedChildScan(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequest, Structure{
		New(tagProtocolVersion, Integer(6)),
		New(tagProtocolVersion, Integer(7)),
	}).Encode(buf)
	require.NoError(t, err)

	// Corrupt the second child's start marker. The child scan must stop
	// after the first child, without surfacing an error.
	buf[24] = 0x00

	decoded, consumed, stats, err := DecodeWithStats(buf[:written])
	require.NoError(t, err)
	require.Equal(t, written, consumed)

	children, err := decoded.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)

	require.True(t, stats.Truncated())
	require.Equal(t, 1, stats.TruncatedStructures)
	require.ErrorIs(t, stats.FirstTruncation, errs.ErrMissingStartByte)
}

func TestDecode_TruncationIsSilent(t *testing.T) {
	// The plain Decode surface keeps the truncate-without-error behavior.
	buf := make([]byte, 1024)
	written, err := New(tagRequest, Structure{
		New(tagProtocolVersion, Integer(6)),
		New(tagProtocolVersion, Integer(7)),
	}).Encode(buf)
	require.NoError(t, err)

	buf[24] = 0x00

	decoded, _, err := Decode(buf[:written])
	require.NoError(t, err)

	children, err := decoded.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	buf := make([]byte, 1024)
	written, err := New(tagRequest, Integer(1)).Encode(buf)
	require.NoError(t, err)

	// Decoding from a longer buffer consumes only the node's own bytes.
	_, consumed, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, written, consumed)
}
