package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ttlv/errs"
)

func TestPath_SingleSegment(t *testing.T) {
	body := New(tagRequestBody, TextString("message body"))
	root := New(tagRequest, Structure{body})

	found, err := root.Path(tagRequestBody)
	require.NoError(t, err)
	require.True(t, found.Equal(body))
}

func TestPath_NestedDescent(t *testing.T) {
	root := New(tagRequest, Structure{
		New(tagRequestHeader, Structure{
			New(tagProtocolVersion, Integer(6)),
		}),
		New(tagRequestBody, TextString("message body")),
	})

	version, err := root.Path(tagRequestHeader, tagProtocolVersion)
	require.NoError(t, err)

	v, err := version.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(6), v)
}

func TestPath_FirstMatchOnly(t *testing.T) {
	first := New(tagRequestHeader, Structure{
		New(tagProtocolVersion, Integer(1)),
	})
	second := New(tagRequestHeader, Structure{
		New(tagProtocolVersion, Integer(2)),
	})
	root := New(tagRequest, Structure{first, second})

	found, err := root.Path(tagRequestHeader)
	require.NoError(t, err)
	require.True(t, found.Equal(first))

	v, err := found.Path(tagProtocolVersion)
	require.NoError(t, err)
	version, err := v.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(1), version)
}

func TestPath_ChildNotFound(t *testing.T) {
	root := New(tagRequest, Structure{
		New(tagRequestBody, TextString("message body")),
	})

	_, err := root.Path(tagRequestHeader)
	require.ErrorIs(t, err, errs.ErrChildNotFound)

	// The missing segment can be anywhere along the path.
	_, err = root.Path(tagRequestBody, tagProtocolVersion)
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestPath_NonStructureNode(t *testing.T) {
	leaf := New(tagRequestBody, TextString("message body"))

	_, err := leaf.Path(tagProtocolVersion)
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestPath_EmptyReturnsSelf(t *testing.T) {
	leaf := New(tagRequestBody, TextString("message body"))

	found, err := leaf.Path()
	require.NoError(t, err)
	require.True(t, found.Equal(leaf))
}

func TestPath_RawTagSegments(t *testing.T) {
	root := NewRaw(0x1000, Structure{
		NewRaw(0x2000, Integer(9)),
	})

	found, err := root.Path(RawTag(0x2000))
	require.NoError(t, err)

	v, err := found.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(9), v)
}
