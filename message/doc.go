// Package message implements the TTLV (tag-type-length-value) node model and
// the binary codec that translates node trees to and from their wire form.
//
// A message is a tree of nodes. Each node carries an opaque 16-bit tag and a
// value of one of ten kinds; the Structure kind holds an ordered sequence of
// child nodes, which is how trees nest. The codec never interprets tag
// meaning, it only moves tags between their domain enumeration (via the Tag
// capability) and the wire.
//
// # Wire Format
//
// Every node is encoded big-endian as an 8-byte header followed by a padded
// payload:
//
//	offset 0:    1 byte   start marker (0x42)
//	offset 1-2:  2 bytes  tag
//	offset 3:    1 byte   type code (0x01..0x0A)
//	offset 4-7:  4 bytes  declared payload length (unpadded)
//	offset 8-:   payload, zero-padded to a multiple of 8 bytes
//
// The total size of a node is always 8 + format.PaddedLen(declared length).
// A Structure's declared length is the sum of its children's total encoded
// sizes, which is inherently a multiple of 8.
//
// # Building and Encoding
//
//	msg := message.New(TagRequest, message.Structure{
//	    message.New(TagRequestHeader, message.Structure{
//	        message.New(TagProtocolVersion, message.Integer(6)),
//	    }),
//	    message.New(TagRequestBody, message.TextString("message body")),
//	})
//
//	buf := make([]byte, msg.EncodedSize())
//	n, err := msg.Encode(buf)
//
// # Decoding and Navigation
//
//	decoded, consumed, err := message.Decode(buf[:n])
//	if err != nil {
//	    return err
//	}
//	version, err := decoded.Path(TagRequestHeader, TagProtocolVersion)
//	v, err := version.Int32()
//
// # Zero-Copy Payloads
//
// Decoded TextString, ByteString and BigInteger values are views into the
// input buffer; no payload bytes are copied. The decoded tree must not
// outlive the buffer, and the buffer must not be modified while the tree is
// in use. Callers that need detached payloads must copy them out.
//
// # Thread Safety
//
// Nodes are immutable once constructed and every codec operation is a pure
// transformation over caller-supplied buffers, so all functions in this
// package are safe for concurrent use on disjoint buffers.
package message
