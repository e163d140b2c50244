package message

// Tag converts a domain-specific tag identifier to its 16-bit wire
// representation.
//
// Any type representing a closed, enumerable set of tag identifiers can act
// as a Tag. Uint16 must succeed for every valid variant, so the numeric
// range of the enumeration has to fit in 16 bits. Equality between tags is
// defined by the returned numeric value.
//
// The wire-to-domain direction is deliberately separate (see TagPtr):
// unrecognized wire tags are an expected runtime condition, so recovery is
// fallible while emission is not.
type Tag interface {
	Uint16() uint16
}

// TagPtr constrains a pointer to a tag type that can recover a variant from
// its wire representation.
//
// FromUint16 sets the receiver to the variant matching the wire value and
// returns errs.ErrUnrecognizedTag (or an error wrapping it) when the value
// has no known variant. A decoder that must tolerate unknown tags should
// read Node.Tag directly instead of going through the enumeration.
type TagPtr[T any] interface {
	*T
	FromUint16(uint16) error
}

// TagOf returns the node's tag as the concrete tag type T, validating the
// raw wire value against T's enumeration.
//
//	tag, err := message.TagOf[Tag](node)
//	if errors.Is(err, errs.ErrUnrecognizedTag) {
//	    // peer sent a tag outside the known schema
//	}
func TagOf[T any, PT TagPtr[T]](n Node) (T, error) {
	var t T
	if err := PT(&t).FromUint16(n.tag); err != nil {
		var zero T

		return zero, err
	}

	return t, nil
}

// RawTag adapts a bare 16-bit wire tag to the Tag capability, for callers
// that address nodes by numeric tag without declaring an enumeration.
type RawTag uint16

// Uint16 returns the tag's wire representation.
func (t RawTag) Uint16() uint16 {
	return uint16(t)
}
