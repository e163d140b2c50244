package message

import (
	"bytes"
	"time"

	"github.com/arloliu/ttlv/errs"
	"github.com/arloliu/ttlv/format"
)

// Node is the unit of a TTLV message: an opaque 16-bit tag paired with a
// value of one of the ten kinds.
//
// Nodes are immutable once constructed. Modifying a tree means rebuilding
// the affected subtree; there is no in-place mutation API.
type Node struct {
	value Value
	tag   uint16
}

// New constructs a node from a typed tag and a value.
func New(tag Tag, value Value) Node {
	return Node{tag: tag.Uint16(), value: value}
}

// NewRaw constructs a node from a raw 16-bit wire tag. Use it when the tag
// does not belong to a known enumeration, e.g. when re-emitting tags decoded
// from an untrusted peer.
func NewRaw(tag uint16, value Value) Node {
	return Node{tag: tag, value: value}
}

// Tag returns the raw 16-bit wire tag. Use TagOf to recover a typed tag and
// validate it against a known enumeration.
func (n Node) Tag() uint16 {
	return n.tag
}

// Value returns the node's value. Prefer the typed accessors below when the
// expected kind is known.
func (n Node) Value() Value {
	return n.value
}

// Type returns the wire type code of the node's value kind. It returns 0
// for the zero Node, which carries no value.
func (n Node) Type() format.ValueType {
	if n.value == nil {
		return 0
	}

	return n.value.valueType()
}

// Children returns the ordered child sequence of a Structure node.
//
// The returned slice is the node's own backing storage and must not be
// modified by the caller.
//
// Returns ErrTypeMismatch if the node is not a Structure.
func (n Node) Children() ([]Node, error) {
	v, ok := n.value.(Structure)
	if !ok {
		return nil, errs.ErrTypeMismatch
	}

	return v, nil
}

// Int32 extracts the payload of an Integer node.
//
// Extraction requires an exact kind match: there is no widening or
// coercion, so Int32 on a LongInteger node fails even though the numeric
// value might fit. The same rule applies to every accessor below.
func (n Node) Int32() (int32, error) {
	v, ok := n.value.(Integer)
	if !ok {
		return 0, errs.ErrTypeMismatch
	}

	return int32(v), nil
}

// Int64 extracts the payload of a LongInteger node.
func (n Node) Int64() (int64, error) {
	v, ok := n.value.(LongInteger)
	if !ok {
		return 0, errs.ErrTypeMismatch
	}

	return int64(v), nil
}

// Uint32 extracts the payload of an Enumeration node.
func (n Node) Uint32() (uint32, error) {
	v, ok := n.value.(Enumeration)
	if !ok {
		return 0, errs.ErrTypeMismatch
	}

	return uint32(v), nil
}

// IntervalSeconds extracts the payload of an Interval node, in seconds.
func (n Node) IntervalSeconds() (uint32, error) {
	v, ok := n.value.(Interval)
	if !ok {
		return 0, errs.ErrTypeMismatch
	}

	return uint32(v), nil
}

// Bool extracts the payload of a Boolean node.
func (n Node) Bool() (bool, error) {
	v, ok := n.value.(Boolean)
	if !ok {
		return false, errs.ErrTypeMismatch
	}

	return bool(v), nil
}

// Text extracts the payload of a TextString node. For decoded nodes the
// returned string is a view into the input buffer.
func (n Node) Text() (string, error) {
	v, ok := n.value.(TextString)
	if !ok {
		return "", errs.ErrTypeMismatch
	}

	return string(v), nil
}

// Bytes extracts the payload of a ByteString node. For decoded nodes the
// returned slice is a view into the input buffer and must not be modified.
func (n Node) Bytes() ([]byte, error) {
	v, ok := n.value.(ByteString)
	if !ok {
		return nil, errs.ErrTypeMismatch
	}

	return v, nil
}

// BigBytes extracts the raw sign-extended payload of a BigInteger node. For
// decoded nodes the returned slice is a view into the input buffer.
func (n Node) BigBytes() ([]byte, error) {
	v, ok := n.value.(BigInteger)
	if !ok {
		return nil, errs.ErrTypeMismatch
	}

	return v, nil
}

// Time extracts the payload of a DateTime node as a time.Time in UTC.
func (n Node) Time() (time.Time, error) {
	v, ok := n.value.(DateTime)
	if !ok {
		return time.Time{}, errs.ErrTypeMismatch
	}

	return v.Time(), nil
}

// Equal reports whether two nodes are structurally equal: same tag and same
// value, compared recursively for Structure nodes.
func (n Node) Equal(other Node) bool {
	if n.tag != other.tag {
		return false
	}

	return valueEqual(n.value, other.value)
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case Structure:
		bv, ok := b.(Structure)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].Equal(bv[i]) {
				return false
			}
		}

		return true
	case BigInteger:
		bv, ok := b.(BigInteger)

		return ok && bytes.Equal(av, bv)
	case ByteString:
		bv, ok := b.(ByteString)

		return ok && bytes.Equal(av, bv)
	default:
		return a == b
	}
}
