package message

import "github.com/arloliu/ttlv/errs"

// Path walks down the Structure tree along the given tag sequence and
// returns the node it reaches.
//
// At each level the current node's children are scanned in order and the
// first child whose tag equals the current segment is selected. Siblings
// may share a tag; Path is deliberately first-match only, so callers that
// need every match must iterate Children directly.
//
// An empty tag sequence returns the node itself.
//
// Returns ErrTypeMismatch if a traversed node is not a Structure, or
// ErrChildNotFound if a segment matches no child.
func (n *Node) Path(tags ...Tag) (*Node, error) {
	if len(tags) == 0 {
		return n, nil
	}

	children, err := n.Children()
	if err != nil {
		return nil, err
	}

	want := tags[0].Uint16()
	for i := range children {
		if children[i].tag == want {
			return children[i].Path(tags[1:]...)
		}
	}

	return nil, errs.ErrChildNotFound
}
