package nodeid

import (
	"fmt"
	"strings"
)

// Segment is one step of an address: a node's kind tag and its index among
// all siblings.
type Segment struct {
	Tag   string
	Index int
}

// Address locates one node in a resolved tree as the segment path from the
// root. The zero Address is the (empty) root scope.
type Address struct {
	Path []Segment
}

// Child returns the address extended by one step. The receiver's path is not
// shared with the result, so sibling addresses never alias.
func (a Address) Child(tag string, index int) Address {
	path := make([]Segment, len(a.Path), len(a.Path)+1)
	copy(path, a.Path)
	return Address{Path: append(path, Segment{Tag: tag, Index: index})}
}

// String serializes the address into its canonical form.
func (a Address) String() string {
	var sb strings.Builder
	for i, seg := range a.Path {
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(&sb, "%s[%d]", seg.Tag, seg.Index)
	}
	return sb.String()
}
