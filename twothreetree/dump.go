package twothreetree

import (
	"fmt"
	"strings"
)

// String renders the tree as an indented outline, one node per line, for
// debugging. Internal nodes show their cached routing keys; leaves show their
// payload label.
func (t *Tree[T]) String() string {
	sb := &strings.Builder{}
	dumpNode[T](sb, t.root, 0)
	return sb.String()
}

func dumpNode[T any](sb *strings.Builder, nd node[T], depth int) {
	if nd == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	if lf, ok := nd.(*Leaf[T]); ok {
		fmt.Fprintf(sb, "%sleaf %s\n", indent, lf.Key())
		return
	}

	in := nd.(*internal[T])
	leftKey, midKey := "-", "-"
	if in.leftMax != nil {
		leftKey = in.leftMax.Key()
	}
	if in.midMax != nil {
		midKey = in.midMax.Key()
	}
	fmt.Fprintf(sb, "%snode [leftMax:%s midMax:%s]\n", indent, leftKey, midKey)

	dumpNode[T](sb, in.left, depth+1)
	dumpNode[T](sb, in.mid, depth+1)
	dumpNode[T](sb, in.right, depth+1)
}
