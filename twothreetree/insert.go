package twothreetree

import "fmt"

// Insert adds obj to the tree and returns its leaf. If a leaf comparing equal
// to obj already exists, that leaf is returned and the tree is unchanged.
//
// A new leaf is attached under the internal node the search lands on; when a
// node would acquire a fourth child it is split into two nodes of two
// children and the split propagates toward the root. If the root itself
// splits, a new root is created above the two halves and the height grows by
// one. Cached max leaves are refreshed along the mutated path.
func (t *Tree[T]) Insert(obj T) (*Leaf[T], error) {
	res, err := t.searchRaw(obj)
	if err != nil {
		return nil, err
	}

	target, ok := res.(*internal[T])
	if !ok {
		// An equal payload is already present.
		return res.(*Leaf[T]), nil
	}

	leaf := t.newLeaf(obj)
	leaf.parent = target

	split, err := t.insertLeaf(target, leaf)
	if err != nil {
		return nil, err
	}

	if split == nil {
		t.updateMaxPath(leaf.parent)
		return leaf, nil
	}

	// A split node must be hung next to its origin, splitting ancestors as
	// long as they are full.
	base := target
	ancestor := base.parent
	for {
		if ancestor == nil {
			// The root split: grow the tree by one level.
			newRoot := &internal[T]{}
			base.parent = newRoot
			newRoot.left = base
			split.parent = newRoot
			newRoot.mid = split
			t.root = newRoot
			t.updateMaxPath(t.root)
			break
		}

		if ancestor.left == nil || ancestor.mid == nil {
			panic(fmt.Errorf("twothreetree: internal node must have at least 2 children"))
		}

		if ancestor.right == nil {
			// Room for the split node.
			if ancestor.left == node[T](base) {
				ancestor.right = ancestor.mid
				ancestor.mid = split
			} else {
				ancestor.right = split
			}
			split.parent = ancestor
			t.updateMaxPath(ancestor)
			break
		}

		// The ancestor is full; split it as well.
		switch {
		case ancestor.left == node[T](base):
			split = t.split(ancestor, ancestor.left, split, ancestor.mid, ancestor.right)
		case ancestor.mid == node[T](base):
			split = t.split(ancestor, ancestor.left, ancestor.mid, split, ancestor.right)
		default:
			split = t.split(ancestor, ancestor.left, ancestor.mid, ancestor.right, split)
		}
		base = ancestor
		ancestor = ancestor.parent
	}

	return leaf, nil
}

// insertLeaf attaches leaf under target, which is the parent-level internal
// node found by the search. It returns the new sibling node when target had
// to split, or nil when the leaf fit. Max caches of untouched ancestors are
// NOT refreshed here; Insert does that once the structure has settled.
func (t *Tree[T]) insertLeaf(target *internal[T], leaf *Leaf[T]) (*internal[T], error) {
	if target.parent == nil {
		// First leaf under a bare root.
		if target.left == nil {
			target.left = leaf
			leaf.parent = target
			return nil, nil
		}
		// Second leaf under the root.
		if target.mid == nil && target.leftMax != nil {
			c, err := leaf.compareCargo(target.leftMax.cargo)
			if err != nil {
				return nil, err
			}
			if c <= 0 {
				target.mid = target.left
				target.left = leaf
			} else {
				target.mid = leaf
			}
			leaf.parent = target
			return nil, nil
		}
	}

	// Beyond the special cases target always has two or three children, and
	// therefore both routing keys.
	if target.left == nil || target.mid == nil {
		panic(fmt.Errorf("twothreetree: internal node must have at least 2 children"))
	}
	if target.leftMax == nil || target.midMax == nil {
		panic(fmt.Errorf("twothreetree: internal node missing max leaf cache"))
	}

	cLeft, err := leaf.compareCargo(target.leftMax.cargo)
	if err != nil {
		return nil, err
	}
	if cLeft <= 0 {
		// New leftmost child.
		if target.right == nil {
			t.placeChildren(target, leaf, target.left, target.mid)
			return nil, nil
		}
		return t.split(target, leaf, target.left, target.mid, target.right), nil
	}

	cMid, err := leaf.compareCargo(target.midMax.cargo)
	if err != nil {
		return nil, err
	}
	if cMid <= 0 {
		// Between left and mid.
		if target.right == nil {
			t.placeChildren(target, target.left, leaf, target.mid)
			return nil, nil
		}
		return t.split(target, target.left, leaf, target.mid, target.right), nil
	}

	if target.right == nil {
		// Right of mid; the node has room.
		t.placeChildren(target, target.left, target.mid, leaf)
		return nil, nil
	}

	cRight, err := leaf.compareCargo(target.right.(*Leaf[T]).cargo)
	if err != nil {
		return nil, err
	}
	if cRight <= 0 {
		// Between mid and right.
		return t.split(target, target.left, target.mid, leaf, target.right), nil
	}
	// New rightmost child.
	return t.split(target, target.left, target.mid, target.right, leaf), nil
}

// placeChildren rewires target to hold exactly the three given children in
// order and refreshes its max caches.
func (t *Tree[T]) placeChildren(target *internal[T], left, mid, right node[T]) {
	target.left = left
	target.mid = mid
	target.right = right
	left.setParent(target)
	mid.setParent(target)
	right.setParent(target)
	t.updateMax(target)
}

// split divides an overfull node: target keeps prevLeft and prevMid, and a
// new sibling (returned) takes newLeft and newMid. The sibling is created as
// a child of target's parent but not yet linked there; the caller hangs it.
func (t *Tree[T]) split(target *internal[T], prevLeft, prevMid, newLeft, newMid node[T]) *internal[T] {
	sibling := &internal[T]{parent: target.parent}

	newLeft.setParent(sibling)
	newMid.setParent(sibling)
	sibling.left = newLeft
	sibling.mid = newMid
	t.updateMax(sibling)

	target.right = nil
	prevLeft.setParent(target)
	prevMid.setParent(target)
	target.left = prevLeft
	target.mid = prevMid
	t.updateMax(target)

	return sibling
}
