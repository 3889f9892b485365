package twothreetree

import "fmt"

// Delete removes the leaf whose payload compares equal to obj. If no such
// leaf exists the tree is unchanged.
//
// When a parent is left with a single child it either borrows a child from a
// sibling with three children or merges into a sibling with two, collapsing
// itself; merges propagate upward. If the root ends up with a single internal
// child, that child becomes the new root and the height shrinks by one.
func (t *Tree[T]) Delete(obj T) error {
	res, err := t.searchRaw(obj)
	if err != nil {
		return err
	}
	lf, ok := res.(*Leaf[T])
	if !ok {
		// Nothing to delete.
		return nil
	}
	t.DeleteLeaf(lf)
	return nil
}

// DeleteLeaf removes exactly the given leaf, which must belong to the tree.
// Unlike Delete it involves no comparison, so it stays unambiguous when
// several leaves compare equal under the current comparator state.
func (t *Tree[T]) DeleteLeaf(lf *Leaf[T]) {
	base := lf.parent
	if base == nil {
		panic(fmt.Errorf("twothreetree: leaf without parent"))
	}
	detachLeaf(lf, base)

	for {
		if base.childCount() >= 2 {
			t.updateMaxPath(base)
			return
		}

		// base has a single child (or none, for a draining root).
		if base.parent == nil {
			if child, ok := base.left.(*internal[T]); ok {
				// Promote the lone internal child; the tree shrinks.
				child.parent = nil
				t.root = child
			}
			// A lone leaf child, or an empty root, stays as is.
			t.updateMaxPath(t.root)
			return
		}

		parent := base.parent
		switch {
		case parent.left == node[T](base):
			t.repairWithRightSibling(base, parent.mid.(*internal[T]))
		case parent.mid == node[T](base):
			t.repairWithLeftSibling(base, parent.left.(*internal[T]))
		case parent.right == node[T](base):
			t.repairWithLeftSibling(base, parent.mid.(*internal[T]))
		default:
			panic(fmt.Errorf("twothreetree: node is not a child of its parent"))
		}

		base = parent
	}
}

// detachLeaf unlinks lf from parent, shifting the remaining children left so
// they stay packed in left, mid, right order.
func detachLeaf[T any](lf *Leaf[T], parent *internal[T]) {
	switch {
	case parent.left == node[T](lf):
		parent.left = parent.mid
		parent.mid = parent.right
		parent.right = nil
	case parent.mid == node[T](lf):
		parent.mid = parent.right
		parent.right = nil
	case parent.right == node[T](lf):
		parent.right = nil
	default:
		panic(fmt.Errorf("twothreetree: leaf is not a child of its parent"))
	}
}

// repairWithRightSibling fixes an underfull base (a left child) using the
// sibling on its right. A sibling with three children donates its leftmost;
// one with two absorbs base's remaining child and base disappears.
func (t *Tree[T]) repairWithRightSibling(base, sibling *internal[T]) {
	switch sibling.childCount() {
	case 2:
		// Merge base's child into the sibling as its new leftmost.
		sibling.right = sibling.mid
		sibling.mid = sibling.left
		base.left.setParent(sibling)
		sibling.left = base.left
		base.left = nil

		p := base.parent
		p.left = sibling
		p.mid = p.right
		p.right = nil

		t.updateMax(sibling)
		t.updateMax(p)
	case 3:
		// Borrow the sibling's leftmost child.
		borrowed := sibling.left
		sibling.left = sibling.mid
		sibling.mid = sibling.right
		sibling.right = nil

		borrowed.setParent(base)
		base.mid = borrowed

		t.updateMax(base)
		t.updateMax(sibling)
	default:
		panic(fmt.Errorf("twothreetree: sibling with invalid child count"))
	}
}

// repairWithLeftSibling fixes an underfull base (a mid or right child) using
// the sibling on its left. A sibling with three children donates its
// rightmost; one with two absorbs base's remaining child and base disappears.
func (t *Tree[T]) repairWithLeftSibling(base, sibling *internal[T]) {
	switch sibling.childCount() {
	case 2:
		// Merge base's child into the sibling as its new rightmost.
		base.left.setParent(sibling)
		sibling.right = base.left
		base.left = nil

		p := base.parent
		if p.mid == node[T](base) {
			p.mid = p.right
		}
		p.right = nil

		t.updateMax(sibling)
		t.updateMax(p)
	case 3:
		// Borrow the sibling's rightmost child.
		base.mid = base.left
		borrowed := sibling.right
		sibling.right = nil

		borrowed.setParent(base)
		base.left = borrowed

		t.updateMax(base)
		t.updateMax(sibling)
	default:
		panic(fmt.Errorf("twothreetree: sibling with invalid child count"))
	}
}
