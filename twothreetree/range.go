package twothreetree

// Range returns, in order, every leaf whose payload lies in the closed
// interval [lo, hi] under the leaves' comparators. Subtrees whose cached
// maximum falls below lo are pruned, and the walk stops at the first leaf
// beyond hi, so the cost is proportional to the depth plus the number of
// leaves reported.
func (t *Tree[T]) Range(lo, hi T) ([]*Leaf[T], error) {
	var out []*Leaf[T]
	_, err := t.rangeWalk(t.root, lo, hi, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// rangeWalk does an in-order traversal below nd collecting leaves in [lo, hi].
// The returned flag is true once a leaf above hi has been seen, which stops
// the walk.
func (t *Tree[T]) rangeWalk(nd node[T], lo, hi T, out *[]*Leaf[T]) (bool, error) {
	if nd == nil {
		return false, nil
	}

	if lf, ok := nd.(*Leaf[T]); ok {
		c, err := lf.compareCargo(lo)
		if err != nil {
			return false, err
		}
		if c < 0 {
			return false, nil
		}
		c, err = lf.compareCargo(hi)
		if err != nil {
			return false, err
		}
		if c > 0 {
			return true, nil
		}
		*out = append(*out, lf)
		return false, nil
	}

	in := nd.(*internal[T])

	// Prune subtrees that end below lo using the cached max leaves.
	skipLeft, skipMid := false, false
	if in.leftMax != nil {
		c, err := in.leftMax.compareCargo(lo)
		if err != nil {
			return false, err
		}
		skipLeft = c < 0
	}
	if in.midMax != nil {
		c, err := in.midMax.compareCargo(lo)
		if err != nil {
			return false, err
		}
		skipMid = c < 0
	}

	if !skipLeft {
		done, err := t.rangeWalk(in.left, lo, hi, out)
		if done || err != nil {
			return done, err
		}
	}
	if !skipMid {
		done, err := t.rangeWalk(in.mid, lo, hi, out)
		if done || err != nil {
			return done, err
		}
	}
	return t.rangeWalk(in.right, lo, hi, out)
}
