package Trees

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// degree of the btree used for sorting in FromValues.
const btreeDegree = 16

// MaxCompleteHeight is the largest height Complete builds, 2^25-1 nodes.
const MaxCompleteHeight = 24

// FromSorted builds a height balanced tree using the given slice recursively.
// The middle element, len(s)/2, becomes the root and the two halves strictly
// left and right of it become the subtrees, so for even lengths the root is
// the element right of the center.
// If sorted is in ascending order then the result is a binary search tree
// whose in-order traversal is sorted itself. Otherwise the shape is the same
// but the ordering is meaningless. Returns nil when sorted is empty.
// Time: O(n); Space: O(log n) stack.
func FromSorted[T any](sorted []T) *Node[T] {
	var build func([]T) *Node[T]
	build = func(s []T) *Node[T] {
		if len(s) > 0 {
			mid := len(s) >> 1
			return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
		} else {
			return nil
		}
	}
	return build(sorted)
}

// Complete builds the perfect binary search tree of height h holding
// 0, 1, ..., 2^(h+1)-2. The tree is empty when h<0. Returns (nil, false) when
// h>MaxCompleteHeight.
func Complete(h int) (*Tree[int], bool) {
	if h > MaxCompleteHeight {
		return nil, false
	}
	t := &Tree[int]{Kind: SearchTree}
	if h >= 0 {
		vs := make([]int, 1<<(h+1)-1)
		for i := range vs {
			vs[i] = i
		}
		t.Root = FromSorted(vs)
	}
	return t, true
}

// FromValues builds a balanced binary search tree from values in any order.
// Repeated values are kept once.
// Time: O(n*log n)
func FromValues[T constraints.Ordered](vals []T) *Tree[T] {
	set := btree.NewG[T](btreeDegree, func(a, b T) bool {
		return a < b
	})
	for _, v := range vals {
		set.ReplaceOrInsert(v)
	}
	sorted := make([]T, 0, set.Len())
	set.Ascend(func(v T) bool {
		sorted = append(sorted, v)
		return true
	})
	return &Tree[T]{FromSorted(sorted), SearchTree}
}

// FromPreorder rebuilds a binary search tree from its pre-order traversal.
// See FromPreorderFunc.
func FromPreorder[T constraints.Ordered](pre []T) *Node[T] {
	return FromPreorderFunc(pre, func(a, b T) bool {
		return a < b
	})
}

// FromPreorderFunc rebuilds a binary search tree ordered by less from its
// pre-order traversal in one pass. A stack holds the ancestors that may still
// take a right child. For each value v, the ancestors less than v are popped
// and v becomes the right child of the last one popped; when nothing is popped
// v becomes the left child of the top of the stack.
// pre isn't validated: a sequence that is not the pre-order traversal of
// any search tree gives some tree that is unspecified. Returns nil when pre
// is empty.
// Time: O(n); Space: O(n)
func FromPreorderFunc[T any](pre []T, less func(a, b T) bool) *Node[T] {
	if len(pre) == 0 {
		return nil
	}
	root := &Node[T]{v: pre[0]}
	st := make([]*Node[T], 1, len(pre))
	st[0] = root
	for _, v := range pre[1:] {
		child := &Node[T]{v: v}
		p := st[len(st)-1]
		for len(st) > 0 && less(st[len(st)-1].v, v) {
			p, st = st[len(st)-1], st[:len(st)-1]
		}
		if less(p.v, v) {
			p.r = child
		} else {
			p.l = child
		}
		st = append(st, child)
	}
	return root
}

// SearchTreeFromPreorder is FromPreorder wrapped in a SearchTree kind Tree.
func SearchTreeFromPreorder[T constraints.Ordered](pre []T) *Tree[T] {
	return &Tree[T]{FromPreorder(pre), SearchTree}
}

// SearchTreeFromSorted is FromSorted wrapped in a SearchTree kind Tree.
func SearchTreeFromSorted[T any](sorted []T) *Tree[T] {
	return &Tree[T]{FromSorted(sorted), SearchTree}
}
