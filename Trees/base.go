package Trees

import "github.com/g-m-twostay/treekit/Queues"

// frame of the iterative depth first walks.
type frame[T any] struct {
	n *Node[T]
	d int
}

// Height returns the number of edges on the longest path from the root to a
// leaf. A tree with only the root has height 0; an empty tree has no height.
// Uses an explicit stack so the depth of the tree isn't bounded by the call
// stack.
// Time: O(n); Space: O(D)
func (u *Tree[T]) Height() (int, bool) {
	if u.Root == nil {
		return 0, false
	}
	maxH := -1
	for st := []frame[T]{{u.Root, 0}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n.r != nil {
			st = append(st, frame[T]{top.n.r, top.d + 1})
		}
		if top.n.l != nil {
			st = append(st, frame[T]{top.n.l, top.d + 1})
		}
		if top.n.Leaf() {
			maxH = max(maxH, top.d)
		}
	}
	return maxH, true
}

// InOrder returns the values in left, node, right order. Recursive.
// The tree is never modified during the traversal, unlike morris traversal,
// so concurrent readers are fine.
// Time: O(n); Space: O(D) stack.
func (u *Tree[T]) InOrder() []T {
	res := make([]T, 0)
	var dfs func(*Node[T])
	dfs = func(cur *Node[T]) {
		if cur != nil {
			dfs(cur.l)
			res = append(res, cur.v)
			dfs(cur.r)
		}
	}
	dfs(u.Root)
	return res
}

// PreOrder returns the values in node, left, right order. Recursive.
func (u *Tree[T]) PreOrder() []T {
	res := make([]T, 0)
	var dfs func(*Node[T])
	dfs = func(cur *Node[T]) {
		if cur != nil {
			res = append(res, cur.v)
			dfs(cur.l)
			dfs(cur.r)
		}
	}
	dfs(u.Root)
	return res
}

// PostOrder returns the values in left, right, node order. Recursive.
func (u *Tree[T]) PostOrder() []T {
	res := make([]T, 0)
	var dfs func(*Node[T])
	dfs = func(cur *Node[T]) {
		if cur != nil {
			dfs(cur.l)
			dfs(cur.r)
			res = append(res, cur.v)
		}
	}
	dfs(u.Root)
	return res
}

// Size is the number of nodes in the tree.
// Time: O(n); Space: O(D)
func (u *Tree[T]) Size() int {
	sz := 0
	for st := []*Node[T]{u.Root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur != nil {
			sz++
			st = append(st, cur.l, cur.r)
		}
	}
	return sz
}

// indexed is a node with its position in the complete binary tree layout.
type indexed[T any] struct {
	n *Node[T]
	i int
}

// LevelOrder is the inverse of FromLevelOrder. Each node goes to its index in
// the complete binary tree layout, children of index p being 2p+1 and 2p+2,
// and the gaps are filled with None. There are no trailing None.
// The layout doubles with every level, so this is meant for trees that are
// reasonably close to complete.
// Time: O(2^D); Space: O(2^D)
func (u *Tree[T]) LevelOrder() []Slot[T] {
	res := make([]Slot[T], 0)
	if u.Root == nil {
		return res
	}
	q := Queues.MakeArrayQueue[indexed[T]](4)
	q.Push(indexed[T]{u.Root, 0})
	for !q.Empty() {
		cur, _ := q.Pop()
		for len(res) < cur.i {
			res = append(res, None[T]())
		}
		res = append(res, Some(cur.n.v))
		if cur.n.l != nil {
			q.Push(indexed[T]{cur.n.l, cur.i<<1 + 1})
		}
		if cur.n.r != nil {
			q.Push(indexed[T]{cur.n.r, cur.i<<1 + 2})
		}
	}
	return res
}
