package Trees

// Kind is a descriptive label of how a Tree was built. It's only used for
// titling and carries no invariant that is checked at runtime.
type Kind uint8

const (
	Generic Kind = iota
	// SearchTree trees have every value in a left subtree less than the
	// parent value and every value in a right subtree greater.
	SearchTree
)

func (k Kind) String() string {
	if k == SearchTree {
		return "Binary Search Tree"
	}
	return "Binary Tree"
}

// Tree holds at most one root Node. Trees returned by the builders in this
// package are never modified afterward, so all the receivers on Tree are
// read only and may be called from multiple goroutines at once.
// Receivers that has a bool as a second return value indicates whether the
// first return value is defined, same as the other trees.
type Tree[T any] struct {
	Root *Node[T]
	Kind Kind
}

// Empty returns whether the tree has no root.
func (u *Tree[T]) Empty() bool {
	return u.Root == nil
}

func (u *Tree[T]) String() string {
	if u.Root == nil {
		return "<nil>"
	}
	return u.Root.String()
}

// Slot is one position of a level order sequence. A Slot with Has==false is
// the absence marker: no node lives there but the position still counts.
type Slot[T any] struct {
	V   T
	Has bool
}

// Some returns a present Slot holding v.
func Some[T any](v T) Slot[T] {
	return Slot[T]{v, true}
}

// None returns the absence marker.
func None[T any]() Slot[T] {
	return Slot[T]{}
}

// Slots wraps every element of vs with Some.
func Slots[T any](vs ...T) []Slot[T] {
	s := make([]Slot[T], len(vs))
	for i, v := range vs {
		s[i] = Some(v)
	}
	return s
}

// FromLevelOrder builds a tree from its level order (breadth first, left to
// right) layout. Element i has its parent at (i-1)/2 and it's the left child
// when i is odd, the right child when i is even. Absent elements still take
// up their index so the positions stay aligned with the complete binary tree
// layout.
// The input isn't validated. A present element whose parent position is
// absent has nowhere to go and is dropped.
// Time: O(n); Space: O(n)
func FromLevelOrder[T any](data []Slot[T]) *Tree[T] {
	nodes := make([]*Node[T], len(data))
	for i, d := range data {
		if d.Has {
			nodes[i] = &Node[T]{v: d.V}
		}
	}
	for i := 1; i < len(nodes); i++ {
		if cur, parent := nodes[i], nodes[(i-1)>>1]; cur != nil {
			if parent == nil {
				nodes[i] = nil
			} else if i&1 == 1 {
				parent.l = cur
			} else {
				parent.r = cur
			}
		}
	}
	t := &Tree[T]{Kind: Generic}
	if len(nodes) > 0 {
		t.Root = nodes[0]
	}
	return t
}
