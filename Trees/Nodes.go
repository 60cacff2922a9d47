package Trees

import "fmt"

// Node is a node in a binary tree. A nil *Node is the "no node" marker, so
// a Node holding the zero value of T is still a real node.
// Each Node exclusively owns its children; there is no sharing and no back
// reference to the parent.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// Val of the node.
func (u *Node[T]) Val() T {
	return u.v
}

// Left child, nil if absent.
func (u *Node[T]) Left() *Node[T] {
	return u.l
}

// Right child, nil if absent.
func (u *Node[T]) Right() *Node[T] {
	return u.r
}

// Leaf returns whether u has no children.
func (u *Node[T]) Leaf() bool {
	return u.l == nil && u.r == nil
}

func (u *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", u.v)
}
