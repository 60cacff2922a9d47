package Render

import (
	"fmt"
	"strconv"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/treekit/Trees"
)

// Presenter turns a Graph into something the user can look at.
type Presenter interface {
	Present(g *Graph) error
}

// PresenterFunc is an adapter to use ordinary functions as Presenter.
type PresenterFunc func(g *Graph) error

func (f PresenterFunc) Present(g *Graph) error {
	return f(g)
}

// Render builds the Graph of t and hands it to p. Rendering an empty tree
// does nothing.
func Render[T any](t *Trees.Tree[T], p Presenter) error {
	g := Build(t)
	if g == nil {
		return nil
	}
	return p.Present(g)
}

// registry hands out unique vertex IDs. Values may repeat in a tree, so the
// second vertex labeled "5" gets "5#2" and so on.
type registry struct {
	used *hashmap.Map[string, struct{}]
	next *hashmap.Map[string, int]
}

func newRegistry() registry {
	return registry{hashmap.New[string, struct{}](), hashmap.New[string, int]()}
}

func (u registry) id(label string) string {
	n, ok := u.next.Get(label)
	if !ok {
		n = 1
	}
	for ; ; n++ {
		id := label
		if n > 1 {
			id = label + "#" + strconv.Itoa(n)
		}
		if u.used.Insert(id, struct{}{}) {
			u.next.Set(label, n+1)
			return id
		}
	}
}

// slot is a pending child slot of an already registered vertex.
type slot[T any] struct {
	n     *Trees.Node[T]
	id    string
	label string
	level int
	side  Side
}

// Build returns the Graph of t, or nil when t is empty. Each node becomes a
// circle vertex with an edge from its parent and each absent child becomes a
// hidden vertex with a hidden edge. Vertex levels are depths, the root being 0.
// Iterative; the stack holds the right slots still to visit so the order is
// the same as a recursive left-first walk.
func Build[T any](t *Trees.Tree[T]) *Graph {
	if t.Empty() {
		return nil
	}
	h, _ := t.Height()
	g := &Graph{Heading: fmt.Sprintf("%s, height = %d", t.Kind, h), Options: DefaultOptions()}
	ids := newRegistry()

	rootLabel := fmt.Sprint(t.Root.Val())
	rootID := ids.id(rootLabel)
	g.Vertices = append(g.Vertices, Vertex{ID: rootID, Label: rootLabel, Shape: "circle", Level: 0, Title: "root node of the tree, level=0", Side: Root})

	st := arraystack.New()
	st.Push(slot[T]{t.Root, rootID, rootLabel, 0, Left})
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(slot[T])
		if cur.side == Left {
			st.Push(slot[T]{cur.n, cur.id, cur.label, cur.level, Right})
		}
		child, level := cur.n.Left(), cur.level+1
		if cur.side == Right {
			child = cur.n.Right()
		}
		if child == nil {
			hid := ids.id(fmt.Sprintf("%s's %s child = None", cur.id, cur.side))
			g.Vertices = append(g.Vertices, Vertex{ID: hid, Level: level, Hidden: true, Side: cur.side})
			g.Edges = append(g.Edges, Edge{cur.id, hid, true})
			continue
		}
		label := fmt.Sprint(child.Val())
		id := ids.id(label)
		g.Vertices = append(g.Vertices, Vertex{
			ID:    id,
			Label: label,
			Shape: "circle",
			Level: level,
			Title: fmt.Sprintf("%s child node of Node(%s), level=%d", cur.side, cur.label, level),
			Side:  cur.side,
		})
		g.Edges = append(g.Edges, Edge{cur.id, id, false})
		st.Push(slot[T]{child, id, label, level, Left})
	}
	return g
}
