package Trees

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tSeqN   = 2000
	tSeqLen = 64
)

func TestFromLevelOrder_Example(t *testing.T) {
	tree := FromLevelOrder([]Slot[int]{Some(1), Some(2), Some(3), Some(4), None[int](), None[int](), Some(5)})
	if r := tree.Root; r == nil || r.Val() != 1 {
		t.Fatalf("root is %v, want Node(1)", r)
	}
	if l := tree.Root.Left(); l.Val() != 2 || l.Left().Val() != 4 || l.Right() != nil {
		t.Errorf("left subtree is wrong: %v %v %v", l, l.Left(), l.Right())
	}
	if r := tree.Root.Right(); r.Val() != 3 || r.Left() != nil || r.Right().Val() != 5 {
		t.Errorf("right subtree is wrong: %v %v %v", r, r.Left(), r.Right())
	}
	if got, want := tree.InOrder(), []int{4, 2, 1, 3, 5}; !slices.Equal(got, want) {
		t.Errorf("inorder is %v, want %v", got, want)
	}
	if h, ok := tree.Height(); !ok || h != 2 {
		t.Errorf("height is %d,%v, want 2", h, ok)
	}
	if tree.Kind != Generic {
		t.Errorf("kind is %v, want %v", tree.Kind, Generic)
	}
}

func TestFromLevelOrder_ZeroValues(t *testing.T) {
	ti := FromLevelOrder(Slots(0))
	if ti.Empty() || ti.Root.Val() != 0 {
		t.Errorf("[0] built %v, want Node(0)", ti)
	}
	ts := FromLevelOrder(Slots("", "a", ""))
	if ts.Empty() || ts.Root.Val() != "" {
		t.Errorf("[\"\" a \"\"] built root %v, want Node()", ts)
	}
	if got := ts.InOrder(); !slices.Equal(got, []string{"a", "", ""}) {
		t.Errorf("inorder is %q", got)
	}
	if got := FromLevelOrder([]Slot[int]{None[int]()}); !got.Empty() {
		t.Errorf("[None] built %v, want empty tree", got)
	}
}

func TestHeight(t *testing.T) {
	if h, ok := FromLevelOrder(Slots(1)).Height(); !ok || h != 0 {
		t.Errorf("height of [1] is %d,%v, want 0", h, ok)
	}
	if _, ok := FromLevelOrder[int](nil).Height(); ok {
		t.Errorf("height of [] is defined")
	}
	if h, ok := FromLevelOrder([]Slot[int]{Some(1), Some(2), None[int](), None[int](), Some(3)}).Height(); !ok || h != 2 {
		t.Errorf("height of [1 2 - - 3] is %d,%v, want 2", h, ok)
	}
}

// TestHeight_Deep makes sure Height doesn't depend on the call stack.
func TestHeight_Deep(t *testing.T) {
	const depth = 1 << 20
	root := &Node[int]{v: 0}
	for cur, i := root, 1; i <= depth; i++ {
		if i&1 == 1 {
			cur.l = &Node[int]{v: i}
			cur = cur.l
		} else {
			cur.r = &Node[int]{v: i}
			cur = cur.r
		}
	}
	tree := Tree[int]{Root: root}
	if h, ok := tree.Height(); !ok || h != depth {
		t.Errorf("height is %d,%v, want %d", h, ok, depth)
	}
	if sz := tree.Size(); sz != depth+1 {
		t.Errorf("size is %d, want %d", sz, depth+1)
	}
}

func TestTraversals_Trivial(t *testing.T) {
	empty := FromLevelOrder[string](nil)
	for name, got := range map[string][]string{"inorder": empty.InOrder(), "preorder": empty.PreOrder(), "postorder": empty.PostOrder()} {
		if got == nil || len(got) != 0 {
			t.Errorf("%s of empty tree is %v, want []", name, got)
		}
	}
	if s := empty.String(); s != "<nil>" {
		t.Errorf("empty tree prints as %q", s)
	}
	one := FromLevelOrder(Slots("x"))
	for name, got := range map[string][]string{"inorder": one.InOrder(), "preorder": one.PreOrder(), "postorder": one.PostOrder()} {
		if !slices.Equal(got, []string{"x"}) {
			t.Errorf("%s of single node tree is %v, want [x]", name, got)
		}
	}
	if s := one.String(); s != "Node(x)" {
		t.Errorf("single node tree prints as %q", s)
	}
}

// randSlots returns a random level order sequence and what LevelOrder should
// give back after building it: orphans cleared and trailing None trimmed.
func randSlots(n int) (in, want []Slot[int]) {
	in = make([]Slot[int], n)
	for i := range in {
		if rg.Intn(4) > 0 {
			in[i] = Some(rg.Intn(10) - 5)
		}
	}
	want = slices.Clone(in)
	for i := 1; i < len(want); i++ {
		if !want[(i-1)>>1].Has {
			want[i] = None[int]()
		}
	}
	for len(want) > 0 && !want[len(want)-1].Has {
		want = want[:len(want)-1]
	}
	return
}

func TestLevelOrder_RoundTrip(t *testing.T) {
	for range tSeqN {
		in, want := randSlots(rg.Intn(tSeqLen))
		tree := FromLevelOrder(in)
		if got := tree.LevelOrder(); !slices.Equal(got, want) {
			t.Fatalf("level order of %s is %s, want %s", fmtSlots(in), fmtSlots(got), fmtSlots(want))
		}
		present := 0
		for _, s := range want {
			if s.Has {
				present++
			}
		}
		if sz := tree.Size(); sz != present {
			t.Fatalf("size of %s is %d, want %d", fmtSlots(in), sz, present)
		}
	}
}

// TestTraversals_ReadOnly checks that traversing doesn't rewire any links.
func TestTraversals_ReadOnly(t *testing.T) {
	in, want := randSlots(tSeqLen)
	tree := FromLevelOrder(in)
	tree.InOrder()
	tree.PreOrder()
	tree.PostOrder()
	tree.Height()
	if got := tree.LevelOrder(); !slices.Equal(got, want) {
		t.Errorf("tree changed after traversals: %s, want %s", fmtSlots(got), fmtSlots(want))
	}
}

func TestTraversals_Orders(t *testing.T) {
	for range tSeqN {
		in, _ := randSlots(rg.Intn(tSeqLen))
		tree := FromLevelOrder(in)
		pre, ino, post := tree.PreOrder(), tree.InOrder(), tree.PostOrder()
		if len(pre) != len(ino) || len(ino) != len(post) || len(pre) != tree.Size() {
			t.Fatalf("traversals of %s have lengths %d %d %d", fmtSlots(in), len(pre), len(ino), len(post))
		}
		if len(pre) > 0 {
			if pre[0] != tree.Root.Val() || post[len(post)-1] != tree.Root.Val() {
				t.Fatalf("root isn't first in preorder or last in postorder for %s", fmtSlots(in))
			}
		}
	}
}
