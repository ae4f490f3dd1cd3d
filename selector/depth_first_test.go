package selector_test

import (
	"testing"

	"github.com/miladbarooni/openbp/bptree"
	"github.com/miladbarooni/openbp/selector"
)

// newNodeAtDepth walks depth-1 extra generations below root before
// planting the leaf with the given lower bound, so the resulting node
// sits at the requested depth.
func newNodeAtDepth(tr *bptree.Tree, root *bptree.Node, depth int, lb float64) *bptree.Node {
	cur := root
	for i := 0; i < depth; i++ {
		cur = tr.CreateChild(cur, bptree.NewVariableBranch(i, 1, true))
	}
	cur.SetLowerBound(lb)

	return cur
}

func TestDepthFirstSelectorOrdering(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()

	nD1 := newNodeAtDepth(tr, root, 1, 10)
	nD2a := newNodeAtDepth(tr, root, 2, 30)
	nD2b := newNodeAtDepth(tr, root, 2, 20)

	s := selector.NewDepthFirstSelector()
	s.AddNodes([]*bptree.Node{nD1, nD2a, nD2b})

	first := s.SelectNext()
	if first != nD2b {
		t.Fatalf("first SelectNext() = %v (lb %v), want the depth-2 node with lb=20", first, first.LowerBound())
	}
	second := s.SelectNext()
	if second != nD2a {
		t.Fatalf("second SelectNext() = %v (lb %v), want the depth-2 node with lb=30", second, second.LowerBound())
	}
	third := s.SelectNext()
	if third != nD1 {
		t.Fatalf("third SelectNext() = %v, want the depth-1 node", third)
	}
}

func TestDepthFirstSelectorBestBoundRequiresScan(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()

	nD1 := newNodeAtDepth(tr, root, 1, 5)
	nD3 := newNodeAtDepth(tr, root, 3, 50)

	s := selector.NewDepthFirstSelector()
	s.AddNodes([]*bptree.Node{nD1, nD3})

	if bb := s.BestBound(); bb != 5 {
		t.Fatalf("BestBound() = %v, want 5 (the minimum lower bound regardless of depth order)", bb)
	}
}
