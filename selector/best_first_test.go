package selector_test

import (
	"math"
	"testing"

	"github.com/miladbarooni/openbp/bptree"
	"github.com/miladbarooni/openbp/selector"
)

// newOpenChild is a small helper shared across the selector tests: it
// branches a single child off parent with the given lower bound, leaving
// it Pending (explorable).
func newOpenChild(tr *bptree.Tree, parent *bptree.Node, lb float64) *bptree.Node {
	n := tr.CreateChild(parent, bptree.NewVariableBranch(0, 1, true))
	n.SetLowerBound(lb)

	return n
}

func TestBestFirstSelectorOrdering(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()

	n70 := newOpenChild(tr, root, 70)
	n50 := newOpenChild(tr, root, 50)
	n60 := newOpenChild(tr, root, 60)

	s := selector.NewBestFirstSelector()
	s.AddNodes([]*bptree.Node{n70, n50, n60})

	want := []float64{50, 60, 70}
	for _, w := range want {
		got := s.SelectNext()
		if got == nil || got.LowerBound() != w {
			t.Fatalf("SelectNext() = %v, want lower bound %v", got, w)
		}
	}
	if !s.Empty() {
		t.Fatalf("selector should be empty after draining all nodes")
	}
	if bb := s.BestBound(); !math.IsInf(bb, 1) {
		t.Fatalf("BestBound() on an empty selector = %v, want +Inf", bb)
	}
}

func TestBestFirstSelectorPeekDoesNotMutate(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()
	n := newOpenChild(tr, root, 5)

	s := selector.NewBestFirstSelector()
	s.AddNode(n)

	peeked := s.PeekNext()
	if peeked != n {
		t.Fatalf("PeekNext() = %v, want %v", peeked, n)
	}
	if s.Size() != 1 {
		t.Fatalf("Size() after PeekNext = %d, want 1 (peek must not remove)", s.Size())
	}

	got := s.SelectNext()
	if got != n {
		t.Fatalf("SelectNext() = %v, want %v", got, n)
	}
}

func TestBestFirstSelectorAddNodeRejectsNonExplorable(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()
	tr.MarkProcessed(root, bptree.Integer)

	s := selector.NewBestFirstSelector()
	s.AddNode(nil)
	s.AddNode(root)

	if !s.Empty() || s.Size() != 0 {
		t.Fatalf("AddNode should reject a nil handle and a non-explorable node")
	}
}

func TestBestFirstSelectorLazyDiscard(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()
	n1 := newOpenChild(tr, root, 1)
	n2 := newOpenChild(tr, root, 2)

	s := selector.NewBestFirstSelector()
	s.AddNodes([]*bptree.Node{n1, n2})

	// n1 becomes stale after insertion, without being removed from s.
	tr.MarkProcessed(n1, bptree.PrunedInfeasible)

	got := s.SelectNext()
	if got != n2 {
		t.Fatalf("SelectNext() should skip the stale handle and return n2, got %v", got)
	}
}

func TestBestFirstSelectorPrune(t *testing.T) {
	tr := bptree.New(true)
	root := tr.Root()
	n1 := newOpenChild(tr, root, 1)
	n2 := newOpenChild(tr, root, 2)

	s := selector.NewBestFirstSelector()
	s.AddNodes([]*bptree.Node{n1, n2})
	tr.MarkProcessed(n1, bptree.PrunedInfeasible)

	if removed := s.Prune(); removed != 1 {
		t.Fatalf("Prune() removed %d, want 1", removed)
	}
	if s.Size() != 1 {
		t.Fatalf("Size() after Prune = %d, want 1", s.Size())
	}
}
