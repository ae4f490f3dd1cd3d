package selector

import (
	"container/heap"
	"math"

	"github.com/miladbarooni/openbp/bptree"
)

// nodeHeap is a min-heap of *bptree.Node ordered by LowerBound ascending.
// Tie-breaking among equal bounds is unspecified, matching container/heap's
// usual non-stable ordering.
type nodeHeap []*bptree.Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].LowerBound() < h[j].LowerBound() }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*bptree.Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// BestFirstSelector always yields the explorable node with the smallest
// LowerBound (best-bound search).
type BestFirstSelector struct {
	items nodeHeap
}

// NewBestFirstSelector constructs an empty BestFirstSelector.
func NewBestFirstSelector() *BestFirstSelector {
	return &BestFirstSelector{}
}

func (s *BestFirstSelector) AddNode(n *bptree.Node) {
	if n == nil || !n.CanBeExplored() {
		return
	}
	heap.Push(&s.items, n)
}

func (s *BestFirstSelector) AddNodes(ns []*bptree.Node) {
	for _, n := range ns {
		s.AddNode(n)
	}
}

// discardStaleTop lazily pops any non-explorable handles sitting at the
// top of the heap until it finds an explorable one or the heap empties.
func (s *BestFirstSelector) discardStaleTop() {
	for len(s.items) > 0 && !s.items[0].CanBeExplored() {
		heap.Pop(&s.items)
	}
}

func (s *BestFirstSelector) SelectNext() *bptree.Node {
	s.discardStaleTop()
	if len(s.items) == 0 {
		return nil
	}

	return heap.Pop(&s.items).(*bptree.Node)
}

func (s *BestFirstSelector) PeekNext() *bptree.Node {
	s.discardStaleTop()
	if len(s.items) == 0 {
		return nil
	}

	return s.items[0]
}

// Empty is exact: it scans the full working set because stale handles can
// sit anywhere, not only at the heap's top.
func (s *BestFirstSelector) Empty() bool {
	for _, n := range s.items {
		if n.CanBeExplored() {
			return false
		}
	}

	return true
}

func (s *BestFirstSelector) Size() int { return len(s.items) }

func (s *BestFirstSelector) Prune() int {
	kept := s.items[:0]
	removed := 0
	for _, n := range s.items {
		if n.CanBeExplored() {
			kept = append(kept, n)
		} else {
			removed++
		}
	}
	s.items = kept
	heap.Init(&s.items)

	return removed
}

// OnBoundUpdate is a no-op for BestFirstSelector: ordering by LowerBound
// does not depend on the global upper bound.
func (s *BestFirstSelector) OnBoundUpdate(newUB float64) {}

func (s *BestFirstSelector) BestBound() float64 {
	s.discardStaleTop()
	if len(s.items) == 0 {
		return math.Inf(1)
	}

	return s.items[0].LowerBound()
}

func (s *BestFirstSelector) GetOpenNodeIDs() []bptree.NodeID {
	ids := make([]bptree.NodeID, 0, len(s.items))
	for _, n := range s.items {
		ids = append(ids, n.ID())
	}

	return ids
}

func (s *BestFirstSelector) Clear() { s.items = nil }
