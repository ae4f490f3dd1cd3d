package selector

import (
	"container/heap"
	"math"

	"github.com/miladbarooni/openbp/bptree"
)

// depthHeap is a max-heap on Depth, with LowerBound ascending as the
// tiebreak among equal depths.
type depthHeap []*bptree.Node

func (h depthHeap) Len() int { return len(h) }
func (h depthHeap) Less(i, j int) bool {
	if h[i].Depth() != h[j].Depth() {
		return h[i].Depth() > h[j].Depth()
	}

	return h[i].LowerBound() < h[j].LowerBound()
}
func (h depthHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *depthHeap) Push(x interface{}) { *h = append(*h, x.(*bptree.Node)) }
func (h *depthHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// DepthFirstSelector always yields the explorable node at the greatest
// depth, breaking ties by smallest LowerBound — a dive toward integer
// solutions.
type DepthFirstSelector struct {
	items depthHeap
}

// NewDepthFirstSelector constructs an empty DepthFirstSelector.
func NewDepthFirstSelector() *DepthFirstSelector {
	return &DepthFirstSelector{}
}

func (s *DepthFirstSelector) AddNode(n *bptree.Node) {
	if n == nil || !n.CanBeExplored() {
		return
	}
	heap.Push(&s.items, n)
}

func (s *DepthFirstSelector) AddNodes(ns []*bptree.Node) {
	for _, n := range ns {
		s.AddNode(n)
	}
}

func (s *DepthFirstSelector) discardStaleTop() {
	for len(s.items) > 0 && !s.items[0].CanBeExplored() {
		heap.Pop(&s.items)
	}
}

func (s *DepthFirstSelector) SelectNext() *bptree.Node {
	s.discardStaleTop()
	if len(s.items) == 0 {
		return nil
	}

	return heap.Pop(&s.items).(*bptree.Node)
}

func (s *DepthFirstSelector) PeekNext() *bptree.Node {
	s.discardStaleTop()
	if len(s.items) == 0 {
		return nil
	}

	return s.items[0]
}

func (s *DepthFirstSelector) Empty() bool {
	for _, n := range s.items {
		if n.CanBeExplored() {
			return false
		}
	}

	return true
}

func (s *DepthFirstSelector) Size() int { return len(s.items) }

func (s *DepthFirstSelector) Prune() int {
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

func (s *DepthFirstSelector) OnBoundUpdate(newUB float64) {}

// BestBound requires a linear scan: the heap is ordered by depth, not
// by bound.
func (s *DepthFirstSelector) BestBound() float64 {
	best := math.Inf(1)
	for _, n := range s.items {
		if n.CanBeExplored() && n.LowerBound() < best {
			best = n.LowerBound()
		}
	}

	return best
}

func (s *DepthFirstSelector) GetOpenNodeIDs() []bptree.NodeID {
	ids := make([]bptree.NodeID, 0, len(s.items))
	for _, n := range s.items {
		ids = append(ids, n.ID())
	}

	return ids
}

func (s *DepthFirstSelector) Clear() { s.items = nil }
