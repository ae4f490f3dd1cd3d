package selector

import (
	"math"

	"github.com/miladbarooni/openbp/bptree"
)

// DefaultBestEstimateWeight is the weight applied to the depth/gap term
// of BestEstimateSelector's estimate formula when no override is given.
const DefaultBestEstimateWeight = 0.5

// BestEstimateSelectorOption configures a BestEstimateSelector at
// construction time. Option constructors validate their own arguments
// and panic on misuse, the way builder.WithIDScheme/WithRand do.
type BestEstimateSelectorOption func(*BestEstimateSelector)

// WithWeight overrides the estimate formula's weight (default 0.5).
// Panics if w is negative.
func WithWeight(w float64) BestEstimateSelectorOption {
	if w < 0 {
		panic("selector: WithWeight requires a non-negative weight")
	}

	return func(s *BestEstimateSelector) { s.weight = w }
}

// BestEstimateSelector holds an unordered set of candidates and picks the
// one with the smallest estimated completion cost on every SelectNext, a
// linear-scan policy rather than a heap-maintained one (the estimate
// itself shifts as globalUB/maxDepthSeen change between calls, so keeping
// a heap sorted by it would require re-heapifying anyway).
type BestEstimateSelector struct {
	items        []*bptree.Node
	weight       float64
	globalUB     float64
	maxDepthSeen int
}

// NewBestEstimateSelector constructs an empty BestEstimateSelector.
func NewBestEstimateSelector(opts ...BestEstimateSelectorOption) *BestEstimateSelector {
	s := &BestEstimateSelector{
		weight:   DefaultBestEstimateWeight,
		globalUB: math.Inf(1),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *BestEstimateSelector) AddNode(n *bptree.Node) {
	if n == nil || !n.CanBeExplored() {
		return
	}
	s.items = append(s.items, n)
	if n.Depth() > s.maxDepthSeen {
		s.maxDepthSeen = n.Depth()
	}
}

func (s *BestEstimateSelector) AddNodes(ns []*bptree.Node) {
	for _, n := range ns {
		s.AddNode(n)
	}
}

// estimate implements the two-branch formula: without an incumbent,
// deeper nodes are favored (lb - w*depth); with one, the estimate blends
// the remaining gap by how far along the node's depth is relative to the
// deepest depth seen so far.
func (s *BestEstimateSelector) estimate(n *bptree.Node) float64 {
	if math.IsInf(s.globalUB, 1) {
		return n.LowerBound() - s.weight*float64(n.Depth())
	}

	maxDepth := s.maxDepthSeen
	if maxDepth < 1 {
		maxDepth = 1
	}
	depthRatio := float64(n.Depth()) / float64(maxDepth)
	gapLocal := s.globalUB - n.LowerBound()

	return n.LowerBound() + s.weight*(1-depthRatio)*gapLocal
}

// bestIndex returns the index of the explorable candidate with the
// smallest estimate, or -1 if none exists.
func (s *BestEstimateSelector) bestIndex() int {
	best := -1
	var bestEst float64
	for i, n := range s.items {
		if !n.CanBeExplored() {
			continue
		}
		e := s.estimate(n)
		if best == -1 || e < bestEst {
			best = i
			bestEst = e
		}
	}

	return best
}

func (s *BestEstimateSelector) SelectNext() *bptree.Node {
	for {
		i := s.bestIndex()
		if i == -1 {
			return nil
		}
		n := s.items[i]
		s.items = append(s.items[:i], s.items[i+1:]...)
		if n.CanBeExplored() {
			return n
		}
	}
}

func (s *BestEstimateSelector) PeekNext() *bptree.Node {
	i := s.bestIndex()
	if i == -1 {
		return nil
	}

	return s.items[i]
}

func (s *BestEstimateSelector) Empty() bool {
	return s.bestIndex() == -1
}

func (s *BestEstimateSelector) Size() int { return len(s.items) }

func (s *BestEstimateSelector) Prune() int {
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

	return removed
}

// OnBoundUpdate records the new global upper bound, which shifts every
// subsequent estimate computed with an incumbent present.
func (s *BestEstimateSelector) OnBoundUpdate(newUB float64) {
	s.globalUB = newUB
}

func (s *BestEstimateSelector) BestBound() float64 {
	best := math.Inf(1)
	for _, n := range s.items {
		if n.CanBeExplored() && n.LowerBound() < best {
			best = n.LowerBound()
		}
	}

	return best
}

func (s *BestEstimateSelector) GetOpenNodeIDs() []bptree.NodeID {
	ids := make([]bptree.NodeID, 0, len(s.items))
	for _, n := range s.items {
		ids = append(ids, n.ID())
	}

	return ids
}

func (s *BestEstimateSelector) Clear() {
	s.items = nil
	s.maxDepthSeen = 0
}
