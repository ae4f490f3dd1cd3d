package selector

import "github.com/miladbarooni/openbp/bptree"

// DefaultDiveFrequency is the number of cruise-mode selections between
// dives.
const DefaultDiveFrequency = 5

// DefaultDiveDepth is the number of consecutive diving-mode selections
// before returning to cruise.
const DefaultDiveDepth = 10

type hybridMode uint8

const (
	cruise hybridMode = iota
	diving
)

// HybridSelectorOption configures a HybridSelector at construction time.
type HybridSelectorOption func(*HybridSelector)

// WithDiveFrequency overrides the cruise-to-dive trigger count. Panics if
// freq is not positive.
func WithDiveFrequency(freq int) HybridSelectorOption {
	if freq <= 0 {
		panic("selector: WithDiveFrequency requires a positive count")
	}

	return func(s *HybridSelector) { s.diveFrequency = freq }
}

// WithDiveDepth overrides how many consecutive selections a dive lasts.
// Panics if depth is not positive.
func WithDiveDepth(depth int) HybridSelectorOption {
	if depth <= 0 {
		panic("selector: WithDiveDepth requires a positive depth")
	}

	return func(s *HybridSelector) { s.diveDepth = depth }
}

// HybridSelector composes a best-first and a depth-first store that both
// receive every added node, and switches which one answers SelectNext
// according to a small cruise/diving state machine: long stretches of
// best-bound exploration punctuated by short depth-first dives meant to
// find integer solutions quickly.
//
// Because both stores mirror the same working set, a node popped from one
// is not removed from the other; the mirror discards it lazily the next
// time it prunes a stale handle from its own top.
type HybridSelector struct {
	bestFirst  *BestFirstSelector
	depthFirst *DepthFirstSelector

	mode             hybridMode
	nodesSinceDive   int
	currentDiveDepth int
	diveFrequency    int
	diveDepth        int
}

// NewHybridSelector constructs a HybridSelector starting in cruise mode.
func NewHybridSelector(opts ...HybridSelectorOption) *HybridSelector {
	s := &HybridSelector{
		bestFirst:     NewBestFirstSelector(),
		depthFirst:    NewDepthFirstSelector(),
		mode:          cruise,
		diveFrequency: DefaultDiveFrequency,
		diveDepth:     DefaultDiveDepth,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *HybridSelector) AddNode(n *bptree.Node) {
	s.bestFirst.AddNode(n)
	s.depthFirst.AddNode(n)
}

func (s *HybridSelector) AddNodes(ns []*bptree.Node) {
	for _, n := range ns {
		s.AddNode(n)
	}
}

func (s *HybridSelector) SelectNext() *bptree.Node {
	switch s.mode {
	case cruise:
		s.nodesSinceDive++
		n := s.bestFirst.SelectNext()
		s.depthFirst.Prune()
		if s.nodesSinceDive >= s.diveFrequency {
			s.mode = diving
			s.currentDiveDepth = 0
		}

		return n
	default: // diving
		n := s.depthFirst.SelectNext()
		s.currentDiveDepth++
		if n == nil {
			// The depth-first mirror drained mid-dive: fall back to
			// best-first and return to cruise, but do not reset
			// nodesSinceDive here — only the dive-depth-exhausted path
			// below does that.
			s.mode = cruise

			return s.bestFirst.SelectNext()
		}
		if s.currentDiveDepth >= s.diveDepth {
			s.mode = cruise
			s.nodesSinceDive = 0
		}

		return n
	}
}

// PeekNext reports what SelectNext would return, without driving the
// cruise/diving state machine.
func (s *HybridSelector) PeekNext() *bptree.Node {
	if s.mode == cruise {
		return s.bestFirst.PeekNext()
	}
	if n := s.depthFirst.PeekNext(); n != nil {
		return n
	}

	return s.bestFirst.PeekNext()
}

func (s *HybridSelector) Empty() bool {
	return s.bestFirst.Empty() && s.depthFirst.Empty()
}

// Size is reported from the best-first store alone, per the source's
// documented approximation: it may transiently disagree with the logical
// count of explorable nodes.
func (s *HybridSelector) Size() int { return s.bestFirst.Size() }

func (s *HybridSelector) Prune() int {
	removedBest := s.bestFirst.Prune()
	s.depthFirst.Prune()

	return removedBest
}

func (s *HybridSelector) OnBoundUpdate(newUB float64) {
	s.bestFirst.OnBoundUpdate(newUB)
	s.depthFirst.OnBoundUpdate(newUB)
}

func (s *HybridSelector) BestBound() float64 {
	return s.bestFirst.BestBound()
}

func (s *HybridSelector) GetOpenNodeIDs() []bptree.NodeID {
	return s.bestFirst.GetOpenNodeIDs()
}

func (s *HybridSelector) Clear() {
	s.bestFirst.Clear()
	s.depthFirst.Clear()
	s.mode = cruise
	s.nodesSinceDive = 0
	s.currentDiveDepth = 0
}
