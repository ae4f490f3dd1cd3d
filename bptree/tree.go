package bptree

// TreeStats aggregates running counters the Tree maintains incrementally,
// grounded on original_source's TreeStats (tree.hpp). Per spec.md §9,
// these are maintained incrementally, not recomputed by scan, and must
// always agree with a full scan (spec.md §8 invariant 3).
type TreeStats struct {
	NodesCreated          int64
	NodesProcessed        int64
	NodesPrunedBound      int64
	NodesPrunedInfeasible int64
	NodesIntegerFound     int64
	NodesBranched         int64
	NodesOpen             int64
	MaxDepth              int

	// BestLowerBound mirrors tree.hpp's TreeStats::best_lower_bound: no
	// Tree operation in spec.md's contract updates it (only
	// BestUpperBound is synchronized, by UpdateBounds/SetIncumbent), so it
	// stays at its initial -Inf unless a caller sets it directly. Kept for
	// structural fidelity with the original and for Gap's formula.
	BestLowerBound float64
	BestUpperBound float64
}

// Gap applies the tolerance-based formula from tree.hpp's
// TreeStats::gap(), distinct from Node.Gap's exact-zero comparison.
func (s TreeStats) Gap() float64 {
	return computeGapTol(s.BestLowerBound, s.BestUpperBound)
}

// TreeOption configures a Tree at construction time. Option constructors
// validate their own arguments and panic on misuse, matching the
// teacher's builder.WithIDScheme/WithRand idiom: a bad chunk size is a
// programmer error discovered at startup, not a runtime condition callers
// branch on.
type TreeOption func(*Tree)

// WithChunkSize overrides the arena's default chunk size (1024 nodes).
// Panics if size is not positive.
func WithChunkSize(size int) TreeOption {
	if size <= 0 {
		panic("bptree: WithChunkSize requires a positive size")
	}

	return func(t *Tree) { t.chunkSize = size }
}

// Tree is the authoritative store of a branch-and-price search tree: it
// owns every Node, assigns ids, links parents to children, propagates
// inherited decisions, prunes by bound, and keeps TreeStats consistent.
//
// Every structural mutation flows through Tree; Node's own setters only
// touch bounds/solution/status fields the external LP solver is
// responsible for.
type Tree struct {
	minimize  bool
	chunkSize int
	arena     *arena

	root      *Node
	incumbent *Node

	globalLowerBound float64
	globalUpperBound float64

	stats TreeStats
}

// New constructs a Tree with a root node already allocated and counted.
// minimize configures the sense (affects the semantics of "improvement"
// comparisons elsewhere, e.g. in Selector.OnBoundUpdate callers) but not
// Tree's own structural behavior.
func New(minimize bool, opts ...TreeOption) *Tree {
	t := &Tree{minimize: minimize, chunkSize: DefaultArenaChunkSize}
	for _, opt := range opts {
		opt(t)
	}

	a, err := newArena(t.chunkSize)
	if err != nil {
		// Unreachable: WithChunkSize already validates and panics, and the
		// zero-value default is always positive.
		panic(err)
	}
	t.arena = a

	root := t.arena.allocate()
	root.resetAsRoot()
	t.root = root

	t.globalLowerBound = negInf
	t.globalUpperBound = inf
	t.stats = TreeStats{
		NodesCreated:   1,
		NodesOpen:      1,
		BestLowerBound: negInf,
		BestUpperBound: inf,
	}

	return t
}

// IsMinimizing reports the sense the Tree was constructed with.
func (t *Tree) IsMinimizing() bool { return t.minimize }

// Root returns the tree's root node. Never nil.
func (t *Tree) Root() *Node { return t.root }

// RootID returns the root's id (always 0).
func (t *Tree) RootID() NodeID { return t.root.id }

// Node resolves id to its Node, or nil if id was never allocated in this
// tree (spec.md §7: unknown id returns a null handle).
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 {
		return nil
	}

	return t.arena.at(int64(id))
}

// HasNode reports whether id names an allocated node.
func (t *Tree) HasNode(id NodeID) bool {
	return t.Node(id) != nil
}

// NumNodes returns the total number of nodes ever allocated in this tree.
func (t *Tree) NumNodes() int {
	return int(t.arena.size())
}

// CreateChild allocates a new child of parent carrying decision, and
// returns it.
//
// Steps (spec.md §4.3):
//  1. allocate a fresh slot from the arena and assign the next id;
//  2. compute inherited decisions as parent.AllDecisions() — this is the
//     O(depth) inheritance-propagation point;
//  3. copy parent's bounds into the child as a starting estimate;
//  4. register the child under parent.children;
//  5. update NodesCreated/NodesOpen/MaxDepth.
func (t *Tree) CreateChild(parent *Node, decision BranchingDecision) *Node {
	child := t.arena.allocate()
	childID := NodeID(t.arena.size() - 1)

	child.resetAsChild(childID, parent.id, parent.depth+1, decision)

	inherited := parent.AllDecisions()
	child.setInheritedDecisions(inherited)

	child.SetLowerBound(parent.lowerBound)
	child.SetUpperBound(parent.upperBound)

	parent.addChild(childID)

	t.stats.NodesCreated++
	t.stats.NodesOpen++
	if child.depth > t.stats.MaxDepth {
		t.stats.MaxDepth = child.depth
	}

	return child
}

// CreateChildren constructs children left-to-right via CreateChild, then
// transitions parent to Branched, decrements NodesOpen by exactly one (the
// parent leaves the frontier), and increments NodesBranched.
//
// If decisions is empty, parent still becomes Branched and no children
// are produced: spec.md §4.3 makes the caller's branching strategy
// responsible for not doing this unless it intends to fathom the parent
// (see SPEC_FULL.md §5.1).
func (t *Tree) CreateChildren(parent *Node, decisions []BranchingDecision) []*Node {
	children := make([]*Node, 0, len(decisions))
	for _, d := range decisions {
		children = append(children, t.CreateChild(parent, d))
	}

	parent.setStatus(Branched)
	t.stats.NodesBranched++
	t.stats.NodesOpen--

	return children
}

// MarkProcessed transitions node's status and updates statistics:
// NodesProcessed increments if the previous status was Pending/Processing;
// in that same case NodesOpen decrements if the new status is terminal and
// is not Branched (Branched is handled inside CreateChildren); and the variant-specific
// counter for PrunedBound/PrunedInfeasible/Integer increments.
func (t *Tree) MarkProcessed(node *Node, newStatus Status) {
	oldStatus := node.status
	node.setStatus(newStatus)

	if oldStatus == Pending || oldStatus == Processing {
		t.stats.NodesProcessed++
		if isTerminal(newStatus) && newStatus != Branched {
			t.stats.NodesOpen--
		}
	}

	switch newStatus {
	case PrunedBound:
		t.stats.NodesPrunedBound++
	case PrunedInfeasible:
		t.stats.NodesPrunedInfeasible++
	case Integer:
		t.stats.NodesIntegerFound++
	}
}

// GlobalLowerBound returns the tree-wide lower bound.
func (t *Tree) GlobalLowerBound() float64 { return t.globalLowerBound }

// GlobalUpperBound returns the tree-wide upper bound.
func (t *Tree) GlobalUpperBound() float64 { return t.globalUpperBound }

// SetGlobalLowerBound sets the tree-wide lower bound. Lower-bound
// recomputation itself is not done by Tree (the caller drives it via
// ComputeLowerBound from the Selector's open set); this setter just
// records the result.
func (t *Tree) SetGlobalLowerBound(lb float64) { t.globalLowerBound = lb }

// SetGlobalUpperBound sets the tree-wide upper bound directly.
func (t *Tree) SetGlobalUpperBound(ub float64) { t.globalUpperBound = ub }

// UpdateBounds checks whether node carries an integer solution that
// strictly improves the global upper bound, and if so applies it to both
// the global bound and stats.BestUpperBound. Returns whether it improved.
// Lower-bound recomputation is not done here — see ComputeLowerBound.
func (t *Tree) UpdateBounds(node *Node) bool {
	if node.isInteger && node.lpValue < t.globalUpperBound {
		t.globalUpperBound = node.lpValue
		t.stats.BestUpperBound = t.globalUpperBound

		return true
	}

	return false
}

// ComputeLowerBound returns the minimum LowerBound over the given open
// node ids that are still explorable, capped above by the global upper
// bound: if none of openIDs is explorable (in particular if openIDs is
// empty), the current global upper bound is returned.
func (t *Tree) ComputeLowerBound(openIDs []NodeID) float64 {
	lb := t.globalUpperBound
	for _, id := range openIDs {
		n := t.Node(id)
		if n != nil && n.CanBeExplored() && n.lowerBound < lb {
			lb = n.lowerBound
		}
	}

	return lb
}

// PruneByBound scans every registered non-terminal node and applies
// TryPruneByBound against the current global upper bound, updating
// statistics for each newly pruned node. Returns the number pruned.
func (t *Tree) PruneByBound() int64 {
	var pruned int64
	t.ForEachNode(func(n *Node) {
		if n.TryPruneByBound(t.globalUpperBound) {
			t.stats.NodesPrunedBound++
			t.stats.NodesOpen--
			pruned++
		}
	})

	return pruned
}

// GetOpenNodes returns the ids of every node currently in Pending status,
// in id order (ForEachNode's natural iteration order).
func (t *Tree) GetOpenNodes() []NodeID {
	var open []NodeID
	t.ForEachNode(func(n *Node) {
		if n.CanBeExplored() {
			open = append(open, n.id)
		}
	})

	return open
}

// GetPathToRoot returns the ids from the root to targetID, root-first, or
// an empty slice if targetID is unknown.
func (t *Tree) GetPathToRoot(targetID NodeID) []NodeID {
	if t.Node(targetID) == nil {
		return nil
	}

	var path []NodeID
	current := targetID
	for current != InvalidID {
		path = append(path, current)
		n := t.Node(current)
		if n == nil {
			break
		}
		current = n.parentID
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ForEachNode calls fn once for every allocated node, in allocation (id)
// order.
func (t *Tree) ForEachNode(fn func(*Node)) {
	var i int64
	for i = 0; i < t.arena.size(); i++ {
		fn(t.arena.at(i))
	}
}

// IsComplete reports whether the tree has no open (Pending) nodes left.
func (t *Tree) IsComplete() bool {
	return t.stats.NodesOpen == 0
}

// Gap applies the tolerance-based formula from tree.hpp's BPTree::gap()
// to the tree-wide bounds, distinct from Node.Gap's exact-zero
// comparison and from TreeStats.Gap's best_* bounds.
func (t *Tree) Gap() float64 {
	return computeGapTol(t.globalLowerBound, t.globalUpperBound)
}

// Stats returns a snapshot of the tree's running statistics.
func (t *Tree) Stats() TreeStats { return t.stats }

// Incumbent returns the best integer-feasible node found so far, or nil
// if SetIncumbent has never been called.
func (t *Tree) Incumbent() *Node { return t.incumbent }

// SetIncumbent records node as the incumbent and sets the global upper
// bound to node.LPValue(). The caller is responsible for ensuring
// node.IsInteger() (spec.md §4.3).
func (t *Tree) SetIncumbent(node *Node) {
	t.incumbent = node
	if node != nil {
		t.globalUpperBound = node.lpValue
		t.stats.BestUpperBound = t.globalUpperBound
	}
}

// Reset releases every allocated node and reallocates a fresh root,
// clearing bounds, the incumbent, and statistics — the "reset+root-
// realloc as one operation" spec.md's Design Notes §9 requires so the
// tree always owns at least a root.
func (t *Tree) Reset() {
	t.arena.reset()

	root := t.arena.allocate()
	root.resetAsRoot()
	t.root = root
	t.incumbent = nil

	t.globalLowerBound = negInf
	t.globalUpperBound = inf
	t.stats = TreeStats{
		NodesCreated:   1,
		NodesOpen:      1,
		BestLowerBound: negInf,
		BestUpperBound: inf,
	}
}
