package bptree

// Node is the unit stored in a Tree: identity and structural links set
// once at allocation, bounds and solution fields mutated by the external
// LP solver until the node turns terminal, and the branching decisions
// accumulated on the root-to-node path.
//
// A Node is never constructed directly by callers outside this package —
// Tree.CreateChild/CreateChildren own allocation and initialization, which
// is what keeps depth, ParentID, and the inherited/local decision split
// consistent (spec.md §3 invariants).
type Node struct {
	id       NodeID
	parentID NodeID
	depth    int

	lowerBound float64
	upperBound float64
	lpValue    float64

	status    Status
	isInteger bool

	inheritedDecisions []BranchingDecision
	localDecisions     []BranchingDecision

	children []NodeID

	solution        []float64
	solutionColumns []int
}

// ID returns the node's unique, tree-scoped identifier.
func (n *Node) ID() NodeID { return n.id }

// ParentID returns the parent's id, or InvalidID for the root.
func (n *Node) ParentID() NodeID { return n.parentID }

// Depth returns the node's depth (root is 0).
func (n *Node) Depth() int { return n.depth }

// LowerBound returns the node's current lower bound.
func (n *Node) LowerBound() float64 { return n.lowerBound }

// UpperBound returns the node's current upper bound.
func (n *Node) UpperBound() float64 { return n.upperBound }

// LPValue returns the objective value of the node's LP relaxation, as
// stamped by the external solver.
func (n *Node) LPValue() float64 { return n.lpValue }

// Status returns the node's current status.
func (n *Node) Status() Status { return n.status }

// IsInteger reports whether the external solver found an integer-feasible
// LP solution at this node.
func (n *Node) IsInteger() bool { return n.isInteger }

// IsProcessed is true in any non-Pending, non-Processing state.
func (n *Node) IsProcessed() bool {
	return n.status != Pending && n.status != Processing
}

// IsPruned is true for PrunedBound, PrunedInfeasible, and Fathomed.
func (n *Node) IsPruned() bool {
	return isPrunedStatus(n.status)
}

// CanBeExplored is true only in Pending.
func (n *Node) CanBeExplored() bool {
	return n.status == Pending
}

// Gap is this node's local optimality gap: (upper-lower)/|upper|, with the
// extended-real special cases from spec.md §3.
func (n *Node) Gap() float64 {
	return computeGap(n.lowerBound, n.upperBound)
}

// LocalDecisions returns the decisions added directly at this node, in
// the order they were appended. The slice is owned by the Node; callers
// must not mutate it.
func (n *Node) LocalDecisions() []BranchingDecision { return n.localDecisions }

// InheritedDecisions returns the decisions accumulated by this node's
// ancestors, root-to-parent order. The slice is owned by the Node; callers
// must not mutate it.
func (n *Node) InheritedDecisions() []BranchingDecision { return n.inheritedDecisions }

// AllDecisions returns a fresh slice holding InheritedDecisions followed
// by LocalDecisions — the full root-to-node branching path.
func (n *Node) AllDecisions() []BranchingDecision {
	all := make([]BranchingDecision, 0, len(n.inheritedDecisions)+len(n.localDecisions))
	all = append(all, n.inheritedDecisions...)
	all = append(all, n.localDecisions...)

	return all
}

// NumDecisions returns len(InheritedDecisions)+len(LocalDecisions) without
// allocating.
func (n *Node) NumDecisions() int {
	return len(n.inheritedDecisions) + len(n.localDecisions)
}

// Children returns the ids of this node's children, in creation order.
// The slice is owned by the Node; callers must not mutate it.
func (n *Node) Children() []NodeID { return n.children }

// HasChildren reports whether any children have been created
// (node.hpp's BPNode::has_children).
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// Solution returns the dense primal solution set by the external solver,
// or nil if none was set.
func (n *Node) Solution() []float64 { return n.solution }

// HasSolution reports whether Solution has been set with a non-empty
// vector (BPNode::has_solution).
func (n *Node) HasSolution() bool { return len(n.solution) > 0 }

// SolutionColumns returns the sparse column indices set by the external
// solver, or nil if none were set.
func (n *Node) SolutionColumns() []int { return n.solutionColumns }

// SetLowerBound sets the node's lower bound. Valid until the node is
// terminal; the Tree does not enforce this (spec.md §4.3's "documented,
// not enforced" failure mode).
func (n *Node) SetLowerBound(lb float64) { n.lowerBound = lb }

// SetUpperBound sets the node's upper bound.
func (n *Node) SetUpperBound(ub float64) { n.upperBound = ub }

// SetLPValue sets the node's LP relaxation objective value.
func (n *Node) SetLPValue(v float64) { n.lpValue = v }

// SetIsInteger sets whether the LP relaxation at this node is
// integer-feasible.
func (n *Node) SetIsInteger(isInt bool) { n.isInteger = isInt }

// SetSolution stores the dense primal solution. May be set at most once
// per node; callers must not call it twice (spec.md §3, "set at most once
// per node" — not enforced here, matching the source's documented, not
// enforced, failure mode).
func (n *Node) SetSolution(sol []float64) { n.solution = sol }

// SetSolutionColumns stores the sparse column indices of the solution.
func (n *Node) SetSolutionColumns(cols []int) { n.solutionColumns = cols }

// AddLocalDecision appends a decision to this node's local list. Permitted
// only while the node is Pending or Processing.
func (n *Node) AddLocalDecision(d BranchingDecision) {
	n.localDecisions = append(n.localDecisions, d)
}

// setInheritedDecisions is called exactly once, by Tree, immediately
// after child construction.
func (n *Node) setInheritedDecisions(decisions []BranchingDecision) {
	n.inheritedDecisions = decisions
}

// addChild records a new child id, append-only.
func (n *Node) addChild(id NodeID) {
	n.children = append(n.children, id)
}

// setStatus transitions the node's status. Tree is the only caller.
func (n *Node) setStatus(s Status) {
	n.status = s
}

// TryPruneByBound transitions a non-terminal node to PrunedBound when its
// lower bound can no longer beat globalUpper, and reports whether it did.
// No-op (and returns false) on an already-terminal node.
func (n *Node) TryPruneByBound(globalUpper float64) bool {
	if isTerminal(n.status) {
		return false
	}
	if n.lowerBound >= globalUpper-PruneEpsilon {
		n.status = PrunedBound

		return true
	}

	return false
}

// resetAsRoot reinitializes n in place as the tree's root node: id 0,
// InvalidID parent, depth 0, unbounded extended-real bounds, Pending, and
// no decisions. Used both by Tree construction and by Tree.Reset.
func (n *Node) resetAsRoot() {
	*n = Node{
		id:         0,
		parentID:   InvalidID,
		depth:      0,
		lowerBound: negInf,
		upperBound: inf,
		lpValue:    inf,
		status:     Pending,
	}
}

// resetAsChild reinitializes n in place as a freshly allocated child:
// the given identity, bounds starting at the extended-real full range
// (overwritten by Tree.CreateChild right after), Pending, and decision
// pushed as the sole local decision.
func (n *Node) resetAsChild(id, parentID NodeID, depth int, decision BranchingDecision) {
	*n = Node{
		id:         id,
		parentID:   parentID,
		depth:      depth,
		lowerBound: negInf,
		upperBound: inf,
		lpValue:    inf,
		status:     Pending,
	}
	n.localDecisions = append(n.localDecisions, decision)
}
