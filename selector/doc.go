// Package selector implements the four open-node selection policies a
// branch-and-price driver chooses between: best-first (best-bound),
// depth-first, best-estimate, and a hybrid that cruises on best-first and
// periodically dives depth-first.
//
// Every policy shares the Selector capability interface and holds
// non-owning *bptree.Node handles — the Tree in the bptree package
// remains the sole owner of node storage for the lifetime of a search.
// Handles that turn non-explorable (because the driver has processed or
// pruned them) are discarded lazily by select_next/peek_next/prune, never
// eagerly, except where Prune is called explicitly.
//
// As with bptree, this package carries no logging, configuration, or
// wire-format concerns: selection policy is a pure in-process capability
// consumed by the driver loop.
package selector

import "github.com/miladbarooni/openbp/bptree"

// Selector is the capability every open-node selection policy implements.
type Selector interface {
	// AddNode inserts n into the working set if n is non-nil and
	// CanBeExplored; otherwise it is a no-op. Callers must not add the
	// same node twice.
	AddNode(n *bptree.Node)

	// AddNodes is equivalent to calling AddNode for every element of ns.
	AddNodes(ns []*bptree.Node)

	// SelectNext removes and returns the highest-priority explorable
	// node, discarding any stale non-explorable handles it encounters
	// along the way. Returns nil iff the working set holds no explorable
	// node.
	SelectNext() *bptree.Node

	// PeekNext returns the node SelectNext would return, without
	// removing it.
	PeekNext() *bptree.Node

	// Empty reports whether the working set holds no explorable node.
	// Always exact, even for implementations whose Size is approximate.
	Empty() bool

	// Size returns the count of handles currently held. May include
	// handles that will be lazily discarded on the next selection.
	Size() int

	// Prune eagerly removes every non-explorable handle and returns the
	// count removed.
	Prune() int

	// OnBoundUpdate informs the selector that the global upper bound
	// improved to newUB. Default behavior is a no-op.
	OnBoundUpdate(newUB float64)

	// BestBound returns the minimum LowerBound over explorable handles,
	// or +Inf if the working set is empty.
	BestBound() float64

	// GetOpenNodeIDs returns a snapshot of held node ids, in unspecified
	// order.
	GetOpenNodeIDs() []bptree.NodeID

	// Clear empties the working set.
	Clear()
}
