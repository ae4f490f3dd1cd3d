// Shared constants, the NodeID type, and the Status state machine.
//
// Failures here are sentinel returns, not error values (nil handles,
// empty slices, +Inf) — the only error-returning surface in this package
// is the internal arena constructor (ErrInvalidChunkSize); the public
// WithChunkSize option panics on a bad chunk size before that, since it is
// a programmer error rather than a runtime condition callers branch on.
package bptree

import "math"

// NodeID uniquely identifies a Node within a Tree. Ids are assigned from 0,
// monotonically, and are never reused even after a node is pruned.
type NodeID int64

// InvalidID is the sentinel parent id of the root and the id a failed
// lookup resolves to.
const InvalidID NodeID = -1

// PruneEpsilon is the bound-pruning tolerance used by Node.TryPruneByBound
// and Tree.PruneByBound: a node is prunable once
// LowerBound >= globalUpperBound - PruneEpsilon.
const PruneEpsilon = 1e-6

// DefaultArenaChunkSize is the number of nodes allocated per arena chunk
// when no WithChunkSize option overrides it.
const DefaultArenaChunkSize = 1024

// inf and negInf are used throughout for the extended-real bounds that a
// freshly allocated node starts with.
var (
	inf    = math.Inf(1)
	negInf = math.Inf(-1)
)

// Status is the node's position in its state machine (spec.md §4.2).
type Status uint8

const (
	// Pending nodes are open and eligible for exploration.
	Pending Status = iota
	// Processing nodes are currently being evaluated by the external
	// LP solver; they are not yet terminal.
	Processing
	// Branched nodes have produced children and left the frontier.
	Branched
	// PrunedBound nodes were discarded because their lower bound cannot
	// beat the global upper bound.
	PrunedBound
	// PrunedInfeasible nodes had an infeasible LP relaxation.
	PrunedInfeasible
	// Integer nodes yielded an integer-feasible solution.
	Integer
	// Fathomed nodes were discarded for a reason outside the above
	// (e.g. a strategy-specific cutoff).
	Fathomed
)

// String renders the canonical name of a Status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Processing:
		return "Processing"
	case Branched:
		return "Branched"
	case PrunedBound:
		return "PrunedBound"
	case PrunedInfeasible:
		return "PrunedInfeasible"
	case Integer:
		return "Integer"
	case Fathomed:
		return "Fathomed"
	default:
		return "Unknown"
	}
}

// ParseStatus recovers a Status from its String() form, returning false
// for any name it does not recognize.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "Pending":
		return Pending, true
	case "Processing":
		return Processing, true
	case "Branched":
		return Branched, true
	case "PrunedBound":
		return PrunedBound, true
	case "PrunedInfeasible":
		return PrunedInfeasible, true
	case "Integer":
		return Integer, true
	case "Fathomed":
		return Fathomed, true
	default:
		return 0, false
	}
}

// isTerminal reports whether status freezes the node's bounds, status, and
// children list (spec.md §3 invariants).
func isTerminal(s Status) bool {
	switch s {
	case Branched, PrunedBound, PrunedInfeasible, Integer, Fathomed:
		return true
	default:
		return false
	}
}

// isPrunedStatus reports whether status counts as "pruned" for Node.IsPruned.
func isPrunedStatus(s Status) bool {
	switch s {
	case PrunedBound, PrunedInfeasible, Fathomed:
		return true
	default:
		return false
	}
}

// computeGap applies the spec.md §3 gap formula to an arbitrary
// (lower, upper) pair: (upper-lower)/|upper|, with upper=+Inf or
// lower=-Inf forcing +Inf, and upper==0 forcing 0 iff lower==0 else +Inf.
func computeGap(lower, upper float64) float64 {
	if math.IsInf(upper, 1) || math.IsInf(lower, -1) {
		return inf
	}
	if upper == 0 {
		if lower == 0 {
			return 0
		}

		return inf
	}

	return (upper - lower) / math.Abs(upper)
}

// gapZeroTolerance is the magnitude below which tree.hpp's TreeStats::gap()
// and BPTree::gap() treat a bound as "zero" — distinct from Node.Gap's
// exact-zero comparison (node.hpp::gap()). Both formulas are kept distinct
// on purpose; see SPEC_FULL.md §4.
const gapZeroTolerance = 1e-10

// computeGapTol is computeGap's sibling for the Tree-level and
// TreeStats-level gap formulas, which compare |upper| against a small
// tolerance instead of an exact zero.
func computeGapTol(lower, upper float64) float64 {
	if math.IsInf(upper, 1) || math.IsInf(lower, -1) {
		return inf
	}
	if math.Abs(upper) < gapZeroTolerance {
		if math.Abs(lower) < gapZeroTolerance {
			return 0
		}

		return inf
	}

	return (upper - lower) / math.Abs(upper)
}
