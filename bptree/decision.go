package bptree

import "math"

// BranchKind discriminates the payload carried by a BranchingDecision.
type BranchKind uint8

const (
	// Variable branching restricts a single variable's bound: x[i] <= v or
	// x[i] >= v, depending on the decision's Upper flag.
	Variable BranchKind = iota

	// RyanFoster branching forces a pair of items to share, or to never
	// share, a column — the classical set-partitioning branching scheme.
	RyanFoster

	// Arc branching requires or forbids a single arc of the underlying
	// graph (used by arc-flow and vehicle-routing column generators).
	Arc

	// Resource branching tightens the feasible window of one resource.
	Resource

	// Custom carries an opaque integer/real payload interpreted only by
	// the branching strategy that produced it.
	Custom
)

// String renders the canonical name of a BranchKind, matching the
// teacher's manual-switch Stringer idiom (see builder.PlatonicName).
func (k BranchKind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case RyanFoster:
		return "RyanFoster"
	case Arc:
		return "Arc"
	case Resource:
		return "Resource"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ParseBranchKind recovers a BranchKind from its String() form. It returns
// false for any name it does not recognize, including the "Unknown" that
// String renders for an out-of-range kind.
func ParseBranchKind(s string) (BranchKind, bool) {
	switch s {
	case "Variable":
		return Variable, true
	case "RyanFoster":
		return RyanFoster, true
	case "Arc":
		return Arc, true
	case "Resource":
		return Resource, true
	case "Custom":
		return Custom, true
	default:
		return 0, false
	}
}

// BranchingDecision is a tagged, value-semantic description of a single
// branching action. Only the fields relevant to Kind are meaningful; the
// rest hold the defaults their factory did not set. Decisions are always
// copied, never shared, and are immutable once constructed — no factory
// here validates its payload (negative indices and infinite bounds are
// permitted); the strategy that interprets the decision owns that
// semantics (spec.md §4.1).
type BranchingDecision struct {
	Kind BranchKind

	// Variable branching.
	VariableIndex int     // index sentinel -1 when unset
	BoundValue    float64 // x[VariableIndex] <= BoundValue (Upper) or >= BoundValue (!Upper)
	Upper         bool

	// RyanFoster branching.
	ItemI, ItemJ int  // index sentinels -1 when unset
	SameColumn   bool // true: items must share a column; false: must not

	// Arc branching.
	ArcIndex    int // index sentinel -1 when unset
	SourceNode  int // index sentinel -1 when unset
	ArcRequired bool

	// Resource branching.
	ResourceIndex int // index sentinel -1 when unset
	ResourceLower float64
	ResourceUpper float64 // defaults to +Inf

	// Custom branching: opaque payload for strategies not covered above.
	CustomInts  []int
	CustomReals []float64
}

// NewVariableBranch builds a Variable decision: x[varIndex] <= value when
// upper is true, x[varIndex] >= value otherwise. The caller's branching
// strategy owns the convention for fractional values (e.g. whether to
// floor/ceil before calling); this factory stores the raw value as given.
func NewVariableBranch(varIndex int, value float64, upper bool) BranchingDecision {
	return BranchingDecision{
		Kind:          Variable,
		VariableIndex: varIndex,
		BoundValue:    value,
		Upper:         upper,
		ItemI:         -1,
		ItemJ:         -1,
		ArcIndex:      -1,
		SourceNode:    -1,
		ResourceIndex: -1,
		ResourceUpper: math.Inf(1),
	}
}

// NewRyanFosterBranch builds a RyanFoster decision over items i and j.
// sameColumn true means the two items must appear together in every
// selected column; false means they must never appear together.
func NewRyanFosterBranch(i, j int, sameColumn bool) BranchingDecision {
	return BranchingDecision{
		Kind:          RyanFoster,
		VariableIndex: -1,
		ItemI:         i,
		ItemJ:         j,
		SameColumn:    sameColumn,
		ArcIndex:      -1,
		SourceNode:    -1,
		ResourceIndex: -1,
		ResourceUpper: math.Inf(1),
	}
}

// NewArcBranch builds an Arc decision: the arc identified by arcIndex,
// leaving sourceNode, is required in the solution when required is true
// and forbidden otherwise.
func NewArcBranch(arcIndex, sourceNode int, required bool) BranchingDecision {
	return BranchingDecision{
		Kind:          Arc,
		VariableIndex: -1,
		ItemI:         -1,
		ItemJ:         -1,
		ArcIndex:      arcIndex,
		SourceNode:    sourceNode,
		ArcRequired:   required,
		ResourceIndex: -1,
		ResourceUpper: math.Inf(1),
	}
}

// NewResourceBranch builds a Resource decision restricting resourceIndex's
// window to [lower, upper].
func NewResourceBranch(resourceIndex int, lower, upper float64) BranchingDecision {
	return BranchingDecision{
		Kind:          Resource,
		VariableIndex: -1,
		ItemI:         -1,
		ItemJ:         -1,
		ArcIndex:      -1,
		SourceNode:    -1,
		ResourceIndex: resourceIndex,
		ResourceLower: lower,
		ResourceUpper: upper,
	}
}

// NewCustomBranch builds a Custom decision carrying an opaque payload.
// ints and reals are copied so the caller's slices may be reused.
func NewCustomBranch(ints []int, reals []float64) BranchingDecision {
	d := BranchingDecision{
		Kind:          Custom,
		VariableIndex: -1,
		ItemI:         -1,
		ItemJ:         -1,
		ArcIndex:      -1,
		SourceNode:    -1,
		ResourceIndex: -1,
		ResourceUpper: math.Inf(1),
	}
	if len(ints) > 0 {
		d.CustomInts = append([]int(nil), ints...)
	}
	if len(reals) > 0 {
		d.CustomReals = append([]float64(nil), reals...)
	}

	return d
}
