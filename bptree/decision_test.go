package bptree_test

import (
	"math"
	"testing"

	"github.com/miladbarooni/openbp/bptree"
)

func TestBranchKindStringAndParse(t *testing.T) {
	kinds := []bptree.BranchKind{
		bptree.Variable, bptree.RyanFoster, bptree.Arc, bptree.Resource, bptree.Custom,
	}
	for _, k := range kinds {
		name := k.String()
		got, ok := bptree.ParseBranchKind(name)
		if !ok {
			t.Fatalf("ParseBranchKind(%q) reported unknown for a canonical name", name)
		}
		if got != k {
			t.Fatalf("ParseBranchKind(%q) = %v, want %v", name, got, k)
		}
	}

	if name := bptree.BranchKind(99).String(); name != "Unknown" {
		t.Fatalf("String() of an out-of-range BranchKind = %q, want %q", name, "Unknown")
	}
	if _, ok := bptree.ParseBranchKind("NotAKind"); ok {
		t.Fatalf("ParseBranchKind accepted an unrecognized name")
	}
}

func TestNewVariableBranch(t *testing.T) {
	d := bptree.NewVariableBranch(3, 2.5, true)
	if d.Kind != bptree.Variable {
		t.Fatalf("Kind = %v, want Variable", d.Kind)
	}
	if d.VariableIndex != 3 || d.BoundValue != 2.5 || !d.Upper {
		t.Fatalf("unexpected fields: %+v", d)
	}
	if d.ItemI != -1 || d.ItemJ != -1 || d.ArcIndex != -1 || d.ResourceIndex != -1 {
		t.Fatalf("unused index fields should default to -1: %+v", d)
	}
	if !math.IsInf(d.ResourceUpper, 1) {
		t.Fatalf("ResourceUpper should default to +Inf, got %v", d.ResourceUpper)
	}
}

func TestNewRyanFosterBranch(t *testing.T) {
	d := bptree.NewRyanFosterBranch(4, 7, true)
	if d.Kind != bptree.RyanFoster || d.ItemI != 4 || d.ItemJ != 7 || !d.SameColumn {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if d.VariableIndex != -1 {
		t.Fatalf("VariableIndex should default to -1, got %d", d.VariableIndex)
	}
}

func TestNewArcBranch(t *testing.T) {
	d := bptree.NewArcBranch(5, 1, false)
	if d.Kind != bptree.Arc || d.ArcIndex != 5 || d.SourceNode != 1 || d.ArcRequired {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

func TestNewResourceBranch(t *testing.T) {
	d := bptree.NewResourceBranch(2, 1.0, 9.0)
	if d.Kind != bptree.Resource || d.ResourceIndex != 2 || d.ResourceLower != 1.0 || d.ResourceUpper != 9.0 {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

// TestNewCustomBranch verifies the payload slices are defensively copied:
// mutating the caller's originals after the call must not affect the
// decision's stored CustomInts/CustomReals.
func TestNewCustomBranch(t *testing.T) {
	ints := []int{1, 2, 3}
	reals := []float64{0.1, 0.2}
	d := bptree.NewCustomBranch(ints, reals)

	ints[0] = 999
	reals[0] = 999.0

	if d.CustomInts[0] != 1 {
		t.Fatalf("CustomInts was not copied defensively: %v", d.CustomInts)
	}
	if d.CustomReals[0] != 0.1 {
		t.Fatalf("CustomReals was not copied defensively: %v", d.CustomReals)
	}
}

func TestNewCustomBranchEmptyPayload(t *testing.T) {
	d := bptree.NewCustomBranch(nil, nil)
	if d.CustomInts != nil || d.CustomReals != nil {
		t.Fatalf("empty payload should stay nil, got %+v", d)
	}
}
