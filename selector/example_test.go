package selector_test

import (
	"fmt"

	"github.com/miladbarooni/openbp/bptree"
	"github.com/miladbarooni/openbp/selector"
)

// ExampleBestFirstSelector demonstrates best-bound ordering across three
// open nodes.
func ExampleBestFirstSelector() {
	tr := bptree.New(true)
	root := tr.Root()
	children := tr.CreateChildren(root, []bptree.BranchingDecision{
		bptree.NewVariableBranch(0, 1, true),
		bptree.NewVariableBranch(0, 1, false),
	})
	children[0].SetLowerBound(70)
	children[1].SetLowerBound(50)

	s := selector.NewBestFirstSelector()
	s.AddNodes(children)

	fmt.Println(s.SelectNext().LowerBound())
	fmt.Println(s.SelectNext().LowerBound())
	// Output:
	// 50
	// 70
}

// ExampleCreateSelector shows the factory's documented fallback.
func ExampleCreateSelector() {
	s := selector.CreateSelector("not_a_real_policy")
	fmt.Printf("%T\n", s)
	// Output:
	// *selector.BestFirstSelector
}
