// Package openbp is the core search-tree engine for a branch-and-price
// solver: the data structures and algorithms that manage the tree of
// subproblems explored while solving a mixed-integer program by column
// generation with branching.
//
// The module is organized under two subpackages:
//
//	bptree/   — BranchingDecision, Node, Tree: node allocation, bounds
//	            bookkeeping, branching-decision inheritance, and pruning.
//	selector/ — the four open-node selection policies (best-first,
//	            depth-first, best-estimate, hybrid) plus a factory.
//
// openbp itself owns none of the logic; it is deliberately a thin root
// that subpackages hang off of, the way other_examples' multi-package
// solvers separate the tree store from the strategies that drive it.
//
// A minimal driver loop looks like:
//
//	tree := bptree.New(true)
//	sel := selector.NewBestFirstSelector()
//	sel.AddNode(tree.Root())
//
//	for !sel.Empty() {
//		node := sel.SelectNext()
//		// external LP solver stamps node.SetLowerBound/.../SetIsInteger
//		if node.IsInteger() {
//			tree.UpdateBounds(node)
//			tree.MarkProcessed(node, bptree.Integer)
//			continue
//		}
//		decisions := someBranchingStrategy(node) // out of scope for this module
//		children := tree.CreateChildren(node, decisions)
//		sel.AddNodes(children)
//		tree.PruneByBound()
//	}
//
// This core does not load configuration, write logs, or expose a wire
// protocol: those are the host driver's concerns.
package openbp
