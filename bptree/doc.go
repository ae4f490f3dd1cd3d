// Package bptree implements the search-tree core of a branch-and-price (B&P)
// solver: branching decisions, tree nodes, and the authoritative Tree store
// that allocates them, tracks bounds, and aggregates statistics.
//
// The three types in this package are tightly coupled by design:
//
//   - BranchingDecision — a discriminated value describing one branching
//     action (variable bound, Ryan–Foster pair, arc fix/forbid, resource
//     window, or an opaque custom payload). Pure data; copied, never shared.
//
//   - Node — the unit stored in the tree: identity, parent/child links,
//     bounds, status, the decisions accumulated on the path from the root,
//     and an optional solution payload set by the external LP solver.
//
//   - Tree — the sole owner of every Node. It assigns ids, links parents to
//     children, propagates inherited decisions, prunes by bound, and keeps
//     running statistics consistent with a full scan.
//
// The Tree never shrinks: nodes are allocated from a chunked arena and are
// never individually freed during a search. A Selector (see package
// selector) holds non-owning *Node handles into that arena; those handles
// stay valid for the Tree's lifetime because the arena never moves a chunk
// once allocated — only the list of chunks grows.
//
// Collaborators the external LP solver and branching strategy are expected
// to drive (not implemented here): evaluating a node's LP relaxation and
// stamping LowerBound/UpperBound/LPValue/IsInteger, and deciding what
// BranchingDecisions to hand to CreateChildren. This package is a single-
// threaded, in-process data structure; no logging, configuration, CLI, or
// wire format is part of it (see SPEC_FULL.md §1).
package bptree
