// Package search provides six interchangeable traversal strategies over
// the pathgrid occupancy grid, all satisfying one contract while trading
// off completeness, optimality, and memory.
//
// What
//
//   - Strategy: the single capability interface —
//     Search(start, target, neighbors) → *Result.
//   - Result: immutable per-invocation snapshot with the reconstructed
//     Path (nil on failure), Visited cells in expansion order, one
//     frontier snapshot per expansion (cosmetic, for replay), a step
//     counter, a Status, and a human-readable Message.
//   - Strategies:
//   - BFS            — FIFO frontier; shortest path by hop count.
//   - DFS            — LIFO frontier; deep dives, no optimality.
//   - UCS            — cost-priority min-heap; minimal cumulative cost
//     with orthogonal moves at 1.0 and diagonals at √2.
//   - DLS            — depth-bounded DFS; NotFound past the limit.
//   - IDDFS          — repeated DLS sweeps, depth 0,1,2,…; finds the
//     target at the first sweep deep enough to reach it, with
//     cumulative counters across sweeps.
//   - Bidirectional  — alternating FIFO frontiers from both ends,
//     meeting-cell detection, spliced parent chains.
//
// Contract (all six)
//
//   - start == target returns Found immediately with a one-element path.
//   - A cell already expanded is never revisited (Bidirectional keeps two
//     independent visited sets; UCS relaxes — re-enqueues — on a strictly
//     lower cumulative cost).
//   - Paths are rebuilt by walking parent pointers from the target back
//     to an explicit root sentinel, bounded by the discovered-cell count,
//     then reversed.
//   - An exhausted frontier yields StatusNotFound with the accumulated
//     Visited order and frontier history — never an error. Cells with no
//     walkable neighbors are dead ends, not failures.
//   - Given the same grid and neighbor ordering, Visited and Path match a
//     reference replay bit for bit; frontier snapshot content is cosmetic.
//
// Determinism
//
//	Every strategy consumes neighbors in the grid's fixed clockwise
//	order (LIFO strategies push in reverse so pops run forward), and the
//	UCS heap tie-breaks equal costs by insertion sequence, so visit
//	sequences are fully reproducible.
//
// Errors
//
//	Search returns no error: NotFound is ordinary data. Invalid
//	configuration panics at option-construction time
//	(ErrBadDepthLimit, ErrBadMaxDepth), never during a search.
//
// See the package tests for the cross-strategy optimality properties
// (BFS hop minimality, UCS cost minimality, Bidirectional visited bound).
package search
