package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// IDDFS is the iterative-deepening strategy: repeated depth-bounded
// sweeps with limits 0, 1, 2, … up to a configured maximum, each sweep
// re-exploring from the start. The first sweep deep enough to reach the
// target ends the search, trading BFS's frontier memory for repeated
// work; within a sweep, claimed-cell pruning can shadow an equally
// shallow alternative route.
//
// Steps, Visited, and Frontiers accumulate across all sweeps; nothing is
// reset between depth increments.
//
// Complexity: O(b^d) time (d = target depth), O(d) memory per sweep.
type IDDFS struct {
	maxDepth int
}

// IDDFSOption configures an IDDFS instance.
type IDDFSOption func(*IDDFS)

// WithMaxDepth bounds the deepest sweep at max. Negative values are an
// invalid configuration and panic with ErrBadMaxDepth.
func WithMaxDepth(max int) IDDFSOption {
	return func(s *IDDFS) {
		if max < 0 {
			panic(ErrBadMaxDepth.Error())
		}
		s.maxDepth = max
	}
}

// NewIDDFS constructs the iterative-deepening strategy with
// DefaultMaxDepth unless overridden by WithMaxDepth.
func NewIDDFS(opts ...IDDFSOption) *IDDFS {
	s := &IDDFS{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns "IDDFS".
func (*IDDFS) Name() string { return "IDDFS" }

// MaxDepth returns the configured sweep ceiling.
func (s *IDDFS) MaxDepth() int { return s.maxDepth }

// frame pairs a cell with its depth on the explicit sweep stack.
type frame struct {
	cell  grid.Cell
	depth int
}

// Search runs bounded sweeps of increasing limit until the target is
// found or the ceiling is exhausted.
func (s *IDDFS) Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result {
	if start == target {
		return foundAtStart(start)
	}

	res := newRunning()

	for limit := 0; limit <= s.maxDepth; limit++ {
		// Fresh per-sweep state; cumulative counters live on res.
		sweepVisited := make(map[grid.Cell]struct{})
		parent := map[grid.Cell]grid.Cell{start: start}
		stack := []frame{{cell: start, depth: 0}}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			res.Steps++

			if _, seen := sweepVisited[f.cell]; !seen {
				sweepVisited[f.cell] = struct{}{}
				res.Visited = append(res.Visited, f.cell)
			}

			snap := make([]grid.Cell, len(stack))
			for i := range stack {
				snap[i] = stack[i].cell
			}
			res.Frontiers = append(res.Frontiers, snap)

			if f.cell == target {
				res.Path = reconstructPath(parent, target, start, len(parent))
				res.Status = StatusFound
				res.Message = fmt.Sprintf("Path found at depth %d! Length: %d, Total Visited: %d",
					limit, len(res.Path), len(res.Visited))

				return res
			}

			if f.depth >= limit {
				continue
			}

			// Reverse push keeps pops in forward clockwise order.
			nbs := neighbors(f.cell)
			for i := len(nbs) - 1; i >= 0; i-- {
				next := nbs[i]
				if _, seen := sweepVisited[next]; seen {
					continue
				}
				if _, claimed := parent[next]; claimed {
					continue
				}
				parent[next] = f.cell
				stack = append(stack, frame{cell: next, depth: f.depth + 1})
			}
		}
	}

	res.Status = StatusNotFound
	res.Message = fmt.Sprintf("No path found within max depth %d. Total Visited: %d",
		s.maxDepth, len(res.Visited))

	return res
}
