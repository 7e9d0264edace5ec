package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// DFS is the unweighted-LIFO strategy (Depth-First Search).
// It dives along each branch before backtracking and does not guarantee
// a shortest path. Neighbors are pushed in reverse of the fixed offset
// order so that pops occur in forward clockwise order.
//
// Complexity: O(V + E) time, O(V) memory.
type DFS struct{}

// NewDFS constructs the depth-first strategy.
func NewDFS() *DFS { return &DFS{} }

// Name returns "DFS".
func (*DFS) Name() string { return "DFS" }

// Search runs DFS from start toward target; the target test occurs on pop.
func (*DFS) Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result {
	res := newRunning()

	stack := []grid.Cell{start}
	visited := map[grid.Cell]struct{}{start: {}}
	parent := map[grid.Cell]grid.Cell{start: start}

	for len(stack) > 0 {
		res.Steps++
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Visited = append(res.Visited, current)

		res.Frontiers = append(res.Frontiers, snapshot(stack))

		if current == target {
			res.Path = reconstructPath(parent, target, start, len(parent))
			res.Status = StatusFound
			res.Message = fmt.Sprintf("Path found! Length: %d, Visited: %d",
				len(res.Path), len(res.Visited))

			return res
		}

		// Push in reverse so the first offset direction is popped first.
		nbs := neighbors(current)
		for i := len(nbs) - 1; i >= 0; i-- {
			next := nbs[i]
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			stack = append(stack, next)
		}
	}

	res.Status = StatusNotFound
	res.Message = fmt.Sprintf("No path found. Visited: %d nodes", len(res.Visited))

	return res
}
