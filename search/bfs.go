package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// BFS is the unweighted-FIFO strategy (Breadth-First Search).
// It expands cells level by level and therefore guarantees a
// shortest path by hop count over the six-direction adjacency —
// hop count, not Euclidean distance: diagonal and orthogonal moves
// both count as one hop.
//
// Complexity: O(V + E) time, O(V) memory, V = walkable cells.
type BFS struct{}

// NewBFS constructs the breadth-first strategy.
func NewBFS() *BFS { return &BFS{} }

// Name returns "BFS".
func (*BFS) Name() string { return "BFS" }

// Search runs BFS from start toward target. The target test occurs on
// dequeue, not on discovery, so the recorded Visited order matches the
// expansion order exactly.
func (*BFS) Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result {
	res := newRunning()

	// Seed the queue; cells are marked visited on discovery.
	queue := []grid.Cell{start}
	visited := map[grid.Cell]struct{}{start: {}}
	parent := map[grid.Cell]grid.Cell{start: start}

	for len(queue) > 0 {
		res.Steps++
		current := queue[0]
		queue = queue[1:]
		res.Visited = append(res.Visited, current)

		// One frontier snapshot per expansion, for replay.
		res.Frontiers = append(res.Frontiers, snapshot(queue))

		if current == target {
			res.Path = reconstructPath(parent, target, start, len(parent))
			res.Status = StatusFound
			res.Message = fmt.Sprintf("Path found! Length: %d, Visited: %d",
				len(res.Path), len(res.Visited))

			return res
		}

		// Discover neighbors in the fixed clockwise order.
		for _, next := range neighbors(current) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			queue = append(queue, next)
		}
	}

	res.Status = StatusNotFound
	res.Message = fmt.Sprintf("No path found. Visited: %d nodes", len(res.Visited))

	return res
}
