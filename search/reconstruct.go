package search

import "github.com/katalvlaran/pathgrid/grid"

// reconstructPath walks parent pointers from `from` back to `root` and
// returns the cells in root→from order. The root is an explicit sentinel
// rather than a self-referencing map entry, and the walk is bounded by
// limit iterations so a malformed parent chain can never loop; limit
// should be the number of discovered cells (every chain cell is a
// distinct parent-map key, so that always exceeds the chain length).
// Complexity: O(len(path)).
func reconstructPath(parent map[grid.Cell]grid.Cell, from, root grid.Cell, limit int) []grid.Cell {
	path := make([]grid.Cell, 0, limit)
	cur := from
	for steps := 0; cur != root && steps < limit; steps++ {
		next, ok := parent[cur]
		if !ok || next == cur {
			break
		}
		path = append(path, cur)
		cur = next
	}
	path = append(path, cur)

	// Reverse in place: root first, `from` last.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
