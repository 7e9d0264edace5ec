package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// Bidirectional runs two simultaneous FIFO searches, one rooted at the
// start and one at the target, alternating one expansion step from each
// side per outer iteration. After expanding a cell, every newly
// discovered neighbor is checked against the opposite side's visited
// set; the first neighbor present in both is the meeting cell, and the
// final path splices the start-side parent chain (start→meeting) with
// the reversed target-side chain (meeting→target) without double-counting
// the meeting cell.
//
// On the same grid it expands at most as many cells as BFS.
//
// Complexity: O(b^(d/2)) expansions per side, O(V) memory.
type Bidirectional struct{}

// NewBidirectional constructs the bidirectional strategy.
func NewBidirectional() *Bidirectional { return &Bidirectional{} }

// Name returns "Bidirectional".
func (*Bidirectional) Name() string { return "Bidirectional" }

// Search alternates expansions from both ends until the frontiers meet
// or either side exhausts its queue.
func (*Bidirectional) Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result {
	if start == target {
		return foundAtStart(start)
	}

	res := newRunning()

	queueS := []grid.Cell{start}
	queueT := []grid.Cell{target}
	visitedS := map[grid.Cell]struct{}{start: {}}
	visitedT := map[grid.Cell]struct{}{target: {}}
	parentS := map[grid.Cell]grid.Cell{start: start}
	parentT := map[grid.Cell]grid.Cell{target: target}

	var meeting grid.Cell
	met := false

	// Either queue emptying means the two halves can never connect.
	for len(queueS) > 0 && len(queueT) > 0 {
		res.Steps++

		// Expand one cell from the start side.
		current := queueS[0]
		queueS = queueS[1:]
		res.Visited = append(res.Visited, current)

		for _, next := range neighbors(current) {
			if _, seen := visitedS[next]; seen {
				continue
			}
			visitedS[next] = struct{}{}
			parentS[next] = current
			queueS = append(queueS, next)
			if _, other := visitedT[next]; other {
				meeting = next
				met = true
				break
			}
		}
		if met {
			break
		}

		// Expand one cell from the target side.
		if len(queueT) > 0 {
			current = queueT[0]
			queueT = queueT[1:]
			res.Visited = append(res.Visited, current)

			for _, next := range neighbors(current) {
				if _, seen := visitedT[next]; seen {
					continue
				}
				visitedT[next] = struct{}{}
				parentT[next] = current
				queueT = append(queueT, next)
				if _, other := visitedS[next]; other {
					meeting = next
					met = true
					break
				}
			}
		}

		// Snapshot both frontiers, start side first, in queue order.
		snap := make([]grid.Cell, 0, len(queueS)+len(queueT))
		snap = append(snap, queueS...)
		snap = append(snap, queueT...)
		res.Frontiers = append(res.Frontiers, snap)

		if met {
			break
		}
	}

	if met {
		res.Path = splicePath(parentS, parentT, meeting, start, target)
		res.Status = StatusFound
		res.Message = fmt.Sprintf("Path found! Length: %d, Visited: %d (Bidirectional)",
			len(res.Path), len(res.Visited))

		return res
	}

	res.Status = StatusNotFound
	res.Message = fmt.Sprintf("No path found. Visited: %d nodes", len(res.Visited))

	return res
}

// splicePath joins the start-side chain start→meeting with the
// target-side chain meeting→target. Both half-walks are bounded by their
// parent-map sizes, which always exceed the longest possible chain.
func splicePath(parentS, parentT map[grid.Cell]grid.Cell, meeting, start, target grid.Cell) []grid.Cell {
	path := reconstructPath(parentS, meeting, start, len(parentS))

	// The target-side chain is followed root-ward, which on that side
	// means toward the target; the meeting cell itself is already in path.
	cur, ok := parentT[meeting]
	if !ok || cur == meeting {
		return path
	}
	for steps := 0; cur != target && steps < len(parentT); steps++ {
		path = append(path, cur)
		next, known := parentT[cur]
		if !known || next == cur {
			return path
		}
		cur = next
	}
	path = append(path, cur)

	return path
}
