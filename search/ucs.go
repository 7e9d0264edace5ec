package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// UCS is the cost-priority strategy (Uniform-Cost Search).
// It always expands the frontier cell with the lowest cumulative path
// cost, tie-broken by insertion order. Orthogonal moves cost 1.0 and the
// two diagonal moves in the offset table cost √2, so UCS can prefer a
// route BFS would not.
//
// Relaxation: a neighbor is re-enqueued whenever a strictly lower
// cumulative cost is found, even if it was already visited; the stale
// heap entry is not removed (lazy decrease-key), so a relaxed cell can be
// expanded — and counted — more than once.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
type UCS struct{}

// NewUCS constructs the cost-priority strategy.
func NewUCS() *UCS { return &UCS{} }

// Name returns "UCS".
func (*UCS) Name() string { return "UCS" }

// Search runs UCS from start toward target; the target test occurs on pop,
// at which point the popped cost is minimal among all feasible paths.
func (*UCS) Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result {
	res := newRunning()

	cost := map[grid.Cell]float64{start: 0}
	visited := map[grid.Cell]struct{}{start: {}}
	parent := map[grid.Cell]grid.Cell{start: start}

	// Min-heap ordered by (cumulative cost, insertion sequence).
	pq := make(cellPQ, 0, 1)
	heap.Init(&pq)
	seq := 0
	heap.Push(&pq, &cellItem{cell: start, cost: 0, seq: seq})

	for pq.Len() > 0 {
		res.Steps++
		item := heap.Pop(&pq).(*cellItem)
		current := item.cell
		res.Visited = append(res.Visited, current)

		res.Frontiers = append(res.Frontiers, pq.cells())

		if current == target {
			res.Path = reconstructPath(parent, target, start, len(parent))
			res.Status = StatusFound
			res.Message = fmt.Sprintf("Path found! Length: %d, Cost: %.3f, Visited: %d",
				len(res.Path), item.cost, len(res.Visited))

			return res
		}

		for _, next := range neighbors(current) {
			newCost := cost[current] + edgeCost(current, next)

			old, known := cost[next]
			if !known {
				old = math.Inf(1)
			}
			_, seen := visited[next]
			if seen && newCost >= old {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			cost[next] = newCost
			seq++
			heap.Push(&pq, &cellItem{cell: next, cost: newCost, seq: seq})
		}
	}

	res.Status = StatusNotFound
	res.Message = fmt.Sprintf("No path found. Visited: %d nodes", len(res.Visited))

	return res
}

// edgeCost returns the step cost between two adjacent cells:
// √2 for the diagonal offsets, 1.0 otherwise.
func edgeCost(from, to grid.Cell) float64 {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	if dr == 1 && dc == 1 {
		return CostDiagonal
	}

	return CostOrthogonal
}

// cellItem pairs a cell with its cumulative cost and insertion sequence.
type cellItem struct {
	cell grid.Cell
	cost float64
	seq  int
}

// cellPQ is a min-heap of *cellItem ordered by cost, then insertion order.
// Lazy decrease-key: improved costs push duplicates rather than fix
// existing entries.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// cells lists the queued cells in heap-array order, for frontier snapshots.
func (pq cellPQ) cells() []grid.Cell {
	out := make([]grid.Cell, len(pq))
	for i, item := range pq {
		out[i] = item.cell
	}

	return out
}
