package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// DLS is the depth-bounded-LIFO strategy (Depth-Limited Search):
// a recursive depth-first walk that refuses to explore past a configured
// depth limit along every branch. It returns NotFound once the limit is
// exhausted everywhere, without ever looping — within one attempt a cell
// is claimed on insertion into the parent map, which prevents cycles.
//
// Complexity: O(b^L) time worst case (b = branching factor, L = limit),
// O(L) recursion depth.
type DLS struct {
	limit int
}

// DLSOption configures a DLS instance.
type DLSOption func(*DLS)

// WithDepthLimit bounds the walk at limit. Negative limits are an invalid
// configuration and panic with ErrBadDepthLimit.
func WithDepthLimit(limit int) DLSOption {
	return func(s *DLS) {
		if limit < 0 {
			panic(ErrBadDepthLimit.Error())
		}
		s.limit = limit
	}
}

// NewDLS constructs the depth-limited strategy with DefaultDepthLimit
// unless overridden by WithDepthLimit.
func NewDLS(opts ...DLSOption) *DLS {
	s := &DLS{limit: DefaultDepthLimit}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns "DLS".
func (*DLS) Name() string { return "DLS" }

// DepthLimit returns the configured bound.
func (s *DLS) DepthLimit() int { return s.limit }

// dlsWalker holds the per-attempt state of one bounded walk.
type dlsWalker struct {
	target    grid.Cell
	limit     int
	neighbors grid.NeighborFunc
	visited   map[grid.Cell]struct{}
	parent    map[grid.Cell]grid.Cell
	res       *Result
}

// Search runs one depth-bounded walk from start toward target.
func (s *DLS) Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result {
	if start == target {
		return foundAtStart(start)
	}

	w := &dlsWalker{
		target:    target,
		limit:     s.limit,
		neighbors: neighbors,
		visited:   make(map[grid.Cell]struct{}),
		parent:    map[grid.Cell]grid.Cell{start: start},
		res:       newRunning(),
	}

	if w.walk(start, 0) {
		w.res.Path = reconstructPath(w.parent, target, start, len(w.parent))
		w.res.Status = StatusFound
		w.res.Message = fmt.Sprintf("Path found within depth %d! Length: %d, Visited: %d",
			s.limit, len(w.res.Path), len(w.res.Visited))

		return w.res
	}

	w.res.Status = StatusNotFound
	w.res.Message = fmt.Sprintf("No path found within depth %d. Visited: %d nodes",
		s.limit, len(w.res.Visited))

	return w.res
}

// walk visits node at the given depth and recurses while depth < limit.
// Returns true once the target is reached.
func (w *dlsWalker) walk(node grid.Cell, depth int) bool {
	w.res.Steps++

	if _, seen := w.visited[node]; !seen {
		w.visited[node] = struct{}{}
		w.res.Visited = append(w.res.Visited, node)
	}

	// Recursion carries the frontier implicitly; the snapshot per
	// expansion is empty by construction.
	w.res.Frontiers = append(w.res.Frontiers, []grid.Cell{})

	if node == w.target {
		return true
	}
	if depth >= w.limit {
		return false
	}

	for _, next := range w.neighbors(node) {
		if _, seen := w.visited[next]; seen {
			continue
		}
		if _, claimed := w.parent[next]; claimed {
			continue
		}
		w.parent[next] = node
		if w.walk(next, depth+1) {
			return true
		}
	}

	return false
}
