// Package grid implements the occupancy-grid environment:
// cell states, start/target markers, static walls, dynamic obstacles,
// and bounds-checked neighbor enumeration over a fixed six-direction
// adjacency.
package grid

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Grid is a square matrix of cell states with at most one Start marker,
// at most one Target marker, a static wall set, and a bounded
// dynamic-obstacle set. All mutation methods validate their input and
// report refusal as a boolean rather than an error.
//
// Grid is not safe for concurrent use; callers interleave mutation and
// search in one control loop.
type Grid struct {
	size      int
	cells     [][]CellState
	start     Cell
	target    Cell
	hasStart  bool
	hasTarget bool
	walls     map[Cell]struct{}
	dynamic   map[Cell]struct{}
	rng       *rand.Rand
	log       *zap.Logger
	prob      float64
	maxObs    int
}

// New constructs an empty size×size Grid.
// Returns ErrBadSize for non-positive sizes, or the sentinel recorded by
// an invalid Option. Complexity: O(size²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	// 1. Resolve options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		o.Logger.Error("grid: invalid option", zap.Error(o.err))
		return nil, o.err
	}

	// 2. Validate dimensions.
	if size <= 0 {
		o.Logger.Error("grid: invalid size", zap.Int("size", size))
		return nil, ErrBadSize
	}

	// 3. Seed randomness lazily when the caller did not inject a source.
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 4. Allocate the cell matrix (all Empty).
	cells := make([][]CellState, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]CellState, size)
	}

	return &Grid{
		size:    size,
		cells:   cells,
		walls:   make(map[Cell]struct{}),
		dynamic: make(map[Cell]struct{}),
		rng:     o.Rand,
		log:     o.Logger,
		prob:    o.ObstacleProbability,
		maxObs:  o.MaxDynamicObstacles,
	}, nil
}

// InitializeDefault places the start marker at (1,1) and the target at
// (size−2, size−2), the canonical demo layout.
func (g *Grid) InitializeDefault() {
	g.SetStart(Cell{Row: 1, Col: 1})
	g.SetTarget(Cell{Row: g.size - 2, Col: g.size - 2})
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// Start returns the start marker and whether one is set.
func (g *Grid) Start() (Cell, bool) { return g.start, g.hasStart }

// Target returns the target marker and whether one is set.
func (g *Grid) Target() (Cell, bool) { return g.target, g.hasTarget }

// InBounds reports whether pos lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(pos Cell) bool {
	return pos.Row >= 0 && pos.Row < g.size && pos.Col >= 0 && pos.Col < g.size
}

// SetStart moves the start marker to pos. It refuses (returning false)
// out-of-bounds positions, the current target, and impassable cells, so
// the marker invariants always hold. The previous start cell reverts to
// Empty.
func (g *Grid) SetStart(pos Cell) bool {
	if !g.InBounds(pos) {
		g.log.Warn("grid: cannot set start out of bounds",
			zap.Int("row", pos.Row), zap.Int("col", pos.Col))
		return false
	}
	if g.hasTarget && pos == g.target {
		g.log.Warn("grid: start and target cannot be the same")
		return false
	}
	if _, wall := g.walls[pos]; wall {
		return false
	}
	if _, obs := g.dynamic[pos]; obs {
		return false
	}
	if g.hasStart {
		g.cells[g.start.Row][g.start.Col] = Empty
	}
	g.start = pos
	g.hasStart = true
	g.cells[pos.Row][pos.Col] = Start

	return true
}

// SetTarget moves the target marker to pos, under the same refusal rules
// as SetStart.
func (g *Grid) SetTarget(pos Cell) bool {
	if !g.InBounds(pos) {
		g.log.Warn("grid: cannot set target out of bounds",
			zap.Int("row", pos.Row), zap.Int("col", pos.Col))
		return false
	}
	if g.hasStart && pos == g.start {
		g.log.Warn("grid: start and target cannot be the same")
		return false
	}
	if _, wall := g.walls[pos]; wall {
		return false
	}
	if _, obs := g.dynamic[pos]; obs {
		return false
	}
	if g.hasTarget {
		g.cells[g.target.Row][g.target.Col] = Empty
	}
	g.target = pos
	g.hasTarget = true
	g.cells[pos.Row][pos.Col] = Target

	return true
}

// AddWall places a static wall at pos. Refuses out-of-bounds positions
// and the start/target markers.
func (g *Grid) AddWall(pos Cell) bool {
	if !g.InBounds(pos) {
		return false
	}
	if (g.hasStart && pos == g.start) || (g.hasTarget && pos == g.target) {
		g.log.Warn("grid: cannot add wall on marker",
			zap.Int("row", pos.Row), zap.Int("col", pos.Col))
		return false
	}
	g.cells[pos.Row][pos.Col] = Wall
	g.walls[pos] = struct{}{}

	return true
}

// RemoveWall clears a static wall at pos, reporting whether one existed.
func (g *Grid) RemoveWall(pos Cell) bool {
	if !g.InBounds(pos) {
		return false
	}
	if g.cells[pos.Row][pos.Col] != Wall {
		return false
	}
	g.cells[pos.Row][pos.Col] = Empty
	delete(g.walls, pos)

	return true
}

// ClearWalls removes every static wall. Complexity: O(size²).
func (g *Grid) ClearWalls() {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == Wall {
				g.cells[r][c] = Empty
			}
		}
	}
	g.walls = make(map[Cell]struct{})
}

// SpawnDynamicObstacle places one dynamic obstacle with the configured
// probability, chosen uniformly among currently Empty non-marker cells,
// while the live obstacle count is below the cap. Returns the chosen
// position and true if an obstacle was placed.
func (g *Grid) SpawnDynamicObstacle() (Cell, bool) {
	// 1. Cap gate: no-op once the bounded set is full.
	if len(g.dynamic) >= g.maxObs {
		return Cell{}, false
	}

	// 2. Probability gate.
	if g.rng.Float64() >= g.prob {
		return Cell{}, false
	}

	// 3. Uniform choice among Empty cells. Marker cells carry Start/Target
	//    states, overlay cells carry Frontier/Explored/Path, so the state
	//    test alone excludes them.
	empty := make([]Cell, 0, g.size*g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == Empty {
				empty = append(empty, Cell{Row: r, Col: c})
			}
		}
	}
	if len(empty) == 0 {
		return Cell{}, false
	}

	pos := empty[g.rng.Intn(len(empty))]
	g.cells[pos.Row][pos.Col] = DynamicObstacle
	g.dynamic[pos] = struct{}{}

	return pos, true
}

// RemoveDynamicObstacle clears a dynamic obstacle at pos, reporting
// whether one existed.
func (g *Grid) RemoveDynamicObstacle(pos Cell) bool {
	if !g.InBounds(pos) {
		return false
	}
	if _, ok := g.dynamic[pos]; !ok {
		return false
	}
	g.cells[pos.Row][pos.Col] = Empty
	delete(g.dynamic, pos)

	return true
}

// ClearDynamicObstacles removes every dynamic obstacle.
func (g *Grid) ClearDynamicObstacles() {
	for pos := range g.dynamic {
		g.cells[pos.Row][pos.Col] = Empty
	}
	g.dynamic = make(map[Cell]struct{})
}

// DynamicObstacleCount returns the number of live dynamic obstacles.
func (g *Grid) DynamicObstacleCount() int { return len(g.dynamic) }

// IsWalkable reports whether pos can be traversed: false for
// out-of-bounds, wall, or dynamic-obstacle cells; true otherwise.
// Complexity: O(1).
func (g *Grid) IsWalkable(pos Cell) bool {
	if !g.InBounds(pos) {
		return false
	}
	s := g.cells[pos.Row][pos.Col]

	return s != Wall && s != DynamicObstacle
}

// Neighbors returns the walkable neighbors of pos in the fixed clockwise
// order of Directions: Up, Right, Down, Down-Right, Left, Up-Left.
// The ordering is load-bearing: two callers replaying the same grid must
// observe identical visit sequences. Returns nil for an out-of-bounds pos.
// Complexity: O(1) (six probes).
func (g *Grid) Neighbors(pos Cell) []Cell {
	if !g.InBounds(pos) {
		return nil
	}
	neighbors := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		next := Cell{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if g.IsWalkable(next) {
			neighbors = append(neighbors, next)
		}
	}

	return neighbors
}

// MarkFrontier overlays the Frontier state on an Empty cell.
// Walls, obstacles, and markers are never overwritten.
func (g *Grid) MarkFrontier(pos Cell) bool {
	if !g.InBounds(pos) {
		return false
	}
	if g.cells[pos.Row][pos.Col] != Empty {
		return false
	}
	g.cells[pos.Row][pos.Col] = Frontier

	return true
}

// MarkExplored overlays the Explored state on an Empty or Frontier cell.
func (g *Grid) MarkExplored(pos Cell) bool {
	if !g.InBounds(pos) {
		return false
	}
	s := g.cells[pos.Row][pos.Col]
	if s != Empty && s != Frontier {
		return false
	}
	g.cells[pos.Row][pos.Col] = Explored

	return true
}

// MarkPath overlays the Path state on every eligible cell of path,
// skipping markers and impassable cells, and returns how many cells
// were marked.
func (g *Grid) MarkPath(path []Cell) int {
	marked := 0
	for _, pos := range path {
		if !g.InBounds(pos) {
			continue
		}
		if (g.hasStart && pos == g.start) || (g.hasTarget && pos == g.target) {
			continue
		}
		s := g.cells[pos.Row][pos.Col]
		if s == Wall || s == DynamicObstacle {
			continue
		}
		g.cells[pos.Row][pos.Col] = Path
		marked++
	}

	return marked
}

// ClearSearchVisualization reverts all Frontier/Explored/Path overlays
// to Empty. Walls, obstacles, and markers are untouched.
// Complexity: O(size²).
func (g *Grid) ClearSearchVisualization() {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			switch g.cells[r][c] {
			case Frontier, Explored, Path:
				g.cells[r][c] = Empty
			}
		}
	}
}

// Reset clears search overlays and dynamic obstacles, keeping walls and
// markers in place.
func (g *Grid) Reset() {
	g.ClearSearchVisualization()
	g.ClearDynamicObstacles()
}

// IsPathBlocked reports whether any cell of path is no longer walkable.
// An empty path is never blocked.
func (g *Grid) IsPathBlocked(path []Cell) bool {
	for _, pos := range path {
		if !g.IsWalkable(pos) {
			return true
		}
	}

	return false
}

// StateAt returns the state of pos. Out-of-bounds positions read as Wall,
// so renderers need no separate bounds branch.
func (g *Grid) StateAt(pos Cell) CellState {
	if !g.InBounds(pos) {
		return Wall
	}

	return g.cells[pos.Row][pos.Col]
}

// RandomizeWalls replaces all static walls with a random layout of the
// given density in [0,1]. Marker cells are never walled. Returns
// ErrBadDensity (with no partial mutation) for densities outside [0,1].
// Complexity: O(size²).
func (g *Grid) RandomizeWalls(density float64) error {
	if density < 0 || density > 1 {
		g.log.Error("grid: invalid wall density", zap.Float64("density", density))
		return ErrBadDensity
	}

	g.ClearWalls()
	added := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			pos := Cell{Row: r, Col: c}
			if (g.hasStart && pos == g.start) || (g.hasTarget && pos == g.target) {
				continue
			}
			if g.rng.Float64() < density {
				if g.AddWall(pos) {
					added++
				}
			}
		}
	}
	g.log.Info("grid: randomized walls",
		zap.Int("count", added), zap.Float64("density", density))

	return nil
}
