// Package replan implements the dynamic replanning coordinator: it
// inspects a previously computed path against the live grid, decides
// whether it is still valid for an agent at a given position, and
// re-invokes a search strategy from that position when it is not.
package replan

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Stats reports the coordinator's monotonic counters plus the grid's
// live dynamic-obstacle count.
type Stats struct {
	// ReplanCount is how many replans were triggered, successful or not.
	ReplanCount int

	// BlockedPaths is how many blocked-path detections occurred,
	// independent of whether a replan was actually triggered.
	BlockedPaths int

	// DynamicObstacles is the number of obstacles currently on the grid.
	DynamicObstacles int
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger injects a telemetry sink. Passing nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// Coordinator watches a search result for invalidation by grid mutation
// and re-plans from the agent's current position. Counters are
// monotonic and reset only by Reset. Not safe for concurrent use; it
// runs strictly interleaved with search stepping in one control loop.
type Coordinator struct {
	grid         *grid.Grid
	log          *zap.Logger
	replanCount  int
	blockedPaths int
}

// New constructs a Coordinator over g.
func New(g *grid.Grid, opts ...Option) *Coordinator {
	c := &Coordinator{grid: g, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SpawnDynamicObstacle delegates to the grid's probabilistic spawner.
func (c *Coordinator) SpawnDynamicObstacle() (grid.Cell, bool) {
	return c.grid.SpawnDynamicObstacle()
}

// CheckPathBlocked reports whether any path cell from fromIndex onward
// is no longer walkable, incrementing the blocked-path counter on the
// first detection. Out-of-range indices and empty paths are never
// blocked.
func (c *Coordinator) CheckPathBlocked(path []grid.Cell, fromIndex int) bool {
	if len(path) == 0 || fromIndex >= len(path) {
		return false
	}
	if fromIndex < 0 {
		fromIndex = 0
	}
	for i := fromIndex; i < len(path); i++ {
		if !c.grid.IsWalkable(path[i]) {
			c.blockedPaths++
			c.log.Info("replan: path blocked",
				zap.Int("row", path[i].Row),
				zap.Int("col", path[i].Col),
				zap.Int("index", i))

			return true
		}
	}

	return false
}

// ReplanNeeded decides whether the agent at agentPos must re-plan:
// the agent has drifted off the known path, the remaining path is
// blocked, or the single next cell is blocked. Results without a found
// path never need a replan.
func (c *Coordinator) ReplanNeeded(res *search.Result, agentPos grid.Cell) bool {
	// 1. Nothing to protect: only a found path can be invalidated.
	if res == nil || res.Status != search.StatusFound || len(res.Path) == 0 {
		return false
	}

	// 2. Locate the agent on the path; off-path means replan
	//    unconditionally.
	index := -1
	for i, cell := range res.Path {
		if cell == agentPos {
			index = i
			break
		}
	}
	if index < 0 {
		return true
	}

	// 3. Scan the remaining path for blocked cells.
	if c.CheckPathBlocked(res.Path, index+1) {
		return true
	}

	// 4. Explicitly probe the single next cell. The scan above already
	//    covered it; the separate check is kept because it changes which
	//    condition is observed first, and downstream logging depends on
	//    that order.
	next := index + 1
	if next < len(res.Path) && !c.grid.IsWalkable(res.Path[next]) {
		return true
	}

	return false
}

// TriggerReplan clears prior visualization state and re-invokes strategy
// with start = agentPos and the grid's current target. The replan
// counter increments unconditionally, even when the new search fails.
// With no target set, the search runs toward the zero cell and reports
// its own failure as data.
func (c *Coordinator) TriggerReplan(agentPos grid.Cell, strategy search.Strategy, neighbors grid.NeighborFunc) *search.Result {
	c.replanCount++
	c.grid.ClearSearchVisualization()

	target, _ := c.grid.Target()
	res := strategy.Search(agentPos, target, neighbors)

	c.log.Info("replan: triggered",
		zap.String("strategy", strategy.Name()),
		zap.Int("row", agentPos.Row),
		zap.Int("col", agentPos.Col),
		zap.String("status", res.Status.String()))

	return res
}

// Stats returns the current counters.
func (c *Coordinator) Stats() Stats {
	return Stats{
		ReplanCount:      c.replanCount,
		BlockedPaths:     c.blockedPaths,
		DynamicObstacles: c.grid.DynamicObstacleCount(),
	}
}

// Reset zeroes the counters. Grid state is untouched.
func (c *Coordinator) Reset() {
	c.replanCount = 0
	c.blockedPaths = 0
}
