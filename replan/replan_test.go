package replan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/replan"
	"github.com/katalvlaran/pathgrid/search"
)

// plannedGrid returns a 10×10 grid with the canonical (1,1)→(8,8)
// markers and a fresh BFS result over it.
func plannedGrid(t *testing.T) (*grid.Grid, *search.Result) {
	t.Helper()
	g, err := grid.New(10)
	require.NoError(t, err)
	g.InitializeDefault()

	start, ok := g.Start()
	require.True(t, ok)
	target, ok := g.Target()
	require.True(t, ok)

	res := search.NewBFS().Search(start, target, g.Neighbors)
	require.Equal(t, search.StatusFound, res.Status)
	require.NotEmpty(t, res.Path)

	return g, res
}

func TestReplanNeeded_BlockedAhead(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	agent := res.Path[2]
	assert.False(t, c.ReplanNeeded(res, agent), "intact path needs no replan")

	// Wall a cell strictly after the agent's position.
	require.True(t, g.AddWall(res.Path[4]))
	assert.True(t, c.ReplanNeeded(res, agent))
	assert.Equal(t, 1, c.Stats().BlockedPaths)
}

func TestReplanNeeded_BehindAgentIgnored(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	// A wall behind the agent does not invalidate the remaining path.
	agent := res.Path[4]
	require.True(t, g.AddWall(res.Path[2]))
	assert.False(t, c.ReplanNeeded(res, agent))
	assert.Equal(t, 0, c.Stats().BlockedPaths)
}

func TestReplanNeeded_OffPath(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	assert.True(t, c.ReplanNeeded(res, grid.Cell{Row: 0, Col: 9}))
}

func TestReplanNeeded_NoFoundPath(t *testing.T) {
	g, _ := plannedGrid(t)
	c := replan.New(g)

	assert.False(t, c.ReplanNeeded(nil, grid.Cell{Row: 1, Col: 1}))

	notFound := &search.Result{Status: search.StatusNotFound}
	assert.False(t, c.ReplanNeeded(notFound, grid.Cell{Row: 1, Col: 1}))
}

func TestCheckPathBlocked_Ranges(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	assert.False(t, c.CheckPathBlocked(nil, 0), "empty path")
	assert.False(t, c.CheckPathBlocked(res.Path, len(res.Path)), "index past end")
	assert.False(t, c.CheckPathBlocked(res.Path, -3), "negative index clamps to 0")

	require.True(t, g.AddWall(res.Path[1]))
	assert.True(t, c.CheckPathBlocked(res.Path, -3))
	assert.False(t, c.CheckPathBlocked(res.Path, 2), "wall lies before the window")
}

func TestTriggerReplan_FromAgent(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	agent := res.Path[3]
	require.True(t, g.AddWall(res.Path[5]))
	require.True(t, c.ReplanNeeded(res, agent))

	fresh := c.TriggerReplan(agent, search.NewBFS(), g.Neighbors)
	require.Equal(t, search.StatusFound, fresh.Status)
	assert.Equal(t, agent, fresh.Path[0])

	target, _ := g.Target()
	assert.Equal(t, target, fresh.Path[len(fresh.Path)-1])
	assert.NotContains(t, fresh.Path, res.Path[5])

	stats := c.Stats()
	assert.Equal(t, 1, stats.ReplanCount)
	assert.Equal(t, 1, stats.BlockedPaths)
}

func TestTriggerReplan_CountsFailures(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	// Seal the target so the replan search cannot succeed.
	target, _ := g.Target()
	for _, d := range grid.Directions {
		g.AddWall(grid.Cell{Row: target.Row + d.Row, Col: target.Col + d.Col})
	}

	fresh := c.TriggerReplan(res.Path[0], search.NewBFS(), g.Neighbors)
	assert.Equal(t, search.StatusNotFound, fresh.Status)
	assert.Equal(t, 1, c.Stats().ReplanCount, "counter moves even on failure")
}

func TestTriggerReplan_ClearsVisualization(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	require.Positive(t, g.MarkPath(res.Path))
	c.TriggerReplan(res.Path[0], search.NewBFS(), g.Neighbors)

	for r := 0; r < g.Size(); r++ {
		for cc := 0; cc < g.Size(); cc++ {
			s := g.StateAt(grid.Cell{Row: r, Col: cc})
			assert.NotEqual(t, grid.Path, s)
			assert.NotEqual(t, grid.Frontier, s)
			assert.NotEqual(t, grid.Explored, s)
		}
	}
}

func TestSpawnDelegation_AndStats(t *testing.T) {
	g, err := grid.New(10,
		grid.WithSeed(1),
		grid.WithObstacleProbability(1),
		grid.WithMaxDynamicObstacles(3),
	)
	require.NoError(t, err)
	c := replan.New(g)

	for i := 0; i < 5; i++ {
		c.SpawnDynamicObstacle()
	}
	assert.Equal(t, 3, c.Stats().DynamicObstacles)
}

func TestReset_KeepsGrid(t *testing.T) {
	g, res := plannedGrid(t)
	c := replan.New(g)

	require.True(t, g.AddWall(res.Path[4]))
	require.True(t, c.ReplanNeeded(res, res.Path[0]))
	c.TriggerReplan(res.Path[0], search.NewBFS(), g.Neighbors)

	c.Reset()
	stats := c.Stats()
	assert.Equal(t, 0, stats.ReplanCount)
	assert.Equal(t, 0, stats.BlockedPaths)
	assert.Equal(t, grid.Wall, g.StateAt(res.Path[4]), "grid state survives Reset")
}
