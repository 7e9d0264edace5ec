package search_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// TestIDDFS_FindsShallowest: sweeps over increasing bounds stop at the
// first depth that reaches the target, so on these layouts the path is
// as short as BFS's while the cumulative step count is larger.
func TestIDDFS_FindsShallowest(t *testing.T) {
	cases := []struct {
		name          string
		build         func(t *testing.T) *grid.Grid
		start, target grid.Cell
	}{
		{
			name:   "open 3x3",
			build:  func(t *testing.T) *grid.Grid { return openGrid(t, 3) },
			start:  grid.Cell{Row: 0, Col: 0},
			target: grid.Cell{Row: 2, Col: 2},
		},
		{
			name:   "corridor",
			build:  func(t *testing.T) *grid.Grid { return corridorGrid(t) },
			start:  grid.Cell{Row: 2, Col: 0},
			target: grid.Cell{Row: 2, Col: 4},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(t)
			id := search.NewIDDFS().Search(tc.start, tc.target, g.Neighbors)
			bfs := search.NewBFS().Search(tc.start, tc.target, g.Neighbors)

			if id.Status != search.StatusFound {
				t.Fatalf("status = %v; want found", id.Status)
			}
			if len(id.Path) != len(bfs.Path) {
				t.Errorf("path length = %d; want %d", len(id.Path), len(bfs.Path))
			}
			if id.Steps <= bfs.Steps {
				t.Errorf("Steps = %d; want more than BFS's %d (sweeps re-expand)", id.Steps, bfs.Steps)
			}
			if len(id.Frontiers) != id.Steps {
				t.Errorf("len(Frontiers) = %d; want %d", len(id.Frontiers), id.Steps)
			}
		})
	}
}

// TestIDDFS_MaxDepthBound: on the corridor the target is 4 hops out, so
// capping the deepest sweep below that fails.
func TestIDDFS_MaxDepthBound(t *testing.T) {
	start := grid.Cell{Row: 2, Col: 0}
	target := grid.Cell{Row: 2, Col: 4}

	g := corridorGrid(t)
	res := search.NewIDDFS(search.WithMaxDepth(3)).Search(start, target, g.Neighbors)
	if res.Status != search.StatusNotFound {
		t.Fatalf("max 3: status = %v; want not_found", res.Status)
	}

	res = search.NewIDDFS(search.WithMaxDepth(4)).Search(start, target, g.Neighbors)
	if res.Status != search.StatusFound {
		t.Fatalf("max 4: status = %v; want found", res.Status)
	}
	if len(res.Path) != 5 {
		t.Errorf("path length = %d; want 5", len(res.Path))
	}
}

// TestIDDFS_Default confirms the default sweep ceiling.
func TestIDDFS_Default(t *testing.T) {
	if got := search.NewIDDFS().MaxDepth(); got != search.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d; want %d", got, search.DefaultMaxDepth)
	}
}

// TestWithMaxDepth_Negative: a negative ceiling panics at construction.
func TestWithMaxDepth_Negative(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, ok := r.(string); !ok || msg != search.ErrBadMaxDepth.Error() {
			t.Fatalf("panic = %v; want %q", r, search.ErrBadMaxDepth.Error())
		}
	}()
	search.NewIDDFS(search.WithMaxDepth(-1))
}
