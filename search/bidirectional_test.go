package search_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// TestBidirectional_Meets3x3 pins the trace on an open 3×3 grid: the two
// frontiers touch at (1,1) after a single expansion per side.
func TestBidirectional_Meets3x3(t *testing.T) {
	g := openGrid(t, 3)
	res := search.NewBidirectional().Search(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}, g.Neighbors)

	if res.Status != search.StatusFound {
		t.Fatalf("status = %v; want found", res.Status)
	}
	wantVisited := []grid.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 2}}
	if !reflect.DeepEqual(res.Visited, wantVisited) {
		t.Errorf("Visited = %v; want %v", res.Visited, wantVisited)
	}
	wantPath := []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	if !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("Path = %v; want %v", res.Path, wantPath)
	}
	if res.Steps != 1 {
		t.Errorf("Steps = %d; want 1", res.Steps)
	}
}

// TestBidirectional_VisitsNoMoreThanBFS: meeting in the middle expands
// at most as many cells as a single-sided sweep.
func TestBidirectional_VisitsNoMoreThanBFS(t *testing.T) {
	g := openGrid(t, 10)
	start := grid.Cell{Row: 1, Col: 1}
	target := grid.Cell{Row: 8, Col: 8}

	bi := search.NewBidirectional().Search(start, target, g.Neighbors)
	bfs := search.NewBFS().Search(start, target, g.Neighbors)

	if bi.Status != search.StatusFound {
		t.Fatalf("status = %v; want found", bi.Status)
	}
	if len(bi.Visited) > len(bfs.Visited) {
		t.Errorf("visited %d cells; BFS visited %d", len(bi.Visited), len(bfs.Visited))
	}
	if bi.Path[0] != start || bi.Path[len(bi.Path)-1] != target {
		t.Errorf("path endpoints = %v, %v; want %v, %v",
			bi.Path[0], bi.Path[len(bi.Path)-1], start, target)
	}
	seen := make(map[grid.Cell]struct{}, len(bi.Path))
	for i, c := range bi.Path {
		if _, dup := seen[c]; dup {
			t.Fatalf("cell %v repeats in path", c)
		}
		seen[c] = struct{}{}
		if i > 0 && !legalStep(bi.Path[i-1], bi.Path[i]) {
			t.Fatalf("illegal step %v -> %v", bi.Path[i-1], bi.Path[i])
		}
	}
}

// TestBidirectional_ExhaustsOnSeal: sealing off the start leaves the
// start-side queue to drain, which ends the run without a meeting.
func TestBidirectional_ExhaustsOnSeal(t *testing.T) {
	g := openGrid(t, 10)
	start := grid.Cell{Row: 5, Col: 5}
	for _, d := range grid.Directions {
		g.AddWall(grid.Cell{Row: start.Row + d.Row, Col: start.Col + d.Col})
	}

	res := search.NewBidirectional().Search(start, grid.Cell{Row: 0, Col: 0}, g.Neighbors)
	if res.Status != search.StatusNotFound {
		t.Fatalf("status = %v; want not_found", res.Status)
	}
	if res.Path != nil {
		t.Errorf("Path = %v; want nil", res.Path)
	}
}
