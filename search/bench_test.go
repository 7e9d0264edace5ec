package search_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// BenchmarkSearch_Open30 measures each strategy corner-to-corner on an
// open 30×30 grid.
func BenchmarkSearch_Open30(b *testing.B) {
	g, err := grid.New(30)
	if err != nil {
		b.Fatal(err)
	}
	start := grid.Cell{Row: 0, Col: 0}
	target := grid.Cell{Row: 29, Col: 29}

	for _, s := range []search.Strategy{
		search.NewBFS(),
		search.NewDFS(),
		search.NewUCS(),
		search.NewDLS(search.WithDepthLimit(60)),
		search.NewIDDFS(),
		search.NewBidirectional(),
	} {
		b.Run(s.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Search(start, target, g.Neighbors)
			}
		})
	}
}

// BenchmarkSearch_Walled30 measures BFS and UCS on a 30×30 grid with a
// fixed random wall layout.
func BenchmarkSearch_Walled30(b *testing.B) {
	g, err := grid.New(30, grid.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	start := grid.Cell{Row: 0, Col: 0}
	target := grid.Cell{Row: 29, Col: 29}
	g.SetStart(start)
	g.SetTarget(target)
	if err := g.RandomizeWalls(0.2); err != nil {
		b.Fatal(err)
	}

	for _, s := range []search.Strategy{search.NewBFS(), search.NewUCS()} {
		b.Run(s.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Search(start, target, g.Neighbors)
			}
		})
	}
}
