package search_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/search"
)

// benchmarkStrategy runs s on a fixed-seed maze of the default size.
func benchmarkStrategy(b *testing.B, s search.Strategy) {
	res, err := maze.Generate(maze.DefaultHeight, maze.DefaultWidth, maze.DefaultRewards, maze.NewRNG(42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = search.Solve(s, res.Grid, res.Start, res.Goal)
	}
}

func BenchmarkAStar(b *testing.B)     { benchmarkStrategy(b, search.AStar) }
func BenchmarkDijkstra(b *testing.B)  { benchmarkStrategy(b, search.Dijkstra) }
func BenchmarkGreedy(b *testing.B)    { benchmarkStrategy(b, search.Greedy) }
func BenchmarkBestFirst(b *testing.B) { benchmarkStrategy(b, search.BestFirst) }
func BenchmarkDFS(b *testing.B)       { benchmarkStrategy(b, search.DFS) }
func BenchmarkIDAStar(b *testing.B)   { benchmarkStrategy(b, search.IDAStar) }
