package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS finds the diagonal staircase across an empty 5×5 board.
// The path excludes both endpoints, so four moves leave three cells.
func ExampleBFS() {
	g, err := grid.New(5, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.BFS(g, grid.Point{Row: 0, Col: 0}, grid.Point{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path)
	fmt.Println("expanded:", len(res.Visited))
	// Output:
	// found: true
	// path: [(1,1) (2,2) (3,3)]
	// expanded: 23
}

// ExampleAStar shows the octile heuristic guiding the search straight down
// the diagonal: only the three path cells are ever expanded.
func ExampleAStar() {
	g, err := grid.New(5, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar(g, grid.Point{Row: 0, Col: 0}, grid.Point{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("visited:", res.Visited)
	fmt.Println("path:", res.Path)
	// Output:
	// visited: [(1,1) (2,2) (3,3)]
	// path: [(1,1) (2,2) (3,3)]
}

// ExampleResult_Replay re-delivers the precomputed event stream, which is
// how a renderer paces an animated playback after the search finished.
func ExampleResult_Replay() {
	g, _ := grid.New(3, 3)
	res, err := search.AStar(g, grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, ev := range res.Events() {
		switch ev.Type {
		case search.EventVisited:
			fmt.Println("visited", ev.Cell)
		case search.EventPathFound:
			fmt.Println("path", ev.Path)
		case search.EventPathNotFound:
			fmt.Println("no path")
		}
	}
	// Output:
	// visited (1,1)
	// path [(1,1)]
}
