package layout

import (
	"sort"
	"testing"

	"github.com/devang-m/graphlay/internal/graph"
)

func nodesAt(coords ...[2]float64) []graph.Node {
	nodes := make([]graph.Node, len(coords))
	for i, c := range coords {
		nodes[i] = graph.Node{X: c[0], Y: c[1], Radius: 10}
	}
	return nodes
}

func sortedCopy(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)
	return out
}

func TestTrianglePicksSmallestContaining(t *testing.T) {
	// Node 0 at origin, inside both a tight triangle (1,2,3) and a much
	// larger one (4,5,6). The tight one must win.
	nodes := nodesAt(
		[2]float64{0, 0},
		[2]float64{15, 0}, [2]float64{-10, 12}, [2]float64{-10, -12},
		[2]float64{150, 0}, [2]float64{-100, 120}, [2]float64{-100, -120},
	)
	got := sortedCopy(TriangleNeighbors(nodes, 0))
	want := []int{1, 2, 3}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("expected triangle %v, got %v", want, got)
	}
}

func TestTriangleFallbackFewNodes(t *testing.T) {
	nodes := nodesAt([2]float64{0, 0}, [2]float64{50, 0}, [2]float64{0, 50})
	got := sortedCopy(TriangleNeighbors(nodes, 0))
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected both other nodes, got %v", got)
	}
}

func TestTriangleFallbackOutsideHull(t *testing.T) {
	// Node 0 sits far outside the cluster; no triangle contains it, so
	// the 3 nearest cluster members are chosen.
	nodes := nodesAt(
		[2]float64{500, 500},
		[2]float64{0, 0}, [2]float64{10, 0}, [2]float64{0, 10}, [2]float64{-200, -200},
	)
	got := sortedCopy(TriangleNeighbors(nodes, 0))
	want := []int{1, 2, 3}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("expected nearest %v, got %v", want, got)
	}
}

func TestTriangleDegenerateNotContaining(t *testing.T) {
	// All other nodes are collinear with node 0: every candidate triangle
	// is degenerate, so the nearest-3 fallback applies.
	nodes := nodesAt(
		[2]float64{0, 0},
		[2]float64{10, 0}, [2]float64{-10, 0}, [2]float64{30, 0}, [2]float64{-40, 0},
	)
	got := sortedCopy(TriangleNeighbors(nodes, 0))
	want := []int{1, 2, 3}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("expected nearest %v on the degenerate line, got %v", want, got)
	}
}

func TestTriangleSingleOtherNode(t *testing.T) {
	nodes := nodesAt([2]float64{0, 0}, [2]float64{100, 0})
	got := TriangleNeighbors(nodes, 0)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1], got %v", got)
	}
}
