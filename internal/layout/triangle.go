package layout

import (
	"math"
	"sort"

	"github.com/devang-m/graphlay/internal/graph"
)

// TriangleNeighbors selects the local neighbors the repulsion law acts on
// for node i: the minimal-area triangle of other nodes containing it, or
// the 3 nearest other nodes when no triangle contains it (fewer than 3
// others, or i sits outside their convex hull). Returns 0-3 node indices.
//
// The search enumerates every 3-combination of other nodes, so a full
// step costs O(n^3) per node. Fine for a few dozen nodes; documented as a
// limitation rather than silently optimized.
func TriangleNeighbors(nodes []graph.Node, i int) []int {
	others := make([]int, 0, len(nodes)-1)
	for j := range nodes {
		if j != i {
			others = append(others, j)
		}
	}

	px, py := nodes[i].X, nodes[i].Y

	best := [3]int{-1, -1, -1}
	bestArea := math.Inf(1)
	for a := 0; a < len(others); a++ {
		for b := a + 1; b < len(others); b++ {
			for c := b + 1; c < len(others); c++ {
				na, nb, nc := &nodes[others[a]], &nodes[others[b]], &nodes[others[c]]
				area, inside := containingArea(px, py, na.X, na.Y, nb.X, nb.Y, nc.X, nc.Y)
				if inside && area < bestArea {
					bestArea = area
					best = [3]int{others[a], others[b], others[c]}
				}
			}
		}
	}
	if best[0] >= 0 {
		return best[:]
	}

	// No containing triangle: fall back to the 3 nearest.
	sort.Slice(others, func(a, b int) bool {
		return dist2(nodes, i, others[a]) < dist2(nodes, i, others[b])
	})
	if len(others) > 3 {
		others = others[:3]
	}
	return others
}

// containingArea runs the barycentric point-in-triangle test and reports
// the triangle's area. Degenerate (zero-area) triangles never contain.
func containingArea(px, py, ax, ay, bx, by, cx, cy float64) (float64, bool) {
	d := (by-cy)*(ax-cx) + (cx-bx)*(ay-cy)
	if d == 0 {
		return 0, false
	}
	wa := ((by-cy)*(px-cx) + (cx-bx)*(py-cy)) / d
	wb := ((cy-ay)*(px-cx) + (ax-cx)*(py-cy)) / d
	wc := 1 - wa - wb
	if wa < 0 || wb < 0 || wc < 0 {
		return 0, false
	}
	return math.Abs(d) / 2, true
}

func dist2(nodes []graph.Node, i, j int) float64 {
	dx := nodes[i].X - nodes[j].X
	dy := nodes[i].Y - nodes[j].Y
	return dx*dx + dy*dy
}
