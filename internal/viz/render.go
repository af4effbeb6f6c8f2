package viz

import (
	"math"

	"github.com/devang-m/graphlay/internal/graph"
)

// DrawModel projects engine coordinates onto the canvas sub-pixel grid
// and rasterizes edges first, then nodes on top. The world rectangle
// worldW x worldH is centered on the origin, matching the engine.
// selected marks one node with an outline ring; pass -1 for none.
func DrawModel(c *Canvas, m *graph.Model, worldW, worldH float64, selected int) {
	cw, ch := float64(c.Width*2), float64(c.Height*4)
	scale := math.Min(cw/worldW, ch/worldH)

	project := func(x, y float64) (int, int) {
		return int(cw/2 + x*scale), int(ch/2 + y*scale)
	}

	for _, e := range m.Edges {
		si, ti, ok := m.Endpoints(e)
		if !ok {
			continue
		}
		sx, sy := project(m.Nodes[si].X, m.Nodes[si].Y)
		tx, ty := project(m.Nodes[ti].X, m.Nodes[ti].Y)
		c.DrawLine(sx, sy, tx, ty)
	}

	for i := range m.Nodes {
		n := &m.Nodes[i]
		px, py := project(n.X, n.Y)
		c.FillCircle(px, py, dotRadius(n.Radius*scale))
		if i == selected {
			drawRing(c, px, py, dotRadius(n.Radius*scale)+2)
		}
	}
}

// dotRadius clamps a scaled node radius to something visible but not
// canvas-swallowing at terminal resolution.
func dotRadius(r float64) int {
	d := int(r)
	if d < 1 {
		d = 1
	}
	if d > 4 {
		d = 4
	}
	return d
}

func drawRing(c *Canvas, cx, cy, r int) {
	steps := 8 * r
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(cx+int(float64(r)*math.Cos(a)), cy+int(float64(r)*math.Sin(a)))
	}
}
