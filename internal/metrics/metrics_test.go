package metrics

import (
	"math"
	"testing"

	"github.com/devang-m/graphlay/internal/graph"
)

func twoNodeModel() *graph.Model {
	return graph.NewModel([]graph.Node{
		{ID: "a", X: 0, Y: 0, VX: 3, VY: 4, Radius: 20},
		{ID: "b", X: 10, Y: 0, Radius: 20},
	}, nil)
}

func TestKineticEnergy(t *testing.T) {
	m := twoNodeModel()
	k := NewKineticEnergy()

	k.Observe(m, 1, 0)
	// One moving node at speed 5: 0.5 * 25.
	if math.Abs(k.Value()-12.5) > 1e-9 {
		t.Errorf("expected 12.5, got %f", k.Value())
	}

	k.Reset()
	if k.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakSpeedKeepsMaximum(t *testing.T) {
	m := twoNodeModel()
	p := NewPeakSpeed()

	p.Observe(m, 1, 0)
	m.Nodes[0].VX, m.Nodes[0].VY = 0.1, 0
	p.Observe(m, 1, 1)

	if p.Value() != 5 {
		t.Errorf("peak should stay at 5, got %f", p.Value())
	}
}

func TestOverlapsCountsIntersections(t *testing.T) {
	m := twoNodeModel() // distance 10, radii 20+20 -> overlapping
	o := NewOverlaps()
	o.Observe(m, 1, 0)
	if o.Value() != 1 {
		t.Errorf("expected 1 overlap, got %f", o.Value())
	}

	m.Nodes[1].X = 100
	o.Observe(m, 1, 1)
	if o.Value() != 0 {
		t.Errorf("expected overlaps to clear, got %f", o.Value())
	}
}

func TestTravelAccumulatesDisplacement(t *testing.T) {
	m := twoNodeModel()
	tr := NewTravel()

	tr.Observe(m, 1, 0) // baseline frame
	m.Nodes[0].X += 3
	m.Nodes[0].Y += 4
	tr.Observe(m, 1, 1)
	m.Nodes[1].X += 1
	tr.Observe(m, 1, 2)

	if math.Abs(tr.Value()-6) > 1e-9 {
		t.Errorf("expected total travel 6, got %f", tr.Value())
	}
}
