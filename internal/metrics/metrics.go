// Package metrics provides observers that summarize a layout run.
package metrics

import (
	"math"

	"github.com/devang-m/graphlay/internal/graph"
)

// Metric accumulates one summary value over the frames of a run.
type Metric interface {
	Name() string
	Observe(m *graph.Model, alpha float64, frame int)
	Value() float64
	Reset()
}

// KineticEnergy reports the mean per-frame kinetic energy of the layout,
// a proxy for how violently it converged.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(m *graph.Model, alpha float64, frame int) {
	e := 0.0
	for i := range m.Nodes {
		n := &m.Nodes[i]
		e += 0.5 * (n.VX*n.VX + n.VY*n.VY)
	}
	k.total += e
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// PeakSpeed reports the fastest node speed seen during the run.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(m *graph.Model, alpha float64, frame int) {
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if s := math.Hypot(n.VX, n.VY); s > p.peak {
			p.peak = s
		}
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }

// Overlaps reports how many node pairs still intersect at the last
// observed frame. Zero means the collision passes fully separated the
// layout.
type Overlaps struct {
	count int
}

func NewOverlaps() *Overlaps { return &Overlaps{} }

func (o *Overlaps) Name() string { return "overlaps" }

func (o *Overlaps) Observe(m *graph.Model, alpha float64, frame int) {
	count := 0
	for i := range m.Nodes {
		for j := i + 1; j < len(m.Nodes); j++ {
			a, b := &m.Nodes[i], &m.Nodes[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d < a.Radius+b.Radius {
				count++
			}
		}
	}
	o.count = count
}

func (o *Overlaps) Value() float64 { return float64(o.count) }
func (o *Overlaps) Reset()         { o.count = 0 }

// Travel reports the total distance all nodes moved over the run.
type Travel struct {
	last  []struct{ x, y float64 }
	total float64
}

func NewTravel() *Travel { return &Travel{} }

func (t *Travel) Name() string { return "travel" }

func (t *Travel) Observe(m *graph.Model, alpha float64, frame int) {
	if len(t.last) != len(m.Nodes) {
		t.last = make([]struct{ x, y float64 }, len(m.Nodes))
		for i := range m.Nodes {
			t.last[i].x, t.last[i].y = m.Nodes[i].X, m.Nodes[i].Y
		}
		return
	}
	for i := range m.Nodes {
		n := &m.Nodes[i]
		t.total += math.Hypot(n.X-t.last[i].x, n.Y-t.last[i].y)
		t.last[i].x, t.last[i].y = n.X, n.Y
	}
}

func (t *Travel) Value() float64 { return t.total }

func (t *Travel) Reset() {
	t.last = nil
	t.total = 0
}

// Defaults is the standard metric set for a settle run.
func Defaults() []Metric {
	return []Metric{NewKineticEnergy(), NewPeakSpeed(), NewOverlaps(), NewTravel()}
}
