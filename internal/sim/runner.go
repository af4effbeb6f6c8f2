// Package sim drives a layout engine from start to sleep and records
// what happened along the way.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/devang-m/graphlay/internal/graph"
	"github.com/devang-m/graphlay/internal/layout"
	"github.com/devang-m/graphlay/internal/metrics"
)

// Observer is notified after every frame with the freshly stepped model.
type Observer interface {
	OnFrame(m *graph.Model, alpha float64, frame int)
}

// Config bounds a run.
type Config struct {
	Dt         float64
	ViewWidth  float64
	ViewHeight float64
	MaxFrames  int
	Params     layout.Params
}

// Result summarizes a completed run.
type Result struct {
	Frames        int
	Slept         bool
	AlphaHistory  []float64
	EnergyHistory []float64
	Metrics       map[string]float64
}

// Runner owns the step loop. The engine does only CPU-bound work per
// frame, so cancellation is checked between frames.
type Runner struct {
	engine    *layout.Engine
	model     *graph.Model
	metrics   []metrics.Metric
	observers []Observer
}

func New(engine *layout.Engine, model *graph.Model) *Runner {
	return &Runner{engine: engine, model: model}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

// Run steps the engine until it sleeps or the frame budget runs out.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		AlphaHistory:  make([]float64, 0, cfg.MaxFrames),
		EnergyHistory: make([]float64, 0, cfg.MaxFrames),
		Metrics:       make(map[string]float64),
	}

	for frame := 0; frame < cfg.MaxFrames; frame++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.engine.Step(cfg.Dt, cfg.Params, cfg.ViewWidth, cfg.ViewHeight)
		result.Frames++

		for _, m := range r.metrics {
			m.Observe(r.model, r.engine.Alpha(), frame)
		}
		for _, o := range r.observers {
			o.OnFrame(r.model, r.engine.Alpha(), frame)
		}

		result.AlphaHistory = append(result.AlphaHistory, r.engine.Alpha())
		result.EnergyHistory = append(result.EnergyHistory, kineticEnergy(r.model))

		if r.engine.Sleeping() {
			result.Slept = true
			break
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.MaxFrames <= 0 {
		return fmt.Errorf("max frames must be positive, got %d", cfg.MaxFrames)
	}
	if cfg.ViewWidth <= 0 || cfg.ViewHeight <= 0 {
		return fmt.Errorf("view must have positive dimensions, got %fx%f", cfg.ViewWidth, cfg.ViewHeight)
	}
	return nil
}

func kineticEnergy(m *graph.Model) float64 {
	e := 0.0
	for i := range m.Nodes {
		n := &m.Nodes[i]
		e += 0.5 * (n.VX*n.VX + n.VY*n.VY)
	}
	return e
}

// FinitePositions reports whether every node coordinate is a real number.
// The engine clamps its divisors, so this only trips on caller-corrupted
// input.
func FinitePositions(m *graph.Model) bool {
	for i := range m.Nodes {
		n := &m.Nodes[i]
		for _, v := range []float64{n.X, n.Y, n.VX, n.VY} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
