package sim

import (
	"context"
	"testing"

	"github.com/devang-m/graphlay/internal/graph"
	"github.com/devang-m/graphlay/internal/layout"
	"github.com/devang-m/graphlay/internal/metrics"
)

func testConfig() Config {
	return Config{
		Dt:         1,
		ViewWidth:  1280,
		ViewHeight: 800,
		MaxFrames:  600,
		Params:     layout.DefaultParams(),
	}
}

func testModel() *graph.Model {
	return graph.Build([]graph.Entity{
		{ID: "i1", Name: "sma", Type: graph.TypeIndicator},
		{ID: "s1", Name: "trend", Type: graph.TypeStrategy, DependsOn: []string{"sma"}},
	}, 5)
}

func TestRunUntilSleep(t *testing.T) {
	m := testModel()
	e := layout.NewEngine(m, layout.Anchors(m.ComponentCount, 320))
	r := New(e, m)
	for _, metric := range metrics.Defaults() {
		r.AddMetric(metric)
	}

	result, err := r.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Slept {
		t.Fatal("expected the layout to settle within the frame budget")
	}
	if result.Frames != len(result.AlphaHistory) {
		t.Errorf("history length %d does not match frames %d", len(result.AlphaHistory), result.Frames)
	}
	if _, ok := result.Metrics["kinetic_energy"]; !ok {
		t.Error("expected kinetic_energy in the metric map")
	}
	if !FinitePositions(m) {
		t.Error("run produced non-finite coordinates")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	m := testModel()
	e := layout.NewEngine(m, nil)
	r := New(e, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, testConfig())
	if err == nil {
		t.Fatal("expected a context error")
	}
	if result.Frames != 0 {
		t.Errorf("expected no frames after pre-canceled context, got %d", result.Frames)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	m := testModel()
	r := New(layout.NewEngine(m, nil), m)

	bad := testConfig()
	bad.Dt = 0
	if _, err := r.Run(context.Background(), bad); err == nil {
		t.Error("expected an error for dt=0")
	}

	bad = testConfig()
	bad.MaxFrames = 0
	if _, err := r.Run(context.Background(), bad); err == nil {
		t.Error("expected an error for zero frame budget")
	}
}

type frameCounter struct{ frames int }

func (f *frameCounter) OnFrame(m *graph.Model, alpha float64, frame int) { f.frames++ }

func TestObserversSeeEveryFrame(t *testing.T) {
	m := testModel()
	e := layout.NewEngine(m, nil)
	r := New(e, m)
	fc := &frameCounter{}
	r.AddObserver(fc)

	result, err := r.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if fc.frames != result.Frames {
		t.Errorf("observer saw %d frames, runner reported %d", fc.frames, result.Frames)
	}
}
