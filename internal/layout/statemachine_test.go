package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/devang-m/graphlay/internal/graph"
	"github.com/devang-m/graphlay/internal/layout"
)

var _ = Describe("engine state machine", func() {
	var (
		model  *graph.Model
		engine *layout.Engine
		params layout.Params
	)

	newPair := func() *graph.Model {
		return graph.NewModel([]graph.Node{
			{ID: "a", X: -30, Radius: 10},
			{ID: "b", X: 30, Radius: 10},
		}, []graph.Edge{{ID: "ab", Source: "a", Target: "b"}})
	}

	settle := func() {
		for i := 0; i < 500 && !engine.Sleeping(); i++ {
			engine.Step(1, params, 2000, 2000)
		}
	}

	BeforeEach(func() {
		model = newPair()
		engine = layout.NewEngine(model, layout.Anchors(model.ComponentCount, 300))
		params = layout.DefaultParams()
	})

	It("starts awake at full temperature", func() {
		Expect(engine.Sleeping()).To(BeFalse())
		Expect(engine.Alpha()).To(Equal(1.0))
	})

	It("cools monotonically and falls asleep", func() {
		settle()
		Expect(engine.Sleeping()).To(BeTrue())
		Expect(engine.Alpha()).To(BeZero())
		Expect(model.Nodes[0].VX).To(BeZero())
		Expect(model.Nodes[1].VX).To(BeZero())
	})

	It("never lowers alpha on reheat", func() {
		engine.Reheat(0.3)
		Expect(engine.Alpha()).To(Equal(1.0), "reheat below current alpha is a no-op")

		settle()
		engine.Reheat(0.3)
		Expect(engine.Alpha()).To(Equal(0.3))
		Expect(engine.Sleeping()).To(BeFalse())
	})

	It("scales settle strength by trigger kind", func() {
		settle()
		engine.StartSettle(layout.SettleDragEnd, 2.0)
		Expect(engine.Alpha()).To(BeNumerically("~", 0.3, 1e-12))

		settle()
		engine.StartSettle(layout.SettleParamChange, 1.0)
		Expect(engine.Alpha()).To(BeNumerically("~", 0.5, 1e-12))

		settle()
		engine.StartSettle(layout.SettleDataChange, 1.0)
		Expect(engine.Alpha()).To(Equal(1.0))
	})

	It("keeps pinned velocities across a settle", func() {
		model.Nodes[0].Pin(-40, 0)
		model.Nodes[0].VX = 3
		model.Nodes[1].VX = 5
		engine.StartSettle(layout.SettleDragEnd, 1.0)
		Expect(model.Nodes[1].VX).To(BeZero(), "free nodes are zeroed")
		Expect(model.Nodes[0].VX).To(Equal(3.0), "pinned nodes are left to the integrator")
	})

	It("resumes after a data swap", func() {
		settle()
		Expect(engine.Sleeping()).To(BeTrue())

		replacement := graph.NewModel([]graph.Node{
			{ID: "x", X: -50, Radius: 10},
			{ID: "y", X: 50, Radius: 10},
			{ID: "z", Y: 80, Radius: 10},
		}, []graph.Edge{
			{ID: "xy", Source: "x", Target: "y"},
			{ID: "yz", Source: "y", Target: "z"},
		})
		engine.SetModel(replacement)
		engine.StartSettle(layout.SettleDataChange, 1.0)

		Expect(engine.Sleeping()).To(BeFalse())
		Expect(engine.Alpha()).To(Equal(1.0))

		before := replacement.Nodes[0].X
		engine.Step(1, params, 2000, 2000)
		Expect(replacement.Nodes[0].X).NotTo(Equal(before), "the swapped model is the one being stepped")
	})

	It("ignores edges with unknown endpoints", func() {
		broken := graph.NewModel([]graph.Node{
			{ID: "a", X: -30, Radius: 10},
			{ID: "b", X: 30, Radius: 10},
		}, []graph.Edge{
			{ID: "ok", Source: "a", Target: "b"},
			{ID: "dangling", Source: "a", Target: "ghost"},
		})
		engine.SetModel(broken)
		Expect(func() {
			engine.Step(1, params, 2000, 2000)
		}).NotTo(Panic())
	})
})
