package layout

import (
	"math"
	"sort"

	"github.com/devang-m/graphlay/internal/graph"
)

// SettleKind names the external trigger behind a reheat.
type SettleKind string

const (
	SettleDragEnd     SettleKind = "dragEnd"
	SettleParamChange SettleKind = "paramChange"
	SettleDataChange  SettleKind = "dataChange"
)

const (
	alphaDecay = 0.97
	alphaFloor = 0.001
	wakeAlpha  = 0.1

	sleepAlpha  = 0.05
	sleepSpeed  = 0.02
	sleepFrames = 5

	velocityDeadZone = 0.02
	bounceScale      = 0.3

	angularK         = 0.06
	angularMinDist   = 20.0
	angularMinDegree = 2
	angularMaxDegree = 6
)

// Engine steps the layout simulation. It mutates node positions and
// velocities in place and cools toward a sleeping state once nothing
// moves. Not safe for concurrent use; a single driver loop owns it.
type Engine struct {
	model   *graph.Model
	anchors []Point

	connected map[[2]int]bool
	neighbors [][]int

	alpha        float64
	sleeping     bool
	stableFrames int
}

// NewEngine starts awake at full temperature.
func NewEngine(model *graph.Model, anchors []Point) *Engine {
	e := &Engine{alpha: 1.0, anchors: anchors}
	e.SetModel(model)
	return e
}

// SetModel hot-swaps the graph between steps. Call StartSettle with
// SettleDataChange afterwards to reheat.
func (e *Engine) SetModel(model *graph.Model) {
	e.model = model
	e.connected = make(map[[2]int]bool)
	if model == nil {
		e.neighbors = nil
		return
	}
	e.neighbors = make([][]int, len(model.Nodes))
	for _, edge := range model.Edges {
		si, ti, ok := model.Endpoints(edge)
		if !ok || si == ti {
			continue
		}
		e.connected[pairKey(si, ti)] = true
		e.neighbors[si] = append(e.neighbors[si], ti)
		e.neighbors[ti] = append(e.neighbors[ti], si)
	}
}

// SetAnchors hot-swaps the component rest points between steps.
func (e *Engine) SetAnchors(anchors []Point) {
	e.anchors = anchors
}

func (e *Engine) Sleeping() bool { return e.sleeping }
func (e *Engine) Alpha() float64 { return e.alpha }

// Reheat raises the temperature to at least strength and clears sleep.
func (e *Engine) Reheat(strength float64) {
	e.alpha = math.Max(e.alpha, strength)
	e.sleeping = false
	e.stableFrames = 0
}

// Wake resumes a sleeping engine with zeroed velocities and at least a
// minimal working temperature.
func (e *Engine) Wake() {
	if e.sleeping {
		e.zeroVelocities(false)
		e.sleeping = false
	}
	if e.alpha < wakeAlpha {
		e.alpha = wakeAlpha
	}
	e.stableFrames = 0
}

// StartSettle zeroes the free nodes' velocities and reheats by an amount
// matched to the trigger: a drag release needs only a gentle nudge, a
// data change a full restart.
func (e *Engine) StartSettle(kind SettleKind, intensity float64) {
	e.zeroVelocities(true)
	factor := 1.0
	switch kind {
	case SettleDragEnd:
		factor = 0.15
	case SettleParamChange:
		factor = 0.5
	case SettleDataChange:
		factor = 1.0
	}
	e.Reheat(factor * intensity)
}

// Step advances the simulation one frame. A sleeping engine does nothing.
func (e *Engine) Step(dt float64, p Params, viewW, viewH float64) {
	if e.sleeping || e.model == nil || len(e.model.Nodes) == 0 {
		return
	}
	nodes := e.model.Nodes

	e.applySprings(nodes, dt, p)
	e.applyRepulsion(nodes, dt, p)
	anyPinned := e.applyAnchors(nodes, dt, p)
	e.applyAngularSpacing(nodes, dt)
	e.integrate(nodes, p)
	e.resolveCollisions(nodes, p)
	e.containInBounds(nodes, p, viewW, viewH)

	e.alpha *= alphaDecay
	if e.alpha < alphaFloor {
		e.alpha = 0
	}

	e.checkSleep(nodes, anyPinned)
}

// applySprings pulls each edge toward its rest length and damps relative
// motion along the edge axis.
func (e *Engine) applySprings(nodes []graph.Node, dt float64, p Params) {
	for _, edge := range e.model.Edges {
		si, ti, ok := e.model.Endpoints(edge)
		if !ok {
			continue
		}
		s, t := &nodes[si], &nodes[ti]

		dx, dy := t.X-s.X, t.Y-s.Y
		d := math.Max(1, math.Hypot(dx, dy))
		nx, ny := dx/d, dy/d

		f := p.SpringK * (d - p.NodeGap) * e.alpha
		rv := (t.VX-s.VX)*nx + (t.VY-s.VY)*ny
		f += p.SpringDamping * rv * e.alpha

		s.VX += nx * f * dt
		s.VY += ny * f * dt
		t.VX -= nx * f * dt
		t.VY -= ny * f * dt
	}
}

// applyRepulsion applies the inverse-square-minus-constant law between
// each free node and its smallest containing triangle of neighbors.
// Pairs without a direct edge push apart twice as hard and pull together
// half as hard as connected pairs.
func (e *Engine) applyRepulsion(nodes []graph.Node, dt float64, p Params) {
	gap2 := p.NodeGap * p.NodeGap
	for i := range nodes {
		n := &nodes[i]
		if n.Pinned() {
			continue
		}
		for _, j := range TriangleNeighbors(nodes, i) {
			dx, dy := n.X-nodes[j].X, n.Y-nodes[j].Y
			d := math.Max(1, math.Hypot(dx, dy))

			strength := p.RepulsionK * (1/(d*d) - 1/gap2) * e.alpha * dt
			if !e.connected[pairKey(i, j)] {
				if strength > 0 {
					strength *= 2
				} else {
					strength *= 0.5
				}
			}
			n.VX += dx / d * strength
			n.VY += dy / d * strength
		}
	}
}

// applyAnchors draws each free node toward its component's anchor and
// reports whether any node is currently pinned.
func (e *Engine) applyAnchors(nodes []graph.Node, dt float64, p Params) bool {
	anyPinned := false
	for i := range nodes {
		n := &nodes[i]
		if n.Pinned() {
			anyPinned = true
			continue
		}
		if n.Component < 0 || n.Component >= len(e.anchors) {
			continue
		}
		a := e.anchors[n.Component]
		n.VX += (a.X - n.X) * p.AnchorK * e.alpha * dt
		n.VY += (a.Y - n.Y) * p.AnchorK * e.alpha * dt
	}
	return anyPinned
}

// applyAngularSpacing nudges the neighbors of each free hub tangentially
// toward evenly spaced bearings, leaving their radii alone.
func (e *Engine) applyAngularSpacing(nodes []graph.Node, dt float64) {
	for i := range nodes {
		n := &nodes[i]
		degree := len(e.neighbors[i])
		if n.Pinned() || degree < angularMinDegree || degree > angularMaxDegree {
			continue
		}

		type bearing struct {
			idx         int
			angle, dist float64
		}
		bearings := make([]bearing, 0, degree)
		for _, j := range e.neighbors[i] {
			dx, dy := nodes[j].X-n.X, nodes[j].Y-n.Y
			dist := math.Hypot(dx, dy)
			if dist < angularMinDist {
				continue
			}
			bearings = append(bearings, bearing{j, math.Atan2(dy, dx), dist})
		}
		if len(bearings) != degree {
			continue
		}
		sort.Slice(bearings, func(a, b int) bool { return bearings[a].angle < bearings[b].angle })

		step := 2 * math.Pi / float64(degree)
		angles := make([]float64, len(bearings))
		for k, b := range bearings {
			angles[k] = b.angle
		}
		base := baseRotation(angles, step)

		for k, b := range bearings {
			target := base + float64(k)*step
			diff := normalizeAngle(b.angle - target)
			mag := -diff * angularK * e.alpha * b.dist * dt
			nb := &nodes[b.idx]
			nb.VX += -math.Sin(b.angle) * mag
			nb.VY += math.Cos(b.angle) * mag
		}
	}
}

// baseRotation picks the rotation offset minimizing total deviation from
// evenly spaced targets: the circular mean of (angle_k - k*step) over the
// sorted bearings. A naive arithmetic mean of raw angles breaks at the
// +/-pi seam, so the offsets are averaged as unit vectors.
func baseRotation(sortedAngles []float64, step float64) float64 {
	var sumSin, sumCos float64
	for k, a := range sortedAngles {
		off := a - float64(k)*step
		sumSin += math.Sin(off)
		sumCos += math.Cos(off)
	}
	return math.Atan2(sumSin, sumCos)
}

// normalizeAngle maps a to (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// integrate snaps pinned nodes to their pin, damps free velocities with a
// small dead-zone to kill jitter, and advances positions.
func (e *Engine) integrate(nodes []graph.Node, p Params) {
	for i := range nodes {
		n := &nodes[i]
		if n.Pinned() {
			n.X, n.Y = *n.FX, *n.FY
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX *= p.VelocityDamping
		n.VY *= p.VelocityDamping
		if math.Abs(n.VX) < velocityDeadZone {
			n.VX = 0
		}
		if math.Abs(n.VY) < velocityDeadZone {
			n.VY = 0
		}
		n.X += n.VX
		n.Y += n.VY
	}
}

// resolveCollisions separates overlapping nodes by direct position
// correction, half the overlap per free member.
func (e *Engine) resolveCollisions(nodes []graph.Node, p Params) {
	minGap := math.Max(8, p.NodeGap*0.2)
	for iter := 0; iter < p.CollisionIters; iter++ {
		for i := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				a, b := &nodes[i], &nodes[j]
				dx, dy := b.X-a.X, b.Y-a.Y
				d := math.Max(1, math.Hypot(dx, dy))
				need := a.Radius + b.Radius + minGap
				if d >= need {
					continue
				}
				overlap := need - d
				nx, ny := dx/d, dy/d
				if !a.Pinned() {
					a.X -= nx * overlap / 2
					a.Y -= ny * overlap / 2
				}
				if !b.Pinned() {
					b.X += nx * overlap / 2
					b.Y += ny * overlap / 2
				}
			}
		}
	}
}

// containInBounds clamps free nodes to the padded view rectangle with an
// inelastic bounce.
func (e *Engine) containInBounds(nodes []graph.Node, p Params, viewW, viewH float64) {
	halfW := viewW/2 - p.BoundsPadding
	halfH := viewH/2 - p.BoundsPadding
	if halfW <= 0 || halfH <= 0 {
		return
	}
	for i := range nodes {
		n := &nodes[i]
		if n.Pinned() {
			continue
		}
		if n.X < -halfW {
			n.X = -halfW
			n.VX *= -bounceScale
		} else if n.X > halfW {
			n.X = halfW
			n.VX *= -bounceScale
		}
		if n.Y < -halfH {
			n.Y = -halfH
			n.VY *= -bounceScale
		} else if n.Y > halfH {
			n.Y = halfH
			n.VY *= -bounceScale
		}
	}
}

// checkSleep counts consecutive quiet frames and freezes the simulation
// after enough of them. Any pinned node keeps the engine awake.
func (e *Engine) checkSleep(nodes []graph.Node, anyPinned bool) {
	maxSpeed := 0.0
	for i := range nodes {
		s := math.Hypot(nodes[i].VX, nodes[i].VY)
		if s > maxSpeed {
			maxSpeed = s
		}
	}

	if anyPinned {
		e.stableFrames = 0
		return
	}
	if maxSpeed < sleepSpeed && e.alpha < sleepAlpha {
		e.stableFrames++
	} else {
		e.stableFrames = 0
	}
	if e.stableFrames >= sleepFrames {
		e.sleeping = true
		e.zeroVelocities(false)
		e.alpha = 0
	}
}

// zeroVelocities clears node velocities; freeOnly skips pinned nodes.
func (e *Engine) zeroVelocities(freeOnly bool) {
	if e.model == nil {
		return
	}
	for i := range e.model.Nodes {
		n := &e.model.Nodes[i]
		if freeOnly && n.Pinned() {
			continue
		}
		n.VX, n.VY = 0, 0
	}
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
