package graph

import (
	"fmt"
	"math"
	"math/rand"
)

// Entity is the builder's input: one indicator or strategy plus the names
// of the entities it depends on.
type Entity struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Type      NodeType `yaml:"type"`
	DependsOn []string `yaml:"depends_on"`
}

// Build turns an entity set into a layout model. Dependency references
// are resolved by entity name; references that match nothing are dropped.
// Connected components are computed over the undirected edge set and
// initial positions are scattered deterministically from seed.
func Build(entities []Entity, seed int64) *Model {
	m := &Model{
		Nodes: make([]Node, 0, len(entities)),
		index: make(map[string]int, len(entities)),
	}

	byName := make(map[string]string, len(entities))
	for _, ent := range entities {
		radius := DefaultIndicatorRadius
		if ent.Type == TypeStrategy {
			radius = DefaultStrategyRadius
		}
		m.index[ent.ID] = len(m.Nodes)
		m.Nodes = append(m.Nodes, Node{
			ID:     ent.ID,
			Name:   ent.Name,
			Type:   ent.Type,
			Radius: radius,
		})
		byName[ent.Name] = ent.ID
	}

	for _, ent := range entities {
		for _, dep := range ent.DependsOn {
			depID, ok := byName[dep]
			if !ok {
				continue
			}
			m.Edges = append(m.Edges, Edge{
				ID:     fmt.Sprintf("%s->%s", ent.ID, depID),
				Source: ent.ID,
				Target: depID,
			})
		}
	}

	assignComponents(m)
	scatter(m, seed)
	return m
}

// assignComponents labels every node with a connected-component index via
// union-find over the resolvable edges, treating edges as undirected.
func assignComponents(m *Model) {
	parent := make([]int, len(m.Nodes))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for _, e := range m.Edges {
		si, ti, ok := m.Endpoints(e)
		if !ok {
			continue
		}
		union(si, ti)
	}

	next := 0
	labels := make(map[int]int)
	for i := range m.Nodes {
		root := find(i)
		label, ok := labels[root]
		if !ok {
			label = next
			labels[root] = label
			next++
		}
		m.Nodes[i].Component = label
	}
	m.ComponentCount = next
}

// scatter places nodes on a loose spiral around the origin so the first
// steps have distinct positions to work with. Seeded for reproducibility.
func scatter(m *Model, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range m.Nodes {
		r := 30.0 * math.Sqrt(float64(i)+0.5)
		a := float64(i) * golden
		m.Nodes[i].X = r*math.Cos(a) + rng.Float64()*2 - 1
		m.Nodes[i].Y = r*math.Sin(a) + rng.Float64()*2 - 1
	}
}
