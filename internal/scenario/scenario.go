// Package scenario generates named demo graphs for the live view and
// benchmarks.
package scenario

import (
	"fmt"
	"sort"

	"github.com/devang-m/graphlay/internal/graph"
)

// Generator builds an entity set of roughly size n.
type Generator func(n int) []graph.Entity

var registry = map[string]Generator{
	"chain":    Chain,
	"star":     Star,
	"ring":     Ring,
	"clusters": Clusters,
	"islands":  Islands,
}

// Get returns the named generator.
func Get(name string) (Generator, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, Names())
	}
	return gen, nil
}

// Names lists the registered scenarios in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build generates and lays out the named scenario's model.
func Build(name string, n int, seed int64) (*graph.Model, error) {
	gen, err := Get(name)
	if err != nil {
		return nil, err
	}
	return graph.Build(gen(n), seed), nil
}

func entity(i int, kind graph.NodeType, deps ...string) graph.Entity {
	return graph.Entity{
		ID:        fmt.Sprintf("n%d", i),
		Name:      fmt.Sprintf("node-%d", i),
		Type:      kind,
		DependsOn: deps,
	}
}

func kindFor(i int) graph.NodeType {
	if i%3 == 0 {
		return graph.TypeStrategy
	}
	return graph.TypeIndicator
}

// Chain links each node to its predecessor.
func Chain(n int) []graph.Entity {
	if n < 2 {
		n = 2
	}
	ents := make([]graph.Entity, 0, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			ents = append(ents, entity(i, kindFor(i)))
			continue
		}
		ents = append(ents, entity(i, kindFor(i), fmt.Sprintf("node-%d", i-1)))
	}
	return ents
}

// Star points every spoke at a single hub, the classic case for the
// angular spacing force.
func Star(n int) []graph.Entity {
	if n < 3 {
		n = 3
	}
	ents := []graph.Entity{entity(0, graph.TypeStrategy)}
	for i := 1; i < n; i++ {
		ents = append(ents, entity(i, graph.TypeIndicator, "node-0"))
	}
	return ents
}

// Ring closes a chain into a loop.
func Ring(n int) []graph.Entity {
	if n < 3 {
		n = 3
	}
	ents := Chain(n)
	ents[0].DependsOn = []string{fmt.Sprintf("node-%d", n-1)}
	return ents
}

// Clusters makes several small stars, exercising multi-component anchor
// placement.
func Clusters(n int) []graph.Entity {
	if n < 6 {
		n = 6
	}
	const clusterSize = 4
	ents := make([]graph.Entity, 0, n)
	for i := 0; i < n; i++ {
		hub := (i / clusterSize) * clusterSize
		if i == hub {
			ents = append(ents, entity(i, graph.TypeStrategy))
			continue
		}
		ents = append(ents, entity(i, graph.TypeIndicator, fmt.Sprintf("node-%d", hub)))
	}
	return ents
}

// Islands is all singletons: every node its own component.
func Islands(n int) []graph.Entity {
	if n < 1 {
		n = 1
	}
	ents := make([]graph.Entity, 0, n)
	for i := 0; i < n; i++ {
		ents = append(ents, entity(i, kindFor(i)))
	}
	return ents
}
