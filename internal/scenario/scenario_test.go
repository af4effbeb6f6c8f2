package scenario

import (
	"testing"

	"github.com/devang-m/graphlay/internal/graph"
)

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}

func TestChainSingleComponent(t *testing.T) {
	m, err := Build("chain", 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.ComponentCount != 1 {
		t.Errorf("a chain is one component, got %d", m.ComponentCount)
	}
	if len(m.Edges) != 7 {
		t.Errorf("expected 7 edges, got %d", len(m.Edges))
	}
}

func TestStarHubDegree(t *testing.T) {
	m, err := Build("star", 6, 1)
	if err != nil {
		t.Fatal(err)
	}
	hub, ok := m.IndexOf("n0")
	if !ok {
		t.Fatal("missing hub")
	}
	if d := m.Degree(hub); d != 5 {
		t.Errorf("hub degree: got %d, want 5", d)
	}
	if m.Nodes[hub].Type != graph.TypeStrategy {
		t.Error("hub should be a strategy")
	}
}

func TestClustersMultipleComponents(t *testing.T) {
	m, err := Build("clusters", 12, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.ComponentCount != 3 {
		t.Errorf("12 nodes in clusters of 4 should give 3 components, got %d", m.ComponentCount)
	}
}

func TestIslandsAllSeparate(t *testing.T) {
	m, err := Build("islands", 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.ComponentCount != 5 {
		t.Errorf("expected 5 components, got %d", m.ComponentCount)
	}
	if len(m.Edges) != 0 {
		t.Errorf("islands should have no edges, got %d", len(m.Edges))
	}
}

func TestRingClosesLoop(t *testing.T) {
	m, err := Build("ring", 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Edges) != 5 {
		t.Errorf("a 5-ring has 5 edges, got %d", len(m.Edges))
	}
	if m.ComponentCount != 1 {
		t.Errorf("a ring is one component, got %d", m.ComponentCount)
	}
}
