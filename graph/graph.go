// Package graph implements AgentGraph, the directed acyclic graph of
// component instances that forms an agent architecture. Edge insertion is
// checked for cycles and rolled back on violation, grounded on the
// teacher's workflow_dag.go insert-then-validate discipline (see
// DESIGN.md).
package graph

import (
	"fmt"
	"sort"

	"github.com/cortexsynth/agentsynth/core"
)

// AgentGraph is a DAG of component instances. Node IDs are unique within
// the graph; edges denote execution/data flow and the graph must remain
// acyclic after every edge insertion.
type AgentGraph struct {
	order []string
	nodes map[string]*core.ComponentMetadata
	// adjacency holds forward edges, keyed by source node ID.
	adjacency map[string][]string
}

// New creates an empty AgentGraph.
func New() *AgentGraph {
	return &AgentGraph{
		nodes:     make(map[string]*core.ComponentMetadata),
		adjacency: make(map[string][]string),
	}
}

// AddComponent adds a node to the graph. It fails with ErrDuplicateNode if
// nodeID already exists.
func (g *AgentGraph) AddComponent(nodeID string, meta *core.ComponentMetadata) error {
	if _, exists := g.nodes[nodeID]; exists {
		return core.NewError("graph.AddComponent", core.KindGraph,
			fmt.Errorf("%w: %q", core.ErrDuplicateNode, nodeID))
	}
	g.nodes[nodeID] = meta
	g.order = append(g.order, nodeID)
	return nil
}

// AddEdge inserts an edge from -> to, then checks acyclicity. If the
// insertion would create a cycle, it is rolled back and ErrCycle is
// returned.
func (g *AgentGraph) AddEdge(from, to string) error {
	g.adjacency[from] = append(g.adjacency[from], to)

	if g.hasCycle() {
		g.removeEdge(from, to)
		return core.NewError("graph.AddEdge", core.KindGraph,
			fmt.Errorf("%w: %s -> %s", core.ErrCycle, from, to))
	}
	return nil
}

func (g *AgentGraph) removeEdge(from, to string) {
	edges := g.adjacency[from]
	for i, n := range edges {
		if n == to {
			g.adjacency[from] = append(edges[:i], edges[i+1:]...)
			break
		}
	}
}

func (g *AgentGraph) hasCycle() bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g.order))

	var visit func(node string) bool
	visit = func(node string) bool {
		switch state[node] {
		case visiting:
			return true
		case done:
			return false
		}
		state[node] = visiting
		for _, next := range g.adjacency[node] {
			if visit(next) {
				return true
			}
		}
		state[node] = done
		return false
	}

	for _, n := range g.order {
		if state[n] == unvisited {
			if visit(n) {
				return true
			}
		}
	}
	return false
}

// Validate confirms the graph is currently acyclic.
func (g *AgentGraph) Validate() bool {
	return !g.hasCycle()
}

// Copy produces a deep structural duplicate: same node IDs, the same
// (shared, immutable) metadata references, and the same edges.
func (g *AgentGraph) Copy() *AgentGraph {
	out := New()
	out.order = append([]string(nil), g.order...)
	for id, meta := range g.nodes {
		out.nodes[id] = meta
	}
	for from, edges := range g.adjacency {
		out.adjacency[from] = append([]string(nil), edges...)
	}
	return out
}

// GetExecutionOrder returns a topological order of the graph's nodes via
// Kahn's algorithm. Ties among ready nodes are broken by lexicographic
// node-ID order for deterministic output; callers must not depend on any
// particular tie-break beyond that.
func (g *AgentGraph) GetExecutionOrder() []string {
	indegree := make(map[string]int, len(g.order))
	for _, n := range g.order {
		indegree[n] = 0
	}
	for _, edges := range g.adjacency {
		for _, to := range edges {
			indegree[to]++
		}
	}

	ready := make([]string, 0, len(g.order))
	for _, n := range g.order {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}
	sort.Strings(ready)

	var result []string
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		result = append(result, n)

		var newlyReady []string
		for _, next := range g.adjacency[n] {
			indegree[next]--
			if indegree[next] == 0 {
				newlyReady = append(newlyReady, next)
			}
		}
		sort.Strings(newlyReady)
		ready = append(ready, newlyReady...)
		sort.Strings(ready)
	}

	return result
}

// GetMetadata returns the metadata attached to nodeID.
func (g *AgentGraph) GetMetadata(nodeID string) *core.ComponentMetadata {
	return g.nodes[nodeID]
}

// ListNodes returns the node IDs in registration order.
func (g *AgentGraph) ListNodes() []string {
	return append([]string(nil), g.order...)
}

// TotalCost sums cost_per_call across every node.
func (g *AgentGraph) TotalCost() float64 {
	var total float64
	for _, n := range g.order {
		total += g.nodes[n].CostPerCall
	}
	return total
}

// TotalLatency sums avg_latency_ms across every node.
func (g *AgentGraph) TotalLatency() float64 {
	var total float64
	for _, n := range g.order {
		total += g.nodes[n].AvgLatencyMs
	}
	return total
}

// AggregateReliability multiplies reliability_score across every node,
// under the independent-failure assumption.
func (g *AgentGraph) AggregateReliability() float64 {
	reliability := 1.0
	for _, n := range g.order {
		reliability *= g.nodes[n].ReliabilityScore
	}
	return reliability
}
