// Package host is an in-process stand-in for the graph database side of
// the procedure ABI. It implements mgp.API over an in-memory property
// graph, so procedures written against pkg/bifrost can be exercised end to
// end without a running database: the CLI runs them against fixtures, and
// tests script whole invocations including allocation faults.
package host

import (
	"fmt"
	"sort"
)

// Node is one vertex of the simulated graph.
type Node struct {
	ID     int64          `yaml:"id" json:"id"`
	Labels []string       `yaml:"labels,omitempty" json:"labels,omitempty"`
	Props  map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

// Edge is one directed relationship of the simulated graph.
type Edge struct {
	ID    int64          `yaml:"id" json:"id"`
	Type  string         `yaml:"type" json:"type"`
	From  int64          `yaml:"from" json:"from"`
	To    int64          `yaml:"to" json:"to"`
	Props map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

// Graph is the in-memory property graph the simulator serves.
type Graph struct {
	nodes map[int64]*Node
	edges map[int64]*Edge

	in  map[int64][]int64
	out map[int64][]int64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]*Node),
		edges: make(map[int64]*Edge),
		in:    make(map[int64][]int64),
		out:   make(map[int64][]int64),
	}
}

// AddNode inserts a node. Node ids are unique.
func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("duplicate node id %d", n.ID)
	}
	g.nodes[n.ID] = n
	return nil
}

// AddEdge inserts an edge. Both endpoints must exist.
func (g *Graph) AddEdge(e *Edge) error {
	if _, ok := g.edges[e.ID]; ok {
		return fmt.Errorf("duplicate edge id %d", e.ID)
	}
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("edge %d: unknown source node %d", e.ID, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("edge %d: unknown target node %d", e.ID, e.To)
	}
	g.edges[e.ID] = e
	g.out[e.From] = append(g.out[e.From], e.ID)
	g.in[e.To] = append(g.in[e.To], e.ID)
	return nil
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id int64) *Node { return g.nodes[id] }

// Edge returns the edge with the given id, or nil.
func (g *Graph) Edge(id int64) *Edge { return g.edges[id] }

// NodeIDs returns every node id in ascending order, so iteration order is
// stable across runs.
func (g *Graph) NodeIDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EdgeIDs returns every edge id in ascending order.
func (g *Graph) EdgeIDs() []int64 {
	ids := make([]int64, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// InEdges returns the ids of edges ending at the node.
func (g *Graph) InEdges(node int64) []int64 { return g.in[node] }

// OutEdges returns the ids of edges starting at the node.
func (g *Graph) OutEdges(node int64) []int64 { return g.out[node] }

// Neighbors returns the distinct node ids adjacent to the node over either
// direction, in ascending order.
func (g *Graph) Neighbors(node int64) []int64 {
	seen := make(map[int64]struct{})
	for _, eid := range g.out[node] {
		seen[g.edges[eid].To] = struct{}{}
	}
	for _, eid := range g.in[node] {
		seen[g.edges[eid].From] = struct{}{}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedPropNames gives deterministic property iteration.
func sortedPropNames(props map[string]any) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
