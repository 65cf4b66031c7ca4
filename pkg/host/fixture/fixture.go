// Package fixture loads and stores graph fixtures for the in-process host
// simulator. Fixtures are authored as YAML files; a badger-backed store
// keeps imported fixtures around between runs.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orneryd/bifrost/pkg/host"
)

// File is the YAML shape of a graph fixture.
type File struct {
	Name  string       `yaml:"name,omitempty" json:"name,omitempty"`
	Nodes []*host.Node `yaml:"nodes" json:"nodes"`
	Edges []*host.Edge `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// Parse decodes a YAML fixture.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Load reads a YAML fixture from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Build materializes the fixture into a simulator graph.
func (f *File) Build() (*host.Graph, error) {
	g := host.NewGraph()
	for _, n := range f.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range f.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Snapshot captures a simulator graph back into fixture form, nodes and
// edges in id order.
func Snapshot(name string, g *host.Graph) *File {
	f := &File{Name: name}
	for _, id := range g.NodeIDs() {
		f.Nodes = append(f.Nodes, g.Node(id))
	}
	for _, id := range g.EdgeIDs() {
		f.Edges = append(f.Edges, g.Edge(id))
	}
	return f
}
