package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/host"
)

const sampleYAML = `
name: tiny
nodes:
  - id: 1
    labels: [Person]
    props:
      name: ada
  - id: 2
edges:
  - id: 10
    type: KNOWS
    from: 1
    to: 2
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "tiny", f.Name)
	require.Len(t, f.Nodes, 2)
	require.Len(t, f.Edges, 1)
	assert.Equal(t, []string{"Person"}, f.Nodes[0].Labels)
	assert.Equal(t, "ada", f.Nodes[0].Props["name"])
	assert.Equal(t, int64(1), f.Edges[0].From)

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("nodes: {not a list"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", f.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	g, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	require.NotNil(t, g.Node(1))
	assert.Equal(t, "ada", g.Node(1).Props["name"])

	t.Run("dangling edge", func(t *testing.T) {
		bad := &File{
			Nodes: []*host.Node{{ID: 1}},
			Edges: []*host.Edge{{ID: 10, From: 1, To: 2}},
		}
		_, err := bad.Build()
		require.Error(t, err)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	g, err := f.Build()
	require.NoError(t, err)

	snap := Snapshot("tiny", g)
	assert.Equal(t, "tiny", snap.Name)
	require.Len(t, snap.Nodes, 2)
	require.Len(t, snap.Edges, 1)
	assert.Equal(t, int64(1), snap.Nodes[0].ID)
	assert.Equal(t, int64(10), snap.Edges[0].ID)
}

func TestStore(t *testing.T) {
	store, err := OpenStore("")
	require.NoError(t, err)
	defer store.Close()

	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.NoError(t, store.Save("tiny", f))

	t.Run("get", func(t *testing.T) {
		got, err := store.Get("tiny")
		require.NoError(t, err)
		require.Len(t, got.Nodes, 2)
		require.Len(t, got.Edges, 1)
		assert.Equal(t, "ada", got.Nodes[0].Props["name"])
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.Get("absent")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save replaces", func(t *testing.T) {
		smaller := &File{Nodes: []*host.Node{{ID: 7}}}
		require.NoError(t, store.Save("tiny", smaller))
		got, err := store.Get("tiny")
		require.NoError(t, err)
		require.Len(t, got.Nodes, 1)
		assert.Equal(t, int64(7), got.Nodes[0].ID)
		assert.Empty(t, got.Edges)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.Save("other", f))
		names, err := store.List()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tiny", "other"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete("other"))
		_, err := store.Get("other")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		require.Error(t, store.Save("", f))
	})
}
