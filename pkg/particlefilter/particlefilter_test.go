package particlefilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapView map[int64][]int64

func (m mapView) Neighbors(node int64) ([]int64, error) {
	return m[node], nil
}

func TestRunValidation(t *testing.T) {
	view := mapView{}

	_, err := Run(view, nil, DefaultConfig())
	require.ErrorIs(t, err, ErrNoSeeds)

	cfg := DefaultConfig()
	cfg.Threshold = 0
	_, err = Run(view, []int64{1}, cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Damping = 1
	_, err = Run(view, []int64{1}, cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.MaxIterations = 0
	_, err = Run(view, []int64{1}, cfg)
	require.Error(t, err)
}

func TestRunIsolatedSeed(t *testing.T) {
	view := mapView{1: nil}
	scores, err := Run(view, []int64{1}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int64(1), scores[0].Node)
	assert.Equal(t, 1.0, scores[0].Value)
}

func TestRunSpreadsToNeighbors(t *testing.T) {
	// Star: 1 feeds 2 and 3, which are sinks.
	view := mapView{
		1: {2, 3},
		2: nil,
		3: nil,
	}
	scores, err := Run(view, []int64{1}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, int64(1), scores[0].Node)

	var total float64
	byNode := make(map[int64]float64)
	for _, s := range scores {
		total += s.Value
		byNode[s.Node] = s.Value
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, byNode[1], byNode[2])
	assert.InDelta(t, byNode[2], byNode[3], 1e-9)
}

func TestRunThresholdStopsPropagation(t *testing.T) {
	// A long chain; with a tiny particle mass the damped share dies before
	// the far end.
	view := mapView{1: {2}, 2: {3}, 3: {4}, 4: {5}, 5: nil}
	cfg := DefaultConfig()
	cfg.Particles = 1
	cfg.Threshold = 0.7

	scores, err := Run(view, []int64{1}, cfg)
	require.NoError(t, err)

	reached := make(map[int64]bool)
	for _, s := range scores {
		reached[s.Node] = true
	}
	assert.True(t, reached[1])
	assert.True(t, reached[2])
	assert.False(t, reached[4])
	assert.False(t, reached[5])
}

func TestRunOrderingIsDeterministic(t *testing.T) {
	view := mapView{1: {2}, 2: {1}}
	cfg := DefaultConfig()
	cfg.MaxIterations = 10

	first, err := Run(view, []int64{1, 2}, cfg)
	require.NoError(t, err)
	second, err := Run(view, []int64{1, 2}, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Symmetric graph, symmetric seeds: equal scores break ties by id.
	require.Len(t, first, 2)
	assert.InDelta(t, first[0].Value, first[1].Value, 1e-9)
	assert.Equal(t, int64(1), first[0].Node)
	assert.Equal(t, int64(2), first[1].Node)
}

func TestRunScoresAreFinite(t *testing.T) {
	view := mapView{1: {2, 3}, 2: {3}, 3: {1}}
	scores, err := Run(view, []int64{1, 2, 3}, DefaultConfig())
	require.NoError(t, err)
	for _, s := range scores {
		assert.False(t, math.IsNaN(s.Value))
		assert.False(t, math.IsInf(s.Value, 0))
	}
}
