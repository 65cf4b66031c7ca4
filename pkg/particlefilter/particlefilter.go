// Package particlefilter approximates personalized PageRank by spreading
// weighted particles from a set of seed nodes. Each seed starts with a
// fixed particle mass; every round the mass at a node is damped and split
// across its neighbors, and shares that fall below the threshold are
// dropped. The surviving visit mass becomes the node's score.
package particlefilter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viterin/vek"
)

// NeighborView is the particle filter's read view of a graph.
type NeighborView interface {
	// Neighbors returns the ids adjacent to node over outgoing edges.
	Neighbors(node int64) ([]int64, error)
}

// Config tunes a run.
type Config struct {
	// Threshold drops particle shares below this mass.
	Threshold float64
	// Particles is the starting mass per seed.
	Particles float64
	// Damping is the per-hop mass retention factor.
	Damping float64
	// MaxIterations bounds the spreading rounds.
	MaxIterations int
}

// DefaultConfig matches the procedure's declared defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:     0.1,
		Particles:     1000,
		Damping:       0.85,
		MaxIterations: 100,
	}
}

// ErrNoSeeds reports a run with an empty seed set.
var ErrNoSeeds = errors.New("particle filtering requires at least one seed node")

// Score is one node's normalized visit mass.
type Score struct {
	Node  int64
	Value float64
}

// Run spreads particles from the seeds until the mass dies out or the
// iteration bound is hit, then returns normalized scores in descending
// order (ties by ascending node id, so output is deterministic).
func Run(view NeighborView, seeds []int64, cfg Config) ([]Score, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if cfg.Threshold <= 0 {
		return nil, fmt.Errorf("threshold must be positive, got %v", cfg.Threshold)
	}
	if cfg.Particles <= 0 {
		return nil, fmt.Errorf("particle count must be positive, got %v", cfg.Particles)
	}
	if cfg.Damping <= 0 || cfg.Damping >= 1 {
		return nil, fmt.Errorf("damping must be in (0, 1), got %v", cfg.Damping)
	}
	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("iteration bound must be positive, got %d", cfg.MaxIterations)
	}

	mass := make(map[int64]float64, len(seeds))
	for _, seed := range seeds {
		mass[seed] += cfg.Particles
	}

	visits := make(map[int64]float64)
	for round := 0; round < cfg.MaxIterations && len(mass) > 0; round++ {
		next := make(map[int64]float64)
		for node, m := range mass {
			visits[node] += m
			neighbors, err := view.Neighbors(node)
			if err != nil {
				return nil, err
			}
			if len(neighbors) == 0 {
				continue
			}
			share := m * cfg.Damping / float64(len(neighbors))
			if share < cfg.Threshold {
				continue
			}
			for _, nb := range neighbors {
				next[nb] += share
			}
		}
		mass = next
	}

	return normalize(visits), nil
}

func normalize(visits map[int64]float64) []Score {
	scores := make([]Score, 0, len(visits))
	values := make([]float64, 0, len(visits))
	for node, v := range visits {
		scores = append(scores, Score{Node: node, Value: v})
		values = append(values, v)
	}
	if total := vek.Sum(values); total > 0 {
		vek.DivNumber_Inplace(values, total)
		for i := range scores {
			scores[i].Value = values[i]
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].Node < scores[j].Node
	})
	return scores
}
