package particlefilter

import (
	"fmt"

	"github.com/orneryd/bifrost/pkg/bifrost"
)

// ProcedureName is the name the procedure is declared under.
const ProcedureName = "particle_filtering"

// Procedure declares particle_filtering(node_list, threshold?, num_particles?)
// yielding (node_id, score) rows.
func Procedure() *bifrost.Procedure {
	defaults := DefaultConfig()
	return &bifrost.Procedure{
		Name: ProcedureName,
		Args: []bifrost.Parameter{
			{Name: "node_list", Type: bifrost.TypeListOf(bifrost.TypeInt())},
		},
		OptArgs: []bifrost.OptionalParameter{
			{Name: "threshold", Type: bifrost.TypeFloat(), Default: bifrost.DoubleValue(defaults.Threshold)},
			{Name: "num_particles", Type: bifrost.TypeInt(), Default: bifrost.IntValue(int64(defaults.Particles))},
		},
		Results: []bifrost.ResultField{
			{Name: "node_id", Type: bifrost.TypeInt()},
			{Name: "score", Type: bifrost.TypeFloat()},
		},
		Handler: handle,
	}
}

func handle(g *bifrost.Graph) error {
	seeds, cfg, err := readArgs(g)
	if err != nil {
		return err
	}
	scores, err := Run(&graphView{g: g}, seeds, cfg)
	if err != nil {
		return err
	}
	for _, score := range scores {
		rec, err := g.NewRecord()
		if err != nil {
			return err
		}
		if err := rec.InsertInt("node_id", score.Node); err != nil {
			return err
		}
		if err := rec.InsertDouble("score", score.Value); err != nil {
			return err
		}
	}
	return nil
}

func readArgs(g *bifrost.Graph) ([]int64, Config, error) {
	cfg := DefaultConfig()
	args := g.Args()

	nodeList, err := args.ValueAt(0)
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to read node_list: %w", err)
	}
	list, err := nodeList.List()
	if err != nil {
		return nil, cfg, fmt.Errorf("node_list: %w", err)
	}
	it, err := list.Iter()
	if err != nil {
		return nil, cfg, err
	}
	var seeds []int64
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, cfg, err
		}
		if !ok {
			break
		}
		id, err := v.Int()
		if err != nil {
			return nil, cfg, fmt.Errorf("node_list element: %w", err)
		}
		seeds = append(seeds, id)
	}

	size, err := args.Size()
	if err != nil {
		return nil, cfg, err
	}
	if size > 1 {
		v, err := args.ValueAt(1)
		if err != nil {
			return nil, cfg, err
		}
		threshold, err := v.Double()
		if err != nil {
			return nil, cfg, fmt.Errorf("threshold: %w", err)
		}
		cfg.Threshold = threshold
	}
	if size > 2 {
		v, err := args.ValueAt(2)
		if err != nil {
			return nil, cfg, err
		}
		particles, err := v.Int()
		if err != nil {
			return nil, cfg, fmt.Errorf("num_particles: %w", err)
		}
		cfg.Particles = float64(particles)
	}
	return seeds, cfg, nil
}

// graphView adapts the procedure's graph context to NeighborView. Edge and
// vertex copies pulled while walking are released as soon as their ids are
// read, so a long run does not pile up handles until invocation teardown.
type graphView struct {
	g *bifrost.Graph
}

func (v *graphView) Neighbors(node int64) ([]int64, error) {
	vertex, err := v.g.VertexByID(node)
	if err != nil {
		return nil, err
	}
	defer vertex.Release()

	it, err := vertex.OutEdges()
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var neighbors []int64
	for {
		edge, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return neighbors, nil
		}
		to, err := edge.To()
		if err != nil {
			edge.Release()
			return nil, err
		}
		id, err := to.ID()
		to.Release()
		edge.Release()
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, id)
	}
}
