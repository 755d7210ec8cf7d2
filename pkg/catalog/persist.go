package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/xylemcad/xylem/pkg/graph"
)

// EdgeRecord is the serialized form of one edge, addressing sockets by
// node id and socket position.
type EdgeRecord struct {
	From       string `json:"from"`
	FromSocket int    `json:"from_socket"`
	To         string `json:"to"`
	ToSocket   int    `json:"to_socket"`
}

// GraphRecord is the serialized form of a whole graph.
type GraphRecord struct {
	Nodes []graph.NodeRecord `json:"nodes"`
	Edges []EdgeRecord       `json:"edges"`
}

// Save serializes a graph to JSON. Nodes are written in insertion order
// and edges in the order the downstream sockets hold them, so output is
// deterministic for a given graph.
func Save(g *graph.Graph) ([]byte, error) {
	var rec GraphRecord
	for _, n := range g.Nodes() {
		rec.Nodes = append(rec.Nodes, n.Serialize())
	}
	for _, n := range g.Nodes() {
		for _, in := range n.Inputs {
			for _, e := range in.Edges {
				rec.Edges = append(rec.Edges, EdgeRecord{
					From:       string(e.From.Node.ID),
					FromSocket: e.From.Index,
					To:         string(e.To.Node.ID),
					ToSocket:   e.To.Index,
				})
			}
		}
	}
	return json.MarshalIndent(rec, "", "  ")
}

// Load rebuilds a graph from serialized data using the catalog's
// factories. Loading is tolerant: nodes with unknown op codes and edges
// that cannot be re-established are skipped and reported as problems
// while the rest of the graph is restored. env.Graph is replaced by the
// freshly built graph.
func Load(data []byte, c *Catalog, env *Env) (*graph.Graph, []error, error) {
	var rec GraphRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil, fmt.Errorf("load graph: %w", err)
	}

	g := graph.New()
	loadEnv := *env
	loadEnv.Graph = g

	var problems []error
	for _, nr := range rec.Nodes {
		d, ok := c.Lookup(nr.OpCode)
		if !ok {
			problems = append(problems, fmt.Errorf("node %s: unknown op code %d", nr.ID, nr.OpCode))
			continue
		}
		n, err := d.Factory(&loadEnv)
		if err != nil {
			problems = append(problems, fmt.Errorf("node %s (%s): %w", nr.ID, d.Title, err))
			continue
		}
		n.ID = graph.NodeID(nr.ID)
		if err := g.AddNode(n); err != nil {
			// The node never joins the graph, so RemoveNode will not run
			// for it; release any resources the factory acquired.
			if r, ok := n.Op().(graph.Releaser); ok {
				r.Release()
			}
			problems = append(problems, err)
			continue
		}
		problems = append(problems, n.Restore(nr)...)
	}

	for _, er := range rec.Edges {
		from := g.Node(graph.NodeID(er.From))
		to := g.Node(graph.NodeID(er.To))
		if from == nil || to == nil {
			problems = append(problems, fmt.Errorf("edge %s:%d -> %s:%d: missing endpoint", er.From, er.FromSocket, er.To, er.ToSocket))
			continue
		}
		if er.FromSocket < 0 || er.FromSocket >= len(from.Outputs) ||
			er.ToSocket < 0 || er.ToSocket >= len(to.Inputs) {
			problems = append(problems, fmt.Errorf("edge %s:%d -> %s:%d: socket out of range", er.From, er.FromSocket, er.To, er.ToSocket))
			continue
		}
		if _, err := g.Connect(from.Outputs[er.FromSocket], to.Inputs[er.ToSocket]); err != nil {
			problems = append(problems, fmt.Errorf("edge %s:%d -> %s:%d: %w", er.From, er.FromSocket, er.To, er.ToSocket, err))
		}
	}

	env.Graph = g
	return g, problems, nil
}
