package graph

import "fmt"

// Graph owns a set of nodes and the edges between their sockets. Nodes
// keep their insertion order so serialization and sink enumeration are
// deterministic.
type Graph struct {
	nodes map[NodeID]*Node
	order []NodeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// AddNode adds a node to the graph.
func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("%w: %s", ErrNodeExists, n.ID.Short())
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Sinks returns the nodes with no outgoing edges, in insertion order.
func (g *Graph) Sinks() []*Node {
	var sinks []*Node
	for _, n := range g.Nodes() {
		connected := false
		for _, out := range n.Outputs {
			if out.HasEdges() {
				connected = true
				break
			}
		}
		if !connected {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// Connect creates an edge from an output socket to an input socket. The
// connection is refused if the direction is wrong, the sockets belong to
// the same node, the capability tags do not overlap, or the input socket
// is single-edge and already occupied. On success the downstream node and
// its descendants are marked dirty.
func (g *Graph) Connect(from, to *Socket) (*Edge, error) {
	if from.IsInput || !to.IsInput {
		return nil, ErrNotOutputInput
	}
	if from.Node == to.Node {
		return nil, ErrSelfLoop
	}
	if g.nodes[from.Node.ID] != from.Node || g.nodes[to.Node.ID] != to.Node {
		return nil, ErrForeignSocket
	}
	if !capsCompatible(from.Caps, to.Caps) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrIncompatible, from.Caps, to.Caps)
	}
	if !to.AllowMulti && to.HasEdges() {
		return nil, fmt.Errorf("%w: %q", ErrSocketOccupied, to.Label)
	}
	for _, e := range to.Edges {
		if e.From == from {
			return nil, ErrDuplicateEdge
		}
	}

	e := &Edge{From: from, To: to}
	from.Edges = append(from.Edges, e)
	to.Edges = append(to.Edges, e)

	to.Node.MarkDirty()
	to.Node.MarkDescendantsDirty()
	return e, nil
}

// Disconnect removes an edge and marks the downstream node and its
// descendants dirty.
func (g *Graph) Disconnect(e *Edge) {
	e.From.removeEdge(e)
	e.To.removeEdge(e)
	e.To.Node.MarkDirty()
	e.To.Node.MarkDescendantsDirty()
}

// RemoveNode detaches all edges incident on the node, releases any
// external resources held by its operation, and removes it from the
// graph. Downstream nodes are left dirty so their next read surfaces the
// missing input.
func (g *Graph) RemoveNode(id NodeID) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id.Short())
	}

	for _, s := range append(append([]*Socket{}, n.Inputs...), n.Outputs...) {
		for len(s.Edges) > 0 {
			g.Disconnect(s.Edges[0])
		}
	}
	if r, ok := n.op.(Releaser); ok {
		r.Release()
	}

	delete(g.nodes, id)
	for i, other := range g.order {
		if other == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}
