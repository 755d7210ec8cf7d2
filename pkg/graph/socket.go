package graph

// SocketSpec describes one socket in a node's init list: its type tag,
// label, default value holder, multi-edge flag and capability tags.
type SocketSpec struct {
	Type    int
	Label   string
	Default Default // nil is treated as Empty
	Multi   bool
	Caps    []string
}

// Socket is a typed connection endpoint belonging to a node. Input sockets
// aggregate fan-in data from their edges, or fall back to their default
// when unconnected. Output sockets carry cached evaluation results to any
// number of downstream edges.
type Socket struct {
	Node       *Node
	Index      int
	Type       int
	Label      string
	IsInput    bool
	AllowMulti bool
	Caps       []string
	Default    Default

	// Edges incident on this socket, in registration order. Fan-in
	// concatenation follows this order.
	Edges []*Edge
}

func newSocket(n *Node, index int, isInput bool, spec SocketSpec) *Socket {
	def := spec.Default
	if def == nil {
		def = Empty{}
	}
	return &Socket{
		Node:       n,
		Index:      index,
		Type:       spec.Type,
		Label:      spec.Label,
		IsInput:    isInput,
		AllowMulti: spec.Multi,
		Caps:       spec.Caps,
		Default:    def,
	}
}

// HasEdges reports whether any edge is connected to the socket.
func (s *Socket) HasEdges() bool { return len(s.Edges) > 0 }

// SetDefault replaces the socket's default value holder. The caller is
// expected to follow up with Node.InputChanged to trigger re-evaluation.
func (s *Socket) SetDefault(d Default) {
	if d == nil {
		d = Empty{}
	}
	s.Default = d
}

func (s *Socket) removeEdge(e *Edge) {
	for i, other := range s.Edges {
		if other == e {
			s.Edges = append(s.Edges[:i], s.Edges[i+1:]...)
			return
		}
	}
}

// Edge connects one output socket to one input socket of a different node.
// Values flow from From to To during evaluation.
type Edge struct {
	From *Socket // output side
	To   *Socket // input side
}
