package graph

import (
	"github.com/google/uuid"
)

// Operation is the pure computation of a node. Apply consumes one input
// bucket per input socket and returns one output bucket per output socket.
// It must not reach back into the graph or trigger evaluation of other
// nodes; its only inputs are the buckets and the operation's own state.
type Operation interface {
	Apply(inputs []Bucket) ([]Bucket, error)
}

// OperationFunc adapts a plain function to the Operation interface.
type OperationFunc func(inputs []Bucket) ([]Bucket, error)

// Apply calls f.
func (f OperationFunc) Apply(inputs []Bucket) ([]Bucket, error) { return f(inputs) }

// Releaser is implemented by operations that hold external resources, such
// as broadcast channel subscriptions, that must be released when their
// node is removed from the graph.
type Releaser interface {
	Release()
}

// Node is the evaluation unit of the graph: an ordered list of input and
// output sockets, a dirty/invalid state, and a cached output bucket per
// output socket. Output values are recomputed lazily on read.
type Node struct {
	ID     NodeID
	OpCode int
	Title  string

	Inputs  []*Socket
	Outputs []*Socket

	op Operation

	dirty      bool
	invalid    bool
	diag       string
	cache      []Bucket
	evaluating bool
}

// NewNode constructs a node with sockets built from the given init lists.
// The node starts dirty; its first Eval performs the initial computation.
func NewNode(opCode int, title string, op Operation, inputs, outputs []SocketSpec) *Node {
	n := &Node{
		ID:     NodeID(uuid.NewString()),
		OpCode: opCode,
		Title:  title,
		op:     op,
		dirty:  true,
	}
	for i, spec := range inputs {
		n.Inputs = append(n.Inputs, newSocket(n, i, true, spec))
	}
	for i, spec := range outputs {
		n.Outputs = append(n.Outputs, newSocket(n, i, false, spec))
	}
	return n
}

// Op returns the node's operation. Hosts use it to reach node-specific
// state, such as an outlet's captured bucket.
func (n *Node) Op() Operation { return n.op }

// IsDirty reports whether the cached output is stale.
func (n *Node) IsDirty() bool { return n.dirty }

// IsInvalid reports whether the last computation failed.
func (n *Node) IsInvalid() bool { return n.invalid }

// Diagnostic returns the failure description of an invalid node, or "".
func (n *Node) Diagnostic() string { return n.diag }

// MarkDirty flags the node's cache as stale. The next Eval recomputes.
func (n *Node) MarkDirty() { n.dirty = true }

func (n *Node) markInvalid(diag string) {
	n.invalid = true
	n.diag = diag
}

// MarkDescendantsDirty marks every node reachable through outgoing edges
// as dirty. It does not recompute anything; descendants recompute lazily
// when they are next read.
func (n *Node) MarkDescendantsDirty() {
	seen := map[*Node]bool{n: true}
	var walk func(from *Node)
	walk = func(from *Node) {
		for _, out := range from.Outputs {
			for _, e := range out.Edges {
				child := e.To.Node
				if seen[child] {
					continue
				}
				seen[child] = true
				child.dirty = true
				walk(child)
			}
		}
	}
	walk(n)
}

// InputChanged is the entry point for the visual layer: a socket widget
// was edited, so the node recomputes immediately. The error reports the
// same failure that Eval would surface.
func (n *Node) InputChanged() error {
	n.MarkDirty()
	_, err := n.recompute()
	return err
}
