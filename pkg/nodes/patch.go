package nodes

import (
	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
)

// InletOp injects host-provided data into a graph. The host sets the
// bucket through SetData and the node emits it unchanged.
type InletOp struct {
	node *graph.Node
	data graph.Bucket
}

// SetData replaces the injected bucket and recomputes the node, so
// downstream reads see the new value.
func (o *InletOp) SetData(b graph.Bucket) error {
	o.data = b
	return o.node.InputChanged()
}

func (o *InletOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	return []graph.Bucket{o.data}, nil
}

// NewInlet builds the host data entry node. Hosts reach the op through
// Node.Op to feed it.
func NewInlet(env *catalog.Env) (*graph.Node, error) {
	op := &InletOp{}
	n := graph.NewNode(OpInlet, "Inlet", op,
		nil,
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "Out", Caps: []string{graph.CapAny}},
		})
	op.node = n
	return n, nil
}

// OutletOp captures the bucket flowing into it for the host to read.
type OutletOp struct {
	data graph.Bucket
}

// Data returns the bucket captured by the last evaluation.
func (o *OutletOp) Data() graph.Bucket { return o.data }

func (o *OutletOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	o.data = in[0]
	return []graph.Bucket{in[0]}, nil
}

// NewOutlet builds the host data exit node. Its output socket lets it
// chain into further nodes; the host reads the captured bucket through
// Node.Op after evaluating the node.
func NewOutlet(env *catalog.Env) (*graph.Node, error) {
	return graph.NewNode(OpOutlet, "Outlet", &OutletOp{},
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "In", Multi: true, Caps: []string{graph.CapAny}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "Out", Caps: []string{graph.CapAny}},
		}), nil
}
