package nodes

import (
	"fmt"

	"github.com/xylemcad/xylem/pkg/bus"
	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
)

// SenderOp publishes its data input on a named broadcast channel every
// time the node evaluates. It also answers pull notifications so
// receivers that bind after the last publish still converge.
type SenderOp struct {
	node    *graph.Node
	bus     *bus.Registry
	pullSub *bus.Subscription
}

func (o *SenderOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	id, err := channelID(in[0])
	if err != nil {
		return nil, err
	}
	o.bus.Publish(id, in[1])
	return []graph.Bucket{{id}, in[1]}, nil
}

func (o *SenderOp) onPull(graph.Bucket) {
	// Recomputing republishes the current value on the data channel.
	// A failing upstream is the sender's problem, not the puller's.
	_ = o.node.InputChanged()
}

// Release cancels the pull subscription.
func (o *SenderOp) Release() {
	o.pullSub.Cancel()
}

// NewSender builds the broadcast publisher node.
func NewSender(env *catalog.Env) (*graph.Node, error) {
	if env.Bus == nil {
		return nil, fmt.Errorf("sender node requires a broadcast registry")
	}
	op := &SenderOp{bus: env.Bus}
	n := graph.NewNode(OpSender, "Sender", op,
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Channel", Default: graph.Text{Value: "1"}},
			{Type: graph.TypeAny, Label: "Data", Multi: true, Caps: []string{graph.CapAny}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Channel"},
			{Type: graph.TypeAny, Label: "Data", Caps: []string{graph.CapAny}},
		})
	op.node = n
	op.pullSub = env.Bus.Subscribe(bus.PullChannel, op.onPull)
	return n, nil
}

// ReceiverOp holds the last bucket pushed on its bound channel. Binding
// follows the channel input: when the name changes, the old subscription
// is canceled before the new one is registered, then a pull notification
// asks live senders to republish so the receiver does not start stale.
type ReceiverOp struct {
	node  *graph.Node
	bus   *bus.Registry
	sub   *bus.Subscription
	bound string
	data  graph.Bucket
}

func (o *ReceiverOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	id, err := channelID(in[0])
	if err != nil {
		return nil, err
	}
	if o.sub == nil || id != o.bound {
		o.sub.Cancel()
		o.sub = o.bus.Subscribe(id, o.onPush)
		o.bound = id
		// Senders answer synchronously, so o.data is current below.
		o.bus.Publish(bus.PullChannel, nil)
	}
	return []graph.Bucket{{id}, o.data}, nil
}

func (o *ReceiverOp) onPush(b graph.Bucket) {
	o.data = b
	o.node.MarkDirty()
	o.node.MarkDescendantsDirty()
}

// Release cancels the channel subscription.
func (o *ReceiverOp) Release() {
	o.sub.Cancel()
}

// NewReceiver builds the broadcast subscriber node.
func NewReceiver(env *catalog.Env) (*graph.Node, error) {
	if env.Bus == nil {
		return nil, fmt.Errorf("receiver node requires a broadcast registry")
	}
	op := &ReceiverOp{bus: env.Bus}
	n := graph.NewNode(OpReceiver, "Receiver", op,
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Channel", Default: graph.Text{Value: "1"}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Channel"},
			{Type: graph.TypeAny, Label: "Data", Caps: []string{graph.CapAny}},
		})
	op.node = n
	return n, nil
}
