package graph

import (
	"fmt"
	"log/slog"
)

// Eval returns the bucket for the requested output socket. A clean, valid
// node answers from its cache without invoking the operation. A dirty or
// invalid node runs the full recompute sequence first: fan-in aggregation,
// one Apply call producing all output buckets, cache replacement, and
// dirty-marking of every descendant.
func (n *Node) Eval(index int) (Bucket, error) {
	if index < 0 || index >= len(n.Outputs) {
		return nil, fmt.Errorf("node %s: no output socket %d", n.ID.Short(), index)
	}
	if !n.dirty && !n.invalid {
		return n.cache[index], nil
	}
	out, err := n.recompute()
	if err != nil {
		return nil, err
	}
	return out[index], nil
}

// recompute gathers fan-in data, applies the operation and installs the
// new cache. All output buckets are recomputed together so the cache is
// never partially stale.
func (n *Node) recompute() (out []Bucket, err error) {
	if n.evaluating {
		n.markInvalid(ErrCyclicGraph.Error())
		return nil, ErrCyclicGraph
	}
	n.evaluating = true
	defer func() { n.evaluating = false }()

	// An operation that panics is an internal error, not a crash: the node
	// becomes invalid like any domain failure, and the panic is logged for
	// diagnostics. Sibling subgraphs evaluate independently.
	defer func() {
		if r := recover(); r != nil {
			diag := fmt.Sprintf("internal error: %v", r)
			n.markInvalid(diag)
			n.MarkDescendantsDirty()
			slog.Error("node computation panicked",
				"node", n.Title, "id", n.ID.Short(), "panic", r)
			out = nil
			err = &EvalError{NodeID: n.ID, Title: n.Title, Message: diag}
		}
	}()

	inputs, gatherErr := n.gatherInputs()
	if gatherErr != nil {
		n.markInvalid(gatherErr.Error())
		n.MarkDescendantsDirty()
		return nil, &EvalError{NodeID: n.ID, Title: n.Title, Message: gatherErr.Error(), Cause: gatherErr}
	}

	result, opErr := n.op.Apply(inputs)
	if opErr != nil {
		n.markInvalid(opErr.Error())
		n.MarkDescendantsDirty()
		return nil, &EvalError{NodeID: n.ID, Title: n.Title, Message: opErr.Error(), Cause: opErr}
	}
	if len(result) != len(n.Outputs) {
		diag := fmt.Sprintf("operation returned %d buckets for %d output sockets",
			len(result), len(n.Outputs))
		n.markInvalid(diag)
		n.MarkDescendantsDirty()
		slog.Error("node computation returned wrong bucket count",
			"node", n.Title, "id", n.ID.Short(), "got", len(result), "want", len(n.Outputs))
		return nil, &EvalError{NodeID: n.ID, Title: n.Title, Message: diag}
	}

	n.cache = result
	n.dirty = false
	n.invalid = false
	n.diag = ""
	n.MarkDescendantsDirty()
	return result, nil
}

// gatherInputs builds one input bucket per input socket, in socket order.
// A connected socket concatenates the buckets of its upstream outputs in
// edge-registration order; an unconnected socket reads its default.
func (n *Node) gatherInputs() ([]Bucket, error) {
	inputs := make([]Bucket, 0, len(n.Inputs))
	for _, socket := range n.Inputs {
		var bucket Bucket
		if socket.HasEdges() {
			for _, e := range socket.Edges {
				upstream := e.From.Node
				values, err := upstream.Eval(e.From.Index)
				if err != nil {
					return nil, fmt.Errorf("input %q: %w", socket.Label, err)
				}
				bucket = append(bucket, values...)
			}
		} else {
			bucket = socket.Default.Bucket()
		}
		inputs = append(inputs, bucket)
	}
	return inputs, nil
}
