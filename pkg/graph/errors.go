package graph

import (
	"errors"
	"fmt"
)

// Connection errors returned by Graph.Connect.
var (
	ErrNotOutputInput = errors.New("edge must run from an output socket to an input socket")
	ErrSelfLoop       = errors.New("socket may not connect to its own node")
	ErrSocketOccupied = errors.New("input socket does not allow multiple edges")
	ErrIncompatible   = errors.New("socket capability tags are not compatible")
	ErrDuplicateEdge  = errors.New("edge already exists between these sockets")
	ErrNodeExists     = errors.New("node already exists in graph")
	ErrNodeNotFound   = errors.New("node not found in graph")
	ErrForeignSocket  = errors.New("socket belongs to a node outside this graph")
)

// ErrCyclicGraph is returned when evaluation re-enters a node that is
// already being recomputed, which can only happen on a cyclic edge graph.
var ErrCyclicGraph = errors.New("cycle detected in node graph")

// EvalError describes a recoverable computation failure local to one node.
// The node carrying it is marked invalid; unrelated subgraphs keep
// evaluating. Cause, when set, preserves the underlying failure chain for
// errors.Is and errors.As.
type EvalError struct {
	NodeID  NodeID
	Title   string
	Message string
	Cause   error
}

func (e *EvalError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("node %q (%s): %s", e.Title, e.NodeID.Short(), e.Message)
	}
	return fmt.Sprintf("node %s: %s", e.NodeID.Short(), e.Message)
}

func (e *EvalError) Unwrap() error { return e.Cause }
