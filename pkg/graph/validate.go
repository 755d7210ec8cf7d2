package graph

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks
// evaluation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// Validate runs all structural checks on the graph and returns the
// findings. An empty slice means the graph is valid. Validate is
// read-only and never mutates the graph.
func Validate(g *Graph) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateAcyclic(g)...)
	errs = append(errs, validateEdges(g)...)
	errs = append(errs, validateCaches(g)...)
	return errs
}

// validateAcyclic checks for cycles using DFS with 3-color marking.
// White (0) = unvisited, gray (1) = in current DFS path, black (2) =
// fully explored. A gray node reached during traversal is a cycle.
func validateAcyclic(g *Graph) []ValidationError {
	const (
		white = iota
		gray
		black
	)

	color := make(map[NodeID]int)
	var errs []ValidationError

	var visit func(n *Node) bool // returns true if cycle found
	visit = func(n *Node) bool {
		switch color[n.ID] {
		case black:
			return false
		case gray:
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("cycle detected: node %q is part of a cycle", n.Title),
				Severity: SeverityError,
			})
			return true
		}

		color[n.ID] = gray
		for _, out := range n.Outputs {
			for _, e := range out.Edges {
				if visit(e.To.Node) {
					return true
				}
			}
		}
		color[n.ID] = black
		return false
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			if visit(n) {
				// One cycle error is sufficient; stop early.
				break
			}
		}
	}
	return errs
}

// validateEdges checks edge bookkeeping: endpoints must belong to graph
// nodes, single-edge inputs must hold at most one edge, and every edge
// must be registered on both of its sockets.
func validateEdges(g *Graph) []ValidationError {
	var errs []ValidationError

	registered := func(s *Socket, e *Edge) bool {
		for _, other := range s.Edges {
			if other == e {
				return true
			}
		}
		return false
	}

	for _, n := range g.Nodes() {
		for _, in := range n.Inputs {
			if !in.AllowMulti && len(in.Edges) > 1 {
				errs = append(errs, ValidationError{
					NodeID:   n.ID,
					Message:  fmt.Sprintf("single-edge input %q holds %d edges", in.Label, len(in.Edges)),
					Severity: SeverityError,
				})
			}
			for _, e := range in.Edges {
				if g.Node(e.From.Node.ID) == nil {
					errs = append(errs, ValidationError{
						NodeID:   n.ID,
						Message:  fmt.Sprintf("input %q has an edge from a node outside the graph", in.Label),
						Severity: SeverityError,
					})
				}
				if !registered(e.From, e) {
					errs = append(errs, ValidationError{
						NodeID:   n.ID,
						Message:  fmt.Sprintf("edge into %q is missing from its output socket", in.Label),
						Severity: SeverityError,
					})
				}
			}
		}
	}
	return errs
}

// validateCaches checks the cache-shape invariant: a clean, valid node
// must hold exactly one cached bucket per output socket.
func validateCaches(g *Graph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.Nodes() {
		if !n.dirty && !n.invalid && len(n.cache) != len(n.Outputs) {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("clean node caches %d buckets for %d outputs", len(n.cache), len(n.Outputs)),
				Severity: SeverityError,
			})
		}
	}
	return errs
}
