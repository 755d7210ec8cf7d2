package graph

import "fmt"

// NodeRecord is the serialized form of a node: its stable op code plus one
// "widget<i>" entry per input default that carries a widget value. Socket
// layout is not serialized; it is rebuilt by the node factory.
type NodeRecord struct {
	ID      string            `json:"id"`
	OpCode  int               `json:"op_code"`
	Widgets map[string]string `json:"widgets,omitempty"`
}

// Serialize captures the node's op code and input widget values.
func (n *Node) Serialize() NodeRecord {
	rec := NodeRecord{
		ID:     string(n.ID),
		OpCode: n.OpCode,
	}
	for i, s := range n.Inputs {
		coder, ok := s.Default.(widgetCoder)
		if !ok {
			continue // Empty defaults carry no widget value
		}
		if rec.Widgets == nil {
			rec.Widgets = make(map[string]string)
		}
		rec.Widgets[fmt.Sprintf("widget%d", i)] = coder.encode()
	}
	return rec
}

// Restore applies a node record's widget values to the node's input
// defaults and marks the node dirty. Missing keys leave the construction
// defaults in place. Malformed entries are reported, not raised: each
// problem is collected and the remaining entries are still applied.
func (n *Node) Restore(rec NodeRecord) []error {
	var problems []error
	for i, s := range n.Inputs {
		coder, ok := s.Default.(widgetCoder)
		if !ok {
			continue
		}
		value, ok := rec.Widgets[fmt.Sprintf("widget%d", i)]
		if !ok {
			continue
		}
		restored, err := coder.decode(value)
		if err != nil {
			problems = append(problems, fmt.Errorf("node %s input %q: %w", n.ID.Short(), s.Label, err))
			continue
		}
		s.Default = restored
	}
	n.MarkDirty()
	return problems
}
