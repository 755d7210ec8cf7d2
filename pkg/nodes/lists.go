package nodes

import (
	"fmt"

	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
)

var structureOps = []string{"flatten", "graft", "simplify"}

// NewDataStructure builds the list restructuring node.
//
//	flatten  collapses nested buckets into one flat list
//	graft    wraps every element in its own single-element list
//	simplify removes one nesting level, keeping leaf order
func NewDataStructure(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		if len(in[0]) == 0 {
			return nil, fmt.Errorf("operator input is empty")
		}
		opIdx, err := ToInt(in[0][0])
		if err != nil {
			return nil, fmt.Errorf("operator: %w", err)
		}
		if opIdx < 0 || opIdx >= len(structureOps) {
			return nil, fmt.Errorf("unknown operator index %d", opIdx)
		}
		list := in[1]

		var out graph.Bucket
		switch structureOps[opIdx] {
		case "flatten":
			out = flatten(list)
		case "graft":
			for _, v := range list {
				out = append(out, graph.Bucket{v})
			}
		case "simplify":
			for _, v := range list {
				if nested, ok := v.(graph.Bucket); ok {
					out = append(out, nested...)
				} else {
					out = append(out, v)
				}
			}
		}
		return []graph.Bucket{out}, nil
	})
	return graph.NewNode(OpDataStructure, "Structure", op,
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Op", Default: graph.Choice{Index: 0, Options: structureOps}},
			{Type: graph.TypeAny, Label: "List", Multi: true, Caps: []string{graph.CapAny}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "List", Caps: []string{graph.CapAny}},
		}), nil
}

func flatten(b graph.Bucket) graph.Bucket {
	var out graph.Bucket
	for _, v := range b {
		if nested, ok := v.(graph.Bucket); ok {
			out = append(out, flatten(nested)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// listNextOp yields one element of its input list per evaluation,
// advancing a wrapping cursor. Forcing re-evaluation steps through the
// list.
type listNextOp struct {
	cursor int
}

func (o *listNextOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	list := in[0]
	if len(list) == 0 {
		return nil, fmt.Errorf("list input is empty")
	}
	if o.cursor >= len(list) {
		o.cursor = 0
	}
	v := list[o.cursor]
	o.cursor++
	return []graph.Bucket{{v}}, nil
}

// NewListNext builds the stepping iterator node.
func NewListNext(env *catalog.Env) (*graph.Node, error) {
	return graph.NewNode(OpListNext, "Next", &listNextOp{},
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "List", Multi: true, Caps: []string{graph.CapAny}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "Item", Caps: []string{graph.CapAny}},
		}), nil
}
