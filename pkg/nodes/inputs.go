package nodes

import (
	"fmt"

	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
)

// NewNumberInput builds a number entry node. The widget text parses as a
// number; non-numeric text is passed through for downstream nodes to
// reject.
func NewNumberInput(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		return []graph.Bucket{in[0]}, nil
	})
	return graph.NewNode(OpNumberInput, "Number", op,
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Number", Default: graph.Text{Value: "0"}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Number"},
		}), nil
}

// NewTextInput builds a free text entry node.
func NewTextInput(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		return []graph.Bucket{in[0]}, nil
	})
	return graph.NewNode(OpTextInput, "Text", op,
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Text", Default: graph.Text{Value: "Enter text"}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Text"},
		}), nil
}

// NewNumberSlider builds a bounded slider node. The slider position is
// clamped into the [min, max] interval on every evaluation, so widening
// or narrowing the bounds keeps the output in range.
func NewNumberSlider(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		if len(in[0]) == 0 || len(in[1]) == 0 || len(in[2]) == 0 {
			return nil, fmt.Errorf("slider inputs must not be empty")
		}
		lo, err := ToFloat(in[0][0])
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		hi, err := ToFloat(in[1][0])
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		if lo > hi {
			return nil, fmt.Errorf("min %v exceeds max %v", lo, hi)
		}
		v, err := ToFloat(in[2][0])
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		return []graph.Bucket{{v}}, nil
	})
	return graph.NewNode(OpNumberSlider, "Slider", op,
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Min", Default: graph.Text{Value: "0"}},
			{Type: graph.TypeNumber, Label: "Max", Default: graph.Text{Value: "100"}},
			{Type: graph.TypeNumber, Label: "Value", Default: graph.Range{Min: 0, Max: 100, Current: 50}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Number"},
		}), nil
}
