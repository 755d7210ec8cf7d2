package nodes

import (
	"fmt"
	"math"

	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
)

var mathOps = []string{"a+b", "a-b", "a*b", "a/b", "a^b"}

// NewBasicMath builds the element-wise arithmetic node. Operands of
// unequal length broadcast when one side is a single value; division by
// zero is a domain failure, not a panic.
func NewBasicMath(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		if len(in[0]) == 0 {
			return nil, fmt.Errorf("operator input is empty")
		}
		opIdx, err := ToInt(in[0][0])
		if err != nil {
			return nil, fmt.Errorf("operator: %w", err)
		}
		if opIdx < 0 || opIdx >= len(mathOps) {
			return nil, fmt.Errorf("unknown operator index %d", opIdx)
		}
		a, err := ToFloats(in[1])
		if err != nil {
			return nil, fmt.Errorf("a: %w", err)
		}
		b, err := ToFloats(in[2])
		if err != nil {
			return nil, fmt.Errorf("b: %w", err)
		}
		if len(a) == 0 || len(b) == 0 {
			return nil, fmt.Errorf("operand inputs must not be empty")
		}
		n, err := broadcastLen(len(a), len(b))
		if err != nil {
			return nil, err
		}

		out := make(graph.Bucket, 0, n)
		for i := 0; i < n; i++ {
			x, y := pick(a, i), pick(b, i)
			var r float64
			switch mathOps[opIdx] {
			case "a+b":
				r = x + y
			case "a-b":
				r = x - y
			case "a*b":
				r = x * y
			case "a/b":
				if y == 0 {
					return nil, fmt.Errorf("division by zero at element %d", i)
				}
				r = x / y
			case "a^b":
				r = math.Pow(x, y)
			}
			out = append(out, r)
		}
		return []graph.Bucket{out}, nil
	})
	return graph.NewNode(OpBasicMath, "Math", op,
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Op", Default: graph.Choice{Index: 0, Options: mathOps}},
			{Type: graph.TypeNumber, Label: "A", Default: graph.Text{Value: "1"}, Multi: true},
			{Type: graph.TypeNumber, Label: "B", Default: graph.Text{Value: "10"}, Multi: true},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Result"},
		}), nil
}

// rangeCap bounds generated ranges so a bad step cannot exhaust memory.
const rangeCap = 1 << 20

// NewMakeRange builds the half-open range generator: start inclusive,
// stop exclusive, fixed step.
func NewMakeRange(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		if len(in[0]) == 0 || len(in[1]) == 0 || len(in[2]) == 0 {
			return nil, fmt.Errorf("range inputs must not be empty")
		}
		start, err := ToFloat(in[0][0])
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		stop, err := ToFloat(in[1][0])
		if err != nil {
			return nil, fmt.Errorf("stop: %w", err)
		}
		step, err := ToFloat(in[2][0])
		if err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}
		if step == 0 {
			return nil, fmt.Errorf("step must not be zero")
		}

		var out graph.Bucket
		for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
			if len(out) >= rangeCap {
				return nil, fmt.Errorf("range exceeds %d elements", rangeCap)
			}
			out = append(out, v)
		}
		return []graph.Bucket{out}, nil
	})
	return graph.NewNode(OpMakeRange, "Range", op,
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Start", Default: graph.Text{Value: "0"}},
			{Type: graph.TypeNumber, Label: "Stop", Default: graph.Text{Value: "10"}},
			{Type: graph.TypeNumber, Label: "Step", Default: graph.Text{Value: "1"}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Range"},
		}), nil
}

// NewMakeVector builds the component assembly node: three number lists
// broadcast into one vector list.
func NewMakeVector(env *catalog.Env) (*graph.Node, error) {
	op := graph.OperationFunc(func(in []graph.Bucket) ([]graph.Bucket, error) {
		xs, err := ToFloats(in[0])
		if err != nil {
			return nil, fmt.Errorf("x: %w", err)
		}
		ys, err := ToFloats(in[1])
		if err != nil {
			return nil, fmt.Errorf("y: %w", err)
		}
		zs, err := ToFloats(in[2])
		if err != nil {
			return nil, fmt.Errorf("z: %w", err)
		}
		if len(xs) == 0 || len(ys) == 0 || len(zs) == 0 {
			return nil, fmt.Errorf("component inputs must not be empty")
		}
		n, err := broadcastLen(len(xs), len(ys), len(zs))
		if err != nil {
			return nil, err
		}

		out := make(graph.Bucket, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, graph.Vec3{X: pick(xs, i), Y: pick(ys, i), Z: pick(zs, i)})
		}
		return []graph.Bucket{out}, nil
	})
	return graph.NewNode(OpMakeVector, "Vector", op,
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "X", Default: graph.Text{Value: "0"}, Multi: true},
			{Type: graph.TypeNumber, Label: "Y", Default: graph.Text{Value: "0"}, Multi: true},
			{Type: graph.TypeNumber, Label: "Z", Default: graph.Text{Value: "0"}, Multi: true},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeVector, Label: "Vector"},
		}), nil
}
