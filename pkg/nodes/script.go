package nodes

import (
	"fmt"

	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
	"github.com/xylemcad/xylem/pkg/script"
)

type scriptOp struct {
	engine *script.Engine
}

func (o *scriptOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	if len(in[0]) == 0 {
		return nil, fmt.Errorf("code input is empty")
	}
	code, err := ToString(in[0][0])
	if err != nil {
		return nil, fmt.Errorf("code: %w", err)
	}
	out, err := o.engine.Run(code, in[1])
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return []graph.Bucket{out}, nil
}

// NewScript builds the sandboxed script node. User code reads its data
// input through (input) and the last expression becomes the output.
func NewScript(env *catalog.Env) (*graph.Node, error) {
	if env.Script == nil {
		return nil, fmt.Errorf("script node requires a script engine")
	}
	return graph.NewNode(OpScript, "Script", &scriptOp{engine: env.Script},
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Code", Default: graph.Text{Value: "(input)"}},
			{Type: graph.TypeAny, Label: "In", Multi: true, Caps: []string{graph.CapAny}},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeAny, Label: "Out", Caps: []string{graph.CapAny}},
		}), nil
}
