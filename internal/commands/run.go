package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xylemcad/xylem/pkg/bus"
	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
	"github.com/xylemcad/xylem/pkg/kernel"
	"github.com/xylemcad/xylem/pkg/kernel/sdfx"
	"github.com/xylemcad/xylem/pkg/nodes"
	"github.com/xylemcad/xylem/pkg/script"
)

var runCmd = &cobra.Command{
	Use:   "run <graph-file>",
	Short: "Load a graph file and evaluate its sinks",
	Long: `Load a saved graph and read every sink node's outputs, which
recomputes exactly the stale part of the graph.

Examples:
  xylem run design.json
  xylem run design.json --config xylem.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read graph file: %w", err)
	}

	c := catalog.New()
	if err := nodes.RegisterAll(c); err != nil {
		return err
	}

	engine := script.NewEngine()
	engine.Timeout = cfg.Script.Timeout.Std()
	env := &catalog.Env{
		Bus:    bus.NewRegistry(),
		Kernel: sdfx.NewWithCells(cfg.Mesh.Cells),
		Script: engine,
	}

	g, problems, err := catalog.Load(data, c, env)
	if err != nil {
		return err
	}
	for _, p := range problems {
		slog.Warn("graph loaded with problem", "problem", p)
	}

	sinks := g.Sinks()
	if len(sinks) == 0 {
		slog.Info("graph has no sink nodes", "nodes", g.NodeCount())
		return nil
	}

	for _, n := range sinks {
		for i, out := range n.Outputs {
			b, err := n.Eval(i)
			if err != nil {
				slog.Error("sink evaluation failed",
					"node", n.Title, "id", n.ID.Short(), "socket", out.Label, "err", err)
				continue
			}
			fmt.Printf("%s.%s = %s\n", n.Title, out.Label, formatBucket(b))
		}
	}
	return nil
}

// formatBucket renders a bucket for terminal output. Solids print as
// their bounding box extents rather than an opaque pointer.
func formatBucket(b graph.Bucket) string {
	out := "["
	for i, v := range b {
		if i > 0 {
			out += ", "
		}
		switch x := v.(type) {
		case kernel.Solid:
			min, max := x.BoundingBox()
			out += fmt.Sprintf("solid %gx%gx%g",
				max[0]-min[0], max[1]-min[1], max[2]-min[2])
		case graph.Bucket:
			out += formatBucket(x)
		default:
			out += fmt.Sprint(v)
		}
	}
	return out + "]"
}
