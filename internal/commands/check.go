package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xylemcad/xylem/pkg/bus"
	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
	"github.com/xylemcad/xylem/pkg/kernel/sdfx"
	"github.com/xylemcad/xylem/pkg/nodes"
	"github.com/xylemcad/xylem/pkg/script"
)

var checkCmd = &cobra.Command{
	Use:   "check <graph-file>",
	Short: "Load a graph file and report structural problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read graph file: %w", err)
	}

	c := catalog.New()
	if err := nodes.RegisterAll(c); err != nil {
		return err
	}
	env := &catalog.Env{
		Bus:    bus.NewRegistry(),
		Kernel: sdfx.New(),
		Script: script.NewEngine(),
	}

	g, problems, err := catalog.Load(data, c, env)
	if err != nil {
		return err
	}

	issues := len(problems)
	for _, p := range problems {
		fmt.Fprintf(cmd.OutOrStdout(), "load: %v\n", p)
	}
	for _, v := range graph.Validate(g) {
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
		issues++
	}

	if issues > 0 {
		return fmt.Errorf("%d problem(s) found", issues)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes\n", g.NodeCount())
	return nil
}
