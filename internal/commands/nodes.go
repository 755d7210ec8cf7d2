package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/nodes"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the built-in node catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.New()
		if err := nodes.RegisterAll(c); err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tCATEGORY\tTITLE")
		for _, d := range c.Descriptors() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", d.OpCode, d.Category, d.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}
