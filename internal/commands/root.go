// Package commands implements the xylem command-line interface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/xylemcad/xylem/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "xylem",
	Short: "Headless node graph evaluator",
	Long: `Xylem evaluates visual node graphs without a canvas: it loads a saved
graph, recomputes the dirty nodes on demand and prints what the sinks
produce.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return cfg.SetupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
