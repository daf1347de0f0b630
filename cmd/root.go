// Package cmd wires the canvaslint CLI. Commands stay thin: parse flags,
// call into internal packages, print.
package cmd

import (
	"fmt"
	"os"

	"github.com/canvaskit/canvaslint/internal/lint"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	configPath   string
)

var rootCmd = &cobra.Command{
	Use:   "canvaslint",
	Short: "Canvaslint: reference-integrity linting for business model canvases",
	Long: `Canvaslint checks the cross-entity references of a business model
canvas document (YAML or JSON, legacy or current shape) and derives the
connection graph that drives diagram grouping.`,
	Version:      "0.3.0",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a .canvaslint.hcl rule config")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig resolves the --config flag; no flag means no config.
func loadConfig() (*lint.Config, error) {
	if configPath == "" {
		return nil, nil
	}
	return lint.LoadConfig(configPath)
}
