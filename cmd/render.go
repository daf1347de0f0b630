package cmd

import (
	"fmt"
	"os"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/connect"
	"github.com/canvaskit/canvaslint/internal/render"
	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <canvas-file>",
	Short: "Draw the canvas as a nine-block SVG diagram",
	Long: `Render lays the canvas out as the classic nine-block grid. Each
customer segment gets a palette color and every entity is tinted by the
first segment its connection set contains; unconnected entities stay gray.
Legacy documents are migrated in-memory first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := canvas.LoadFile(args[0])
		if err != nil {
			return err
		}
		c, err := currentShape(doc)
		if err != nil {
			return err
		}

		svg, err := render.SVG(c, connect.Build(c))
		if err != nil {
			return err
		}
		if renderOut == "" {
			fmt.Print(string(svg))
			return nil
		}
		if err := os.WriteFile(renderOut, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", renderOut, err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}
