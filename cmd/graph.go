package cmd

import (
	"fmt"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/connect"
	"github.com/canvaskit/canvaslint/internal/migrate"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <canvas-file>",
	Short: "Derive the segment connection sets for every entity",
	Long: `Graph computes, for each entity in a current-shape canvas, the set of
customer segments it ultimately serves. Legacy documents are migrated
in-memory first.`,
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

		g := connect.Build(c)
		switch outputFormat {
		case "json":
			out, err := oj.Marshal(g.AsMap())
			if err != nil {
				return fmt.Errorf("encode graph: %w", err)
			}
			fmt.Println(string(out))
		case "text":
			for _, id := range g.Entities() {
				fmt.Printf("%s -> %v\n", id, g.SegmentsOf(id))
			}
		default:
			return fmt.Errorf("unknown format %q (want text or json)", outputFormat)
		}
		return nil
	},
}

// currentShape returns the document's current-shape canvas, migrating a
// legacy document in-memory when needed.
func currentShape(doc *canvas.Document) (*canvas.Canvas, error) {
	if doc.Current != nil {
		return doc.Current, nil
	}
	if doc.Legacy != nil {
		return migrate.Transform(doc.Legacy), nil
	}
	return nil, fmt.Errorf("document has no decodable canvas")
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
