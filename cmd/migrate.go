package cmd

import (
	"fmt"
	"os"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/migrate"
	"github.com/spf13/cobra"
)

var migrateOut string

var migrateCmd = &cobra.Command{
	Use:   "migrate <canvas-file>",
	Short: "Rewrite a legacy canvas into the current shape",
	Long: `Migrate converts a legacy-shape document to the current shape: flat
reference fields become for/from relations, the cost_structure wrapper
unnests, and inline pain relievers and gain creators on fits are promoted
to first-class entities on the linked value proposition. The result is
written as YAML to stdout or --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := canvas.LoadFile(args[0])
		if err != nil {
			return err
		}
		if doc.Legacy == nil {
			return fmt.Errorf("%s is already in the current shape", args[0])
		}

		out, err := canvas.Encode(migrate.Transform(doc.Legacy))
		if err != nil {
			return err
		}
		if migrateOut == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(migrateOut, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", migrateOut, err)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(migrateCmd)
}
