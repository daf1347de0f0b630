package cmd

import (
	"fmt"
	"os"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/validate"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <canvas-file>",
	Short: "Check the structural shape of a canvas document",
	Long: `Validate checks collection shapes, entity objects and id prefixes
without resolving any cross-entity references. Exit code 1 on any
structural error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := canvas.LoadFile(args[0])
		if err != nil {
			return err
		}

		res := validate.Check(doc.Raw)
		switch outputFormat {
		case "json":
			out, err := oj.Marshal(res)
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Println(string(out))
		case "text":
			for _, fe := range res.Errors {
				fmt.Printf("%s: %s\n", fe.Path, fe.Message)
			}
			if res.Valid {
				fmt.Println("valid")
			}
		default:
			return fmt.Errorf("unknown format %q (want text or json)", outputFormat)
		}
		if !res.Valid {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
