package cmd

import (
	"fmt"
	"os"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/lint"
	"github.com/canvaskit/canvaslint/internal/validate"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <canvas-file>",
	Short: "Check every cross-entity reference in a canvas document",
	Long: `Lint parses a canvas document (YAML or JSON, legacy or current shape),
resolves every cross-entity reference and reports all broken, out-of-scope
or unused declarations. The exit code is 1 when any error-severity issue
remains after config filtering, 0 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, err := canvas.LoadFile(args[0])
		if err != nil {
			return err
		}

		// Structural problems make reference resolution meaningless, so the
		// validator gates the linter.
		if res := validate.Check(doc.Raw); !res.Valid {
			if outputFormat == "json" {
				out, err := oj.Marshal(res)
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				fmt.Println(string(out))
			} else {
				for _, fe := range res.Errors {
					fmt.Printf("%s: %s\n", fe.Path, fe.Message)
				}
			}
			os.Exit(1)
		}

		issues := cfg.Apply(lint.Run(doc))
		if err := printIssues(issues); err != nil {
			return err
		}
		if lint.HasErrors(issues) {
			os.Exit(1)
		}
		return nil
	},
}

func printIssues(issues []lint.Issue) error {
	switch outputFormat {
	case "json":
		out, err := oj.Marshal(issues)
		if err != nil {
			return fmt.Errorf("encode issues: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		for _, is := range issues {
			fmt.Printf("%s %s %s: %s\n", is.Severity, is.Path, is.Rule, is.Message)
		}
		if len(issues) == 0 {
			fmt.Println("no issues")
		}
	default:
		return fmt.Errorf("unknown format %q (want text or json)", outputFormat)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
