package cmd

import (
	"fmt"
	"os"

	"github.com/canvaskit/canvaslint/internal/catalog"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var catalogDB string

var catalogCmd = &cobra.Command{
	Use:   "catalog <workspace-dir>",
	Short: "Lint every canvas under a directory and record the results",
	Long: `Catalog globs a workspace for canvas documents (yaml, yml, json),
lints each one and persists per-document issue counts to a SQLite
database. Unparseable files are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := args[0]
		store, err := catalog.NewStore(catalogDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		runID, entries, err := catalog.Scan(os.DirFS(workspace), workspace, store)
		if err != nil {
			return err
		}

		switch outputFormat {
		case "json":
			out, err := oj.Marshal(entries)
			if err != nil {
				return fmt.Errorf("encode entries: %w", err)
			}
			fmt.Println(string(out))
		case "text":
			fmt.Printf("run %s: %d canvases\n", runID, len(entries))
			for _, e := range entries {
				fmt.Printf("  %s (%s): %d errors, %d warnings\n", e.Path, e.Version, e.Errors, e.Warnings)
			}
		default:
			return fmt.Errorf("unknown format %q (want text or json)", outputFormat)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogDB, "db", "canvaslint.db", "Path to the catalog database")
	rootCmd.AddCommand(catalogCmd)
}
